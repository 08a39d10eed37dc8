package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"

	"github.com/helmcode/rawmat/pkg/analyzer"
	"github.com/helmcode/rawmat/pkg/formatter"
	"github.com/helmcode/rawmat/pkg/llm"
	"github.com/helmcode/rawmat/pkg/model"
	"github.com/helmcode/rawmat/pkg/suppliers"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	analyzer *analyzer.Analyzer
	version  string
}

// NewHandler creates a new HTTP handler
func NewHandler(a *analyzer.Analyzer, version string) *Handler {
	return &Handler{analyzer: a, version: version}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rawmat",
		"version": h.version,
	})
}

// Analyze runs one analysis and returns the new Analysis to the caller.
func (h *Handler) Analyze(c *gin.Context) {
	var req model.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis, err := h.analyzer.Analyze(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "failed to generate analysis, please try again",
			"kind":  llm.Classify(err),
		})
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// Probe reports whether the text generation service is reachable.
func (h *Handler) Probe(c *gin.Context) {
	err := h.analyzer.ProbeErr(c.Request.Context())
	resp := gin.H{
		"connected": err == nil,
		"provider":  h.analyzer.Provider(),
		"model":     h.analyzer.Model(),
	}
	if err != nil {
		resp["kind"] = llm.Classify(err)
	}
	c.JSON(http.StatusOK, resp)
}

// ExportJSON returns the result of an analysis posted back by the caller as a JSON download.
func (h *Handler) ExportJSON(c *gin.Context) {
	analysis, ok := bindAnalysis(c)
	if !ok {
		return
	}

	data, err := formatter.ExportJSON(analysis.Result)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode analysis"})
		return
	}
	attach(c, formatter.ExportFileName(analysis.ProductName, formatter.KindJSON))
	c.Data(http.StatusOK, "application/json", data)
}

// ExportReport returns the plain-text report of an analysis posted back by the caller.
func (h *Handler) ExportReport(c *gin.Context) {
	analysis, ok := bindAnalysis(c)
	if !ok {
		return
	}

	attach(c, formatter.ExportFileName(analysis.ProductName, formatter.KindReport))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(formatter.ExportReport(analysis)))
}

// Suppliers lists the placeholder suppliers for a material.
func (h *Handler) Suppliers(c *gin.Context) {
	material := strings.TrimSpace(c.Query("material"))
	if material == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "material query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"material":  material,
		"suppliers": suppliers.ForMaterial(material),
	})
}

func bindAnalysis(c *gin.Context) (*model.Analysis, bool) {
	var analysis model.Analysis
	if err := c.ShouldBindJSON(&analysis); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid analysis body"})
		return nil, false
	}
	if len(analysis.Result.Materials) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis has no materials"})
		return nil, false
	}
	return &analysis, true
}

// attach sets Content-Disposition. Non-ASCII names get an ASCII filename
// plus the RFC 5987 filename* form.
func attach(c *gin.Context, filename string) {
	ascii := strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || r == '"' || r == '\\' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, filename)

	value := fmt.Sprintf(`attachment; filename="%s"`, ascii)
	if ascii != filename {
		value += "; filename*=UTF-8''" + url.PathEscape(filename)
	}
	c.Header("Content-Disposition", value)
}
