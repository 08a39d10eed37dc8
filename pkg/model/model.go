package model

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidRequest is returned when an analysis request has no product name.
var ErrInvalidRequest = errors.New("product name is required")

// Complexity is the manufacturing complexity reported for a product.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// AnalysisRequest is what the user asks to analyze.
type AnalysisRequest struct {
	ProductName        string `json:"product_name"`
	ProductDescription string `json:"product_description,omitempty"`
}

// Validate checks that the request carries a non-blank product name.
func (r AnalysisRequest) Validate() error {
	if strings.TrimSpace(r.ProductName) == "" {
		return ErrInvalidRequest
	}
	return nil
}

// Subject combines name and description into the text sent to the model.
func (r AnalysisRequest) Subject() string {
	name := strings.TrimSpace(r.ProductName)
	if desc := strings.TrimSpace(r.ProductDescription); desc != "" {
		return name + " - " + desc
	}
	return name
}

type ProductAnalysis struct {
	ProductName             string     `json:"product_name" yaml:"product_name"`
	Category                string     `json:"category" yaml:"category"`
	ManufacturingComplexity Complexity `json:"manufacturing_complexity" yaml:"manufacturing_complexity"`
}

type MaterialSpec struct {
	Name         string   `json:"material_name" yaml:"material_name"`
	Quantity     string   `json:"quantity" yaml:"quantity"`
	QualityGrade string   `json:"quality_grade" yaml:"quality_grade"`
	Purpose      string   `json:"purpose" yaml:"purpose"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
}

// AnalysisResult is the bill of materials in the shape the model is asked to produce.
type AnalysisResult struct {
	ProductAnalysis    ProductAnalysis `json:"product_analysis" yaml:"product_analysis"`
	Materials          []MaterialSpec  `json:"raw_materials" yaml:"raw_materials"`
	EstimatedCostRange string          `json:"estimated_cost_range" yaml:"estimated_cost_range"`
	ManufacturingNotes string          `json:"manufacturing_notes" yaml:"manufacturing_notes"`
}

// ExtractionStatus records how a result was obtained from the model output.
type ExtractionStatus string

const (
	StatusParsed            ExtractionStatus = "parsed"
	StatusFallbackNoJSON    ExtractionStatus = "fallback_no_json"
	StatusFallbackMalformed ExtractionStatus = "fallback_malformed"
	StatusFallbackSchema    ExtractionStatus = "fallback_schema"
)

// IsFallback reports whether the status denotes a placeholder result.
func (s ExtractionStatus) IsFallback() bool {
	return s != StatusParsed
}

// Analysis wraps one result with the metadata of the request that produced it.
// A new Analysis is built for every request and belongs to the caller.
type Analysis struct {
	ID          string           `json:"id" yaml:"id"`
	ProductName string           `json:"product_name" yaml:"product_name"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Status      ExtractionStatus `json:"status" yaml:"status"`
	Result      AnalysisResult   `json:"result" yaml:"result"`
}

// Degraded reports whether the result is the placeholder record.
func (a *Analysis) Degraded() bool {
	return a.Status.IsFallback()
}

// Supplier is a placeholder supplier recommendation for a material.
type Supplier struct {
	Name         string  `json:"name" yaml:"name"`
	Location     string  `json:"location" yaml:"location"`
	Rating       float64 `json:"rating" yaml:"rating"`
	PriceRange   string  `json:"price_range" yaml:"price_range"`
	Speciality   string  `json:"speciality" yaml:"speciality"`
	Contact      string  `json:"contact" yaml:"contact"`
	Email        string  `json:"email" yaml:"email"`
	MinimumOrder string  `json:"minimum_order" yaml:"minimum_order"`
	LeadTime     string  `json:"lead_time" yaml:"lead_time"`
}
