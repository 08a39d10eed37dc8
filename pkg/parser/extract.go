package parser

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/helmcode/rawmat/pkg/model"
)

//go:embed analysis_schema.json
var analysisSchemaJSON string

var analysisSchema = jsonschema.MustCompileString("analysis_schema.json", analysisSchemaJSON)

// Extraction is the outcome of reading a model response.
type Extraction struct {
	Result model.AnalysisResult
	Status model.ExtractionStatus
	// Reason explains why the fallback record was used.
	Reason string
}

// Extract recovers an AnalysisResult from raw model output. It never fails:
// when no valid object can be recovered it returns the fallback record and
// a status saying why.
func Extract(raw string, productName string) Extraction {
	text := strings.TrimSpace(raw)

	if !strings.Contains(text, "{") {
		return fallback(productName, model.StatusFallbackNoJSON, "no JSON object found in response")
	}
	candidate, ok := locateObject(text)
	if !ok {
		return fallback(productName, model.StatusFallbackMalformed, "JSON object is never closed")
	}

	var doc interface{}
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return fallback(productName, model.StatusFallbackMalformed, err.Error())
	}
	normalize(doc)

	if err := analysisSchema.Validate(doc); err != nil {
		return fallback(productName, model.StatusFallbackSchema, err.Error())
	}

	normalized, err := json.Marshal(doc)
	if err != nil {
		return fallback(productName, model.StatusFallbackMalformed, err.Error())
	}
	var result model.AnalysisResult
	if err := json.Unmarshal(normalized, &result); err != nil {
		return fallback(productName, model.StatusFallbackSchema, err.Error())
	}
	for i := range result.Materials {
		if result.Materials[i].Alternatives == nil {
			result.Materials[i].Alternatives = []string{}
		}
	}

	return Extraction{Result: result, Status: model.StatusParsed}
}

// locateObject returns the text between the first '{' and the last '}'.
func locateObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// normalize lower-cases the complexity so "Medium" passes the enum.
func normalize(doc interface{}) {
	root, ok := doc.(map[string]interface{})
	if !ok {
		return
	}
	pa, ok := root["product_analysis"].(map[string]interface{})
	if !ok {
		return
	}
	if c, ok := pa["manufacturing_complexity"].(string); ok {
		pa["manufacturing_complexity"] = strings.ToLower(strings.TrimSpace(c))
	}
}

func fallback(productName string, status model.ExtractionStatus, reason string) Extraction {
	log.Warn().
		Str("product", productName).
		Str("status", string(status)).
		Str("reason", reason).
		Msg("model output not usable, using fallback record")

	return Extraction{
		Result: Fallback(productName),
		Status: status,
		Reason: reason,
	}
}

// Fallback is the placeholder record used when the model output cannot be used.
func Fallback(productName string) model.AnalysisResult {
	return model.AnalysisResult{
		ProductAnalysis: model.ProductAnalysis{
			ProductName:             productName,
			Category:                "General Product",
			ManufacturingComplexity: model.ComplexityMedium,
		},
		Materials: []model.MaterialSpec{
			{
				Name:         "Primary Material",
				Quantity:     "To be determined",
				QualityGrade: "Standard grade",
				Purpose:      "Main component",
				Alternatives: []string{"Alternative material 1", "Alternative material 2"},
			},
			{
				Name:         "Secondary Material",
				Quantity:     "To be determined",
				QualityGrade: "Commercial grade",
				Purpose:      "Supporting component",
				Alternatives: []string{"Alternative material 3"},
			},
		},
		EstimatedCostRange: "$100 - $500",
		ManufacturingNotes: fmt.Sprintf("Analysis generated for %s. Please refine requirements based on specific needs.", productName),
	}
}
