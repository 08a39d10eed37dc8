package formatter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/helmcode/rawmat/pkg/model"
	"github.com/helmcode/rawmat/pkg/suppliers"
)

// Export kinds
const (
	KindJSON   = "json"
	KindReport = "report"
)

const reportTimeLayout = "2006-01-02 15:04:05"

// ExportJSON serializes the result in the same shape the model produces.
// Missing alternatives are written as an empty list.
func ExportJSON(result model.AnalysisResult) ([]byte, error) {
	materials := make([]model.MaterialSpec, len(result.Materials))
	for i, m := range result.Materials {
		if m.Alternatives == nil {
			m.Alternatives = []string{}
		}
		materials[i] = m
	}
	result.Materials = materials
	return json.MarshalIndent(result, "", "  ")
}

// ExportReport renders the plain-text report for an analysis.
func ExportReport(analysis *model.Analysis) string {
	r := analysis.Result
	var b strings.Builder

	b.WriteString("RAW MATERIALS ANALYSIS REPORT\n")
	fmt.Fprintf(&b, "Product: %s\n", analysis.ProductName)
	fmt.Fprintf(&b, "Generated: %s\n", analysis.GeneratedAt.Format(reportTimeLayout))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if analysis.Degraded() {
		fmt.Fprintf(&b, "NOTE: placeholder result (%s), the model output could not be used.\n\n", analysis.Status)
	}

	b.WriteString("PRODUCT ANALYSIS:\n")
	fmt.Fprintf(&b, "Category: %s\n", r.ProductAnalysis.Category)
	fmt.Fprintf(&b, "Manufacturing Complexity: %s\n", r.ProductAnalysis.ManufacturingComplexity)
	fmt.Fprintf(&b, "Estimated Cost Range: %s\n\n", r.EstimatedCostRange)

	if r.ManufacturingNotes != "" {
		fmt.Fprintf(&b, "Manufacturing Notes: %s\n\n", r.ManufacturingNotes)
	}

	b.WriteString("RAW MATERIALS REQUIRED:\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")

	for i, material := range r.Materials {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, material.Name)
		fmt.Fprintf(&b, "   Quantity: %s\n", material.Quantity)
		fmt.Fprintf(&b, "   Quality Grade: %s\n", material.QualityGrade)
		fmt.Fprintf(&b, "   Purpose: %s\n", material.Purpose)
		if len(material.Alternatives) > 0 {
			fmt.Fprintf(&b, "   Alternatives: %s\n", strings.Join(material.Alternatives, ", "))
		}

		b.WriteString("\n   RECOMMENDED SUPPLIERS:\n")
		for j, s := range suppliers.ForMaterial(material.Name) {
			fmt.Fprintf(&b, "   %d. %s\n", j+1, s.Name)
			fmt.Fprintf(&b, "      Location: %s\n", s.Location)
			fmt.Fprintf(&b, "      Rating: %.1f/5.0\n", s.Rating)
			fmt.Fprintf(&b, "      Contact: %s\n", s.Contact)
			fmt.Fprintf(&b, "      Min Order: %s\n", s.MinimumOrder)
			fmt.Fprintf(&b, "      Lead Time: %s\n", s.LeadTime)
		}
	}

	b.WriteString("\n" + strings.Repeat("=", 60) + "\n")
	b.WriteString("Report generated by rawmat\n")
	return b.String()
}

// ExportFileName derives the download file name for a product.
func ExportFileName(productName, kind string) string {
	base := strings.ToLower(strings.TrimSpace(productName))
	base = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\':
			return '_'
		}
		return r
	}, base)
	if base == "" {
		base = "product"
	}

	if kind == KindJSON {
		return base + "_analysis.json"
	}
	return base + "_report.txt"
}

// WriteExport writes one export of the given kind into dir and returns its path.
func WriteExport(dir string, analysis *model.Analysis, kind string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	var data []byte
	if kind == KindJSON {
		var err error
		if data, err = ExportJSON(analysis.Result); err != nil {
			return "", fmt.Errorf("encode analysis: %w", err)
		}
	} else {
		data = []byte(ExportReport(analysis))
	}

	path := filepath.Join(dir, ExportFileName(analysis.ProductName, kind))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// WriteExports writes the JSON and report files for an analysis into dir
// and returns their paths.
func WriteExports(dir string, analysis *model.Analysis) ([]string, error) {
	paths := make([]string, 0, 2)
	for _, kind := range []string{KindJSON, KindReport} {
		path, err := WriteExport(dir, analysis, kind)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
