package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/rawmat/pkg/model"
	"github.com/helmcode/rawmat/pkg/suppliers"
)

// DisplayResults formats and writes the analysis in the requested format
func DisplayResults(w io.Writer, analysis *model.Analysis, format string) error {
	switch format {
	case "json":
		return displayJSON(w, analysis)
	case "yaml":
		return displayYAML(w, analysis)
	case "report":
		_, err := io.WriteString(w, ExportReport(analysis))
		return err
	case "human", "":
		displayHuman(w, analysis)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s (supported: human, json, yaml, report)", format)
	}
}

func displayJSON(w io.Writer, analysis *model.Analysis) error {
	output, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, analysis *model.Analysis) error {
	output, err := yaml.Marshal(analysis)
	if err != nil {
		return err
	}
	fmt.Fprint(w, string(output))
	return nil
}

func displayHuman(w io.Writer, analysis *model.Analysis) {
	r := analysis.Result

	// Colors
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Fprintln(w)

	if analysis.Degraded() {
		yellow.Fprintf(w, "⚠️  PLACEHOLDER RESULT (%s): the model output could not be used.\n\n", analysis.Status)
	}

	cyan.Fprintf(w, "📦 PRODUCT ANALYSIS: %s\n", analysis.ProductName)
	fmt.Fprintf(w, "   Category: %s\n", r.ProductAnalysis.Category)
	complexity := r.ProductAnalysis.ManufacturingComplexity
	fmt.Fprintf(w, "   Manufacturing Complexity: %s\n", getComplexityColor(complexity).Sprint(titleCase(string(complexity))))
	fmt.Fprintf(w, "   Estimated Cost Range: %s\n\n", r.EstimatedCostRange)

	if r.ManufacturingNotes != "" {
		white.Fprintln(w, "📝 MANUFACTURING NOTES:")
		fmt.Fprintln(w, wrapText(r.ManufacturingNotes, 80, "   "))
		fmt.Fprintln(w)
	}

	cyan.Fprintln(w, "🧱 RAW MATERIALS:")
	for i, material := range r.Materials {
		fmt.Fprintf(w, "   %d. %s %s\n", i+1, getPriorityIcon(i), material.Name)
		fmt.Fprintf(w, "      Quantity: %s\n", material.Quantity)
		fmt.Fprintf(w, "      Quality Grade: %s\n", material.QualityGrade)
		fmt.Fprintf(w, "      Purpose: %s\n", material.Purpose)
		if len(material.Alternatives) > 0 {
			fmt.Fprintf(w, "      Alternatives: %s\n", color.YellowString(strings.Join(material.Alternatives, ", ")))
		}

		var names []string
		for _, s := range suppliers.ForMaterial(material.Name) {
			names = append(names, fmt.Sprintf("%s (%s, %.1f/5.0)", s.Name, s.Location, s.Rating))
		}
		fmt.Fprintf(w, "      Suppliers: %s\n", strings.Join(names, "; "))
		fmt.Fprintln(w)
	}

	// Footer
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json, -o yaml or -o report for machine-readable output"))
}

func getComplexityColor(c model.Complexity) *color.Color {
	switch c {
	case model.ComplexityHigh:
		return color.New(color.FgRed)
	case model.ComplexityMedium:
		return color.New(color.FgYellow)
	case model.ComplexityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

// The first two materials are the primary ones.
func getPriorityIcon(index int) string {
	if index < 2 {
		return "⚡"
	}
	return "🔹"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if currentLine != indent && len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
