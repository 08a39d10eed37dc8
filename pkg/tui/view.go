package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/helmcode/rawmat/pkg/model"
	"github.com/helmcode/rawmat/pkg/suppliers"
)

func (a *App) header() string {
	var b strings.Builder
	b.WriteString(styleTitle.Render("Raw Materials Analyzer"))
	b.WriteString("  ")
	b.WriteString(styleSubtitle.Render(fmt.Sprintf("%s / %s", a.analyzer.Provider(), a.analyzer.Model())))
	switch {
	case a.connected == nil:
		b.WriteString(styleSubtitle.Render("  not checked"))
	case *a.connected:
		b.WriteString(styleSuccess.Render("  connected"))
	default:
		b.WriteString(styleError.Render("  not connected"))
	}
	return b.String()
}

func (a *App) renderNotice() string {
	switch a.notice.level {
	case noticeSuccess:
		return styleSuccess.Render(a.notice.text)
	case noticeError:
		return styleError.Render(a.notice.text)
	default:
		return styleWarning.Render(a.notice.text)
	}
}

func (a *App) renderForm() string {
	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n\n")

	b.WriteString(styleLabel.Render("Product name"))
	b.WriteString("\n")
	b.WriteString(a.name.View())
	b.WriteString("\n\n")
	b.WriteString(styleLabel.Render("Description"))
	b.WriteString("\n")
	b.WriteString(a.description.View())
	b.WriteString("\n\n")

	if a.notice.text != "" {
		b.WriteString(a.renderNotice())
		b.WriteString("\n")
	}

	help := "enter/ctrl+s analyze  tab next field  ctrl+t test connection  esc quit"
	if a.request().ProductName == "" {
		help = "type a product name  tab next field  ctrl+t test connection  esc quit"
	}
	b.WriteString(styleStatusBar.Render(help))
	return b.String()
}

func (a *App) renderLoading() string {
	return fmt.Sprintf("%s\n\n%s Analyzing %s...\n",
		a.header(), a.spinner.View(), styleLabel.Render(a.request().ProductName))
}

func (a *App) renderResult() string {
	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n")
	b.WriteString(styleBox.Render(a.result.View()))
	b.WriteString("\n")
	if a.notice.text != "" {
		b.WriteString(a.renderNotice())
		b.WriteString("\n")
	}
	b.WriteString(styleStatusBar.Render("j export json  r export report  n new analysis  p test connection  q quit"))
	return b.String()
}

// renderAnalysis lays out an analysis for the result viewport.
func renderAnalysis(analysis *model.Analysis, width int) string {
	r := analysis.Result
	wrap := lipgloss.NewStyle().Width(max(20, width-4))

	var b strings.Builder
	b.WriteString(styleTitle.Render(r.ProductAnalysis.ProductName))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", styleLabel.Render("Category:"), r.ProductAnalysis.Category)
	complexity := string(r.ProductAnalysis.ManufacturingComplexity)
	fmt.Fprintf(&b, "%s %s\n", styleLabel.Render("Complexity:"), complexityStyle(complexity).Render(strings.ToUpper(complexity)))
	fmt.Fprintf(&b, "%s %s\n", styleLabel.Render("Estimated cost:"), r.EstimatedCostRange)
	if analysis.Degraded() {
		b.WriteString(styleWarning.Render("Placeholder result: " + string(analysis.Status)))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s\n", styleLabel.Render(fmt.Sprintf("Raw materials (%d)", len(r.Materials))))
	for i, m := range r.Materials {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, lipgloss.NewStyle().Bold(true).Render(m.Name))
		fmt.Fprintf(&b, "   Quantity: %s  Grade: %s\n", m.Quantity, m.QualityGrade)
		b.WriteString(wrap.Render("   Purpose: " + m.Purpose))
		b.WriteString("\n")
		if len(m.Alternatives) > 0 {
			b.WriteString(styleSubtitle.Render("   Alternatives: " + strings.Join(m.Alternatives, ", ")))
			b.WriteString("\n")
		}
		for _, s := range suppliers.ForMaterial(m.Name) {
			fmt.Fprintf(&b, "   - %s (%s, %.1f) %s\n", s.Name, s.Location, s.Rating, s.PriceRange)
		}
	}

	if r.ManufacturingNotes != "" {
		fmt.Fprintf(&b, "\n%s\n", styleLabel.Render("Manufacturing notes"))
		b.WriteString(wrap.Render(r.ManufacturingNotes))
		b.WriteString("\n")
	}
	return b.String()
}
