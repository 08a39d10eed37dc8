package formatter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/rawmat/pkg/model"
	"github.com/helmcode/rawmat/pkg/parser"
)

func init() {
	color.NoColor = true
}

func TestDisplayResults_Human(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, sampleAnalysis(), "human"))

	out := buf.String()
	assert.Contains(t, out, "PRODUCT ANALYSIS: Ceramic Mug")
	assert.Contains(t, out, "Category: Kitchenware")
	assert.Contains(t, out, "Manufacturing Complexity: Low")
	assert.Contains(t, out, "1. ⚡ Clay")
	assert.Contains(t, out, "Alternatives: Porcelain, Stoneware")
	assert.Contains(t, out, "Global Clay Industries (Mumbai, Maharashtra, India, 4.5/5.0)")
	assert.NotContains(t, out, "PLACEHOLDER")
}

func TestDisplayResults_HumanDegraded(t *testing.T) {
	analysis := sampleAnalysis()
	analysis.Status = model.StatusFallbackSchema
	analysis.Result = parser.Fallback(analysis.ProductName)

	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, analysis, ""))

	assert.Contains(t, buf.String(), "PLACEHOLDER RESULT (fallback_schema)")
	assert.Contains(t, buf.String(), "Manufacturing Complexity: Medium")
}

func TestDisplayResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, sampleAnalysis(), "json"))

	var decoded model.Analysis
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleAnalysis(), decoded)
}

func TestDisplayResults_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, sampleAnalysis(), "yaml"))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Ceramic Mug", decoded["product_name"])
	assert.Equal(t, "parsed", decoded["status"])

	result := decoded["result"].(map[string]interface{})
	materials := result["raw_materials"].([]interface{})
	assert.Len(t, materials, 2)
}

func TestDisplayResults_Report(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayResults(&buf, sampleAnalysis(), "report"))
	assert.Equal(t, ExportReport(sampleAnalysis()), buf.String())
}

func TestDisplayResults_UnknownFormat(t *testing.T) {
	err := DisplayResults(&bytes.Buffer{}, sampleAnalysis(), "xml")
	assert.Error(t, err)
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 12, "  ")
	assert.Equal(t, "  one two\n  three four", got)

	got = wrapText("averyveryverylongword", 5, "  ")
	assert.Equal(t, "  averyveryverylongword", got)
}
