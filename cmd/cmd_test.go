package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/rawmat/pkg/model"
)

func init() {
	color.NoColor = true
}

const mugJSON = `{"product_analysis":{"product_name":"Ceramic Mug","category":"Kitchenware","manufacturing_complexity":"low"},"raw_materials":[{"material_name":"Stoneware Clay","quantity":"400g","quality_grade":"food-safe","purpose":"body","alternatives":[]}],"estimated_cost_range":"$3-$6","manufacturing_notes":"Fire at cone 6."}`

// fakeGemini answers every generateContent call with text, or with status when it is not 200.
func fakeGemini(t *testing.T, status int, text string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []interface{}{
				map[string]interface{}{
					"content": map[string]interface{}{
						"parts": []interface{}{map[string]interface{}{"text": text}},
					},
				},
			},
		})
	}))
	t.Cleanup(srv.Close)

	t.Setenv("RAWMAT_LLM_PROVIDER", "gemini")
	t.Setenv("RAWMAT_GEMINI_API_KEY", "test-key")
	t.Setenv("RAWMAT_GEMINI_BASE_URL", srv.URL)
	t.Setenv("RAWMAT_LOG_LEVEL", "")
}

func execute(t *testing.T, sub *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	root := &cobra.Command{Use: "rawmat", SilenceUsage: true, SilenceErrors: true}
	BindGlobalFlags(root.PersistentFlags())
	root.AddCommand(sub)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyzeCmd_JSON(t *testing.T) {
	fakeGemini(t, http.StatusOK, "```json\n"+mugJSON+"\n```")

	stdout, stderr, err := execute(t, NewAnalyzeCmd(), "analyze", "Ceramic Mug", "-o", "json")
	require.NoError(t, err)

	var analysis model.Analysis
	require.NoError(t, json.Unmarshal([]byte(stdout), &analysis))
	assert.Equal(t, model.StatusParsed, analysis.Status)
	assert.Equal(t, "Stoneware Clay", analysis.Result.Materials[0].Name)
	assert.Contains(t, stderr, "Analysis complete")
}

func TestAnalyzeCmd_ExportDir(t *testing.T) {
	fakeGemini(t, http.StatusOK, mugJSON)
	dir := t.TempDir()

	stdout, stderr, err := execute(t, NewAnalyzeCmd(), "analyze", "Ceramic Mug", "-d", "blue glaze", "--export-dir", dir)
	require.NoError(t, err)

	assert.Contains(t, stdout, "RAW MATERIALS")
	assert.Contains(t, stderr, "Description: blue glaze")
	for _, name := range []string{"ceramic_mug_analysis.json", "ceramic_mug_report.txt"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestAnalyzeCmd_Errors(t *testing.T) {
	t.Run("upstream failure", func(t *testing.T) {
		fakeGemini(t, http.StatusInternalServerError, "")

		_, _, err := execute(t, NewAnalyzeCmd(), "analyze", "Ceramic Mug")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "request_failed")
	})

	t.Run("unknown output format", func(t *testing.T) {
		fakeGemini(t, http.StatusOK, mugJSON)

		_, _, err := execute(t, NewAnalyzeCmd(), "analyze", "Ceramic Mug", "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported output format")
	})

	t.Run("blank product", func(t *testing.T) {
		fakeGemini(t, http.StatusOK, mugJSON)

		_, _, err := execute(t, NewAnalyzeCmd(), "analyze", "  ")
		assert.ErrorIs(t, err, model.ErrInvalidRequest)
	})
}

func TestProbeCmd(t *testing.T) {
	t.Run("working", func(t *testing.T) {
		fakeGemini(t, http.StatusOK, "API Working")

		stdout, _, err := execute(t, NewProbeCmd(), "probe")
		require.NoError(t, err)
		assert.Contains(t, stdout, "API connection working (gemini/gemini-2.0-flash)")
	})

	t.Run("failing", func(t *testing.T) {
		fakeGemini(t, http.StatusUnauthorized, "")

		stdout, _, err := execute(t, NewProbeCmd(), "probe")
		assert.ErrorIs(t, err, errProbeFailed)
		assert.Contains(t, stdout, "request_failed")
	})
}
