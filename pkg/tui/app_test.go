package tui

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/rawmat/pkg/analyzer"
	"github.com/helmcode/rawmat/pkg/llm"
	"github.com/helmcode/rawmat/pkg/model"
)

type fakeLLM struct {
	reply string
	err   error
	calls int
}

func (f *fakeLLM) Chat(context.Context, string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func (f *fakeLLM) Name() string  { return "fake" }
func (f *fakeLLM) Model() string { return "fake-1" }

const mugReply = `{"product_analysis":{"product_name":"Ceramic Mug","category":"Kitchenware","manufacturing_complexity":"low"},"raw_materials":[{"material_name":"Stoneware Clay","quantity":"400g","quality_grade":"food-safe","purpose":"body","alternatives":["porcelain"]}],"estimated_cost_range":"$3-$6","manufacturing_notes":"Glaze and fire at cone 6."}`

func newTestApp(t *testing.T, l llm.LLM) *App {
	t.Helper()
	return NewApp(context.Background(), analyzer.New(l), t.TempDir())
}

func press(a *App, k tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(k)
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// analyze drives the form through a finished analysis.
func analyze(t *testing.T, a *App, name string) {
	t.Helper()
	a.name.SetValue(name)
	require.NotNil(t, press(a, tea.KeyMsg{Type: tea.KeyEnter}))
	require.Equal(t, viewLoading, a.view)

	a.Update(a.analyzeCmd(a.request())())
}

func TestSubmit_BlankNameIsIgnored(t *testing.T) {
	a := newTestApp(t, &fakeLLM{reply: mugReply})

	a.name.SetValue("   ")
	cmd := press(a, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, viewForm, a.view)
	assert.Equal(t, noticeError, a.notice.level)
	assert.Contains(t, a.renderForm(), "type a product name")
}

func TestSubmit_ShowsResult(t *testing.T) {
	a := newTestApp(t, &fakeLLM{reply: mugReply})

	analyze(t, a, "Ceramic Mug")

	require.Equal(t, viewResult, a.view)
	require.NotNil(t, a.analysis)
	assert.Equal(t, model.StatusParsed, a.analysis.Status)
	assert.Equal(t, noticeSuccess, a.notice.level)
	assert.Contains(t, a.View(), "Stoneware Clay")
	assert.Contains(t, a.View(), "Global Stoneware Industries")
}

func TestSubmit_CtrlSFromDescription(t *testing.T) {
	a := newTestApp(t, &fakeLLM{reply: mugReply})
	a.name.SetValue("Ceramic Mug")

	press(a, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, focusDescription, a.focus)

	// enter belongs to the description field
	press(a, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, viewForm, a.view)

	require.NotNil(t, press(a, tea.KeyMsg{Type: tea.KeyCtrlS}))
	assert.Equal(t, viewLoading, a.view)
}

func TestSubmit_DegradedResult(t *testing.T) {
	a := newTestApp(t, &fakeLLM{reply: "I cannot help with that."})

	analyze(t, a, "Widget")

	require.Equal(t, viewResult, a.view)
	assert.True(t, a.analysis.Degraded())
	assert.Equal(t, noticeInfo, a.notice.level)
	assert.Contains(t, a.View(), "Primary Material")
}

func TestSubmit_ClientErrorReturnsToForm(t *testing.T) {
	a := newTestApp(t, &fakeLLM{err: llm.ErrRequestFailed})

	analyze(t, a, "Widget")

	assert.Equal(t, viewForm, a.view)
	assert.Nil(t, a.analysis)
	assert.Equal(t, noticeError, a.notice.level)
	assert.Contains(t, a.notice.text, llm.KindRequestFailed)
	assert.Equal(t, "Widget", a.name.Value())
}

func TestResult_Exports(t *testing.T) {
	a := newTestApp(t, &fakeLLM{reply: mugReply})
	analyze(t, a, "Ceramic Mug")

	tests := []struct {
		key  string
		file string
	}{
		{"j", "ceramic_mug_analysis.json"},
		{"r", "ceramic_mug_report.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			cmd := press(a, runes(tt.key))
			require.NotNil(t, cmd)

			msg, ok := cmd().(exportDoneMsg)
			require.True(t, ok)
			require.NoError(t, msg.err)
			assert.Equal(t, filepath.Join(a.exportDir, tt.file), msg.path)
			_, err := os.Stat(msg.path)
			assert.NoError(t, err)

			a.Update(msg)
			assert.Equal(t, noticeSuccess, a.notice.level)
			assert.Contains(t, a.notice.text, tt.file)
		})
	}
}

func TestResult_NewAnalysisResets(t *testing.T) {
	a := newTestApp(t, &fakeLLM{reply: mugReply})
	analyze(t, a, "Ceramic Mug")
	a.description.SetValue("blue glaze")

	press(a, runes("n"))

	assert.Equal(t, viewForm, a.view)
	assert.Nil(t, a.analysis)
	assert.Empty(t, a.name.Value())
	assert.Empty(t, a.description.Value())
	assert.Equal(t, focusName, a.focus)
}

func TestProbe(t *testing.T) {
	a := newTestApp(t, &fakeLLM{reply: mugReply})
	analyze(t, a, "Ceramic Mug")

	cmd := press(a, runes("p"))
	require.NotNil(t, cmd)
	a.Update(cmd())

	require.NotNil(t, a.connected)
	assert.True(t, *a.connected)
	assert.Equal(t, noticeSuccess, a.notice.level)

	a.Update(probeDoneMsg{err: llm.ErrEmptyResponse})
	assert.False(t, *a.connected)
	assert.Contains(t, a.View(), "not connected")
}

func TestInit_SendsNothingUpstream(t *testing.T) {
	fake := &fakeLLM{reply: "API Working"}
	a := newTestApp(t, fake)

	cmd := a.Init()
	require.NotNil(t, cmd)
	cmd()

	assert.Zero(t, fake.calls)
	assert.Nil(t, a.connected)
	assert.Contains(t, a.View(), "not checked")
}

func TestProbe_FromForm(t *testing.T) {
	fake := &fakeLLM{reply: "API Working"}
	a := newTestApp(t, fake)

	// p is text while the form has focus
	press(a, runes("p"))
	assert.Equal(t, "p", a.name.Value())
	assert.Zero(t, fake.calls)

	cmd := press(a, tea.KeyMsg{Type: tea.KeyCtrlT})
	require.NotNil(t, cmd)
	assert.Equal(t, "p", a.name.Value())
	a.Update(cmd())

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, viewForm, a.view)
	require.NotNil(t, a.connected)
	assert.True(t, *a.connected)
	assert.Equal(t, noticeSuccess, a.notice.level)
	assert.Contains(t, a.View(), "API connection is working.")
}

func TestQuit(t *testing.T) {
	a := newTestApp(t, &fakeLLM{reply: mugReply})

	// q is text while the form has focus
	press(a, runes("q"))
	assert.False(t, a.quitting)
	assert.Equal(t, "q", a.name.Value())

	press(a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, a.quitting)
	assert.Empty(t, a.View())
}
