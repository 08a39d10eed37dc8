package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/helmcode/rawmat/pkg/analyzer"
	"github.com/helmcode/rawmat/pkg/formatter"
	"github.com/helmcode/rawmat/pkg/llm"
	"github.com/helmcode/rawmat/pkg/model"
)

type view int

const (
	viewForm view = iota
	viewLoading
	viewResult
)

const (
	focusName = iota
	focusDescription
)

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeSuccess
	noticeError
)

type notice struct {
	level noticeLevel
	text  string
}

// App is the interactive analysis form.
type App struct {
	ctx       context.Context
	analyzer  *analyzer.Analyzer
	exportDir string

	width  int
	height int
	view   view
	focus  int

	name        textinput.Model
	description textarea.Model
	spinner     spinner.Model
	result      viewport.Model

	analysis  *model.Analysis
	connected *bool
	notice    notice
	quitting  bool
}

// NewApp builds the form. Exports are written into exportDir.
func NewApp(ctx context.Context, a *analyzer.Analyzer, exportDir string) *App {
	name := textinput.New()
	name.Placeholder = "e.g. Ceramic Coffee Mug"
	name.CharLimit = 200
	name.Width = 50
	name.Focus()

	desc := textarea.New()
	desc.Placeholder = "Optional: size, use, finish..."
	desc.CharLimit = 1000
	desc.SetWidth(50)
	desc.SetHeight(4)
	desc.ShowLineNumbers = false

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styleLabel

	return &App{
		ctx:         ctx,
		analyzer:    a,
		exportDir:   exportDir,
		width:       80,
		height:      24,
		name:        name,
		description: desc,
		spinner:     s,
		result:      viewport.New(76, 14),
	}
}

func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

type analysisDoneMsg struct {
	analysis *model.Analysis
	err      error
}

type probeDoneMsg struct{ err error }

type exportDoneMsg struct {
	path string
	err  error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd, handled := a.handleKey(msg); handled {
			return a, cmd
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.result.Width = max(20, msg.Width-4)
		a.result.Height = max(5, msg.Height-10)
		if a.analysis != nil {
			a.result.SetContent(renderAnalysis(a.analysis, a.result.Width))
		}
		return a, nil

	case spinner.TickMsg:
		if a.view != viewLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case analysisDoneMsg:
		if msg.err != nil {
			a.view = viewForm
			a.notice = notice{noticeError, fmt.Sprintf("Analysis failed (%s). Please try again.", llm.Classify(msg.err))}
			return a, textinput.Blink
		}
		a.analysis = msg.analysis
		a.view = viewResult
		a.result.SetContent(renderAnalysis(msg.analysis, a.result.Width))
		a.result.GotoTop()
		if msg.analysis.Degraded() {
			a.notice = notice{noticeInfo, "The model reply could not be parsed; showing a generic placeholder."}
		} else {
			a.notice = notice{noticeSuccess, "Analysis complete."}
		}
		return a, nil

	case probeDoneMsg:
		ok := msg.err == nil
		a.connected = &ok
		if ok {
			a.notice = notice{noticeSuccess, "API connection is working."}
		} else {
			a.notice = notice{noticeError, fmt.Sprintf("API connection failed (%s).", llm.Classify(msg.err))}
		}
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.notice = notice{noticeError, "Export failed: " + msg.err.Error()}
		} else {
			a.notice = notice{noticeSuccess, "Saved " + msg.path}
		}
		return a, nil
	}

	return a, a.updateInputs(msg)
}

// handleKey reports whether the key was consumed by a binding.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit, true
	}

	switch a.view {
	case viewForm:
		switch {
		case msg.Type == tea.KeyEsc:
			a.quitting = true
			return tea.Quit, true
		case key.Matches(msg, keys.Submit):
			return a.submit(), true
		case key.Matches(msg, keys.Enter) && a.focus == focusName:
			return a.submit(), true
		case key.Matches(msg, keys.Tab):
			return a.toggleFocus(), true
		case key.Matches(msg, keys.FormProbe):
			return a.startProbe(), true
		}
		return nil, false

	case viewLoading:
		return nil, true

	case viewResult:
		switch {
		case key.Matches(msg, keys.Close):
			a.quitting = true
			return tea.Quit, true
		case key.Matches(msg, keys.ExportJSON):
			return a.exportCmd(formatter.KindJSON), true
		case key.Matches(msg, keys.Report):
			return a.exportCmd(formatter.KindReport), true
		case key.Matches(msg, keys.New):
			a.reset()
			return textinput.Blink, true
		case key.Matches(msg, keys.Probe), key.Matches(msg, keys.FormProbe):
			return a.startProbe(), true
		}
	}
	return nil, false
}

func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.view {
	case viewForm:
		if a.focus == focusName {
			a.name, cmd = a.name.Update(msg)
		} else {
			a.description, cmd = a.description.Update(msg)
		}
	case viewResult:
		a.result, cmd = a.result.Update(msg)
	}
	return cmd
}

func (a *App) toggleFocus() tea.Cmd {
	if a.focus == focusName {
		a.focus = focusDescription
		a.name.Blur()
		return a.description.Focus()
	}
	a.focus = focusName
	a.description.Blur()
	return a.name.Focus()
}

func (a *App) request() model.AnalysisRequest {
	return model.AnalysisRequest{
		ProductName:        strings.TrimSpace(a.name.Value()),
		ProductDescription: strings.TrimSpace(a.description.Value()),
	}
}

// submit starts an analysis; it does nothing while the name is blank.
func (a *App) submit() tea.Cmd {
	req := a.request()
	if err := req.Validate(); err != nil {
		a.notice = notice{noticeError, "Product name is required."}
		return nil
	}

	a.view = viewLoading
	a.notice = notice{}
	return tea.Batch(a.spinner.Tick, a.analyzeCmd(req))
}

func (a *App) analyzeCmd(req model.AnalysisRequest) tea.Cmd {
	return func() tea.Msg {
		analysis, err := a.analyzer.Analyze(a.ctx, req)
		return analysisDoneMsg{analysis: analysis, err: err}
	}
}

func (a *App) startProbe() tea.Cmd {
	a.notice = notice{noticeInfo, "Testing API connection..."}
	return a.probeCmd()
}

func (a *App) probeCmd() tea.Cmd {
	return func() tea.Msg {
		return probeDoneMsg{err: a.analyzer.ProbeErr(a.ctx)}
	}
}

func (a *App) exportCmd(kind string) tea.Cmd {
	analysis := a.analysis
	dir := a.exportDir
	return func() tea.Msg {
		path, err := formatter.WriteExport(dir, analysis, kind)
		return exportDoneMsg{path: path, err: err}
	}
}

// reset clears the form and drops the current result.
func (a *App) reset() {
	a.analysis = nil
	a.view = viewForm
	a.notice = notice{}
	a.name.Reset()
	a.description.Reset()
	a.focus = focusName
	a.description.Blur()
	a.name.Focus()
	a.result.SetContent("")
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewLoading:
		return a.renderLoading()
	case viewResult:
		return a.renderResult()
	default:
		return a.renderForm()
	}
}
