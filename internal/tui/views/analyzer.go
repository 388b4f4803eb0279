// Package views provides the individual views for the TUI.
package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/riskcheck/internal/analyzer"
	"github.com/f3rmion/riskcheck/internal/clipboard"
	"github.com/f3rmion/riskcheck/internal/precaution"
	"github.com/f3rmion/riskcheck/internal/predict"
	"github.com/mattn/go-runewidth"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6c63ff")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	tipStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee")).
			Background(lipgloss.Color("#6c63ff")).
			Padding(0, 2)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#888888")).
				Background(lipgloss.Color("#2d3436")).
				Padding(0, 2)

	buttonOutlineStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a8dadc")).
				Border(lipgloss.NormalBorder(), false, true).
				BorderForeground(lipgloss.Color("#3d5a80")).
				Padding(0, 1)

	errorBoxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#ff6b6b")).
			Padding(0, 2).
			Margin(1, 0, 0, 0)

	resultBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#a8e6cf")).
			Padding(1, 2).
			Margin(1, 0, 0, 0)

	panelBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(1, 2).
			Margin(1, 0, 0, 0)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// PredictionMsg carries the outcome of a submission back into Update.
type PredictionMsg struct {
	Response analyzer.Response
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// AnalyzerModel is the text analysis form.
type AnalyzerModel struct {
	input   textarea.Model
	spinner spinner.Model

	state     analyzer.State
	predictor predict.Predictor
	table     *precaution.Table
	clip      clipboard.Writer

	copied  bool
	copyErr error

	width  int
	height int
}

// NewAnalyzerModel creates the analyzer form.
func NewAnalyzerModel(p predict.Predictor, tbl *precaution.Table, clip clipboard.Writer) AnalyzerModel {
	ta := textarea.New()
	ta.Placeholder = "Type something to analyze..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 5000
	ta.SetWidth(60)
	ta.SetHeight(5)
	ta.Focus()

	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(loadingStyle),
	)

	if tbl == nil {
		tbl = precaution.Default()
	}

	return AnalyzerModel{
		input:     ta,
		spinner:   sp,
		state:     analyzer.New(),
		predictor: p,
		table:     tbl,
		clip:      clip,
	}
}

// SetSize updates the view dimensions.
func (m *AnalyzerModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	w := width - 4
	if w < 20 {
		w = 20
	}
	m.input.SetWidth(w)
}

// SetText replaces the input text.
func (m *AnalyzerModel) SetText(text string) {
	m.input.SetValue(text)
	m.state = m.state.Edit(m.input.Value())
}

// State returns the current form state.
func (m AnalyzerModel) State() analyzer.State {
	return m.state
}

// Init starts the cursor blinking.
func (m AnalyzerModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages.
func (m AnalyzerModel) Update(msg tea.Msg) (AnalyzerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s", "alt+enter":
			return m.submit()
		case "ctrl+l":
			m.state = m.state.Clear()
			m.input.Reset()
			m.copied = false
			m.copyErr = nil
			return m, nil
		case "tab":
			if m.state.Phase == analyzer.PhaseSuccess {
				m.state = m.state.TogglePrecautions()
			}
			return m, nil
		case "ctrl+y":
			return m.copy()
		}

	case PredictionMsg:
		m.state = m.state.Receive(msg.Response)
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state = m.state.Edit(m.input.Value())

	return m, cmd
}

func (m AnalyzerModel) submit() (AnalyzerModel, tea.Cmd) {
	next, req, ok := m.state.Submit()
	if !ok {
		return m, nil
	}
	m.state = next
	m.copied = false
	m.copyErr = nil

	return m, tea.Batch(m.predict(req), m.spinner.Tick)
}

func (m AnalyzerModel) predict(req analyzer.Request) tea.Cmd {
	p := m.predictor
	return func() tea.Msg {
		if p == nil {
			return PredictionMsg{Response: analyzer.Response{
				Seq: req.Seq,
				Err: fmt.Errorf("no prediction endpoint configured"),
			}}
		}
		pred, err := p.Predict(context.Background(), req.Text)
		return PredictionMsg{Response: analyzer.Response{Seq: req.Seq, Prediction: pred, Err: err}}
	}
}

func (m AnalyzerModel) copy() (AnalyzerModel, tea.Cmd) {
	if m.state.Phase != analyzer.PhaseSuccess || m.clip == nil {
		return m, nil
	}
	if err := clipboard.CopyPrediction(m.clip, *m.state.Result); err != nil {
		m.copyErr = err
		return m, nil
	}
	m.copied = true
	m.copyErr = nil
	return m, clearCopiedAfter(2 * time.Second)
}

// View renders the analyzer form.
func (m AnalyzerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Mental Health Risk Detection"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderButtons())
	b.WriteString("\n")

	switch m.state.Phase {
	case analyzer.PhaseError:
		b.WriteString(errorBoxStyle.Render(m.wrap("Error: " + m.state.Err)))
		b.WriteString("\n")
	case analyzer.PhaseSuccess:
		b.WriteString(m.renderResult(*m.state.Result))
		b.WriteString("\n")
		if panel, ok := m.state.Precautions(m.table); ok {
			b.WriteString(m.renderPanel(panel))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m AnalyzerModel) renderButtons() string {
	var analyze string
	if m.state.Loading() {
		analyze = buttonDisabledStyle.Render(m.spinner.View() + " Analyzing...")
	} else {
		analyze = buttonStyle.Render("Analyze")
	}
	clearBtn := buttonOutlineStyle.Render("Clear")

	return lipgloss.JoinHorizontal(lipgloss.Center, analyze, "  ", clearBtn)
}

func (m AnalyzerModel) renderResult(p predict.Prediction) string {
	var lines []string

	lines = append(lines, subtitleStyle.Render("Prediction"), "")
	lines = append(lines, m.renderRow("Label", p.Label))
	lines = append(lines, m.renderRow("Confidence", analyzer.FormatConfidence(p.Confidence)))
	lines = append(lines, m.renderRow("Sentiment", p.Sentiment))
	lines = append(lines, "")

	toggle := "tab: Show Precautions"
	if m.state.ShowPrecautions {
		toggle = "tab: Hide Precautions"
	}
	footer := helpStyle.Render(toggle)
	if m.copied {
		footer += "  " + copiedStyle.Render("Copied!")
	} else if m.copyErr != nil {
		footer += "  " + helpStyle.Render("(clipboard unavailable)")
	}
	lines = append(lines, footer)

	return resultBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m AnalyzerModel) renderPanel(p analyzer.Panel) string {
	var lines []string

	lines = append(lines, subtitleStyle.Render("Precautions for "+p.Label), "")
	for _, tip := range p.Tips {
		lines = append(lines, tipStyle.Render("• "+tip))
	}

	lines = append(lines, "", subtitleStyle.Render("Universal Tips"))
	for _, tip := range p.Universal {
		lines = append(lines, tipStyle.Render("• "+tip))
	}

	if p.Note != "" {
		lines = append(lines, "", noteStyle.Render(m.wrap(p.Note)))
	}

	return panelBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m AnalyzerModel) renderRow(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value)
}

func (m AnalyzerModel) renderHelp() string {
	parts := []string{"ctrl+s: analyze", "ctrl+l: clear"}
	if m.state.Phase == analyzer.PhaseSuccess {
		parts = append(parts, "tab: precautions")
		if m.clip != nil {
			parts = append(parts, "ctrl+y: copy")
		}
	}
	parts = append(parts, "f1: help", "esc: quit")
	return helpStyle.Render(strings.Join(parts, " · "))
}

func (m AnalyzerModel) wrap(s string) string {
	width := 70
	if m.width > 0 && m.width-10 < width {
		width = m.width - 10
	}
	return wordWrap(s, width)
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}
