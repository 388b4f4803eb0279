package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/riskcheck/internal/clipboard"
	"github.com/f3rmion/riskcheck/internal/precaution"
	"github.com/f3rmion/riskcheck/internal/predict"
	"github.com/f3rmion/riskcheck/internal/tui/views"
)

// AppModel is the top-level TUI model
type AppModel struct {
	// Layout state
	width  int
	height int
	ready  bool

	endpoint string

	analyzerView views.AnalyzerModel

	// Help overlay
	showHelp bool
}

// Options configures the application.
type Options struct {
	Predictor predict.Predictor
	Table     *precaution.Table
	Clipboard clipboard.Writer
	Endpoint  string
}

// NewApp creates a new TUI application
func NewApp(opts Options) AppModel {
	return AppModel{
		endpoint:     opts.Endpoint,
		analyzerView: views.NewAnalyzerModel(opts.Predictor, opts.Table, opts.Clipboard),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return m.analyzerView.Init()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		m.analyzerView.SetSize(m.width-4, m.height-2)
		return m, nil
	}

	var cmd tea.Cmd
	m.analyzerView, cmd = m.analyzerView.Update(msg)
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	content := m.analyzerView.View()
	if m.endpoint != "" {
		content += "\n" + EndpointStyle.Render("→ "+m.endpoint)
	}

	return ContentStyle.
		Width(m.width - 4).
		Render(content)
}

// Analyzer returns the analyzer view.
func (m AppModel) Analyzer() views.AnalyzerModel {
	return m.analyzerView
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := HelpTitleStyle.Render("riskcheck - Mental Health Risk Detection") + "\n\n"

	helpText += HelpSectionStyle.Render("Form") + "\n"
	helpText += HelpKeyStyle.Render("ctrl+s") + HelpDescStyle.Render("Analyze text") + "\n"
	helpText += HelpKeyStyle.Render("alt+enter") + HelpDescStyle.Render("Analyze text") + "\n"
	helpText += HelpKeyStyle.Render("ctrl+l") + HelpDescStyle.Render("Clear form") + "\n"

	helpText += HelpSectionStyle.Render("Result") + "\n"
	helpText += HelpKeyStyle.Render("tab") + HelpDescStyle.Render("Show/hide precautions") + "\n"
	helpText += HelpKeyStyle.Render("ctrl+y") + HelpDescStyle.Render("Copy result") + "\n"

	helpText += HelpSectionStyle.Render("Global") + "\n"
	helpText += HelpKeyStyle.Render("f1") + HelpDescStyle.Render("Show this help") + "\n"
	helpText += HelpKeyStyle.Render("esc") + HelpDescStyle.Render("Quit") + "\n"

	helpText += "\n" + HelpFooterStyle.Render("Press any key to close")

	helpBox := HelpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
