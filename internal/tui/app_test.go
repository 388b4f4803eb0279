package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/riskcheck/internal/precaution"
	"github.com/f3rmion/riskcheck/internal/predict"
	"github.com/stretchr/testify/assert"
)

type stubPredictor struct{}

func (stubPredictor) Predict(ctx context.Context, text string) (predict.Prediction, error) {
	return predict.Prediction{Label: "Anxiety", Confidence: 0.87, Sentiment: "negative"}, nil
}

func newApp() AppModel {
	m := NewApp(Options{
		Predictor: stubPredictor{},
		Table:     precaution.Default(),
		Endpoint:  "http://localhost:5000/api/predict",
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(AppModel)
}

func TestViewBeforeSize(t *testing.T) {
	m := NewApp(Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestViewShowsFormAndEndpoint(t *testing.T) {
	view := newApp().View()
	assert.Contains(t, view, "Mental Health Risk Detection")
	assert.Contains(t, view, "Analyze")
	assert.Contains(t, view, "http://localhost:5000/api/predict")
}

func TestHelpOverlay(t *testing.T) {
	m := newApp()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = next.(AppModel)
	assert.Contains(t, m.View(), "Press any key to close")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = next.(AppModel)
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "Press any key to close")
	assert.Empty(t, m.Analyzer().State().Text, "closing key is not typed")
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyCtrlC}, {Type: tea.KeyEsc}} {
		_, cmd := newApp().Update(key)
		if assert.NotNil(t, cmd, key.String()) {
			assert.Equal(t, tea.Quit(), cmd())
		}
	}
}

func TestKeysReachAnalyzer(t *testing.T) {
	m := newApp()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello")})
	m = next.(AppModel)
	assert.Equal(t, "hello", m.Analyzer().State().Text)
}
