package clipboard

import (
	"errors"
	"testing"

	"github.com/f3rmion/riskcheck/internal/predict"
	"github.com/stretchr/testify/assert"
)

type fakeWriter struct {
	text string
	err  error
}

func (f *fakeWriter) WriteAll(text string) error {
	f.text = text
	return f.err
}

func TestCopyPrediction(t *testing.T) {
	w := &fakeWriter{}
	err := CopyPrediction(w, predict.Prediction{Label: "Depression", Confidence: 0.912, Sentiment: "Negative"})

	assert.NoError(t, err)
	assert.Equal(t, "Label: Depression\nConfidence: 91.20%\nSentiment: Negative\n", w.text)
}

func TestCopyPredictionError(t *testing.T) {
	w := &fakeWriter{err: errors.New("no xclip")}
	err := CopyPrediction(w, predict.Prediction{})

	assert.ErrorContains(t, err, "no xclip")
}
