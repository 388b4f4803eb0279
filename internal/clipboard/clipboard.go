// Package clipboard copies prediction summaries to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/f3rmion/riskcheck/internal/analyzer"
	"github.com/f3rmion/riskcheck/internal/predict"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type system struct{}

func (system) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// System is the OS clipboard.
var System Writer = system{}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !clipboard.Unsupported
}

// CopyPrediction writes the plain-text summary of p to w.
func CopyPrediction(w Writer, p predict.Prediction) error {
	if err := w.WriteAll(analyzer.Summary(p)); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}
	return nil
}
