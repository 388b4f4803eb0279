package analyzer

import (
	"fmt"
	"io"
	"strings"

	"github.com/f3rmion/riskcheck/internal/precaution"
	"github.com/f3rmion/riskcheck/internal/predict"
)

// FormatConfidence renders a 0..1 score as a percentage with two decimals.
func FormatConfidence(c float64) string {
	return fmt.Sprintf("%.2f%%", c*100)
}

// Panel is the precaution panel for one label.
type Panel struct {
	Label     string
	Tips      []string
	Universal []string
	Note      string
}

// Precautions returns the panel to display, or ok=false when it is hidden.
// An unknown label gives a panel with no specific tips.
func (s State) Precautions(tbl *precaution.Table) (Panel, bool) {
	if s.Phase != PhaseSuccess || !s.ShowPrecautions || s.Result == nil || tbl == nil {
		return Panel{}, false
	}
	return Panel{
		Label:     s.Result.Label,
		Tips:      tbl.Lookup(s.Result.Label),
		Universal: tbl.Universal(),
		Note:      tbl.Note(),
	}, true
}

// Summary is the plain-text form of a prediction.
func Summary(p predict.Prediction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Label: %s\n", p.Label)
	fmt.Fprintf(&b, "Confidence: %s\n", FormatConfidence(p.Confidence))
	fmt.Fprintf(&b, "Sentiment: %s\n", p.Sentiment)
	return b.String()
}

// WritePanel writes a precaution panel as plain text.
func WritePanel(w io.Writer, p Panel) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Precautions for %s\n", p.Label)
	for _, tip := range p.Tips {
		fmt.Fprintf(&b, "  - %s\n", tip)
	}

	if len(p.Universal) > 0 {
		b.WriteString("\nUniversal Tips\n")
		for _, tip := range p.Universal {
			fmt.Fprintf(&b, "  - %s\n", tip)
		}
	}

	if p.Note != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Note)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteText renders the result or error region of s as plain text.
func WriteText(w io.Writer, s State, tbl *precaution.Table) error {
	switch s.Phase {
	case PhaseLoading:
		_, err := io.WriteString(w, "Analyzing...\n")
		return err
	case PhaseError:
		_, err := fmt.Fprintf(w, "Error: %s\n", s.Err)
		return err
	case PhaseSuccess:
		if _, err := io.WriteString(w, "Prediction\n"+Summary(*s.Result)); err != nil {
			return err
		}
		if panel, ok := s.Precautions(tbl); ok {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			return WritePanel(w, panel)
		}
	}
	return nil
}
