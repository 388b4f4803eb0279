// Package analyzer models the analyzer form as a value with pure
// transitions. Nothing here performs I/O; callers turn a Request into a
// network call and feed the outcome back through Receive.
package analyzer

import (
	"strings"

	"github.com/f3rmion/riskcheck/internal/predict"
)

// Phase is the mutually exclusive status of the form.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// State is everything the analyzer view shows.
//
// Result is non-nil only in PhaseSuccess and Err is non-empty only in
// PhaseError. Seq identifies the latest submission; responses carrying any
// other sequence number are stale.
type State struct {
	Text            string              `json:"text"`
	Phase           Phase               `json:"phase"`
	Result          *predict.Prediction `json:"result,omitempty"`
	Err             string              `json:"error,omitempty"`
	ShowPrecautions bool                `json:"show_precautions"`
	Seq             uint64              `json:"seq"`
}

// Request is a submission the caller must send to the prediction service.
type Request struct {
	Seq  uint64
	Text string
}

// Response is the outcome of a Request.
type Response struct {
	Seq        uint64
	Prediction predict.Prediction
	Err        error
}

// New returns the initial idle state.
func New() State {
	return State{Phase: PhaseIdle}
}

// Edit replaces the input text. The rest of the state is left alone.
func (s State) Edit(text string) State {
	s.Text = text
	return s
}

// Submit starts a prediction for the current text.
//
// It returns ok=false and leaves the state untouched when the text is blank
// or a submission is already in flight.
func (s State) Submit() (State, Request, bool) {
	if s.Phase == PhaseLoading || strings.TrimSpace(s.Text) == "" {
		return s, Request{}, false
	}

	s.Seq++
	s.Phase = PhaseLoading
	s.Result = nil
	s.Err = ""
	s.ShowPrecautions = false

	return s, Request{Seq: s.Seq, Text: s.Text}, true
}

// Receive applies the outcome of the in-flight request. Responses that do
// not belong to it are ignored.
func (s State) Receive(resp Response) State {
	if s.Phase != PhaseLoading || resp.Seq != s.Seq {
		return s
	}

	if resp.Err != nil {
		s.Phase = PhaseError
		s.Err = predict.Message(resp.Err)
		return s
	}

	p := resp.Prediction
	s.Phase = PhaseSuccess
	s.Result = &p
	return s
}

// Clear resets the form. Any request still in flight is abandoned.
func (s State) Clear() State {
	return State{Phase: PhaseIdle, Seq: s.Seq + 1}
}

// TogglePrecautions shows or hides the precaution panel. Only a successful
// result has a panel.
func (s State) TogglePrecautions() State {
	if s.Phase != PhaseSuccess {
		return s
	}
	s.ShowPrecautions = !s.ShowPrecautions
	return s
}

// Loading reports whether a submission is in flight.
func (s State) Loading() bool {
	return s.Phase == PhaseLoading
}

// CanSubmit reports whether Submit would start a request.
func (s State) CanSubmit() bool {
	return s.Phase != PhaseLoading && strings.TrimSpace(s.Text) != ""
}
