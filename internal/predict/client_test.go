package predict

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictSuccess(t *testing.T) {
	got := make(chan request, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req request
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		got <- req

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"label":"Anxiety","confidence":0.87,"sentiment":"negative"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/api/predict")
	p, err := c.Predict(context.Background(), "  I can't sleep  ")
	require.NoError(t, err)

	assert.Equal(t, Prediction{Label: "Anxiety", Confidence: 0.87, Sentiment: "negative"}, p)
	assert.Equal(t, "  I can't sleep  ", (<-got).Text, "text is sent untrimmed")
}

func TestPredictEmptyTextSkipsNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := c.Predict(context.Background(), text)
		assert.ErrorIs(t, err, ErrEmptyText)
	}
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestPredictServerErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"error field", http.StatusBadRequest, `{"error":"bad input"}`, "bad input"},
		{"empty body", http.StatusInternalServerError, ``, "Server error"},
		{"blank error field", http.StatusInternalServerError, `{"error":"  "}`, "Server error"},
		{"not json", http.StatusBadGateway, `<html>bad gateway</html>`, "Server error"},
		{"other fields only", http.StatusServiceUnavailable, `{"detail":"down"}`, "Server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Predict(context.Background(), "hello")
			require.Error(t, err)

			var se *ServerError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.status, se.StatusCode)
			assert.Equal(t, tt.message, se.Message)
			assert.Equal(t, tt.message, Message(err))
		})
	}
}

func TestPredictMalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `not json`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Predict(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestPredictMissingLabelIsNotValidated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"confidence":0.5}`)
	}))
	defer srv.Close()

	p, err := NewClient(srv.URL).Predict(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "", p.Label)
	assert.Equal(t, 0.5, p.Confidence)
}

func TestPredictNonObjectBodyIsBlank(t *testing.T) {
	for _, body := range []string{`[]`, `null`, `"ok"`, `42`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, body)
			}))
			defer srv.Close()

			p, err := NewClient(srv.URL).Predict(context.Background(), "hello")
			require.NoError(t, err)
			assert.Equal(t, Prediction{}, p)
		})
	}
}

func TestPredictOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"label":"`+strings.Repeat("a", 2<<20)+`"}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Predict(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response")
}

func TestPredictTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Predict(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending request")
	assert.NotEmpty(t, Message(err))
}

func TestPredictTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, WithTimeout(20*time.Millisecond)).Predict(context.Background(), "hello")
	require.Error(t, err)
}

func TestNewClientDefaults(t *testing.T) {
	assert.Equal(t, DefaultEndpoint, NewClient("").Endpoint())
	assert.Equal(t, "http://example.test/p", NewClient(" http://example.test/p ").Endpoint())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, "nope", Message(&ServerError{StatusCode: 400, Message: "nope"}))
}
