package integrations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "github.com/metaboclass/metaboclass/pkg/errors"
)

func TestGetJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "metaboclass-test" {
			t.Errorf("User-Agent = %q, want default header applied", got)
		}
		w.Write([]byte(`{"value": 42}`))
	}))
	defer server.Close()

	client := NewClient(map[string]string{"User-Agent": "metaboclass-test"})

	var out struct {
		Value int `json:"value"`
	}
	if err := client.GetJSON(context.Background(), server.URL, SearchTimeout, &out); err != nil {
		t.Fatalf("GetJSON() error: %v", err)
	}
	if out.Value != 42 {
		t.Errorf("Value = %d, want 42", out.Value)
	}
}

func TestGetJSONInvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(nil)
	var out map[string]any
	err := client.GetJSON(context.Background(), server.URL, SearchTimeout, &out)
	if !apperrors.Is(err, apperrors.ErrCodeParse) {
		t.Errorf("error code = %v, want %v", apperrors.GetCode(err), apperrors.ErrCodeParse)
	}
}

func TestGetText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("cpd:C00031\tD-Glucose\n"))
	}))
	defer server.Close()

	client := NewClient(nil)
	body, err := client.GetText(context.Background(), server.URL, SearchTimeout)
	if err != nil {
		t.Fatalf("GetText() error: %v", err)
	}
	if body != "cpd:C00031\tD-Glucose\n" {
		t.Errorf("GetText() = %q", body)
	}
}

func TestGetTextNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(nil)
	_, err := client.GetText(context.Background(), server.URL, SearchTimeout)
	if !apperrors.Is(err, apperrors.ErrCodeNetwork) {
		t.Errorf("error code = %v, want %v", apperrors.GetCode(err), apperrors.ErrCodeNetwork)
	}
}

func TestGetTextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(nil)
	_, err := client.GetText(context.Background(), server.URL, 20*time.Millisecond)
	if !apperrors.Is(err, apperrors.ErrCodeTimeout) {
		t.Errorf("error code = %v, want %v", apperrors.GetCode(err), apperrors.ErrCodeTimeout)
	}
}

func TestGetTextConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(nil)
	_, err := client.GetText(context.Background(), server.URL, SearchTimeout)
	if !apperrors.Is(err, apperrors.ErrCodeNetwork) {
		t.Errorf("error code = %v, want %v", apperrors.GetCode(err), apperrors.ErrCodeNetwork)
	}
}

func TestEncodeHelpers(t *testing.T) {
	if got := URLEncode("citric acid"); got != "citric+acid" {
		t.Errorf("URLEncode() = %q", got)
	}
	if got := PathEncode("n/a compound"); got != "n%2Fa%20compound" {
		t.Errorf("PathEncode() = %q", got)
	}
}
