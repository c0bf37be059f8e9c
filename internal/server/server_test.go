package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"driftlint/internal/server"
	"driftlint/internal/types"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(server.New(zap.NewNop()).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postAnalyze(t *testing.T, ts *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/analyze", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestAnalyzeEndpoint_Success(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, `{
		"figmaSpec": "{\"component\": \"Button\", \"props\": {\"padding\": \"8px\"}}",
		"tokens": "{}",
		"jsxContent": "<Button padding=\"10px\" />",
		"componentName": "button"
	}`)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var result types.AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Component.Status != types.StatusIssuesFound {
		t.Errorf("status = %s, want ISSUES_FOUND", result.Component.Status)
	}
	if result.Summary.Minor != 1 {
		t.Errorf("summary = %+v, want one minor value difference", result.Summary)
	}
}

func TestAnalyzeEndpoint_EmptyInput(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, `{"figmaSpec": "", "tokens": "{}", "jsxContent": "<div />"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Error("error response has no message")
	}
}

func TestAnalyzeEndpoint_MalformedSpec(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, `{"figmaSpec": "{oops", "tokens": "{}", "jsxContent": "<div />"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAnalyzeEndpoint_BadRequestBody(t *testing.T) {
	ts := newTestServer(t)

	resp := postAnalyze(t, ts, `not json`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAnalyzeEndpoint_MethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/analyze")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}
