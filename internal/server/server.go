package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"driftlint/internal/analyzer"
)

// analyzeRequest is the wire format of the /analyze endpoint. Field names
// match the design-review client.
type analyzeRequest struct {
	FigmaSpec     string `json:"figmaSpec"`
	Tokens        string `json:"tokens"`
	JSXContent    string `json:"jsxContent"`
	ComponentName string `json:"componentName"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server exposes the analyzer over HTTP.
type Server struct {
	log      *zap.Logger
	analyzer *analyzer.Analyzer
}

// New creates an HTTP server around a fresh analyzer.
func New(log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		log:      log.Named("server"),
		analyzer: analyzer.New(log),
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

// ListenAndServe serves until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	result, err := s.analyzer.Analyze(analyzer.Request{
		ReferenceSpec: req.FigmaSpec,
		Tokens:        req.Tokens,
		Markup:        req.JSXContent,
		ComponentName: req.ComponentName,
	})
	if err != nil {
		// Empty, malformed and unexpected failures are all client-visible
		// 400s; the analyzer never lets a fault escape as a 500.
		var unexpected *analyzer.UnexpectedError
		if errors.As(err, &unexpected) {
			s.log.Error("analysis failed", zap.Error(err))
		} else {
			s.log.Warn("analysis rejected", zap.Error(err))
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
