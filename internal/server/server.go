// Package server exposes the analysis operations over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/talentsignal/profiler/internal/analysis"
	"github.com/talentsignal/profiler/internal/fragments"
	"github.com/talentsignal/profiler/internal/models"
	"github.com/talentsignal/profiler/internal/profiler"
)

type Server struct {
	service *profiler.Service
	mux     *http.ServeMux
}

func New(service *profiler.Service) *Server {
	s := &Server{service: service, mux: http.NewServeMux()}
	s.mux.HandleFunc("/api/analyze", s.handleAnalyze)
	s.mux.HandleFunc("/api/analyze-custom", s.handleAnalyzeCustom)
	s.mux.HandleFunc("/api/generate-questions", s.handleGenerateQuestions)
	return s
}

func (s *Server) Handler() http.Handler { return s.mux }

type analyzeRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "URL is required")
		return
	}

	profile, err := s.service.AnalyzeURL(r.Context(), req.URL)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type analyzeCustomRequest struct {
	Username   string   `json:"username"`
	Statements []string `json:"tweets"`
}

func (s *Server) handleAnalyzeCustom(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analyzeCustomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || len(req.Statements) == 0 {
		writeError(w, http.StatusBadRequest, "Username and statements are required")
		return
	}

	profile, err := s.service.AnalyzeFragments(r.Context(), fragments.FromTexts(req.Statements), req.Username)
	if err != nil {
		s.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

type generateQuestionsRequest struct {
	AnalysisData *models.Profile `json:"analysisData"`
	Username     string          `json:"username"`
}

func (s *Server) handleGenerateQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req generateQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AnalysisData == nil || req.Username == "" {
		writeError(w, http.StatusBadRequest, "Analysis data and username are required")
		return
	}

	questions := s.service.InterviewQuestions(r.Context(), *req.AnalysisData, req.Username)
	writeJSON(w, http.StatusOK, questions)
}

func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	slog.Error("[Server] Analysis failed", slog.String("error", err.Error()))
	if errors.Is(err, fragments.ErrInvalidURL) {
		writeError(w, http.StatusBadRequest, "Invalid profile URL")
		return
	}
	if errors.Is(err, analysis.ErrNoFragments) {
		writeError(w, http.StatusNotFound, "No fragments found for this subject")
		return
	}
	writeError(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("[Server] Failed to encode response", slog.String("error", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
