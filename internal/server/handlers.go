package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/resume"
	"github.com/jonathan/career-compass/internal/types"
)

// maxUploadSize caps resume uploads at 10 MB.
const maxUploadSize = 10 << 20

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	types.UserProfile
	TopN int `json:"top_n,omitempty"`
}

// AnalyzeResponse is the response body for POST /analyze.
type AnalyzeResponse struct {
	RequestID uuid.UUID           `json:"request_id"`
	Results   []types.MatchResult `json:"results"`
}

// ExtractSkillsResponse is the response body for POST /skills/extract.
type ExtractSkillsResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	Skills    []string  `json:"skills"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := req.UserProfile.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user profile: "+err.Error())
		return
	}
	// Canonicalize shorthand labels ("Ambivert", "Any") before scoring.
	req.Personality, _ = types.ParsePersonality(string(req.Personality))

	jobs, err := s.store.Jobs()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	topN := req.TopN
	if topN <= 0 {
		topN = s.topN
	}

	results, err := matching.Rank(jobs, &req.UserProfile, topN)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RequestID: uuid.New(),
		Results:   results,
	})
}

func (s *Server) handleExtractSkills(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "resume file is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read upload: "+err.Error())
		return
	}

	text, err := resume.ExtractText(header.Filename, data)
	if err != nil {
		// Recoverable: the client shows the error and the user enters
		// skills manually.
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	vocabulary, err := s.store.Vocabulary()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	skills := resume.MatchSkills(text, vocabulary)
	if skills == nil {
		skills = []string{}
	}

	s.jsonResponse(w, http.StatusOK, ExtractSkillsResponse{
		RequestID: uuid.New(),
		Skills:    skills,
	})
}

func (s *Server) handleListJobs(w http.ResponseWriter, _ *http.Request) {
	jobs, err := s.store.Jobs()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

func (s *Server) handleVocabulary(w http.ResponseWriter, _ *http.Request) {
	vocabulary, err := s.store.Vocabulary()
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"vocabulary": vocabulary})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
