// Package handler provides the HTTP handlers for the review API.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/deepakkumardewani/review-pilot/internal/core"
	"github.com/deepakkumardewani/review-pilot/internal/review"
)

const (
	errMissingFields = "Required fields are missing"
	errReviewFailed  = "Failed to generate review"
	contentTypePlain = "text/plain; charset=utf-8"
)

type reviewPayload struct {
	Language       string    `json:"language"`
	FileContent    string    `json:"fileContent"`
	FileContext    string    `json:"fileContext"`
	RepoContext    string    `json:"repoContext"`
	Embedding      []float32 `json:"embedding"`
	SelectedAgents []string  `json:"selectedAgents"`
}

// ReviewHandler accepts a review request and streams the generated report
// back as plain text.
type ReviewHandler struct {
	orchestrator *review.Orchestrator
	logger       *slog.Logger
}

func NewReviewHandler(orchestrator *review.Orchestrator, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{orchestrator: orchestrator, logger: logger}
}

func (h *ReviewHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload reviewPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.Error("failed to decode review request", "error", err)
		respondError(w, http.StatusInternalServerError, errReviewFailed)
		return
	}

	req := core.ReviewRequest{
		Language:    payload.Language,
		FileContent: payload.FileContent,
		FileContext: core.FileContext(payload.FileContext),
		RepoContext: payload.RepoContext,
		Embedding:   payload.Embedding,
	}
	for _, agent := range payload.SelectedAgents {
		req.SelectedAgents = append(req.SelectedAgents, core.AgentType(agent))
	}

	stream, err := h.orchestrator.Review(r.Context(), req)
	if err != nil {
		if errors.Is(err, core.ErrMissingFields) {
			respondError(w, http.StatusBadRequest, errMissingFields)
			return
		}
		h.logger.Error("failed to start review", "error", err)
		respondError(w, http.StatusInternalServerError, errReviewFailed)
		return
	}

	flusher, _ := w.(http.Flusher)
	wrote := false
	for chunk := range stream.Chunks() {
		if !wrote {
			w.Header().Set("Content-Type", contentTypePlain)
			w.WriteHeader(http.StatusOK)
			wrote = true
		}
		if _, err := w.Write([]byte(chunk)); err != nil {
			h.logger.Debug("client went away mid-stream", "error", err)
			stream.Cancel()
			break
		}
		if flusher != nil {
			flusher.Flush()
		}
	}

	if err := stream.Err(); err != nil {
		if wrote {
			// Headers are long gone; the truncated body is all the
			// client can observe. Details stay server-side.
			h.logger.Error("review stream ended with error", "error", err)
			return
		}
		respondError(w, http.StatusInternalServerError, errReviewFailed)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
