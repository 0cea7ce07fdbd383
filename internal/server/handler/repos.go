package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/deepakkumardewani/review-pilot/internal/github"
)

// RepoHandler proxies repository browsing calls to the GitHub client.
type RepoHandler struct {
	gh     github.Client
	logger *slog.Logger
}

func NewRepoHandler(gh github.Client, logger *slog.Logger) *RepoHandler {
	return &RepoHandler{gh: gh, logger: logger}
}

func (h *RepoHandler) ListRepositories(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")

	repos, err := h.gh.ListRepositories(r.Context(), owner)
	if err != nil {
		h.logger.Error("failed to list repositories", "owner", owner, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch repositories")
		return
	}
	respondJSON(w, repos)
}

func (h *RepoHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	repo := chi.URLParam(r, "repo")

	branches, err := h.gh.ListBranches(r.Context(), owner, repo)
	if err != nil {
		h.logger.Error("failed to list branches", "owner", owner, "repo", repo, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch branches")
		return
	}
	respondJSON(w, branches)
}

func (h *RepoHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	repo := chi.URLParam(r, "repo")
	ref := r.URL.Query().Get("ref")
	if ref == "" {
		respondError(w, http.StatusBadRequest, "Missing ref parameter")
		return
	}

	tree, err := h.gh.GetTree(r.Context(), owner, repo, ref)
	if err != nil {
		h.logger.Error("failed to fetch tree", "owner", owner, "repo", repo, "ref", ref, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch file tree")
		return
	}
	respondJSON(w, tree)
}

func (h *RepoHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	owner := chi.URLParam(r, "owner")
	repo := chi.URLParam(r, "repo")
	path := r.URL.Query().Get("path")
	ref := r.URL.Query().Get("ref")
	if path == "" {
		respondError(w, http.StatusBadRequest, "Missing path parameter")
		return
	}

	content, err := h.gh.FileContent(r.Context(), owner, repo, path, ref)
	if err != nil {
		h.logger.Error("failed to fetch file content", "owner", owner, "repo", repo, "path", path, "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch file content")
		return
	}

	w.Header().Set("Content-Type", contentTypePlain)
	_, _ = w.Write([]byte(content))
}

func respondJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
