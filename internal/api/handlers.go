package api

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// maxLimit caps how many scores one request may fetch.
const maxLimit = 100

type handlers struct {
	scores ScoreSource
	gameID string
}

func (h *handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleTopScores serves GET /api/scores?limit=N.
func (h *handlers) handleTopScores(w http.ResponseWriter, r *http.Request) {
	if h.scores == nil {
		writeError(w, http.StatusServiceUnavailable, "score storage unavailable")
		return
	}

	limit := 10
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxLimit)
	}

	entries, err := h.scores.TopScores(h.gameID, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}

	type rankedEntry struct {
		Rank   int    `json:"rank"`
		Player string `json:"player"`
		Score  int    `json:"score"`
		Date   string `json:"date"`
	}
	out := make([]rankedEntry, len(entries))
	for i, e := range entries {
		out[i] = rankedEntry{
			Rank:   i + 1,
			Player: e.Player,
			Score:  e.Score,
			Date:   e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"game":   h.gameID,
		"scores": out,
	})
}

// handleBestScore serves GET /api/scores/best.
func (h *handlers) handleBestScore(w http.ResponseWriter, _ *http.Request) {
	if h.scores == nil {
		writeError(w, http.StatusServiceUnavailable, "score storage unavailable")
		return
	}

	best, err := h.scores.BestScore(h.gameID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}
	if best == nil {
		writeError(w, http.StatusNotFound, "no scores recorded yet")
		return
	}
	writeJSON(w, http.StatusOK, best)
}

// handleStats serves GET /api/stats.
func (h *handlers) handleStats(w http.ResponseWriter, _ *http.Request) {
	if h.scores == nil {
		writeError(w, http.StatusServiceUnavailable, "score storage unavailable")
		return
	}

	stats, err := h.scores.GetGameStats(h.gameID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "cannot load stats")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
