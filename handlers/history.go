package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"council/db"
)

type DebateSummary struct {
	TopicID      string    `json:"topic_id"`
	Title        string    `json:"title"`
	MessageCount int       `json:"message_count"`
	HasConsensus bool      `json:"has_consensus"`
	SavedAt      time.Time `json:"saved_at"`
}

type HistoryResponse struct {
	Debates []DebateSummary `json:"debates"`
	Total   int64           `json:"total"`
	HasMore bool            `json:"has_more"`
}

// ListDebatesHandler returns summaries of persisted debates, most recent
// first. Requires MongoDB persistence to be configured.
func (s *Server) ListDebatesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !db.Initialized() {
		http.Error(w, "Debate history requires MongoDB persistence", http.StatusServiceUnavailable)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	debates, total, err := db.ListDebates(ctx, limit, offset)
	if err != nil {
		http.Error(w, "Failed to fetch debates", http.StatusInternalServerError)
		return
	}

	summaries := make([]DebateSummary, 0, len(debates))
	for _, doc := range debates {
		summaries = append(summaries, DebateSummary{
			TopicID:      doc.TopicID,
			Title:        doc.Title,
			MessageCount: len(doc.Messages),
			HasConsensus: doc.Consensus != nil,
			SavedAt:      doc.SavedAt,
		})
	}

	response := HistoryResponse{
		Debates: summaries,
		Total:   total,
		HasMore: int64(offset+limit) < total,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
