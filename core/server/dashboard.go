package server

import (
	"net/http"

	"banking-bpo/core/models"
	"banking-bpo/core/store"
)

const recentLimit = 5

func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.Stats()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	documents, err := s.store.ProcessedDocuments()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	cases, err := s.store.Cases()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	data := struct {
		Stats           store.DashboardStats
		RecentDocuments []models.ProcessedDocument
		RecentCases     []models.Case
	}{
		Stats:           stats,
		RecentDocuments: lastN(documents, recentLimit),
		RecentCases:     lastN(cases, recentLimit),
	}
	s.render(w, "dashboard.go.html", data)
}

// lastN returns the most recent entries, newest first.
func lastN[T any](items []T, n int) []T {
	out := make([]T, 0, n)
	for i := len(items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, items[i])
	}
	return out
}
