package server

import (
	"context"
	"net/http"
	"time"
)

// GET /health
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.logger.WithError(err).Error("health check failed")
		s.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"error":  "database unreachable",
		})
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "Prayer Notebook API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
