package server

import (
	"net/http"

	"prayernotebook/pkg/types"
)

type createPrayerRequest struct {
	CategoryID  *int64  `json:"categoryId" form:"categoryId"`
	UserID      *int64  `json:"userId" form:"userId"`
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	Notes       *string `json:"notes" form:"notes"`
}

type updatePrayerRequest struct {
	UserID      *int64  `json:"userId" form:"userId"`
	Title       string  `json:"title" form:"title"`
	Description string  `json:"description" form:"description"`
	Notes       *string `json:"notes" form:"notes"`
	CategoryID  *int64  `json:"categoryId" form:"categoryId"`
}

type answerPrayerRequest struct {
	UserID *int64  `json:"userId" form:"userId"`
	Notes  *string `json:"notes" form:"notes"`
}

// GET /api/prayers
func (s *Service) handleListPrayers(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid userId parameter")
		return
	}

	prayers, err := s.prayers.Prayers(r.Context(), userID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "readPrayers").Error("failed to retrieve prayers")
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve prayers")
		return
	}

	if prayers == nil {
		prayers = []*types.Prayer{}
	}
	s.respondJSON(w, http.StatusOK, prayers)
}

// GET /api/prayers/:id
func (s *Service) handleGetPrayer(w http.ResponseWriter, r *http.Request) {
	prayerID, idErr := pathID(r, "id")
	userID, userErr := queryUserID(r)
	if idErr != nil || userErr != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid prayer ID or user ID")
		return
	}

	prayer, err := s.prayers.PrayerByID(r.Context(), prayerID, userID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "readPrayerById").Error("failed to retrieve prayer")
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve prayer")
		return
	}

	if prayer == nil {
		s.respondError(w, http.StatusNotFound, "Prayer not found")
		return
	}

	s.respondJSON(w, http.StatusOK, prayer)
}

// GET /api/prayers/category/:categoryId
func (s *Service) handleListPrayersByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, idErr := pathID(r, "categoryId")
	userID, userErr := queryUserID(r)
	if idErr != nil || userErr != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid category ID or user ID")
		return
	}

	prayers, err := s.prayers.PrayersByCategory(r.Context(), categoryID, userID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "readPrayersByCategory").Error("failed to retrieve prayers by category")
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve prayers by category")
		return
	}

	if prayers == nil {
		prayers = []*types.Prayer{}
	}
	s.respondJSON(w, http.StatusOK, prayers)
}

// GET /api/prayers/answered
func (s *Service) handleListAnsweredPrayers(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid userId parameter")
		return
	}

	prayers, err := s.prayers.AnsweredPrayers(r.Context(), userID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "readAnsweredPrayers").Error("failed to retrieve answered prayers")
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve answered prayers")
		return
	}

	if prayers == nil {
		prayers = []*types.Prayer{}
	}
	s.respondJSON(w, http.StatusOK, prayers)
}

// GET /api/prayers/search
func (s *Service) handleSearchPrayers(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid userId parameter")
		return
	}

	keyword := r.URL.Query().Get("q")
	if keyword == "" {
		s.respondError(w, http.StatusBadRequest, "Missing search keyword (q parameter)")
		return
	}

	prayers, err := s.prayers.SearchPrayers(r.Context(), userID, keyword)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "searchPrayers").Error("failed to search prayers")
		s.respondError(w, http.StatusInternalServerError, "Failed to search prayers")
		return
	}

	if prayers == nil {
		prayers = []*types.Prayer{}
	}
	s.respondJSON(w, http.StatusOK, prayers)
}

// POST /api/prayers
func (s *Service) handleCreatePrayer(w http.ResponseWriter, r *http.Request) {
	var req createPrayerRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !hasID(req.CategoryID) || !hasID(req.UserID) || req.Title == "" || req.Description == "" {
		s.respondError(w, http.StatusBadRequest, "Missing required fields: categoryId, userId, title, description")
		return
	}

	// The category must exist and belong to the same user before a
	// prayer may reference it.
	category, err := s.categories.CategoryByID(r.Context(), *req.CategoryID, *req.UserID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "createPrayer").Error("failed to verify category")
		s.respondError(w, http.StatusInternalServerError, "Failed to create prayer")
		return
	}
	if category == nil {
		s.respondError(w, http.StatusBadRequest, "Category not found for user")
		return
	}

	insertID, err := s.prayers.CreatePrayer(r.Context(), types.NewPrayer{
		CategoryID:  *req.CategoryID,
		UserID:      *req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		s.logger.WithError(err).WithField("operation", "createPrayer").Error("failed to create prayer")
		s.respondError(w, http.StatusInternalServerError, "Failed to create prayer")
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]any{
		"message":  "Prayer created successfully",
		"insertId": insertID,
	})
}

// PUT /api/prayers/:id
func (s *Service) handleUpdatePrayer(w http.ResponseWriter, r *http.Request) {
	prayerID, err := pathID(r, "id")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid prayer ID")
		return
	}

	var req updatePrayerRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !hasID(req.UserID) || req.Title == "" || req.Description == "" || !hasID(req.CategoryID) {
		s.respondError(w, http.StatusBadRequest, "Missing required fields: userId, title, description, categoryId")
		return
	}

	category, err := s.categories.CategoryByID(r.Context(), *req.CategoryID, *req.UserID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "updatePrayer").Error("failed to verify category")
		s.respondError(w, http.StatusInternalServerError, "Failed to update prayer")
		return
	}
	if category == nil {
		s.respondError(w, http.StatusBadRequest, "Category not found for user")
		return
	}

	affected, err := s.prayers.UpdatePrayer(r.Context(), types.PrayerUpdate{
		ID:          prayerID,
		UserID:      *req.UserID,
		CategoryID:  *req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Notes:       req.Notes,
	})
	if err != nil {
		s.logger.WithError(err).WithField("operation", "updatePrayer").Error("failed to update prayer")
		s.respondError(w, http.StatusInternalServerError, "Failed to update prayer")
		return
	}

	if affected == 0 {
		s.respondError(w, http.StatusNotFound, "Prayer not found or not authorized")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Prayer updated successfully"})
}

// PUT /api/prayers/:id/answer
func (s *Service) handleMarkPrayerAnswered(w http.ResponseWriter, r *http.Request) {
	prayerID, err := pathID(r, "id")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid prayer ID or missing userId")
		return
	}

	var req answerPrayerRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !hasID(req.UserID) {
		s.respondError(w, http.StatusBadRequest, "Invalid prayer ID or missing userId")
		return
	}

	affected, err := s.prayers.MarkPrayerAnswered(r.Context(), prayerID, *req.UserID, req.Notes)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "markPrayerAnswered").Error("failed to mark prayer as answered")
		s.respondError(w, http.StatusInternalServerError, "Failed to mark prayer as answered")
		return
	}

	if affected == 0 {
		s.respondError(w, http.StatusNotFound, "Prayer not found or not authorized")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Prayer marked as answered successfully"})
}

// DELETE /api/prayers/:id
func (s *Service) handleDeletePrayer(w http.ResponseWriter, r *http.Request) {
	prayerID, idErr := pathID(r, "id")
	userID, userErr := queryUserID(r)
	if idErr != nil || userErr != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid prayer ID or user ID")
		return
	}

	affected, err := s.prayers.DeletePrayer(r.Context(), prayerID, userID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "deletePrayer").Error("failed to delete prayer")
		s.respondError(w, http.StatusInternalServerError, "Failed to delete prayer")
		return
	}

	if affected == 0 {
		s.respondError(w, http.StatusNotFound, "Prayer not found or not authorized")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Prayer deleted successfully"})
}
