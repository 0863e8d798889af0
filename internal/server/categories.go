package server

import (
	"net/http"

	"prayernotebook/pkg/types"
)

type createCategoryRequest struct {
	UserID *int64 `json:"userId" form:"userId"`
	Name   string `json:"name" form:"name"`
	Color  string `json:"color" form:"color"`
}

type updateCategoryRequest struct {
	UserID *int64 `json:"userId" form:"userId"`
	Name   string `json:"name" form:"name"`
	Color  string `json:"color" form:"color"`
}

// GET /api/categories
func (s *Service) handleListCategories(w http.ResponseWriter, r *http.Request) {
	userID, err := queryUserID(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid userId parameter")
		return
	}

	categories, err := s.categories.Categories(r.Context(), userID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "readCategories").Error("failed to retrieve categories")
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve categories")
		return
	}

	if categories == nil {
		categories = []*types.Category{}
	}
	s.respondJSON(w, http.StatusOK, categories)
}

// GET /api/categories/:id
func (s *Service) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, idErr := pathID(r, "id")
	userID, userErr := queryUserID(r)
	if idErr != nil || userErr != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid category ID or user ID")
		return
	}

	category, err := s.categories.CategoryByID(r.Context(), categoryID, userID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "readCategoryById").Error("failed to retrieve category")
		s.respondError(w, http.StatusInternalServerError, "Failed to retrieve category")
		return
	}

	if category == nil {
		s.respondError(w, http.StatusNotFound, "Category not found")
		return
	}

	s.respondJSON(w, http.StatusOK, category)
}

// POST /api/categories
func (s *Service) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !hasID(req.UserID) || req.Name == "" {
		s.respondError(w, http.StatusBadRequest, "Missing required fields: userId, name")
		return
	}

	color := req.Color
	if color == "" {
		color = types.DefaultCategoryColor
	}

	insertID, err := s.categories.CreateCategory(r.Context(), types.NewCategory{
		UserID: *req.UserID,
		Name:   req.Name,
		Color:  color,
	})
	if err != nil {
		s.logger.WithError(err).WithField("operation", "createCategory").Error("failed to create category")
		s.respondError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	s.respondJSON(w, http.StatusCreated, map[string]any{
		"message":  "Category created successfully",
		"insertId": insertID,
	})
}

// PUT /api/categories/:id
func (s *Service) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r, "id")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	var req updateCategoryRequest
	if err := decodeBody(r, &req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !hasID(req.UserID) || req.Name == "" || req.Color == "" {
		s.respondError(w, http.StatusBadRequest, "Missing required fields: userId, name, color")
		return
	}

	affected, err := s.categories.UpdateCategory(r.Context(), types.CategoryUpdate{
		ID:     categoryID,
		UserID: *req.UserID,
		Name:   req.Name,
		Color:  req.Color,
	})
	if err != nil {
		s.logger.WithError(err).WithField("operation", "updateCategory").Error("failed to update category")
		s.respondError(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	if affected == 0 {
		s.respondError(w, http.StatusNotFound, "Category not found or not authorized")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{"message": "Category updated successfully"})
}

// DELETE /api/categories/:id
// Deleting a category also deletes every prayer in it.
func (s *Service) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, idErr := pathID(r, "id")
	userID, userErr := queryUserID(r)
	if idErr != nil || userErr != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid category ID or user ID")
		return
	}

	affected, err := s.categories.DeleteCategory(r.Context(), categoryID, userID)
	if err != nil {
		s.logger.WithError(err).WithField("operation", "deleteCategory").Error("failed to delete category")
		s.respondError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	if affected == 0 {
		s.respondError(w, http.StatusNotFound, "Category not found or not authorized")
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]string{
		"message": "Category deleted successfully (including all prayers in it)",
	})
}
