package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/models"
)

// SaveHandler handles API endpoints related to saves.
type SaveHandler struct {
	saveService core.SaveService
	errs        errorResponder
}

// NewSaveHandler creates a new SaveHandler.
func NewSaveHandler(ss core.SaveService, errs errorResponder) *SaveHandler {
	return &SaveHandler{saveService: ss, errs: errs}
}

// ListSaves handles GET /api/saves?sport=
func (h *SaveHandler) ListSaves(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	saves, err := h.saveService.ListSaves(c.Request.Context(), userID, models.SaveFilter{Sport: c.Query("sport")})
	if err != nil {
		h.errs.respond(c, err, "Failed to get saves")
		return
	}
	respondData(c, http.StatusOK, saves)
}

// GetSave handles GET /api/saves/:saveId
func (h *SaveHandler) GetSave(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	save, err := h.saveService.GetSave(c.Request.Context(), userID, c.Param("saveId"))
	if err != nil {
		h.errs.respond(c, err, "Failed to get save")
		return
	}
	respondData(c, http.StatusOK, save)
}

// CreateSave handles POST /api/saves
func (h *SaveHandler) CreateSave(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req models.CreateSaveRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}
	save, err := h.saveService.CreateSave(c.Request.Context(), userID, req)
	if err != nil {
		h.errs.respond(c, err, "Failed to create save")
		return
	}
	respondData(c, http.StatusCreated, save)
}

// UpdateSave handles PUT /api/saves/:saveId
func (h *SaveHandler) UpdateSave(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req models.UpdateSaveRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}
	save, err := h.saveService.UpdateSave(c.Request.Context(), userID, c.Param("saveId"), req)
	if err != nil {
		h.errs.respond(c, err, "Failed to update save")
		return
	}
	respondData(c, http.StatusOK, save)
}

// DeleteSave handles DELETE /api/saves/:saveId
func (h *SaveHandler) DeleteSave(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.saveService.DeleteSave(c.Request.Context(), userID, c.Param("saveId")); err != nil {
		h.errs.respond(c, err, "Failed to delete save")
		return
	}
	respondMessage(c, http.StatusOK, "Save deleted successfully")
}
