package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/models"
)

// EventHandler handles the events nested under a save.
type EventHandler struct {
	eventService core.EventService
	errs         errorResponder
}

func NewEventHandler(es core.EventService, errs errorResponder) *EventHandler {
	return &EventHandler{eventService: es, errs: errs}
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	events, err := h.eventService.ListEvents(c.Request.Context(), userID, c.Param("saveId"))
	if err != nil {
		h.errs.respond(c, err, "Failed to get events")
		return
	}
	respondData(c, http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	event, err := h.eventService.GetEvent(c.Request.Context(), userID, c.Param("saveId"), c.Param("eventId"))
	if err != nil {
		h.errs.respond(c, err, "Failed to get event")
		return
	}
	respondData(c, http.StatusOK, event)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req models.CreateEventRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}
	event, err := h.eventService.CreateEvent(c.Request.Context(), userID, c.Param("saveId"), req)
	if err != nil {
		h.errs.respond(c, err, "Failed to create event")
		return
	}
	respondData(c, http.StatusCreated, event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req models.UpdateEventRequest
	if !h.errs.bindJSON(c, &req) {
		return
	}
	event, err := h.eventService.UpdateEvent(c.Request.Context(), userID, c.Param("saveId"), c.Param("eventId"), req)
	if err != nil {
		h.errs.respond(c, err, "Failed to update event")
		return
	}
	respondData(c, http.StatusOK, event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.eventService.DeleteEvent(c.Request.Context(), userID, c.Param("saveId"), c.Param("eventId")); err != nil {
		h.errs.respond(c, err, "Failed to delete event")
		return
	}
	respondMessage(c, http.StatusOK, "Event deleted successfully")
}
