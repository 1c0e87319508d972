package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dayplan/logger"
	"dayplan/models"
	"dayplan/store"
)

type EventHandler struct {
	store EventStore
}

func NewEventHandler(store EventStore) *EventHandler {
	return &EventHandler{store: store}
}

type createEventRequest struct {
	Event    string    `json:"event"`
	DateTime time.Time `json:"dateTime"`
}

type updateEventRequest struct {
	Event    *string    `json:"event"`
	DateTime *time.Time `json:"dateTime"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req createEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event := models.Event{
		UserID:      userID,
		Description: req.Event,
		DateTime:    req.DateTime,
	}
	if err := models.ValidateEvent(&event); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.store.Create(r.Context(), event)
	if err != nil {
		logger.Error("create event", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "Event created", "event": created})
}

func (h *EventHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	event, err := h.store.GetByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		logger.Error("get event", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, event)
}

func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	events, err := h.store.ListForUser(r.Context(), userID)
	if err != nil {
		logger.Error("list events", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(events) == 0 {
		writeError(w, http.StatusNotFound, "No events found for this user")
		return
	}

	writeJSON(w, http.StatusOK, events)
}

func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event, err := h.store.GetByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		logger.Error("update event", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Event != nil {
		event.Description = *req.Event
	}
	if req.DateTime != nil {
		event.DateTime = *req.DateTime
	}
	if err := models.ValidateEvent(&event); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.Update(r.Context(), event)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		logger.Error("update event", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Event updated", "event": updated})
}

func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Event not found")
			return
		}
		logger.Error("delete event", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
