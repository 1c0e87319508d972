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

type TaskHandler struct {
	store TaskStore
}

func NewTaskHandler(store TaskStore) *TaskHandler {
	return &TaskHandler{store: store}
}

type createTaskRequest struct {
	Task    string     `json:"task"`
	Status  string     `json:"status"`
	DueDate *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Task   *string `json:"task"`
	Status *string `json:"status"`
	// raw so an explicit null (clear the due date) can be told apart
	// from an absent field (leave it unchanged)
	DueDate json.RawMessage `json:"dueDate"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task := models.Task{
		UserID:  userID,
		Text:    req.Task,
		Status:  req.Status,
		DueDate: req.DueDate,
	}
	if err := models.ValidateTask(&task); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.store.Create(r.Context(), task)
	if err != nil {
		logger.Error("create task", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"message": "Task created", "task": created})
}

func (h *TaskHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	task, err := h.store.GetByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		logger.Error("get task", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}

	tasks, err := h.store.ListForUser(r.Context(), userID)
	if err != nil {
		logger.Error("list tasks", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if len(tasks) == 0 {
		writeError(w, http.StatusNotFound, "No tasks found for this user")
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requestUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.store.GetByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		logger.Error("update task", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if req.Task != nil {
		task.Text = *req.Task
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.DueDate != nil {
		if string(req.DueDate) == "null" {
			task.DueDate = nil
		} else {
			var due time.Time
			if err := json.Unmarshal(req.DueDate, &due); err != nil {
				writeError(w, http.StatusBadRequest, "invalid dueDate")
				return
			}
			task.DueDate = &due
		}
	}
	if err := models.ValidateTask(&task); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.Update(r.Context(), task)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		logger.Error("update task", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"message": "Task updated", "task": updated})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
			writeError(w, http.StatusNotFound, "Task not found")
			return
		}
		logger.Error("delete task", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
