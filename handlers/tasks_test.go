package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dayplan/models"
)

func taskRouter(h *TaskHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/task", h.Create)
	r.Get("/task", h.List)
	r.Get("/task/{id}", h.GetByID)
	r.Put("/task/{id}", h.Update)
	r.Delete("/task/{id}", h.Delete)
	return r
}

func TestCreateTask(t *testing.T) {
	t.Run("defaults apply", func(t *testing.T) {
		h := NewTaskHandler(newFakeTaskStore())
		r := taskRouter(h)

		req := authedRequest("POST", "/task", map[string]any{"task": "buy milk"}, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Message string      `json:"message"`
			Task    models.Task `json:"task"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Task created", resp.Message)
		assert.Equal(t, "buy milk", resp.Task.Text)
		assert.Equal(t, models.TaskStatusPending, resp.Task.Status)
		assert.Nil(t, resp.Task.DueDate)
		assert.Equal(t, int64(1), resp.Task.UserID)
	})

	t.Run("invalid status", func(t *testing.T) {
		h := NewTaskHandler(newFakeTaskStore())
		r := taskRouter(h)

		req := authedRequest("POST", "/task", map[string]any{"task": "x", "status": "done"}, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "status must be pending or completed")
	})
}

func TestUpdateTask(t *testing.T) {
	h := NewTaskHandler(newFakeTaskStore())
	r := taskRouter(h)

	req := authedRequest("POST", "/task", map[string]any{"task": "buy milk"}, 1)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		req := authedRequest("PUT", "/task/1", map[string]any{"status": "completed"}, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Task models.Task `json:"task"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, models.TaskStatusCompleted, resp.Task.Status)
		assert.Equal(t, "buy milk", resp.Task.Text)
	})

	t.Run("status can go back to pending", func(t *testing.T) {
		req := authedRequest("PUT", "/task/1", map[string]any{"status": "pending"}, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("bad status on update", func(t *testing.T) {
		req := authedRequest("PUT", "/task/1", map[string]any{"status": "nope"}, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("due date can be set and cleared", func(t *testing.T) {
		due := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		req := authedRequest("PUT", "/task/1", map[string]any{"dueDate": due}, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			Task models.Task `json:"task"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.NotNil(t, resp.Task.DueDate)
		assert.True(t, resp.Task.DueDate.Equal(due))

		req = authedRequest("PUT", "/task/1", map[string]any{"dueDate": nil}, 1)
		rr = httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Nil(t, resp.Task.DueDate)

		req = authedRequest("GET", "/task/1", nil, 1)
		rr = httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var got models.Task
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Nil(t, got.DueDate)
	})

	t.Run("malformed due date", func(t *testing.T) {
		req := authedRequest("PUT", "/task/1", map[string]any{"dueDate": "not-a-date"}, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid dueDate")
	})
}

func TestListTasks(t *testing.T) {
	h := NewTaskHandler(newFakeTaskStore())
	r := taskRouter(h)

	later := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	sooner := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, body := range []map[string]any{
		{"task": "later", "dueDate": later},
		{"task": "someday"},
		{"task": "sooner", "dueDate": sooner},
	} {
		req := authedRequest("POST", "/task", body, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	t.Run("undated first, then due date ascending", func(t *testing.T) {
		req := authedRequest("GET", "/task", nil, 1)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var tasks []models.Task
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tasks))
		require.Len(t, tasks, 3)
		assert.Equal(t, "someday", tasks[0].Text)
		assert.Equal(t, "sooner", tasks[1].Text)
		assert.Equal(t, "later", tasks[2].Text)
	})

	t.Run("no tasks is a 404", func(t *testing.T) {
		req := authedRequest("GET", "/task", nil, 2)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "No tasks found for this user")
	})
}

func TestDeleteTask(t *testing.T) {
	h := NewTaskHandler(newFakeTaskStore())
	r := taskRouter(h)

	req := authedRequest("DELETE", "/task/5", nil, 1)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Task not found")
}
