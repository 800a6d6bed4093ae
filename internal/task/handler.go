package task

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"taskboard/internal/httputil"
	"taskboard/internal/logging"
)

// Handler contains HTTP handlers for task endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CreateRequest represents the task creation request body
type CreateRequest struct {
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
}

// UpdateRequest represents the partial task update request body
type UpdateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *string    `json:"priority"`
	Status      *string    `json:"status"`
}

// List handles task listing
// @Summary      List tasks
// @Description  Return all tasks for a user, ordered by an allow-listed sort key.
// @Tags         tasks
// @Produce      json
// @Param        userId query string true  "Owner user ID"
// @Param        sortBy query string false "Sort key (createdAt, updatedAt, dueDate, priority, title)"
// @Success      200 {array} Task
// @Failure      400 {object} httputil.ErrorResponse "Invalid user ID"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/tasks [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ownerID, err := uuid.Parse(r.URL.Query().Get("userId"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid user ID", httputil.CodeInvalidUserID, http.StatusBadRequest)
		return
	}

	sortKey := r.URL.Query().Get("sortBy")
	if sortKey == "" {
		sortKey = DefaultSortKey
	}

	tasks, err := h.service.List(r.Context(), ownerID, sortKey)
	if err != nil {
		logger.Error("failed to list tasks", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to fetch tasks", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, tasks, http.StatusOK)
}

// Create handles task creation
// @Summary      Create task
// @Description  Create a new task for a user.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body CreateRequest true "Task fields"
// @Success      201 {object} Task
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Router       /api/tasks [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid task request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	ownerID, err := uuid.Parse(req.UserID)
	if err != nil {
		httputil.RespondErrorWithCode(w, "userId is required", httputil.CodeOwnerRequired, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), &Task{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrOwnerRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeOwnerRequired, http.StatusBadRequest)
		case errors.Is(err, ErrTitleRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeTitleRequired, http.StatusBadRequest)
		case errors.Is(err, ErrInvalidPriority), errors.Is(err, ErrInvalidStatus):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidTask, http.StatusBadRequest)
		default:
			logger.Error("failed to create task", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to create task", httputil.CodeInvalidTask, http.StatusBadRequest)
		}
		return
	}

	logger.Info("task created", "task_id", created.ID, "user_id", created.UserID)

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// Update handles partial task updates
// @Summary      Update task
// @Description  Merge the supplied fields into an existing task.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id      path string        true "Task ID"
// @Param        request body UpdateRequest true "Fields to change"
// @Success      200 {object} Task
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      404 {object} httputil.ErrorResponse "Task not found"
// @Router       /api/tasks/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid task ID", httputil.CodeInvalidTaskID, http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid task update body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateTask(r.Context(), id, &Update{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httputil.RespondErrorWithCode(w, "task not found", httputil.CodeTaskNotFound, http.StatusNotFound)
		case errors.Is(err, ErrTitleRequired), errors.Is(err, ErrInvalidPriority), errors.Is(err, ErrInvalidStatus):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidTask, http.StatusBadRequest)
		default:
			logger.Error("failed to update task", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to update task", httputil.CodeInvalidTask, http.StatusBadRequest)
		}
		return
	}

	httputil.RespondJSON(w, updated, http.StatusOK)
}

// Delete handles task deletion
// @Summary      Delete task
// @Description  Delete a task by id.
// @Tags         tasks
// @Produce      json
// @Param        id path string true "Task ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} httputil.ErrorResponse "Task not found"
// @Router       /api/tasks/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid task ID", httputil.CodeInvalidTaskID, http.StatusNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "task not found", httputil.CodeTaskNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to delete task", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to delete task", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, map[string]string{"message": "Task deleted"}, http.StatusOK)
}
