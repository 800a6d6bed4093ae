package user

import (
	"errors"
	"net/http"

	"taskboard/internal/httputil"
	"taskboard/internal/logging"
)

// Handler contains HTTP handlers for user search
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles user search by username
// @Summary      Search users
// @Description  Case-insensitive substring search on username. Password hashes are never returned.
// @Tags         users
// @Produce      json
// @Param        search query string true "Search query"
// @Success      200 {array} User
// @Failure      400 {object} httputil.ErrorResponse "Missing search query"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/users [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	query := r.URL.Query().Get("search")

	users, err := h.service.Search(r.Context(), query)
	if err != nil {
		if errors.Is(err, ErrEmptyQuery) {
			httputil.RespondErrorWithCode(w, "search query is required", httputil.CodeSearchRequired, http.StatusBadRequest)
			return
		}
		logger.Error("user search failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to search users", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, users, http.StatusOK)
}
