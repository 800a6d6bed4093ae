package profile

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"taskboard/internal/httputil"
	"taskboard/internal/logging"
	"taskboard/internal/upload"
	"taskboard/internal/user"
)

// Handler contains HTTP handlers for profile endpoints
type Handler struct {
	service *Service
	uploads upload.Store
}

func NewHandler(service *Service, uploads upload.Store) *Handler {
	return &Handler{service: service, uploads: uploads}
}

// UpdateResponse represents the profile update response
type UpdateResponse struct {
	Message string      `json:"message"`
	User    UserSummary `json:"user"`
}

// UserSummary is the updated-profile projection returned to the client.
type UserSummary struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Picture  string `json:"picture"`
}

// Get handles profile reads
// @Summary      Get profile
// @Description  Return a user's profile with follower and following counts.
// @Tags         profiles
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} Profile
// @Failure      400 {object} httputil.ErrorResponse "Invalid user ID"
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/profile/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid user ID format", httputil.CodeInvalidUserID, http.StatusBadRequest)
		return
	}

	prof, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			httputil.RespondErrorWithCode(w, "user not found", httputil.CodeUserNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to get profile", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to fetch profile", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, prof, http.StatusOK)
}

// Update handles profile updates
// @Summary      Update profile
// @Description  Update any of username, email, password or avatar. At least one field is required.
// @Tags         profiles
// @Accept       multipart/form-data
// @Produce      json
// @Param        id       path     string true  "User ID"
// @Param        username formData string false "New username"
// @Param        email    formData string false "New email"
// @Param        password formData string false "New password"
// @Param        picture  formData file   false "New avatar image"
// @Success      200 {object} UpdateResponse
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Failure      409 {object} httputil.ErrorResponse "Username or email already in use"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/profile/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid user ID format", httputil.CodeInvalidUserID, http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(upload.MaxAvatarSize); err != nil {
		logger.Warn("invalid profile form", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	in := &UpdateInput{}
	if v := r.FormValue("username"); v != "" {
		in.Username = &v
	}
	if v := r.FormValue("email"); v != "" {
		in.Email = &v
	}
	if v := r.FormValue("password"); v != "" {
		in.Password = &v
	}

	picture, err := upload.FromRequest(r, "picture", h.uploads)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedFileType) {
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeUnsupportedUpload, http.StatusBadRequest)
			return
		}
		logger.Error("failed to store avatar", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to store avatar", httputil.CodeUploadFailed, http.StatusBadRequest)
		return
	}
	if picture != "" {
		in.Picture = &picture
	}

	updated, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNoFieldsToUpdate):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeNoFieldsToUpdate, http.StatusBadRequest)
		case errors.Is(err, user.ErrNotFound):
			httputil.RespondErrorWithCode(w, "user not found", httputil.CodeUserNotFound, http.StatusNotFound)
		case errors.Is(err, user.ErrDuplicateUsername):
			httputil.RespondErrorWithCode(w, "username already in use", httputil.CodeUsernameTaken, http.StatusConflict)
		case errors.Is(err, user.ErrDuplicateEmail):
			httputil.RespondErrorWithCode(w, "email already in use", httputil.CodeEmailTaken, http.StatusConflict)
		case errors.Is(err, user.ErrUsernameRequired), errors.Is(err, user.ErrUsernameTooShort):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeUsernameTooShort, http.StatusBadRequest)
		case errors.Is(err, user.ErrEmailRequired), errors.Is(err, user.ErrInvalidEmailFormat):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidEmailFormat, http.StatusBadRequest)
		case errors.Is(err, user.ErrPasswordRequired), errors.Is(err, user.ErrPasswordTooShort):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodePasswordTooShort, http.StatusBadRequest)
		default:
			logger.Error("failed to update profile", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to update profile", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("profile updated", "user_id", id)

	httputil.RespondJSON(w, UpdateResponse{
		Message: "Profile updated successfully",
		User: UserSummary{
			Username: updated.Username,
			Email:    updated.Email,
			Picture:  h.service.PictureURL(updated.Picture),
		},
	}, http.StatusOK)
}
