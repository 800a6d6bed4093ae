package follow

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"taskboard/internal/httputil"
	"taskboard/internal/logging"
)

// Handler contains HTTP handlers for follow endpoints
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// EdgeRequest represents the follow/unfollow request body
type EdgeRequest struct {
	FollowerID  string `json:"followerId"`
	FollowingID string `json:"followingId"`
}

// parseEdge decodes and parses the follower/following pair. A missing or
// malformed id is a validation failure, not a lookup failure.
func parseEdge(r *http.Request) (follower, following uuid.UUID, err error) {
	var req EdgeRequest
	if decodeErr := json.NewDecoder(r.Body).Decode(&req); decodeErr != nil {
		return uuid.Nil, uuid.Nil, ErrIDsRequired
	}
	if req.FollowerID == "" || req.FollowingID == "" {
		return uuid.Nil, uuid.Nil, ErrIDsRequired
	}

	follower, err = uuid.Parse(req.FollowerID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrIDsRequired
	}
	following, err = uuid.Parse(req.FollowingID)
	if err != nil {
		return uuid.Nil, uuid.Nil, ErrIDsRequired
	}
	return follower, following, nil
}

// Follow handles creating a follow edge
// @Summary      Follow a user
// @Description  Create a follow relationship between two users.
// @Tags         follows
// @Accept       json
// @Produce      json
// @Param        request body EdgeRequest true "Follower and followee IDs"
// @Success      201 {object} Follow
// @Failure      400 {object} httputil.ErrorResponse "Missing IDs or self-follow"
// @Failure      409 {object} httputil.ErrorResponse "Already following"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/follow [post]
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	followerID, followingID, err := parseEdge(r)
	if err != nil {
		httputil.RespondErrorWithCode(w, "followerId and followingId are required", httputil.CodeFollowIDsMissing, http.StatusBadRequest)
		return
	}

	edge, err := h.service.Follow(r.Context(), followerID, followingID)
	if err != nil {
		switch {
		case errors.Is(err, ErrSelfFollow):
			httputil.RespondErrorWithCode(w, "you cannot follow yourself", httputil.CodeSelfFollow, http.StatusBadRequest)
		case errors.Is(err, ErrAlreadyFollowing):
			httputil.RespondErrorWithCode(w, "already following", httputil.CodeAlreadyFollowing, http.StatusConflict)
		case errors.Is(err, ErrIDsRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeFollowIDsMissing, http.StatusBadRequest)
		default:
			logger.Error("failed to follow user", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to follow user", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("follow created", "follower_id", followerID, "following_id", followingID)

	httputil.RespondJSON(w, edge, http.StatusCreated)
}

// ListFollowing handles listing the users a follower follows
// @Summary      List following
// @Description  Return all follow edges where the given user is the follower.
// @Tags         follows
// @Produce      json
// @Param        followerId path string true "Follower user ID"
// @Success      200 {array} Follow
// @Failure      400 {object} httputil.ErrorResponse "Invalid follower ID"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/follow/following/{followerId} [get]
func (h *Handler) ListFollowing(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	followerID, err := uuid.Parse(chi.URLParam(r, "followerId"))
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid follower ID", httputil.CodeInvalidUserID, http.StatusBadRequest)
		return
	}

	follows, err := h.service.ListFollowing(r.Context(), followerID)
	if err != nil {
		logger.Error("failed to list follows", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to load following list", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, follows, http.StatusOK)
}

// Unfollow handles deleting a follow edge
// @Summary      Unfollow a user
// @Description  Delete the follow relationship between two users.
// @Tags         follows
// @Accept       json
// @Produce      json
// @Param        request body EdgeRequest true "Follower and followee IDs"
// @Success      200 {object} map[string]string
// @Failure      400 {object} httputil.ErrorResponse "Missing IDs"
// @Failure      404 {object} httputil.ErrorResponse "Relationship not found"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/follow [delete]
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	followerID, followingID, err := parseEdge(r)
	if err != nil {
		httputil.RespondErrorWithCode(w, "followerId and followingId are required", httputil.CodeFollowIDsMissing, http.StatusBadRequest)
		return
	}

	if err := h.service.Unfollow(r.Context(), followerID, followingID); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httputil.RespondErrorWithCode(w, "follow relationship not found", httputil.CodeFollowNotFound, http.StatusNotFound)
		case errors.Is(err, ErrIDsRequired):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeFollowIDsMissing, http.StatusBadRequest)
		default:
			logger.Error("failed to unfollow user", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to unfollow user", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("follow removed", "follower_id", followerID, "following_id", followingID)

	httputil.RespondJSON(w, map[string]string{"message": "Unfollowed successfully"}, http.StatusOK)
}
