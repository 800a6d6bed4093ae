package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/httputil"
	"taskboard/internal/logging"
	"taskboard/internal/upload"
	"taskboard/internal/user"
)

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service        *Service
	tokenService   TokenService
	rateLimiter    RateLimiter
	uploads        upload.Store
	logger         *logging.Logger
	accessDuration time.Duration
}

func NewHandler(service *Service, tokenService TokenService, rateLimiter RateLimiter, uploads upload.Store, logger *logging.Logger, accessDuration time.Duration) *Handler {
	return &Handler{
		service:        service,
		tokenService:   tokenService,
		rateLimiter:    rateLimiter,
		uploads:        uploads,
		logger:         logger,
		accessDuration: accessDuration,
	}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse represents the registration response
type RegisterResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// LoginResponse represents the login response. The token is a signed,
// expiring credential; the bare identifiers remain for the stateless
// surface the client already relies on.
type LoginResponse struct {
	Message   string    `json:"message"`
	UserID    uuid.UUID `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Picture   string    `json:"picture"`
	Token     string    `json:"token"`
	ExpiresIn int64     `json:"expiresIn"`
}

// Register handles user registration
// @Summary      Register a new user
// @Description  Create a new user account with username, email, password and an optional avatar image.
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        username   formData string true  "Username (min 3 chars)"
// @Param        email      formData string true  "Email address"
// @Param        password   formData string true  "Password (min 6 chars)"
// @Param        profilePic formData file   false "Avatar image (jpeg, jpg, png, gif; max 5MB)"
// @Success      201 {object} RegisterResponse
// @Failure      400 {object} httputil.ErrorResponse "Validation error"
// @Failure      409 {object} httputil.ErrorResponse "Username or email already exists"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimit(r.Context(), ip, "register")
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded for register", "ip", ip)
		httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	if err := r.ParseMultipartForm(upload.MaxAvatarSize); err != nil {
		logger.Warn("invalid registration form", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")

	logger = logger.WithFields(map[string]any{"username": username})

	if err := h.rateLimiter.RecordIPRequest(r.Context(), ip, "register"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	// Avatar is optional; validation failures here are the caller's fault.
	picture, err := upload.FromRequest(r, "profilePic", h.uploads)
	if err != nil {
		if errors.Is(err, upload.ErrUnsupportedFileType) {
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeUnsupportedUpload, http.StatusBadRequest)
			return
		}
		logger.Error("failed to store avatar", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to store avatar", httputil.CodeUploadFailed, http.StatusBadRequest)
		return
	}

	newUser, err := h.service.Register(r.Context(), username, email, password, picture)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrDuplicateUsername):
			logger.Warn("registration failed: username already exists")
			httputil.RespondErrorWithCode(w, "username already exists", httputil.CodeUsernameTaken, http.StatusConflict)
		case errors.Is(err, user.ErrDuplicateEmail):
			logger.Warn("registration failed: email already exists")
			httputil.RespondErrorWithCode(w, "email already exists", httputil.CodeEmailTaken, http.StatusConflict)
		case errors.Is(err, user.ErrUsernameRequired), errors.Is(err, user.ErrUsernameTooShort):
			logger.Warn("registration failed: validation error", "error", err.Error())
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeUsernameTooShort, http.StatusBadRequest)
		case errors.Is(err, user.ErrEmailRequired), errors.Is(err, user.ErrInvalidEmailFormat):
			logger.Warn("registration failed: validation error", "error", err.Error())
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidEmailFormat, http.StatusBadRequest)
		case errors.Is(err, user.ErrPasswordRequired), errors.Is(err, user.ErrPasswordTooShort):
			logger.Warn("registration failed: validation error", "error", err.Error())
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodePasswordTooShort, http.StatusBadRequest)
		default:
			logger.Error("registration failed: internal error", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to register user", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("user registered successfully", "user_id", newUser.ID)

	httputil.RespondJSON(w, RegisterResponse{
		Message: "User registered successfully",
		UserID:  newUser.ID,
	}, http.StatusCreated)
}

// Login handles user login
// @Summary      User login
// @Description  Authenticate by email and password. Returns the user identity and a signed, expiring token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} httputil.ErrorResponse "Invalid request body"
// @Failure      401 {object} httputil.ErrorResponse "Invalid credentials"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /api/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	ip := getClientIP(r)
	exceeded, err := h.rateLimiter.CheckIPRateLimit(r.Context(), ip, "login")
	if err != nil {
		logger.Error("failed to check IP rate limit", "error", err.Error())
	} else if exceeded {
		logger.Warn("IP rate limit exceeded for login", "ip", ip)
		httputil.RespondErrorWithCode(w, "too many requests, please try again later", httputil.CodeTooManyRequests, http.StatusTooManyRequests)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	if err := h.rateLimiter.RecordIPRequest(r.Context(), ip, "login"); err != nil {
		logger.Error("failed to record IP request", "error", err.Error())
	}

	loggedIn, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			logger.Warn("login failed: invalid credentials")
			httputil.RespondErrorWithCode(w, "invalid email or password", httputil.CodeInvalidCredentials, http.StatusUnauthorized)
		case errors.Is(err, user.ErrEmailRequired), errors.Is(err, user.ErrInvalidEmailFormat):
			logger.Warn("login failed: validation error", "error", err.Error())
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeInvalidEmailFormat, http.StatusBadRequest)
		case errors.Is(err, user.ErrPasswordRequired), errors.Is(err, user.ErrPasswordTooShort):
			logger.Warn("login failed: validation error", "error", err.Error())
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodePasswordTooShort, http.StatusBadRequest)
		default:
			logger.Error("login failed: internal error", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to login", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	token, err := h.tokenService.CreateToken(loggedIn.ID, loggedIn.Username, h.accessDuration)
	if err != nil {
		logger.Error("failed to create token", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to login", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("user logged in successfully", "user_id", loggedIn.ID)

	httputil.RespondJSON(w, LoginResponse{
		Message:   "Login successful",
		UserID:    loggedIn.ID,
		Username:  loggedIn.Username,
		Email:     loggedIn.Email,
		Picture:   loggedIn.Picture,
		Token:     token,
		ExpiresIn: int64(h.accessDuration.Seconds()),
	}, http.StatusOK)
}

// Me returns the identity encoded in the bearer token.
// @Summary      Current identity
// @Description  Return the user identity carried by the bearer token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]string
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /api/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := GetUserIDFromContext(r.Context())
	username, _ := GetUsernameFromContext(r.Context())

	httputil.RespondJSON(w, map[string]string{
		"userId":   userID.String(),
		"username": username,
	}, http.StatusOK)
}

// getClientIP extracts the client IP address from the request
func getClientIP(r *http.Request) string {
	// Check X-Forwarded-For header first (behind proxy/load balancer)
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := r.Header.Get("X-Real-IP")
	if xri != "" {
		return strings.TrimSpace(xri)
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
