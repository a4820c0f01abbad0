package handlers

import (
	"Portfolio/internal/service"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"go.uber.org/zap"
)

// AuthHandler выдаёт токены администратору.
type AuthHandler struct {
	AuthService *service.AuthService
	Logger      *zap.SugaredLogger
}

// NewAuthHandler создаёт хендлер /auth
func NewAuthHandler(authService *service.AuthService, logger *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{AuthService: authService, Logger: logger}
}

type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	UUID    int64  `json:"uuid"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Login POST /auth: JSON или form-поля email и password.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAuthRequest(r)
	if err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	res, err := h.AuthService.Authenticate(r.Context(), req.Email, req.Password)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrMissingCredentials):
		writeMessage(w, http.StatusBadRequest, "Email and password are required.")
		return
	case errors.Is(err, service.ErrUserNotFound):
		h.Logger.Warnw("Login: unknown email", "email", req.Email)
		writeMessage(w, http.StatusUnauthorized, "User Not Found!")
		return
	case errors.Is(err, service.ErrInvalidPassword):
		h.Logger.Warnw("Login: wrong password", "email", req.Email)
		writeMessage(w, http.StatusUnauthorized, "Incorrect Password.")
		return
	default:
		h.Logger.Errorw("Login: service error", "error", err)
		writeMessage(w, http.StatusInternalServerError, msgInternal)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		UUID:    res.UUID,
		Message: "Authentication successful.",
		Token:   res.Token,
	})
}

func decodeAuthRequest(r *http.Request) (AuthRequest, error) {
	var req AuthRequest
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return req, err
		}
		return req, nil
	}
	if err := r.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return req, err
	}
	req.Email = r.FormValue("email")
	req.Password = r.FormValue("password")
	return req, nil
}
