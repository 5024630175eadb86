package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	commonhttp "github.com/bizdir/backend/internal/common/http"
	"github.com/bizdir/backend/internal/common/logger"
	"github.com/bizdir/backend/internal/common/validation"
	userrepo "github.com/bizdir/backend/internal/user/repository"
	"github.com/bizdir/backend/internal/user/service"
)

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type Handler struct {
	users *service.UserService
	log   *logger.Logger
}

func NewHandler(users *service.UserService, requestTimeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{users: users, log: log}

	withTimeout := commonhttp.WithTimeout(requestTimeout)

	mux := http.NewServeMux()
	mux.HandleFunc("/user/signup", withTimeout(commonhttp.RequireMethod(http.MethodPost)(h.signup)))
	mux.HandleFunc("/user/login", withTimeout(commonhttp.RequireMethod(http.MethodPost)(h.login)))
	mux.HandleFunc("/user", withTimeout(commonhttp.RequireMethod(http.MethodGet)(h.list)))
	mux.HandleFunc("/user/", withTimeout(commonhttp.RequireMethod(http.MethodDelete)(h.delete)))
	return mux
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if err := commonhttp.DecodeJSON(r, &input); err != nil {
		h.log.Warnf("signup failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	user, err := h.users.Signup(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated,
		commonhttp.NewEnvelope("New User Added Successfully!", toUserView(user)))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := commonhttp.DecodeJSON(r, &input); err != nil {
		h.log.Warnf("login failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, err := h.users.Login(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, loginResponse{
		Message: "Authentication Successfull!",
		Token:   token,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, toUserViews(users))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/user/")
	if err := h.users.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK,
		commonhttp.NewEnvelope("User Deleted Successfully!", nil))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if vErr, ok := validation.AsValidationError(err); ok {
		commonhttp.WriteError(w, http.StatusBadRequest, vErr.Error())
		return
	}

	switch {
	case errors.Is(err, validation.ErrInvalidEmail):
		commonhttp.WriteError(w, http.StatusBadRequest, "Invalid email address")
	case errors.Is(err, validation.ErrInvalidID):
		commonhttp.WriteError(w, http.StatusNotFound, "Invalid ID")
	case errors.Is(err, userrepo.ErrUserNotFound):
		commonhttp.WriteError(w, http.StatusNotFound, "User with the ID does not exist")
	case errors.Is(err, userrepo.ErrEmailAlreadyExists):
		commonhttp.WriteError(w, http.StatusConflict, "A user with the email already exists")
	case errors.Is(err, service.ErrAuthenticationFailed):
		commonhttp.WriteError(w, http.StatusUnauthorized, "Authentication failed")
	default:
		commonhttp.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}
