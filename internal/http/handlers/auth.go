package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/auth"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/security"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/web"
)

type AuthHandler struct {
	auth     *auth.Service
	sessions *security.SessionStore
	views    *web.Renderer
	log      *slog.Logger
}

func NewAuthHandler(svc *auth.Service, sessions *security.SessionStore, views *web.Renderer, log *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:     svc,
		sessions: sessions,
		views:    views,
		log:      log,
	}
}

// Home sends authenticated users to the dashboard, everyone else to login.
func (h *AuthHandler) Home(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	data := web.PageData{Title: "Register", Flashes: h.sessions.Flashes(w, r)}
	if err := h.views.Render(w, "register", data); err != nil {
		h.serverError(w, r, err)
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	err := h.auth.Register(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			h.sessions.Flash(w, r, "Username already taken!")
			http.Redirect(w, r, "/register", http.StatusFound)
			return
		}
		h.serverError(w, r, err)
		return
	}

	h.sessions.Flash(w, r, "Registration successful! Please log in.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	data := web.PageData{Title: "Log in", Flashes: h.sessions.Flashes(w, r)}
	if err := h.views.Render(w, "login", data); err != nil {
		h.serverError(w, r, err)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	err := h.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			h.sessions.Flash(w, r, "Invalid username or password")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		h.serverError(w, r, err)
		return
	}

	if err := h.sessions.SignIn(w, r, username); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		h.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *AuthHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
