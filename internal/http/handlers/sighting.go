package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/security"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/web"
)

// SightingStore is the slice of the store the sighting handlers need.
type SightingStore interface {
	InsertSightings(ctx context.Context, rows []models.Sighting) error
	SightingsByOwner(ctx context.Context, username string) ([]models.Sighting, error)
}

type SightingHandler struct {
	store    SightingStore
	sessions *security.SessionStore
	views    *web.Renderer
	log      *slog.Logger
}

func NewSightingHandler(store SightingStore, sessions *security.SessionStore, views *web.Renderer, log *slog.Logger) *SightingHandler {
	return &SightingHandler{
		store:    store,
		sessions: sessions,
		views:    views,
		log:      log,
	}
}

func (h *SightingHandler) Form(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.CurrentUser(r)
	data := web.PageData{Title: "New sighting", User: user, Flashes: h.sessions.Flashes(w, r)}
	if err := h.views.Render(w, "sighting", data); err != nil {
		h.serverError(w, r, err)
	}
}

// Submit parses one or many sighting rows from the form and persists the
// whole batch atomically, then redirects to the dashboard.
func (h *SightingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.CurrentUser(r)

	if err := r.ParseForm(); err != nil {
		h.sessions.Flash(w, r, "Could not read the submitted form")
		http.Redirect(w, r, "/sighting", http.StatusFound)
		return
	}

	rows, err := ParseSightingRows(r.PostForm, user)
	if err != nil {
		if errors.Is(err, models.ErrInvalidInput) {
			h.sessions.Flash(w, r, err.Error())
			http.Redirect(w, r, "/sighting", http.StatusFound)
			return
		}
		h.serverError(w, r, err)
		return
	}

	if err := h.store.InsertSightings(r.Context(), rows); err != nil {
		h.serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// Dashboard renders the current user's sightings, newest first.
func (h *SightingHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := h.sessions.CurrentUser(r)

	sightings, err := h.store.SightingsByOwner(r.Context(), user)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	data := web.PageData{
		Title:     "Dashboard",
		User:      user,
		Flashes:   h.sessions.Flashes(w, r),
		Sightings: sightings,
	}
	if err := h.views.Render(w, "dashboard", data); err != nil {
		h.serverError(w, r, err)
	}
}

func (h *SightingHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
