package router

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/auth"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/db"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/http/handlers"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/logger"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/security"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/web"
)

func Setup(database *db.DB, sessions *security.SessionStore, views *web.Renderer, log *slog.Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(logger.RequestLogger(log))

	authSvc := auth.NewService(database)
	authHandler := handlers.NewAuthHandler(authSvc, sessions, views, log)
	sightingHandler := handlers.NewSightingHandler(database, sessions, views, log)

	r.HandleFunc("/", authHandler.Home).Methods("GET")
	r.HandleFunc("/register", authHandler.RegisterForm).Methods("GET")
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.LoginForm).Methods("GET")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	gated := requireLogin(sessions)
	r.Handle("/sighting", gated(http.HandlerFunc(sightingHandler.Form))).Methods("GET")
	r.Handle("/sighting", gated(http.HandlerFunc(sightingHandler.Submit))).Methods("POST")
	r.Handle("/dashboard", gated(http.HandlerFunc(sightingHandler.Dashboard))).Methods("GET")
	r.Handle("/logout", gated(http.HandlerFunc(authHandler.Logout))).Methods("GET")

	return r
}

// requireLogin redirects unauthenticated requests to the login page. Gated
// paths never answer with an error status, only with the redirect.
func requireLogin(sessions *security.SessionStore) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := sessions.CurrentUser(r); !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
