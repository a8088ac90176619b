package security

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	sessionName = "sighting_session"
	userKey     = "user"
)

// SessionStore wraps a signed cookie store with the only capability the rest
// of the application needs: get/set the current username, plus one-time
// flash messages that survive a redirect.
type SessionStore struct {
	store *sessions.CookieStore
}

func NewSessionStore(secret string) *SessionStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store}
}

// CurrentUser returns the authenticated username, if any.
func (s *SessionStore) CurrentUser(r *http.Request) (string, bool) {
	session, _ := s.store.Get(r, sessionName)
	username, ok := session.Values[userKey].(string)
	return username, ok && username != ""
}

// SignIn marks the session as authenticated for username.
func (s *SessionStore) SignIn(w http.ResponseWriter, r *http.Request, username string) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values[userKey] = username
	return session.Save(r, w)
}

// SignOut clears all session state unconditionally.
func (s *SessionStore) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, sessionName)
	session.Values = map[interface{}]interface{}{}
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Flash queues a one-time message shown on the next rendered page.
func (s *SessionStore) Flash(w http.ResponseWriter, r *http.Request, msg string) {
	session, _ := s.store.Get(r, sessionName)
	session.AddFlash(msg)
	_ = session.Save(r, w)
}

// Flashes drains and returns any queued messages.
func (s *SessionStore) Flashes(w http.ResponseWriter, r *http.Request) []string {
	session, _ := s.store.Get(r, sessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = session.Save(r, w)

	msgs := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
