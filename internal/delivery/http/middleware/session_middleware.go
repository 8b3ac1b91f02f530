package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	SessionName = "clinic_session"

	sessionKeyDoctor = "doctor_logged_in"
)

// DoctorGuard gates doctor-only views behind the session marker set at
// login. Unauthenticated requests are redirected to the login form.
type DoctorGuard struct {
	store sessions.Store
}

func NewDoctorGuard(store sessions.Store) *DoctorGuard {
	return &DoctorGuard{store: store}
}

func (g *DoctorGuard) RequireDoctor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsDoctor(r, g.store) {
			http.Redirect(w, r, "/doctor/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsDoctor reports whether the request's session carries the
// authenticated-doctor marker.
func IsDoctor(r *http.Request, store sessions.Store) bool {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return false
	}
	loggedIn, ok := session.Values[sessionKeyDoctor].(bool)
	return ok && loggedIn
}

// SignInDoctor sets the authenticated-doctor marker on the session.
func SignInDoctor(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, SessionName)
	if err != nil {
		// A stale or tampered cookie decodes to an error; start fresh.
		session, _ = store.New(r, SessionName)
	}
	session.Values[sessionKeyDoctor] = true
	return session.Save(r, w)
}

// SignOutDoctor clears the marker unconditionally.
func SignOutDoctor(w http.ResponseWriter, r *http.Request, store sessions.Store) error {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return nil
	}
	delete(session.Values, sessionKeyDoctor)
	return session.Save(r, w)
}
