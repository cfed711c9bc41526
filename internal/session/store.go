package session

import (
	"net/http"
	"sync"

	"github.com/google/uuid"

	"medconnect/internal/diagnosis"
	"medconnect/internal/interview"
)

// CookieName carries the opaque session token.
const CookieName = "medconnect_session"

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Session is the server-side per-conversation record: who is logged
// in, the in-progress interview (if any), and the last prediction so
// the report endpoint can render it. Handlers must hold the session's
// lock across any read-modify-write of the interview state, since a
// questionnaire step is not atomic on its own.
type Session struct {
	Token    string
	Username string
	Role     string

	Interview      interview.State
	LastPrediction *diagnosis.Prediction

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Store keeps sessions in process memory, keyed by token. The
// original prototype is single-process, so there is nothing to share
// with another instance.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// Create issues a fresh session for a logged-in user and returns it.
// A second login under the same username simply creates a second
// token; sessions are independent.
func (st *Store) Create(username, role string) *Session {
	s := &Session{
		Token:    uuid.NewString(),
		Username: username,
		Role:     role,
	}
	st.mu.Lock()
	st.sessions[s.Token] = s
	st.mu.Unlock()
	return s
}

func (st *Store) Get(token string) (*Session, bool) {
	st.mu.RLock()
	s, ok := st.sessions[token]
	st.mu.RUnlock()
	return s, ok
}

func (st *Store) Delete(token string) {
	st.mu.Lock()
	delete(st.sessions, token)
	st.mu.Unlock()
}

// FromRequest resolves the session referenced by the request cookie.
func (st *Store) FromRequest(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return nil, false
	}
	return st.Get(c.Value)
}

// SetCookie attaches the session token to the response.
func SetCookie(w http.ResponseWriter, s *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    s.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
