package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStoreLifecycle(t *testing.T) {
	st := NewStore()

	s := st.Create("alice", RolePatient)
	if s.Token == "" {
		t.Fatal("expected a token")
	}

	got, ok := st.Get(s.Token)
	if !ok || got.Username != "alice" || got.Role != RolePatient {
		t.Fatalf("Get returned %+v, %v", got, ok)
	}

	st.Delete(s.Token)
	if _, ok := st.Get(s.Token); ok {
		t.Fatal("session survived Delete")
	}
}

func TestFromRequest(t *testing.T) {
	st := NewStore()
	s := st.Create("bob", RoleDoctor)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: s.Token})

	got, ok := st.FromRequest(r)
	if !ok || got.Token != s.Token {
		t.Fatalf("FromRequest returned %+v, %v", got, ok)
	}

	bare := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := st.FromRequest(bare); ok {
		t.Fatal("expected no session without cookie")
	}
}

func TestRequireRole(t *testing.T) {
	st := NewStore()
	patient := st.Create("alice", RolePatient)
	doctor := st.Create("drbob", RoleDoctor)

	var seen *Session
	h := RequireRole(st, RolePatient)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"matching role", patient.Token, http.StatusOK},
		{"wrong role", doctor.Token, http.StatusUnauthorized},
		{"no cookie", "", http.StatusUnauthorized},
		{"stale token", "not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tt.token})
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK && (seen == nil || seen.Username != "alice") {
				t.Fatalf("handler did not receive the session, got %+v", seen)
			}
		})
	}
}
