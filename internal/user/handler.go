package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medconnect/internal/session"
)

type Handler struct {
	svc      Service
	sessions *session.Store
}

func NewHandler(svc Service, sessions *session.Store) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

type signupRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Specialty       string `json:"specialty,omitempty"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) SignupPatient(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.svc.SignupPatient(r.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		writeSignupError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"username": u.Username, "role": u.Role})
}

func (h *Handler) SignupDoctor(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.svc.SignupDoctor(r.Context(), req.Username, req.Password, req.ConfirmPassword, req.Specialty)
	if err != nil {
		writeSignupError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"username":  u.Username,
		"role":      u.Role,
		"specialty": u.Specialty,
	})
}

func (h *Handler) LoginPatient(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, RolePatient)
}

func (h *Handler) LoginDoctor(w http.ResponseWriter, r *http.Request) {
	h.login(w, r, RoleDoctor)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request, role string) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	u, err := h.svc.Login(r.Context(), req.Username, req.Password, role)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
			return
		}
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	s := h.sessions.Create(u.Username, u.Role)
	session.SetCookie(w, s)
	writeJSON(w, http.StatusOK, map[string]string{
		"username":  u.Username,
		"role":      u.Role,
		"specialty": u.Specialty,
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if s, ok := h.sessions.FromRequest(r); ok {
		h.sessions.Delete(s.Token)
	}
	session.ClearCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *Handler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"specialties": h.svc.Specialties()})
}

func writeSignupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUsernameTaken):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "Username already exists!"})
	case errors.Is(err, ErrPasswordMismatch):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Passwords do not match!"})
	case errors.Is(err, ErrInvalidSpecialty):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Please select your specialty"})
	case errors.Is(err, ErrMissingFields):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "Username and password are required"})
	default:
		http.Error(w, "Signup failed", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/signup/patient", h.SignupPatient)
	r.Post("/signup/doctor", h.SignupDoctor)
	r.Post("/login/patient", h.LoginPatient)
	r.Post("/login/doctor", h.LoginDoctor)
	r.Post("/logout", h.Logout)
	r.Get("/specialties", h.ListSpecialties)
}
