package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medconnect/internal/session"
	"medconnect/internal/user"
)

// DoctorLister is the slice of the user service the chat picker
// needs.
type DoctorLister interface {
	ListDoctors(ctx context.Context) ([]user.User, error)
}

type Handler struct {
	svc     Service
	doctors DoctorLister
}

func NewHandler(svc Service, doctors DoctorLister) *Handler {
	return &Handler{svc: svc, doctors: doctors}
}

type sendRequest struct {
	// Counterpart is the other side of the conversation: the doctor's
	// username when a patient writes, the patient's when a doctor
	// does.
	Counterpart string `json:"counterpart"`
	Text        string `json:"text"`
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req sendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Counterpart == "" {
		http.Error(w, "Missing counterpart", http.StatusBadRequest)
		return
	}

	m, err := h.svc.Send(r.Context(), s.Role, s.Username, req.Counterpart, req.Text)
	if err != nil {
		if errors.Is(err, ErrEmptyMessage) {
			http.Error(w, "Message text is empty", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "Failed to send message", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var (
		messages []Message
		err      error
	)
	if s.Role == session.RoleDoctor {
		messages, err = h.svc.MessagesForDoctor(r.Context(), s.Username)
	} else {
		messages, err = h.svc.MessagesForPatient(r.Context(), s.Username)
	}
	if err != nil {
		http.Error(w, "Failed to load messages", http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []Message{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]Message{"messages": messages})
}

// ClearConversation deletes a patient's thread with one doctor.
func (h *Handler) ClearConversation(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok || s.Role != session.RolePatient {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	doctor := chi.URLParam(r, "doctor")
	if doctor == "" {
		http.Error(w, "Missing doctor", http.StatusBadRequest)
		return
	}

	if err := h.svc.ClearConversation(r.Context(), s.Username, doctor); err != nil {
		http.Error(w, "Failed to clear conversation", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListDoctors feeds the chat partner picker: username and specialty
// for every registered doctor.
func (h *Handler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctors.ListDoctors(r.Context())
	if err != nil {
		http.Error(w, "Failed to load doctors", http.StatusInternalServerError)
		return
	}

	type doctorInfo struct {
		Username  string `json:"username"`
		Specialty string `json:"specialty"`
	}
	out := make([]doctorInfo, 0, len(doctors))
	for _, d := range doctors {
		out = append(out, doctorInfo{Username: d.Username, Specialty: d.Specialty})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string][]doctorInfo{"doctors": out})
}

// RegisterPatientRoutes mounts the patient-side chat API; the caller
// wraps the router in the patient session middleware.
func RegisterPatientRoutes(r chi.Router, h *Handler) {
	r.Get("/messages", h.ListMessages)
	r.Post("/messages", h.SendMessage)
	r.Delete("/messages/{doctor}", h.ClearConversation)
	r.Get("/doctors", h.ListDoctors)
}

// RegisterDoctorRoutes mounts the doctor-side chat API.
func RegisterDoctorRoutes(r chi.Router, h *Handler) {
	r.Get("/messages", h.ListMessages)
	r.Post("/messages", h.SendMessage)
}
