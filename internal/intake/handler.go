// Package intake exposes the symptom questionnaire over HTTP: one
// question per round trip, ending in a ranked prediction the patient
// can also download as a PDF report.
package intake

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"medconnect/internal/diagnosis"
	"medconnect/internal/interview"
	"medconnect/internal/platform/logger"
	"medconnect/internal/session"
)

type Handler struct {
	svc     *diagnosis.Service
	reports ReportRenderer
	log     *logger.Logger
}

// ReportRenderer turns a prediction into PDF bytes.
type ReportRenderer interface {
	Render(patient string, p diagnosis.Prediction) ([]byte, error)
}

func NewHandler(svc *diagnosis.Service, reports ReportRenderer, log *logger.Logger) *Handler {
	return &Handler{svc: svc, reports: reports, log: log.With("handler", "intake")}
}

type answerRequest struct {
	Answer string `json:"answer"`
}

// CurrentQuestion returns the question the interview is waiting on,
// starting a fresh interview when none is in progress.
func (h *Handler) CurrentQuestion(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	s.Lock()
	question, err := h.svc.Begin(&s.Interview)
	s.Unlock()
	if err != nil {
		http.Error(w, "Interview unavailable", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"question": question})
}

// SubmitAnswer advances the interview by one answer and returns
// either the next question or the finished prediction.
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	// The step is a read-modify-write on the interview state, so it
	// runs under the session lock.
	s.Lock()
	step, err := h.svc.Step(&s.Interview, req.Answer)
	if err == nil && step.Prediction != nil {
		s.LastPrediction = step.Prediction
	}
	s.Unlock()

	if err != nil {
		switch {
		case errors.Is(err, diagnosis.ErrInvalidAge):
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
				"error": "Age must be a number. The interview has been restarted, please try again.",
			})
		case errors.Is(err, interview.ErrOutOfSequence):
			writeJSON(w, http.StatusConflict, map[string]string{
				"error": "No question is pending. Start a new interview.",
			})
		default:
			h.log.Error("interview step failed", "error", err)
			http.Error(w, "Prediction failed", http.StatusInternalServerError)
		}
		return
	}

	if step.Prediction != nil {
		writeJSON(w, http.StatusOK, step.Prediction)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"question": step.Question})
}

// DownloadReport serves the session's last prediction as a PDF.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	s.Lock()
	prediction := s.LastPrediction
	s.Unlock()
	if prediction == nil {
		http.Error(w, "No prediction available yet", http.StatusNotFound)
		return
	}

	pdfBytes, err := h.reports.Render(s.Username, *prediction)
	if err != nil {
		h.log.Error("report rendering failed", "error", err)
		http.Error(w, "Report generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "medconnect_report.pdf"))
	w.Write(pdfBytes)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/predict", h.CurrentQuestion)
	r.Post("/predict", h.SubmitAnswer)
	r.Get("/predict/report", h.DownloadReport)
}
