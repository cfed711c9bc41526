package chat

import (
	"context"
	"errors"
	"strings"

	"medconnect/internal/platform/logger"
)

var (
	ErrEmptyMessage = errors.New("message text is empty")
	ErrBadSender    = errors.New("sender must be patient or doctor")
)

type Service interface {
	// Send stores a message written by sender ("patient" or
	// "doctor"); the sender's own username fills the matching side
	// of the conversation.
	Send(ctx context.Context, sender, senderName, counterpart, text string) (*Message, error)
	MessagesForPatient(ctx context.Context, patient string) ([]Message, error)
	MessagesForDoctor(ctx context.Context, doctor string) ([]Message, error)
	ClearConversation(ctx context.Context, patient, doctor string) error
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{repo: repo, log: log.With("service", "chat")}
}

func (s *service) Send(ctx context.Context, sender, senderName, counterpart, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	m := &Message{Text: text, Sender: sender}
	switch sender {
	case "patient":
		m.Patient, m.Doctor = senderName, counterpart
	case "doctor":
		m.Patient, m.Doctor = counterpart, senderName
	default:
		return nil, ErrBadSender
	}

	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	s.log.Debug("message stored", "patient", m.Patient, "doctor", m.Doctor, "sender", sender)
	return m, nil
}

func (s *service) MessagesForPatient(ctx context.Context, patient string) ([]Message, error) {
	return s.repo.ListByPatient(ctx, patient)
}

func (s *service) MessagesForDoctor(ctx context.Context, doctor string) ([]Message, error) {
	return s.repo.ListByDoctor(ctx, doctor)
}

func (s *service) ClearConversation(ctx context.Context, patient, doctor string) error {
	return s.repo.DeleteConversation(ctx, patient, doctor)
}
