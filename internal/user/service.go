package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"medconnect/internal/platform/logger"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidSpecialty   = errors.New("unknown specialty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("username and password are required")
)

type Service interface {
	SignupPatient(ctx context.Context, username, password, confirm string) (*User, error)
	SignupDoctor(ctx context.Context, username, password, confirm, specialty string) (*User, error)
	Login(ctx context.Context, username, password, role string) (*User, error)
	ListDoctors(ctx context.Context) ([]User, error)
	Specialties() []string
}

type service struct {
	repo        Repository
	specialties []string
	bcryptCost  int
	log         *logger.Logger
}

// NewService builds the account service. specialties is the fixed
// list a doctor must pick from (it comes from the model artifact, so
// referrals and signups agree on the same names).
func NewService(repo Repository, specialties []string, bcryptCost int, log *logger.Logger) Service {
	return &service{
		repo:        repo,
		specialties: specialties,
		bcryptCost:  bcryptCost,
		log:         log.With("service", "user"),
	}
}

func (s *service) SignupPatient(ctx context.Context, username, password, confirm string) (*User, error) {
	return s.signup(ctx, username, password, confirm, RolePatient, "")
}

func (s *service) SignupDoctor(ctx context.Context, username, password, confirm, specialty string) (*User, error) {
	if !s.validSpecialty(specialty) {
		return nil, ErrInvalidSpecialty
	}
	return s.signup(ctx, username, password, confirm, RoleDoctor, specialty)
}

func (s *service) signup(ctx context.Context, username, password, confirm, role, specialty string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}
	if password != confirm {
		return nil, ErrPasswordMismatch
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Specialty:    specialty,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("user registered", "username", username, "role", role)
	return u, nil
}

// Login checks credentials for the given role. Role is part of the
// match: a doctor's credentials do not open a patient session.
func (s *service) Login(ctx context.Context, username, password, role string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if u.Role != role {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *service) ListDoctors(ctx context.Context) ([]User, error) {
	return s.repo.ListDoctors(ctx)
}

func (s *service) Specialties() []string {
	return s.specialties
}

func (s *service) validSpecialty(specialty string) bool {
	for _, sp := range s.specialties {
		if sp == specialty {
			return true
		}
	}
	return false
}
