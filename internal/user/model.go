package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// User is an account record. PasswordHash never leaves this package's
// service layer; the json tag keeps it out of any response by
// accident.
type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Specialty    string    `json:"specialty,omitempty" db:"specialty"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
