package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat line between a patient and a doctor. Patient
// and Doctor carry usernames; Sender says which side wrote it.
type Message struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Patient   string    `json:"patient" db:"patient"`
	Doctor    string    `json:"doctor" db:"doctor"`
	Text      string    `json:"text" db:"text"`
	Sender    string    `json:"sender" db:"sender"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
