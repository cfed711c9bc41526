package chat

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, m *Message) error
	ListByPatient(ctx context.Context, patient string) ([]Message, error)
	ListByDoctor(ctx context.Context, doctor string) ([]Message, error)
	DeleteConversation(ctx context.Context, patient, doctor string) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Save(ctx context.Context, m *Message) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	query := `
		INSERT INTO messages (id, patient, doctor, text, sender, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, m.ID, m.Patient, m.Doctor, m.Text, m.Sender); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListByPatient(ctx context.Context, patient string) ([]Message, error) {
	return r.list(ctx, `SELECT id, patient, doctor, text, sender, created_at FROM messages WHERE patient = $1 ORDER BY created_at`, patient)
}

func (r *postgresRepo) ListByDoctor(ctx context.Context, doctor string) ([]Message, error) {
	return r.list(ctx, `SELECT id, patient, doctor, text, sender, created_at FROM messages WHERE doctor = $1 ORDER BY created_at`, doctor)
}

func (r *postgresRepo) list(ctx context.Context, query, arg string) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Patient, &m.Doctor, &m.Text, &m.Sender, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *postgresRepo) DeleteConversation(ctx context.Context, patient, doctor string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE patient = $1 AND doctor = $2`, patient, doctor)
	return err
}
