package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"vitrine/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, name, email, message, company, read, created_at, updated_at`

func (db *DB) InsertContactMessage(ctx context.Context, req models.CreateContactRequest) (*models.ContactMessage, error) {
	query := `
		INSERT INTO contact_messages (name, email, message, company)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + contactColumns

	msg, err := scanContactMessage(db.Pool.QueryRow(ctx, query,
		req.Name, req.Email, req.Message, req.Company))
	if err != nil {
		return nil, fmt.Errorf("failed to insert contact message: %w", err)
	}

	log.Printf("Saved contact message from %s (ID: %s)", msg.Email, msg.ID)
	return msg, nil
}

// ListContactMessages returns all messages newest first.
func (db *DB) ListContactMessages(ctx context.Context) ([]models.ContactMessage, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contact_messages
		ORDER BY created_at DESC
	`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	messages := []models.ContactMessage{}
	for rows.Next() {
		msg, err := scanContactMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, *msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact messages: %w", err)
	}

	return messages, nil
}

func (db *DB) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM contact_messages WHERE id = $1`

	result, err := db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteContactMessages removes every message whose id is in ids and
// returns how many rows were actually deleted. Unknown ids are
// silently skipped.
func (db *DB) DeleteContactMessages(ctx context.Context, ids []uuid.UUID) (int64, error) {
	query := `DELETE FROM contact_messages WHERE id = ANY($1)`

	result, err := db.Pool.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete contact messages: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanContactMessage(row rowScanner) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	err := row.Scan(
		&msg.ID,
		&msg.Name,
		&msg.Email,
		&msg.Message,
		&msg.Company,
		&msg.Read,
		&msg.CreatedAt,
		&msg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

// GetContactMessage resolves one message by id.
func (db *DB) GetContactMessage(ctx context.Context, id uuid.UUID) (*models.ContactMessage, error) {
	query := `
		SELECT ` + contactColumns + `
		FROM contact_messages
		WHERE id = $1
	`

	msg, err := scanContactMessage(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}

	return msg, nil
}
