package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a message submitted through the public contact
// form. Read defaults to false; there is no endpoint that flips it yet.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	Company   *string   `json:"company,omitempty" db:"company"`
	Read      bool      `json:"read" db:"read"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateContactRequest is the payload for the public contact form.
type CreateContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Message string  `json:"message" binding:"required"`
	Company *string `json:"company"`
}

// DeleteManyRequest is the payload for bulk message deletion.
type DeleteManyRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}
