package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactSubmission represents one contact-form submission
type ContactSubmission struct {
	Name         string   `json:"name" validate:"required,min=2,max=200"`
	Email        string   `json:"email" validate:"required,email"`
	Organization string   `json:"organization,omitempty" validate:"max=200"`
	Message      string   `json:"message" validate:"required,min=10,max=5000"`
	PagesVisited []string `json:"pages_visited,omitempty" validate:"max=50,dive,max=500"`
}

// Lead is the stored outcome of a contact submission
type Lead struct {
	ID        uuid.UUID `json:"lead_id"`
	CreatedAt time.Time `json:"created_at"`
}
