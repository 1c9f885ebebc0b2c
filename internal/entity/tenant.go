package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant represents a tenant for data transfer between layers.
type Tenant struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
