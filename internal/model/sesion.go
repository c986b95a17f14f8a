package model

import (
	"time"

	"github.com/google/uuid"
)

// Sesion persists the identity of the currently signed-in user (single row,
// ID always 1). The user record itself is never duplicated here: reads
// resolve through the usuarios table so quota updates are always visible.
type Sesion struct {
	ID        uint      `gorm:"primaryKey"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default pluralization (sesions → sesiones).
func (Sesion) TableName() string { return "sesiones" }
