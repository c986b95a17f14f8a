package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipo values for Notificacion.
const (
	NotificacionInfo    = "info"
	NotificacionSuccess = "success"
	NotificacionWarning = "warning"
	NotificacionError   = "error"
)

// Notificacion is an append-only per-user message. Only the Leida flag is
// ever mutated after creation, and only by the owner.
type Notificacion struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Titulo    string    `gorm:"not null"`
	Mensaje   string    `gorm:"not null"`
	Tipo      string    `gorm:"type:varchar(20);not null"`
	Leida     bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName overrides GORM's default pluralization (notificacions → notificaciones).
func (Notificacion) TableName() string { return "notificaciones" }
