package model

import (
	"time"

	"github.com/google/uuid"
)

// Estado values for Vehiculo.
// Rechazados se conservan para auditoría en lugar de borrarse; quedan fuera
// de la lista de pendientes y de la búsqueda por placa del despacho.
const (
	VehiculoPendiente = "pendiente"
	VehiculoAprobado  = "aprobado"
	VehiculoRechazado = "rechazado"
)

// Vehiculo belongs to a cliente and must be approved by a gerente before it
// can load fuel.
type Vehiculo struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index"`
	Placa     string    `gorm:"index;not null"`
	Chasis    string    `gorm:"not null"`
	Foto      *string
	Estado    string `gorm:"type:varchar(20);not null;default:'pendiente'"`
	// AprobadoPor / AprobadoEn are set only when Estado transitions to aprobado.
	AprobadoPor *uuid.UUID `gorm:"type:uuid"`
	AprobadoEn  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (v *Vehiculo) Aprobado() bool { return v.Estado == VehiculoAprobado }
