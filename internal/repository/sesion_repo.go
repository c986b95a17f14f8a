package repository

import (
	"context"
	"errors"

	"cupogas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrSinSesion is returned when no user is signed in.
var ErrSinSesion = errors.New("no hay sesión activa")

// SesionRepository persists the current-session identity (single row).
type SesionRepository interface {
	Guardar(ctx context.Context, usuarioID uuid.UUID) error
	Obtener(ctx context.Context) (uuid.UUID, error)
	Limpiar(ctx context.Context) error
}

type sesionRepo struct{ db *gorm.DB }

func NewSesionRepository(db *gorm.DB) SesionRepository { return &sesionRepo{db: db} }

func (r *sesionRepo) Guardar(ctx context.Context, usuarioID uuid.UUID) error {
	return r.db.WithContext(ctx).Save(&model.Sesion{ID: 1, UsuarioID: usuarioID}).Error
}

func (r *sesionRepo) Obtener(ctx context.Context) (uuid.UUID, error) {
	var s model.Sesion
	err := r.db.WithContext(ctx).First(&s, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, ErrSinSesion
	}
	if err != nil {
		return uuid.Nil, err
	}
	return s.UsuarioID, nil
}

func (r *sesionRepo) Limpiar(ctx context.Context) error {
	return r.db.WithContext(ctx).Delete(&model.Sesion{}, "id = ?", 1).Error
}
