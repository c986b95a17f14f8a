package repository

import (
	"context"

	"cupogas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificacionRepository defines the data access contract for notifications.
type NotificacionRepository interface {
	Create(ctx context.Context, n *model.Notificacion) error

	// CreateTx appends a notification inside a dispatch transaction.
	CreateTx(tx *gorm.DB, n *model.Notificacion) error

	// ListByUsuario returns the user's notifications, most recent first.
	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Notificacion, error)

	// MarcarLeida sets leida=true; unknown ids are a no-op.
	MarcarLeida(ctx context.Context, id uuid.UUID) error

	DB() *gorm.DB
}

type notificacionRepo struct{ db *gorm.DB }

func NewNotificacionRepository(db *gorm.DB) NotificacionRepository {
	return &notificacionRepo{db: db}
}

func (r *notificacionRepo) Create(ctx context.Context, n *model.Notificacion) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *notificacionRepo) CreateTx(tx *gorm.DB, n *model.Notificacion) error {
	return tx.Create(n).Error
}

func (r *notificacionRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Notificacion, error) {
	var notificaciones []model.Notificacion
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("created_at DESC").
		Find(&notificaciones).Error
	return notificaciones, err
}

func (r *notificacionRepo) MarcarLeida(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Notificacion{}).
		Where("id = ?", id).
		Update("leida", true).Error
}

func (r *notificacionRepo) DB() *gorm.DB { return r.db }
