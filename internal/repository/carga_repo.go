package repository

import (
	"context"

	"cupogas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CargaRepository defines the data access contract for the dispatch ledger.
// The ledger is append-only: there is deliberately no Update or Delete.
type CargaRepository interface {
	// CreateTx appends a ledger entry inside a dispatch transaction.
	CreateTx(tx *gorm.DB, c *model.Carga) error

	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Carga, error)
	ListAll(ctx context.Context) ([]model.Carga, error)
	DB() *gorm.DB
}

type cargaRepo struct{ db *gorm.DB }

func NewCargaRepository(db *gorm.DB) CargaRepository { return &cargaRepo{db: db} }

func (r *cargaRepo) CreateTx(tx *gorm.DB, c *model.Carga) error {
	return tx.Create(c).Error
}

func (r *cargaRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Carga, error) {
	var cargas []model.Carga
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", usuarioID).
		Order("timestamp DESC").
		Find(&cargas).Error
	return cargas, err
}

func (r *cargaRepo) ListAll(ctx context.Context) ([]model.Carga, error) {
	var cargas []model.Carga
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Preload("Vehiculo").
		Find(&cargas).Error
	return cargas, err
}

func (r *cargaRepo) DB() *gorm.DB { return r.db }
