package repository

import (
	"context"

	"cupogas/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EstacionRepository defines the data access contract for stations and pumps.
type EstacionRepository interface {
	CreateEstacion(ctx context.Context, e *model.Estacion) error
	ListEstaciones(ctx context.Context) ([]model.Estacion, error)

	// FindSurtidorByID is a flat search across all stations' pumps.
	FindSurtidorByID(ctx context.Context, id uuid.UUID) (*model.Surtidor, error)

	// DescontarStockTx decrements stock_actual floor-clamped at zero inside a
	// dispatch transaction. Stock sufficiency is validated by the engine
	// before commit, not here.
	DescontarStockTx(tx *gorm.DB, id uuid.UUID, litros decimal.Decimal) error

	// ActualizarPrecioPorTipo sets precio_por_litro on every pump of the
	// given fuel type. Idempotent.
	ActualizarPrecioPorTipo(ctx context.Context, tipo string, precio decimal.Decimal) error

	DB() *gorm.DB
}

type estacionRepo struct{ db *gorm.DB }

func NewEstacionRepository(db *gorm.DB) EstacionRepository { return &estacionRepo{db: db} }

func (r *estacionRepo) CreateEstacion(ctx context.Context, e *model.Estacion) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *estacionRepo) ListEstaciones(ctx context.Context) ([]model.Estacion, error) {
	var estaciones []model.Estacion
	err := r.db.WithContext(ctx).
		Preload("Surtidores", func(db *gorm.DB) *gorm.DB { return db.Order("numero ASC") }).
		Order("nombre ASC").
		Find(&estaciones).Error
	return estaciones, err
}

func (r *estacionRepo) FindSurtidorByID(ctx context.Context, id uuid.UUID) (*model.Surtidor, error) {
	var s model.Surtidor
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return &s, err
}

func (r *estacionRepo) DescontarStockTx(tx *gorm.DB, id uuid.UUID, litros decimal.Decimal) error {
	// MAX(x, 0) keeps the 0 <= stock invariant even for an under-stocked
	// dispatch that was validated against stale state.
	return tx.Model(&model.Surtidor{}).Where("id = ?", id).
		Update("stock_actual", gorm.Expr("MAX(stock_actual - ?, 0)", litros)).Error
}

func (r *estacionRepo) ActualizarPrecioPorTipo(ctx context.Context, tipo string, precio decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Surtidor{}).
		Where("tipo_combustible = ?", tipo).
		Update("precio_por_litro", precio).Error
}

func (r *estacionRepo) DB() *gorm.DB { return r.db }
