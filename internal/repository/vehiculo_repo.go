package repository

import (
	"context"

	"cupogas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehiculoRepository defines the data access contract for vehicles.
type VehiculoRepository interface {
	Create(ctx context.Context, v *model.Vehiculo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error)

	// FindByPlaca resolves a plate case-insensitively. Rechazados are
	// excluded: for the dispensing flow they behave as if removed.
	FindByPlaca(ctx context.Context, placa string) (*model.Vehiculo, error)

	ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Vehiculo, error)
	ListPendientes(ctx context.Context) ([]model.Vehiculo, error)
	Update(ctx context.Context, v *model.Vehiculo) error
	DB() *gorm.DB
}

type vehiculoRepo struct{ db *gorm.DB }

func NewVehiculoRepository(db *gorm.DB) VehiculoRepository { return &vehiculoRepo{db: db} }

func (r *vehiculoRepo) Create(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *vehiculoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *vehiculoRepo) FindByPlaca(ctx context.Context, placa string) (*model.Vehiculo, error) {
	var v model.Vehiculo
	err := r.db.WithContext(ctx).
		Where("LOWER(placa) = LOWER(?) AND estado <> ?", placa, model.VehiculoRechazado).
		First(&v).Error
	return &v, err
}

func (r *vehiculoRepo) ListByUsuario(ctx context.Context, usuarioID uuid.UUID) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).
		Where("usuario_id = ? AND estado <> ?", usuarioID, model.VehiculoRechazado).
		Order("created_at ASC").
		Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) ListPendientes(ctx context.Context) ([]model.Vehiculo, error) {
	var vehiculos []model.Vehiculo
	err := r.db.WithContext(ctx).
		Where("estado = ?", model.VehiculoPendiente).
		Order("created_at ASC").
		Preload("Usuario").
		Find(&vehiculos).Error
	return vehiculos, err
}

func (r *vehiculoRepo) Update(ctx context.Context, v *model.Vehiculo) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *vehiculoRepo) DB() *gorm.DB { return r.db }
