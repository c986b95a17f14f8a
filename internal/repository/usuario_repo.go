package repository

import (
	"context"

	"cupogas/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UsuarioRepository defines the data access contract for users.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error)
	FindByCI(ctx context.Context, ci string) (*model.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	ListClientes(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error

	// IncrementarConsumoTx adds litros to combustible_usado inside a dispatch
	// transaction — callers must pass the tx instance.
	IncrementarConsumoTx(tx *gorm.DB, id uuid.UUID, litros decimal.Decimal) error

	// ActualizarLimiteClientes sets limite_combustible for every cliente
	// without touching combustible_usado. Idempotent.
	ActualizarLimiteClientes(ctx context.Context, limite decimal.Decimal) error

	// ReiniciarConsumoClientes zeroes combustible_usado for every cliente
	// (administrative reset).
	ReiniciarConsumoClientes(ctx context.Context) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return &u, err
}

func (r *usuarioRepo) FindByCI(ctx context.Context, ci string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("ci = ?", ci).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) ListClientes(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).
		Where("rol = ?", model.RolCliente).
		Order("nombre ASC").
		Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) IncrementarConsumoTx(tx *gorm.DB, id uuid.UUID, litros decimal.Decimal) error {
	return tx.Model(&model.Usuario{}).Where("id = ?", id).
		Update("combustible_usado", gorm.Expr("combustible_usado + ?", litros)).Error
}

func (r *usuarioRepo) ActualizarLimiteClientes(ctx context.Context, limite decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("rol = ?", model.RolCliente).
		Update("limite_combustible", limite).Error
}

func (r *usuarioRepo) ReiniciarConsumoClientes(ctx context.Context) error {
	return r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("rol = ?", model.RolCliente).
		Update("combustible_usado", decimal.Zero).Error
}

func (r *usuarioRepo) DB() *gorm.DB { return r.db }
