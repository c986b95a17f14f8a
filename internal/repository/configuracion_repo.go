package repository

import (
	"context"
	"errors"

	"cupogas/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Default settings, applied when no configuracion row exists yet.
// Prices are Bs. per liter.
var (
	PrecioGasolinaDefault = decimal.NewFromFloat(3.74)
	PrecioDieselDefault   = decimal.NewFromFloat(3.72)
	PrecioPremiumDefault  = decimal.NewFromFloat(4.20)
	LimiteDiarioDefault   = decimal.NewFromInt(120)
	LimiteMensualDefault  = decimal.NewFromInt(3600)
)

// ConfiguracionRepository manages the singleton settings row.
type ConfiguracionRepository interface {
	// Obtener returns the settings row, creating it with defaults when absent.
	Obtener(ctx context.Context) (*model.Configuracion, error)
	Guardar(ctx context.Context, c *model.Configuracion) error
	DB() *gorm.DB
}

type configuracionRepo struct{ db *gorm.DB }

func NewConfiguracionRepository(db *gorm.DB) ConfiguracionRepository {
	return &configuracionRepo{db: db}
}

func (r *configuracionRepo) Obtener(ctx context.Context) (*model.Configuracion, error) {
	var c model.Configuracion
	err := r.db.WithContext(ctx).First(&c, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = model.Configuracion{
			ID:             1,
			PrecioGasolina: PrecioGasolinaDefault,
			PrecioDiesel:   PrecioDieselDefault,
			PrecioPremium:  PrecioPremiumDefault,
			LimiteDiario:   LimiteDiarioDefault,
			LimiteMensual:  LimiteMensualDefault,
		}
		if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *configuracionRepo) Guardar(ctx context.Context, c *model.Configuracion) error {
	c.ID = 1
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *configuracionRepo) DB() *gorm.DB { return r.db }
