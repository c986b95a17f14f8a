package infra

// seed.go — Default demo data, applied per collection only when that
// collection is empty. The values (names, CIs, plates, coordinates, prices,
// stock levels) are the documented demo dataset; the login credentials
// despachador/1234 and gerente/gerente123 are part of the contract.

import (
	"time"

	"cupogas/internal/model"
	"cupogas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

// SeedDefaults populates usuarios, vehiculos, estaciones and configuracion
// when their tables are empty. Safe to call on every startup.
func SeedDefaults(db *gorm.DB) error {
	if err := seedConfiguracion(db); err != nil {
		return err
	}
	if err := seedUsuarios(db); err != nil {
		return err
	}
	if err := seedVehiculos(db); err != nil {
		return err
	}
	return seedEstaciones(db)
}

func seedConfiguracion(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Configuracion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return db.Create(&model.Configuracion{
		ID:             1,
		PrecioGasolina: repository.PrecioGasolinaDefault,
		PrecioDiesel:   repository.PrecioDieselDefault,
		PrecioPremium:  repository.PrecioPremiumDefault,
		LimiteDiario:   repository.LimiteDiarioDefault,
		LimiteMensual:  repository.LimiteMensualDefault,
	}).Error
}

func seedUsuarios(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Usuario{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	usuarios := []model.Usuario{
		{
			ID:                uuid.New(),
			Nombre:            "Juan Pérez",
			CI:                "12345678",
			Rol:               model.RolCliente,
			DiasAsignados:     []string{"Lunes", "Jueves"},
			LimiteCombustible: decimal.NewFromInt(120),
			CombustibleUsado:  decimal.NewFromInt(45),
		},
		{
			ID:                uuid.New(),
			Nombre:            "María González",
			CI:                "87654321",
			Rol:               model.RolCliente,
			DiasAsignados:     []string{"Miércoles", "Sábado"},
			LimiteCombustible: decimal.NewFromInt(120),
			CombustibleUsado:  decimal.NewFromInt(80),
		},
		{
			ID:       uuid.New(),
			Nombre:   "Carlos Despachador",
			CI:       "11111111",
			Rol:      model.RolOperador,
			Username: ptr("despachador"),
			Password: ptr("1234"),
		},
		{
			ID:       uuid.New(),
			Nombre:   "Ana Supervisora",
			CI:       "22222222",
			Rol:      model.RolGerente,
			Username: ptr("gerente"),
			Password: ptr("gerente123"),
		},
	}
	if err := db.Create(&usuarios).Error; err != nil {
		return err
	}
	log.Info().Int("usuarios", len(usuarios)).Msg("datos de demo: usuarios creados")
	return nil
}

func seedVehiculos(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Vehiculo{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var juan, gerente model.Usuario
	if err := db.Where("ci = ?", "12345678").First(&juan).Error; err != nil {
		return err
	}
	if err := db.Where("rol = ?", model.RolGerente).First(&gerente).Error; err != nil {
		return err
	}

	ahora := time.Now()
	vehiculos := []model.Vehiculo{
		{
			ID:          uuid.New(),
			UsuarioID:   juan.ID,
			Placa:       "ABC-123",
			Chasis:      "VIN123456789",
			Estado:      model.VehiculoAprobado,
			AprobadoPor: &gerente.ID,
			AprobadoEn:  &ahora,
		},
		{
			ID:        uuid.New(),
			UsuarioID: juan.ID,
			Placa:     "DEF-456",
			Chasis:    "VIN987654321",
			Estado:    model.VehiculoPendiente,
		},
	}
	return db.Create(&vehiculos).Error
}

func seedEstaciones(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Estacion{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	estaciones := []model.Estacion{
		{
			ID:        uuid.New(),
			Nombre:    "Estación Central",
			Direccion: "Av. Cristo Redentor 1234",
			Lat:       -17.783,
			Lng:       -63.182,
			Estado:    model.EstacionActiva,
			Surtidores: []model.Surtidor{
				{
					ID:              uuid.New(),
					Numero:          1,
					TipoCombustible: model.CombustibleGasolina,
					PrecioPorLitro:  repository.PrecioGasolinaDefault,
					StockActual:     decimal.NewFromInt(8500),
					StockMaximo:     decimal.NewFromInt(10000),
					Disponible:      true,
				},
				{
					ID:              uuid.New(),
					Numero:          2,
					TipoCombustible: model.CombustibleDiesel,
					PrecioPorLitro:  repository.PrecioDieselDefault,
					StockActual:     decimal.NewFromInt(7200),
					StockMaximo:     decimal.NewFromInt(10000),
					Disponible:      true,
				},
			},
		},
		{
			ID:        uuid.New(),
			Nombre:    "Estación Norte",
			Direccion: "Av. Banzer 5678",
			Lat:       -17.770,
			Lng:       -63.180,
			Estado:    model.EstacionActiva,
			Surtidores: []model.Surtidor{
				{
					ID:              uuid.New(),
					Numero:          1,
					TipoCombustible: model.CombustibleGasolina,
					PrecioPorLitro:  repository.PrecioGasolinaDefault,
					StockActual:     decimal.NewFromInt(9100),
					StockMaximo:     decimal.NewFromInt(10000),
					Disponible:      true,
				},
				{
					ID:              uuid.New(),
					Numero:          2,
					TipoCombustible: model.CombustiblePremium,
					PrecioPorLitro:  repository.PrecioPremiumDefault,
					StockActual:     decimal.NewFromInt(6800),
					StockMaximo:     decimal.NewFromInt(8000),
					Disponible:      true,
				},
			},
		},
	}
	if err := db.Create(&estaciones).Error; err != nil {
		return err
	}
	log.Info().Int("estaciones", len(estaciones)).Msg("datos de demo: estaciones creadas")
	return nil
}
