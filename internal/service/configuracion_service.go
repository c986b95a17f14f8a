package service

import (
	"context"

	"cupogas/internal/apperror"
	"cupogas/internal/dto"
	"cupogas/internal/model"
	"cupogas/internal/repository"

	"github.com/shopspring/decimal"
)

// ConfiguracionService manages system-wide settings. Updates follow a
// two-step protocol: persist the setting, then run a reconciliation pass over
// the dependent collection. The pass is idempotent, so re-running it after an
// interrupted update is safe.
type ConfiguracionService interface {
	Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error)
	// ActualizarPrecios saves the new prices and propagates each one to every
	// pump of the matching fuel type.
	ActualizarPrecios(ctx context.Context, req dto.ActualizarPreciosRequest) error
	// ActualizarLimites saves the new limits and sets every cliente's
	// limite_combustible to the daily limit. Consumption is untouched.
	ActualizarLimites(ctx context.Context, req dto.ActualizarLimitesRequest) error
}

type configuracionService struct {
	repo      repository.ConfiguracionRepository
	estacion  repository.EstacionRepository
	usuarios  repository.UsuarioRepository
}

func NewConfiguracionService(
	repo repository.ConfiguracionRepository,
	estacion repository.EstacionRepository,
	usuarios repository.UsuarioRepository,
) ConfiguracionService {
	return &configuracionService{repo: repo, estacion: estacion, usuarios: usuarios}
}

func (s *configuracionService) Obtener(ctx context.Context) (*dto.ConfiguracionResponse, error) {
	cfg, err := s.repo.Obtener(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ConfiguracionResponse{
		Precios: dto.ActualizarPreciosRequest{
			Gasolina: cfg.PrecioGasolina,
			Diesel:   cfg.PrecioDiesel,
			Premium:  cfg.PrecioPremium,
		},
		Limites: dto.ActualizarLimitesRequest{
			Diario:  cfg.LimiteDiario,
			Mensual: cfg.LimiteMensual,
		},
	}, nil
}

func (s *configuracionService) ActualizarPrecios(ctx context.Context, req dto.ActualizarPreciosRequest) error {
	if req.Gasolina.LessThanOrEqual(decimal.Zero) ||
		req.Diesel.LessThanOrEqual(decimal.Zero) ||
		req.Premium.LessThanOrEqual(decimal.Zero) {
		return apperror.New(apperror.Validacion, "Los precios deben ser mayores a cero")
	}

	cfg, err := s.repo.Obtener(ctx)
	if err != nil {
		return err
	}
	cfg.PrecioGasolina = req.Gasolina
	cfg.PrecioDiesel = req.Diesel
	cfg.PrecioPremium = req.Premium
	if err := s.repo.Guardar(ctx, cfg); err != nil {
		return err
	}

	// Reconciliation pass: fan the saved prices out to the pumps.
	for tipo, precio := range map[string]decimal.Decimal{
		model.CombustibleGasolina: req.Gasolina,
		model.CombustibleDiesel:   req.Diesel,
		model.CombustiblePremium:  req.Premium,
	} {
		if err := s.estacion.ActualizarPrecioPorTipo(ctx, tipo, precio); err != nil {
			return err
		}
	}
	return nil
}

func (s *configuracionService) ActualizarLimites(ctx context.Context, req dto.ActualizarLimitesRequest) error {
	if req.Diario.LessThanOrEqual(decimal.Zero) || req.Mensual.LessThanOrEqual(decimal.Zero) {
		return apperror.New(apperror.Validacion, "Los límites deben ser mayores a cero")
	}

	cfg, err := s.repo.Obtener(ctx)
	if err != nil {
		return err
	}
	cfg.LimiteDiario = req.Diario
	cfg.LimiteMensual = req.Mensual
	if err := s.repo.Guardar(ctx, cfg); err != nil {
		return err
	}

	// Reconciliation pass: every cliente's ceiling becomes the daily limit.
	return s.usuarios.ActualizarLimiteClientes(ctx, req.Diario)
}
