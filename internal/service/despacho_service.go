package service

import (
	"context"
	"fmt"
	"time"

	"cupogas/internal/apperror"
	"cupogas/internal/dto"
	"cupogas/internal/infra"
	"cupogas/internal/model"
	"cupogas/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LitrosMaximosPorCarga is the hard per-dispatch ceiling.
var LitrosMaximosPorCarga = decimal.NewFromInt(200)

// DespachoService is the dispensing transaction engine: it validates a
// candidate dispatch against vehicle approval, the owner's quota and the
// pump's stock, then commits ledger entry + quota + stock + notification.
type DespachoService interface {
	Despachar(ctx context.Context, req dto.DespachoRequest) (*dto.CargaResponse, error)
	CargasDeUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.CargaResponse, error)
	ListarCargas(ctx context.Context) ([]dto.CargaResponse, error)
}

type despachoService struct {
	cargaRepo      repository.CargaRepository
	vehiculoRepo   repository.VehiculoRepository
	usuarioRepo    repository.UsuarioRepository
	estacionRepo   repository.EstacionRepository
	notificacRepo  repository.NotificacionRepository
	rutaRecibos    string // empty disables PDF receipts
}

func NewDespachoService(
	cargaRepo repository.CargaRepository,
	vehiculoRepo repository.VehiculoRepository,
	usuarioRepo repository.UsuarioRepository,
	estacionRepo repository.EstacionRepository,
	notificacRepo repository.NotificacionRepository,
	rutaRecibos string,
) DespachoService {
	return &despachoService{
		cargaRepo:     cargaRepo,
		vehiculoRepo:  vehiculoRepo,
		usuarioRepo:   usuarioRepo,
		estacionRepo:  estacionRepo,
		notificacRepo: notificacRepo,
		rutaRecibos:   rutaRecibos,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Despachar ────────────────────────────────────────────────────────────────
// Pre-flight checks run in a fixed order, first failure wins, with no effects
// until every check passes:
//   1. vehicle lookup by plate (case-insensitive)
//   2. vehicle must be aprobado
//   3. 0 < litros <= 200
//   4. owner quota: usado + litros <= limite
//   5. pump lookup
//   6. pump stock >= litros
// Commit then applies all four effects inside one transaction: append carga
// (price snapshotted now), increment owner's consumption, decrement pump
// stock, append success notification. Retries are not deduplicated — every
// call appends a new ledger entry.

func (s *despachoService) Despachar(ctx context.Context, req dto.DespachoRequest) (*dto.CargaResponse, error) {
	if err := validar(req); err != nil {
		return nil, err
	}
	operadorID, err := uuid.Parse(req.OperadorID)
	if err != nil {
		return nil, apperror.New(apperror.Validacion, "operador_id inválido")
	}
	surtidorID, err := uuid.Parse(req.SurtidorID)
	if err != nil {
		return nil, apperror.New(apperror.Validacion, "surtidor_id inválido")
	}

	// 1. Vehicle by plate
	vehiculo, err := s.vehiculoRepo.FindByPlaca(ctx, req.Placa)
	if err != nil {
		return nil, apperror.New(apperror.NoEncontrado, "Vehículo no encontrado")
	}

	// 2. Approval gate
	if !vehiculo.Aprobado() {
		return nil, apperror.New(apperror.NoAprobado, "Este vehículo no está aprobado para cargar combustible")
	}

	// 3. Amount bound
	if req.Litros.LessThanOrEqual(decimal.Zero) || req.Litros.GreaterThan(LitrosMaximosPorCarga) {
		return nil, apperror.New(apperror.CantidadInvalida, "La cantidad de litros debe ser entre 1 y 200")
	}

	// 4. Owner quota
	cliente, err := s.usuarioRepo.FindByID(ctx, vehiculo.UsuarioID)
	if err != nil {
		return nil, apperror.New(apperror.NoEncontrado, "Propietario del vehículo no encontrado")
	}
	if cliente.CombustibleUsado.Add(req.Litros).GreaterThan(cliente.LimiteCombustible) {
		return nil, apperror.New(apperror.CupoExcedido,
			"El cliente ha excedido su límite de combustible. Disponible: %sL",
			cliente.CupoDisponible())
	}

	// 5. Pump lookup
	surtidor, err := s.estacionRepo.FindSurtidorByID(ctx, surtidorID)
	if err != nil {
		return nil, apperror.New(apperror.NoEncontrado, "Surtidor no encontrado")
	}

	// 6. Stock
	if surtidor.StockActual.LessThan(req.Litros) {
		return nil, apperror.New(apperror.StockInsuficiente,
			"Stock insuficiente. Disponible: %sL", surtidor.StockActual)
	}

	carga := model.Carga{
		ID:             uuid.New(),
		VehiculoID:     vehiculo.ID,
		UsuarioID:      cliente.ID,
		SurtidorID:     surtidor.ID,
		OperadorID:     operadorID,
		Litros:         req.Litros,
		PrecioPorLitro: surtidor.PrecioPorLitro,
		Total:          req.Litros.Mul(surtidor.PrecioPorLitro),
		Timestamp:      time.Now(),
		Aprobada:       true,
		AprobadaPor:    &operadorID,
	}

	txErr := runTx(ctx, s.cargaRepo.DB(), func(tx *gorm.DB) error {
		if err := s.cargaRepo.CreateTx(tx, &carga); err != nil {
			return err
		}
		if err := s.usuarioRepo.IncrementarConsumoTx(tx, cliente.ID, req.Litros); err != nil {
			return err
		}
		if err := s.estacionRepo.DescontarStockTx(tx, surtidor.ID, req.Litros); err != nil {
			return err
		}
		return s.notificacRepo.CreateTx(tx, &model.Notificacion{
			ID:        uuid.New(),
			UsuarioID: cliente.ID,
			Titulo:    "Carga Completada",
			Mensaje: fmt.Sprintf("Se han cargado %sL de combustible por Bs. %s.",
				carga.Litros, carga.Total.StringFixed(2)),
			Tipo: model.NotificacionSuccess,
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	// Receipt is best-effort: a PDF failure never fails a committed dispatch.
	if s.rutaRecibos != "" {
		if _, err := infra.GenerarReciboPDF(&carga, vehiculo, cliente, surtidor, s.rutaRecibos); err != nil {
			log.Warn().Err(err).Str("carga", carga.ID.String()).Msg("no se pudo generar el recibo")
		}
	}

	log.Info().
		Str("placa", vehiculo.Placa).
		Str("litros", carga.Litros.String()).
		Str("total", carga.Total.StringFixed(2)).
		Msg("carga despachada")

	return cargaToResponse(&carga), nil
}

func (s *despachoService) CargasDeUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.CargaResponse, error) {
	cargas, err := s.cargaRepo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return cargasToResponse(cargas), nil
}

func (s *despachoService) ListarCargas(ctx context.Context) ([]dto.CargaResponse, error) {
	cargas, err := s.cargaRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return cargasToResponse(cargas), nil
}

func cargasToResponse(cargas []model.Carga) []dto.CargaResponse {
	resp := make([]dto.CargaResponse, 0, len(cargas))
	for i := range cargas {
		resp = append(resp, *cargaToResponse(&cargas[i]))
	}
	return resp
}

func cargaToResponse(c *model.Carga) *dto.CargaResponse {
	return &dto.CargaResponse{
		ID:             c.ID.String(),
		VehiculoID:     c.VehiculoID.String(),
		UsuarioID:      c.UsuarioID.String(),
		SurtidorID:     c.SurtidorID.String(),
		OperadorID:     c.OperadorID.String(),
		Litros:         c.Litros,
		PrecioPorLitro: c.PrecioPorLitro,
		Total:          c.Total,
		Timestamp:      c.Timestamp.Format("2006-01-02T15:04:05Z"),
		Aprobada:       c.Aprobada,
	}
}
