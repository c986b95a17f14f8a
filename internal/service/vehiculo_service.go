package service

import (
	"context"
	"fmt"
	"time"

	"cupogas/internal/apperror"
	"cupogas/internal/dto"
	"cupogas/internal/model"
	"cupogas/internal/repository"

	"github.com/google/uuid"
)

// VehiculoService handles the vehicle lifecycle: un vehículo nace pendiente,
// un gerente lo aprueba (terminal) o lo rechaza. Rechazados se conservan con
// estado "rechazado" en lugar de borrarse.
type VehiculoService interface {
	Registrar(ctx context.Context, req dto.RegistroVehiculoRequest) (*dto.VehiculoResponse, error)
	// Aprobar is a silent no-op when the vehicle id is unknown: the caller
	// must treat absence of state change as not-found.
	Aprobar(ctx context.Context, vehiculoID, aprobadorID uuid.UUID) error
	// Rechazar notifies the owner and retains the record as rechazado.
	// Unknown ids and already-rejected vehicles are a no-op, not an error.
	Rechazar(ctx context.Context, vehiculoID uuid.UUID) error
	VehiculosDeUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.VehiculoResponse, error)
	VehiculosPendientes(ctx context.Context) ([]dto.VehiculoResponse, error)
}

type vehiculoService struct {
	repo           repository.VehiculoRepository
	notificaciones NotificacionService
}

func NewVehiculoService(repo repository.VehiculoRepository, notificaciones NotificacionService) VehiculoService {
	return &vehiculoService{repo: repo, notificaciones: notificaciones}
}

func (s *vehiculoService) Registrar(ctx context.Context, req dto.RegistroVehiculoRequest) (*dto.VehiculoResponse, error) {
	if err := validar(req); err != nil {
		return nil, err
	}
	usuarioID, err := uuid.Parse(req.UsuarioID)
	if err != nil {
		return nil, apperror.New(apperror.Validacion, "usuario_id inválido")
	}

	vehiculo := &model.Vehiculo{
		ID:        uuid.New(),
		UsuarioID: usuarioID,
		Placa:     req.Placa,
		Chasis:    req.Chasis,
		Foto:      req.Foto,
		Estado:    model.VehiculoPendiente,
	}
	if err := s.repo.Create(ctx, vehiculo); err != nil {
		return nil, err
	}

	_ = s.notificaciones.Agregar(ctx, usuarioID, "Vehículo Registrado",
		fmt.Sprintf("Tu vehículo %s ha sido registrado y está pendiente de aprobación.", req.Placa),
		model.NotificacionInfo)

	return vehiculoToResponse(vehiculo), nil
}

func (s *vehiculoService) Aprobar(ctx context.Context, vehiculoID, aprobadorID uuid.UUID) error {
	vehiculo, err := s.repo.FindByID(ctx, vehiculoID)
	if err != nil {
		return nil
	}

	ahora := time.Now()
	vehiculo.Estado = model.VehiculoAprobado
	vehiculo.AprobadoPor = &aprobadorID
	vehiculo.AprobadoEn = &ahora
	if err := s.repo.Update(ctx, vehiculo); err != nil {
		return err
	}

	return s.notificaciones.Agregar(ctx, vehiculo.UsuarioID, "Vehículo Aprobado",
		fmt.Sprintf("Tu vehículo %s ha sido aprobado para carga de combustible.", vehiculo.Placa),
		model.NotificacionSuccess)
}

func (s *vehiculoService) Rechazar(ctx context.Context, vehiculoID uuid.UUID) error {
	vehiculo, err := s.repo.FindByID(ctx, vehiculoID)
	if err != nil || vehiculo.Estado == model.VehiculoRechazado {
		return nil
	}

	// The owner is notified before the state change, matching the original
	// reject-then-remove sequence.
	_ = s.notificaciones.Agregar(ctx, vehiculo.UsuarioID, "Vehículo Rechazado",
		fmt.Sprintf("Tu vehículo %s ha sido rechazado. Por favor, contacta con el administrador.", vehiculo.Placa),
		model.NotificacionError)

	vehiculo.Estado = model.VehiculoRechazado
	vehiculo.AprobadoPor = nil
	vehiculo.AprobadoEn = nil
	return s.repo.Update(ctx, vehiculo)
}

func (s *vehiculoService) VehiculosDeUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.VehiculoResponse, error) {
	vehiculos, err := s.repo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	return vehiculosToResponse(vehiculos), nil
}

func (s *vehiculoService) VehiculosPendientes(ctx context.Context) ([]dto.VehiculoResponse, error) {
	vehiculos, err := s.repo.ListPendientes(ctx)
	if err != nil {
		return nil, err
	}
	return vehiculosToResponse(vehiculos), nil
}

func vehiculosToResponse(vehiculos []model.Vehiculo) []dto.VehiculoResponse {
	resp := make([]dto.VehiculoResponse, 0, len(vehiculos))
	for i := range vehiculos {
		resp = append(resp, *vehiculoToResponse(&vehiculos[i]))
	}
	return resp
}

func vehiculoToResponse(v *model.Vehiculo) *dto.VehiculoResponse {
	resp := &dto.VehiculoResponse{
		ID:        v.ID.String(),
		UsuarioID: v.UsuarioID.String(),
		Placa:     v.Placa,
		Chasis:    v.Chasis,
		Estado:    v.Estado,
		CreatedAt: v.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	if v.AprobadoPor != nil {
		por := v.AprobadoPor.String()
		resp.AprobadoPor = &por
	}
	if v.AprobadoEn != nil {
		en := v.AprobadoEn.Format("2006-01-02T15:04:05Z")
		resp.AprobadoEn = &en
	}
	return resp
}
