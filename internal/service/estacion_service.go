package service

import (
	"context"

	"cupogas/internal/apperror"
	"cupogas/internal/dto"
	"cupogas/internal/model"
	"cupogas/internal/repository"

	"github.com/google/uuid"
)

// EstacionService exposes the station/pump catalog.
type EstacionService interface {
	ListarEstaciones(ctx context.Context) ([]dto.EstacionResponse, error)
	BuscarSurtidor(ctx context.Context, id uuid.UUID) (*dto.SurtidorResponse, error)
}

type estacionService struct {
	repo repository.EstacionRepository
}

func NewEstacionService(repo repository.EstacionRepository) EstacionService {
	return &estacionService{repo: repo}
}

func (s *estacionService) ListarEstaciones(ctx context.Context) ([]dto.EstacionResponse, error) {
	estaciones, err := s.repo.ListEstaciones(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EstacionResponse, 0, len(estaciones))
	for i := range estaciones {
		resp = append(resp, *estacionToResponse(&estaciones[i]))
	}
	return resp, nil
}

func (s *estacionService) BuscarSurtidor(ctx context.Context, id uuid.UUID) (*dto.SurtidorResponse, error) {
	surtidor, err := s.repo.FindSurtidorByID(ctx, id)
	if err != nil {
		return nil, apperror.New(apperror.NoEncontrado, "Surtidor no encontrado")
	}
	return surtidorToResponse(surtidor), nil
}

func estacionToResponse(e *model.Estacion) *dto.EstacionResponse {
	surtidores := make([]dto.SurtidorResponse, 0, len(e.Surtidores))
	for i := range e.Surtidores {
		surtidores = append(surtidores, *surtidorToResponse(&e.Surtidores[i]))
	}
	return &dto.EstacionResponse{
		ID:         e.ID.String(),
		Nombre:     e.Nombre,
		Direccion:  e.Direccion,
		Lat:        e.Lat,
		Lng:        e.Lng,
		Estado:     e.Estado,
		Surtidores: surtidores,
	}
}

func surtidorToResponse(s *model.Surtidor) *dto.SurtidorResponse {
	return &dto.SurtidorResponse{
		ID:              s.ID.String(),
		Numero:          s.Numero,
		TipoCombustible: s.TipoCombustible,
		PrecioPorLitro:  s.PrecioPorLitro,
		StockActual:     s.StockActual,
		StockMaximo:     s.StockMaximo,
		Disponible:      s.Disponible,
	}
}
