package service

import (
	"context"

	"cupogas/internal/dto"
	"cupogas/internal/model"
	"cupogas/internal/repository"

	"github.com/google/uuid"
)

// NotificacionService is the append-only per-user message channel.
type NotificacionService interface {
	Agregar(ctx context.Context, usuarioID uuid.UUID, titulo, mensaje, tipo string) error
	MarcarLeida(ctx context.Context, id uuid.UUID) error
	ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.NotificacionResponse, error)
}

type notificacionService struct {
	repo repository.NotificacionRepository
}

func NewNotificacionService(repo repository.NotificacionRepository) NotificacionService {
	return &notificacionService{repo: repo}
}

func (s *notificacionService) Agregar(ctx context.Context, usuarioID uuid.UUID, titulo, mensaje, tipo string) error {
	return s.repo.Create(ctx, &model.Notificacion{
		ID:        uuid.New(),
		UsuarioID: usuarioID,
		Titulo:    titulo,
		Mensaje:   mensaje,
		Tipo:      tipo,
	})
}

func (s *notificacionService) MarcarLeida(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarcarLeida(ctx, id)
}

func (s *notificacionService) ListarPorUsuario(ctx context.Context, usuarioID uuid.UUID) ([]dto.NotificacionResponse, error) {
	notificaciones, err := s.repo.ListByUsuario(ctx, usuarioID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.NotificacionResponse, 0, len(notificaciones))
	for _, n := range notificaciones {
		resp = append(resp, dto.NotificacionResponse{
			ID:        n.ID.String(),
			UsuarioID: n.UsuarioID.String(),
			Titulo:    n.Titulo,
			Mensaje:   n.Mensaje,
			Tipo:      n.Tipo,
			Leida:     n.Leida,
			CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}
	return resp, nil
}
