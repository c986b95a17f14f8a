package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cupogas/internal/apperror"
	"cupogas/internal/dto"
	"cupogas/internal/model"
	"cupogas/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UsuarioService covers registration, authentication and the quota ledger's
// administrative operations.
type UsuarioService interface {
	RegistrarCliente(ctx context.Context, req dto.RegistroClienteRequest) (*dto.UsuarioResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.UsuarioResponse, error)
	Logout(ctx context.Context) error
	UsuarioActual(ctx context.Context) (*dto.UsuarioResponse, error)
	ListarClientes(ctx context.Context) ([]dto.UsuarioResponse, error)
	// ReiniciarConsumos zeroes combustible_usado for every cliente. This is
	// the administrative reset; limits stay untouched.
	ReiniciarConsumos(ctx context.Context) error
}

type usuarioService struct {
	repo           repository.UsuarioRepository
	sesiones       repository.SesionRepository
	configuracion  repository.ConfiguracionRepository
	notificaciones NotificacionService
}

func NewUsuarioService(
	repo repository.UsuarioRepository,
	sesiones repository.SesionRepository,
	configuracion repository.ConfiguracionRepository,
	notificaciones NotificacionService,
) UsuarioService {
	return &usuarioService{
		repo:           repo,
		sesiones:       sesiones,
		configuracion:  configuracion,
		notificaciones: notificaciones,
	}
}

// DiasAsignadosPorCI derives the fuel-loading weekdays from the last digit of
// the CI. Non-digit endings fall back to Domingo (public/private vehicles).
// Pure and deterministic: the same CI always yields the same days.
func DiasAsignadosPorCI(ci string) []string {
	if ci == "" {
		return []string{"Domingo"}
	}
	switch ci[len(ci)-1] {
	case '1', '2', '3':
		return []string{"Lunes", "Jueves"}
	case '4', '5', '6':
		return []string{"Martes", "Viernes"}
	case '7', '8', '9', '0':
		return []string{"Miércoles", "Sábado"}
	}
	return []string{"Domingo"}
}

func (s *usuarioService) RegistrarCliente(ctx context.Context, req dto.RegistroClienteRequest) (*dto.UsuarioResponse, error) {
	if err := validar(req); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByCI(ctx, req.CI); err == nil {
		return nil, apperror.New(apperror.Validacion, "El CI %s ya está registrado", req.CI)
	}

	cfg, err := s.configuracion.Obtener(ctx)
	if err != nil {
		return nil, err
	}

	dias := DiasAsignadosPorCI(req.CI)
	usuario := &model.Usuario{
		ID:                uuid.New(),
		Nombre:            req.Nombre,
		CI:                req.CI,
		Foto:              req.Foto,
		Rol:               model.RolCliente,
		DiasAsignados:     dias,
		LimiteCombustible: cfg.LimiteDiario,
		CombustibleUsado:  decimal.Zero,
	}
	if err := s.repo.Create(ctx, usuario); err != nil {
		return nil, err
	}

	_ = s.notificaciones.Agregar(ctx, usuario.ID, "¡Bienvenido al Sistema!",
		fmt.Sprintf("Hola %s, tu cuenta ha sido creada exitosamente. Tus días de carga son: %s.",
			usuario.Nombre, strings.Join(dias, ", ")),
		model.NotificacionSuccess)

	// Registration signs the new cliente in.
	if err := s.sesiones.Guardar(ctx, usuario.ID); err != nil {
		return nil, err
	}

	return usuarioToResponse(usuario), nil
}

// Login resolves staff by username + secret (plain-text match on the stored
// record) and clientes by CI alone.
func (s *usuarioService) Login(ctx context.Context, req dto.LoginRequest) (*dto.UsuarioResponse, error) {
	if err := validar(req); err != nil {
		return nil, err
	}

	if u, err := s.repo.FindByUsername(ctx, req.Identificador); err == nil {
		if u.EsPersonal() && u.Password != nil && *u.Password == req.Secreto {
			if err := s.sesiones.Guardar(ctx, u.ID); err != nil {
				return nil, err
			}
			return usuarioToResponse(u), nil
		}
		return nil, apperror.New(apperror.NoEncontrado, "Credenciales inválidas")
	}

	u, err := s.repo.FindByCI(ctx, req.Identificador)
	if err != nil || !u.EsCliente() {
		return nil, apperror.New(apperror.NoEncontrado, "Credenciales inválidas")
	}
	if err := s.sesiones.Guardar(ctx, u.ID); err != nil {
		return nil, err
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) Logout(ctx context.Context) error {
	return s.sesiones.Limpiar(ctx)
}

func (s *usuarioService) UsuarioActual(ctx context.Context) (*dto.UsuarioResponse, error) {
	id, err := s.sesiones.Obtener(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrSinSesion) {
			return nil, apperror.New(apperror.NoEncontrado, "No hay sesión activa")
		}
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.New(apperror.NoEncontrado, "Usuario no encontrado")
	}
	return usuarioToResponse(u), nil
}

func (s *usuarioService) ListarClientes(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := s.repo.ListClientes(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, 0, len(usuarios))
	for i := range usuarios {
		resp = append(resp, *usuarioToResponse(&usuarios[i]))
	}
	return resp, nil
}

func (s *usuarioService) ReiniciarConsumos(ctx context.Context) error {
	return s.repo.ReiniciarConsumoClientes(ctx)
}

func usuarioToResponse(u *model.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:                u.ID.String(),
		Nombre:            u.Nombre,
		CI:                u.CI,
		Rol:               u.Rol,
		DiasAsignados:     u.DiasAsignados,
		LimiteCombustible: u.LimiteCombustible,
		CombustibleUsado:  u.CombustibleUsado,
		CreatedAt:         u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
