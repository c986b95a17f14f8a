package service_test

// In-memory stub repositories for unit testing the services without a
// database. Tx-suffixed methods accept a nil *gorm.DB: runTx falls through to
// direct calls when no DB is wired.

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cupogas/internal/model"
	"cupogas/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Usuarios ─────────────────────────────────────────────────────────────────

type stubUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[uuid.UUID]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByCI(_ context.Context, ci string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.CI == ci {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Username != nil && *u.Username == username {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) ListClientes(_ context.Context) ([]model.Usuario, error) {
	var out []model.Usuario
	for _, u := range r.usuarios {
		if u.EsCliente() {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.ID] = u
	return nil
}

func (r *stubUsuarioRepo) IncrementarConsumoTx(_ *gorm.DB, id uuid.UUID, litros decimal.Decimal) error {
	u, ok := r.usuarios[id]
	if !ok {
		return errors.New("not found")
	}
	u.CombustibleUsado = u.CombustibleUsado.Add(litros)
	return nil
}

func (r *stubUsuarioRepo) ActualizarLimiteClientes(_ context.Context, limite decimal.Decimal) error {
	for _, u := range r.usuarios {
		if u.EsCliente() {
			u.LimiteCombustible = limite
		}
	}
	return nil
}

func (r *stubUsuarioRepo) ReiniciarConsumoClientes(_ context.Context) error {
	for _, u := range r.usuarios {
		if u.EsCliente() {
			u.CombustibleUsado = decimal.Zero
		}
	}
	return nil
}

func (r *stubUsuarioRepo) DB() *gorm.DB { return nil }

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

// ── Vehículos ────────────────────────────────────────────────────────────────

type stubVehiculoRepo struct {
	vehiculos map[uuid.UUID]*model.Vehiculo
}

func newStubVehiculoRepo() *stubVehiculoRepo {
	return &stubVehiculoRepo{vehiculos: make(map[uuid.UUID]*model.Vehiculo)}
}

func (r *stubVehiculoRepo) Create(_ context.Context, v *model.Vehiculo) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	v, ok := r.vehiculos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (r *stubVehiculoRepo) FindByPlaca(_ context.Context, placa string) (*model.Vehiculo, error) {
	for _, v := range r.vehiculos {
		if strings.EqualFold(v.Placa, placa) && v.Estado != model.VehiculoRechazado {
			return v, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubVehiculoRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Vehiculo, error) {
	var out []model.Vehiculo
	for _, v := range r.vehiculos {
		if v.UsuarioID == usuarioID && v.Estado != model.VehiculoRechazado {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVehiculoRepo) ListPendientes(_ context.Context) ([]model.Vehiculo, error) {
	var out []model.Vehiculo
	for _, v := range r.vehiculos {
		if v.Estado == model.VehiculoPendiente {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVehiculoRepo) Update(_ context.Context, v *model.Vehiculo) error {
	r.vehiculos[v.ID] = v
	return nil
}

func (r *stubVehiculoRepo) DB() *gorm.DB { return nil }

var _ repository.VehiculoRepository = (*stubVehiculoRepo)(nil)

// ── Estaciones / surtidores ──────────────────────────────────────────────────

type stubEstacionRepo struct {
	estaciones []model.Estacion
	surtidores map[uuid.UUID]*model.Surtidor
}

func newStubEstacionRepo() *stubEstacionRepo {
	return &stubEstacionRepo{surtidores: make(map[uuid.UUID]*model.Surtidor)}
}

func (r *stubEstacionRepo) CreateEstacion(_ context.Context, e *model.Estacion) error {
	r.estaciones = append(r.estaciones, *e)
	for i := range e.Surtidores {
		s := e.Surtidores[i]
		r.surtidores[s.ID] = &s
	}
	return nil
}

func (r *stubEstacionRepo) ListEstaciones(_ context.Context) ([]model.Estacion, error) {
	return r.estaciones, nil
}

func (r *stubEstacionRepo) FindSurtidorByID(_ context.Context, id uuid.UUID) (*model.Surtidor, error) {
	s, ok := r.surtidores[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (r *stubEstacionRepo) DescontarStockTx(_ *gorm.DB, id uuid.UUID, litros decimal.Decimal) error {
	s, ok := r.surtidores[id]
	if !ok {
		return errors.New("not found")
	}
	nuevo := s.StockActual.Sub(litros)
	if nuevo.IsNegative() {
		nuevo = decimal.Zero
	}
	s.StockActual = nuevo
	return nil
}

func (r *stubEstacionRepo) ActualizarPrecioPorTipo(_ context.Context, tipo string, precio decimal.Decimal) error {
	for _, s := range r.surtidores {
		if s.TipoCombustible == tipo {
			s.PrecioPorLitro = precio
		}
	}
	return nil
}

func (r *stubEstacionRepo) DB() *gorm.DB { return nil }

var _ repository.EstacionRepository = (*stubEstacionRepo)(nil)

// ── Cargas ───────────────────────────────────────────────────────────────────

type stubCargaRepo struct {
	cargas []model.Carga
}

func (r *stubCargaRepo) CreateTx(_ *gorm.DB, c *model.Carga) error {
	r.cargas = append(r.cargas, *c)
	return nil
}

func (r *stubCargaRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Carga, error) {
	var out []model.Carga
	for _, c := range r.cargas {
		if c.UsuarioID == usuarioID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *stubCargaRepo) ListAll(_ context.Context) ([]model.Carga, error) {
	out := append([]model.Carga(nil), r.cargas...)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (r *stubCargaRepo) DB() *gorm.DB { return nil }

var _ repository.CargaRepository = (*stubCargaRepo)(nil)

// ── Notificaciones ───────────────────────────────────────────────────────────

type stubNotificacionRepo struct {
	notificaciones []model.Notificacion
}

func (r *stubNotificacionRepo) Create(_ context.Context, n *model.Notificacion) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	r.notificaciones = append(r.notificaciones, *n)
	return nil
}

func (r *stubNotificacionRepo) CreateTx(_ *gorm.DB, n *model.Notificacion) error {
	return r.Create(context.Background(), n)
}

func (r *stubNotificacionRepo) ListByUsuario(_ context.Context, usuarioID uuid.UUID) ([]model.Notificacion, error) {
	var out []model.Notificacion
	for _, n := range r.notificaciones {
		if n.UsuarioID == usuarioID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubNotificacionRepo) MarcarLeida(_ context.Context, id uuid.UUID) error {
	for i := range r.notificaciones {
		if r.notificaciones[i].ID == id {
			r.notificaciones[i].Leida = true
		}
	}
	return nil
}

func (r *stubNotificacionRepo) DB() *gorm.DB { return nil }

var _ repository.NotificacionRepository = (*stubNotificacionRepo)(nil)

// ultima returns the most recently appended notification.
func (r *stubNotificacionRepo) ultima() *model.Notificacion {
	if len(r.notificaciones) == 0 {
		return nil
	}
	return &r.notificaciones[len(r.notificaciones)-1]
}

// ── Configuración ────────────────────────────────────────────────────────────

type stubConfiguracionRepo struct {
	cfg model.Configuracion
}

func newStubConfiguracionRepo() *stubConfiguracionRepo {
	return &stubConfiguracionRepo{cfg: model.Configuracion{
		ID:             1,
		PrecioGasolina: repository.PrecioGasolinaDefault,
		PrecioDiesel:   repository.PrecioDieselDefault,
		PrecioPremium:  repository.PrecioPremiumDefault,
		LimiteDiario:   repository.LimiteDiarioDefault,
		LimiteMensual:  repository.LimiteMensualDefault,
	}}
}

func (r *stubConfiguracionRepo) Obtener(_ context.Context) (*model.Configuracion, error) {
	c := r.cfg
	return &c, nil
}

func (r *stubConfiguracionRepo) Guardar(_ context.Context, c *model.Configuracion) error {
	r.cfg = *c
	return nil
}

func (r *stubConfiguracionRepo) DB() *gorm.DB { return nil }

var _ repository.ConfiguracionRepository = (*stubConfiguracionRepo)(nil)

// ── Sesión ───────────────────────────────────────────────────────────────────

type stubSesionRepo struct {
	usuarioID uuid.UUID
	activa    bool
}

func (r *stubSesionRepo) Guardar(_ context.Context, usuarioID uuid.UUID) error {
	r.usuarioID = usuarioID
	r.activa = true
	return nil
}

func (r *stubSesionRepo) Obtener(_ context.Context) (uuid.UUID, error) {
	if !r.activa {
		return uuid.Nil, repository.ErrSinSesion
	}
	return r.usuarioID, nil
}

func (r *stubSesionRepo) Limpiar(_ context.Context) error {
	r.activa = false
	return nil
}

var _ repository.SesionRepository = (*stubSesionRepo)(nil)
