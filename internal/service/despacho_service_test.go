package service_test

import (
	"context"
	"errors"
	"testing"

	"cupogas/internal/apperror"
	"cupogas/internal/dto"
	"cupogas/internal/model"
	"cupogas/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// despachoFixture wires the engine against the demo scenario: Juan (45/120 L
// usados) owns an approved ABC-123 and a pending DEF-456; one gasolina pump
// at Bs. 3.74 with 8500 L and one diesel pump at Bs. 3.72 with 7200 L.
type despachoFixture struct {
	svc            service.DespachoService
	usuarios       *stubUsuarioRepo
	vehiculos      *stubVehiculoRepo
	estaciones     *stubEstacionRepo
	cargas         *stubCargaRepo
	notificaciones *stubNotificacionRepo

	cliente          *model.Usuario
	operadorID       uuid.UUID
	aprobado         *model.Vehiculo
	pendiente        *model.Vehiculo
	surtidorGasolina *model.Surtidor
	surtidorDiesel   *model.Surtidor
}

func buildDespachoFixture(t *testing.T) *despachoFixture {
	t.Helper()
	ctx := context.Background()

	usuarios := newStubUsuarioRepo()
	vehiculos := newStubVehiculoRepo()
	estaciones := newStubEstacionRepo()
	cargas := &stubCargaRepo{}
	notificaciones := &stubNotificacionRepo{}

	cliente := &model.Usuario{
		ID:                uuid.New(),
		Nombre:            "Juan Pérez",
		CI:                "12345678",
		Rol:               model.RolCliente,
		LimiteCombustible: decimal.NewFromInt(120),
		CombustibleUsado:  decimal.NewFromInt(45),
	}
	require.NoError(t, usuarios.Create(ctx, cliente))

	operador := &model.Usuario{ID: uuid.New(), Nombre: "Carlos", CI: "11111111", Rol: model.RolOperador}
	require.NoError(t, usuarios.Create(ctx, operador))

	aprobado := &model.Vehiculo{
		ID: uuid.New(), UsuarioID: cliente.ID,
		Placa: "ABC-123", Chasis: "VIN123456789", Estado: model.VehiculoAprobado,
	}
	pendiente := &model.Vehiculo{
		ID: uuid.New(), UsuarioID: cliente.ID,
		Placa: "DEF-456", Chasis: "VIN987654321", Estado: model.VehiculoPendiente,
	}
	require.NoError(t, vehiculos.Create(ctx, aprobado))
	require.NoError(t, vehiculos.Create(ctx, pendiente))

	gasolina := model.Surtidor{
		ID: uuid.New(), Numero: 1,
		TipoCombustible: model.CombustibleGasolina,
		PrecioPorLitro:  decimal.NewFromFloat(3.74),
		StockActual:     decimal.NewFromInt(8500),
		StockMaximo:     decimal.NewFromInt(10000),
		Disponible:      true,
	}
	diesel := model.Surtidor{
		ID: uuid.New(), Numero: 2,
		TipoCombustible: model.CombustibleDiesel,
		PrecioPorLitro:  decimal.NewFromFloat(3.72),
		StockActual:     decimal.NewFromInt(7200),
		StockMaximo:     decimal.NewFromInt(10000),
		Disponible:      true,
	}
	require.NoError(t, estaciones.CreateEstacion(ctx, &model.Estacion{
		ID: uuid.New(), Nombre: "Estación Central", Estado: model.EstacionActiva,
		Surtidores: []model.Surtidor{gasolina, diesel},
	}))

	svc := service.NewDespachoService(cargas, vehiculos, usuarios, estaciones, notificaciones, "")
	return &despachoFixture{
		svc:              svc,
		usuarios:         usuarios,
		vehiculos:        vehiculos,
		estaciones:       estaciones,
		cargas:           cargas,
		notificaciones:   notificaciones,
		cliente:          cliente,
		operadorID:       operador.ID,
		aprobado:         aprobado,
		pendiente:        pendiente,
		surtidorGasolina: estaciones.surtidores[gasolina.ID],
		surtidorDiesel:   estaciones.surtidores[diesel.ID],
	}
}

func (f *despachoFixture) despachar(litros float64, placa string, surtidorID uuid.UUID) (*dto.CargaResponse, error) {
	return f.svc.Despachar(context.Background(), dto.DespachoRequest{
		Placa:      placa,
		SurtidorID: surtidorID.String(),
		Litros:     decimal.NewFromFloat(litros),
		OperadorID: f.operadorID.String(),
	})
}

func TestDespachar_Exitoso(t *testing.T) {
	f := buildDespachoFixture(t)

	resp, err := f.despachar(50, "ABC-123", f.surtidorGasolina.ID)
	require.NoError(t, err)

	// total = 50 × 3.74, price snapshotted at commit
	assert.Equal(t, "187.00", resp.Total.StringFixed(2))
	assert.Equal(t, "3.74", resp.PrecioPorLitro.StringFixed(2))
	assert.True(t, resp.Aprobada)

	// quota and stock moved by exactly the dispensed liters
	assert.Equal(t, "95", f.cliente.CombustibleUsado.String())
	assert.Equal(t, "8450", f.surtidorGasolina.StockActual.String())

	// one ledger entry plus the success notification
	require.Len(t, f.cargas.cargas, 1)
	n := f.notificaciones.ultima()
	require.NotNil(t, n)
	assert.Equal(t, "Carga Completada", n.Titulo)
	assert.Equal(t, model.NotificacionSuccess, n.Tipo)
	assert.Equal(t, f.cliente.ID, n.UsuarioID)
}

func TestDespachar_PlacaCaseInsensitive(t *testing.T) {
	f := buildDespachoFixture(t)

	_, err := f.despachar(10, "abc-123", f.surtidorGasolina.ID)
	require.NoError(t, err)
	assert.Equal(t, "55", f.cliente.CombustibleUsado.String())
}

func TestDespachar_CupoExcedido(t *testing.T) {
	f := buildDespachoFixture(t)

	_, err := f.despachar(50, "ABC-123", f.surtidorGasolina.ID)
	require.NoError(t, err)

	// 45 + 50 + 30 = 125 > 120
	_, err = f.despachar(30, "ABC-123", f.surtidorGasolina.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrCupoExcedido))
	assert.ErrorContains(t, err, "Disponible: 25")

	// no side effects from the rejected dispatch
	assert.Equal(t, "95", f.cliente.CombustibleUsado.String())
	assert.Equal(t, "8450", f.surtidorGasolina.StockActual.String())
	assert.Len(t, f.cargas.cargas, 1)
}

func TestDespachar_VehiculoNoEncontrado(t *testing.T) {
	f := buildDespachoFixture(t)

	_, err := f.despachar(10, "ZZZ-999", f.surtidorGasolina.ID)
	assert.True(t, errors.Is(err, apperror.ErrNoEncontrado))
	assert.Empty(t, f.cargas.cargas)
}

func TestDespachar_VehiculoNoAprobado(t *testing.T) {
	f := buildDespachoFixture(t)

	_, err := f.despachar(10, "DEF-456", f.surtidorGasolina.ID)
	assert.True(t, errors.Is(err, apperror.ErrNoAprobado))

	// once approved, the same request goes through
	f.pendiente.Estado = model.VehiculoAprobado
	_, err = f.despachar(10, "DEF-456", f.surtidorGasolina.ID)
	require.NoError(t, err)
}

func TestDespachar_VehiculoRechazadoInvisible(t *testing.T) {
	f := buildDespachoFixture(t)

	f.aprobado.Estado = model.VehiculoRechazado
	_, err := f.despachar(10, "ABC-123", f.surtidorGasolina.ID)
	assert.True(t, errors.Is(err, apperror.ErrNoEncontrado))
}

func TestDespachar_CantidadInvalida(t *testing.T) {
	f := buildDespachoFixture(t)

	for _, litros := range []float64{0, -5, 200.5, 9000} {
		_, err := f.despachar(litros, "ABC-123", f.surtidorGasolina.ID)
		assert.True(t, errors.Is(err, apperror.ErrCantidadInvalida), "litros=%v", litros)
	}

	// 9000 L exceeds the 8500 L stock too, but the amount bound fires first
	// and nothing is touched.
	assert.Equal(t, "45", f.cliente.CombustibleUsado.String())
	assert.Equal(t, "8500", f.surtidorGasolina.StockActual.String())
	assert.Empty(t, f.cargas.cargas)
}

func TestDespachar_StockInsuficiente(t *testing.T) {
	f := buildDespachoFixture(t)

	f.cliente.CombustibleUsado = decimal.Zero
	f.surtidorGasolina.StockActual = decimal.NewFromInt(30)

	_, err := f.despachar(50, "ABC-123", f.surtidorGasolina.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrStockInsuficiente))
	assert.ErrorContains(t, err, "Disponible: 30")

	assert.Equal(t, "0", f.cliente.CombustibleUsado.String())
	assert.Equal(t, "30", f.surtidorGasolina.StockActual.String())
	assert.Empty(t, f.cargas.cargas)
}

func TestDespachar_SurtidorNoEncontrado(t *testing.T) {
	f := buildDespachoFixture(t)

	_, err := f.despachar(10, "ABC-123", uuid.New())
	assert.True(t, errors.Is(err, apperror.ErrNoEncontrado))
	assert.Equal(t, "45", f.cliente.CombustibleUsado.String())
}

func TestDespachar_PrecioActualizadoSeUsaEnSiguienteCarga(t *testing.T) {
	f := buildDespachoFixture(t)
	ctx := context.Background()

	// gerente sube el diésel a 3.90
	require.NoError(t, f.estaciones.ActualizarPrecioPorTipo(ctx, model.CombustibleDiesel, decimal.NewFromFloat(3.90)))

	resp, err := f.despachar(10, "ABC-123", f.surtidorDiesel.ID)
	require.NoError(t, err)
	assert.Equal(t, "3.90", resp.PrecioPorLitro.StringFixed(2))
	assert.Equal(t, "39.00", resp.Total.StringFixed(2))
}

func TestCargasDeUsuario_MasRecientePrimero(t *testing.T) {
	f := buildDespachoFixture(t)

	_, err := f.despachar(10, "ABC-123", f.surtidorGasolina.ID)
	require.NoError(t, err)
	_, err = f.despachar(20, "ABC-123", f.surtidorGasolina.ID)
	require.NoError(t, err)

	cargas, err := f.svc.CargasDeUsuario(context.Background(), f.cliente.ID)
	require.NoError(t, err)
	require.Len(t, cargas, 2)
	assert.True(t, cargas[0].Timestamp >= cargas[1].Timestamp)

	todas, err := f.svc.ListarCargas(context.Background())
	require.NoError(t, err)
	assert.Len(t, todas, 2)
}
