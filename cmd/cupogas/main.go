package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"cupogas/internal/config"
	"cupogas/internal/dto"
	"cupogas/internal/infra"
	"cupogas/internal/repository"
	"cupogas/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const uso = `uso: cupogas <comando> [flags]

comandos:
  login               -identificador <usuario|ci> [-secreto <clave>]
  logout
  quien
  registrar-cliente   -nombre <nombre> -ci <ci>
  registrar-vehiculo  -placa <placa> -chasis <chasis> [-usuario <id>]
  vehiculos           [-usuario <id>]
  pendientes
  aprobar             -vehiculo <id>
  rechazar            -vehiculo <id>
  despachar           -placa <placa> -surtidor <id> -litros <n>
  cargas              [-usuario <id>]
  estaciones
  configuracion
  precios             -gasolina <n> -diesel <n> -premium <n>
  limites             -diario <n> -mensual <n>
  reiniciar-consumos
  notificaciones      [-usuario <id>]
  leer                -id <id>
`

// app holds the wired services; the CLI is only a thin presentation shell
// over them.
type app struct {
	usuarios       service.UsuarioService
	vehiculos      service.VehiculoService
	despachos      service.DespachoService
	estaciones     service.EstacionService
	configuracion  service.ConfiguracionService
	notificaciones service.NotificacionService
}

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar la configuración")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	db, err := infra.NewDatabase(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.DBPath).Msg("no se pudo abrir la base de datos")
	}
	if err := infra.SeedDefaults(db); err != nil {
		log.Fatal().Err(err).Msg("no se pudieron sembrar los datos por defecto")
	}

	usuarioRepo := repository.NewUsuarioRepository(db)
	vehiculoRepo := repository.NewVehiculoRepository(db)
	estacionRepo := repository.NewEstacionRepository(db)
	cargaRepo := repository.NewCargaRepository(db)
	notificacionRepo := repository.NewNotificacionRepository(db)
	configuracionRepo := repository.NewConfiguracionRepository(db)
	sesionRepo := repository.NewSesionRepository(db)

	notificaciones := service.NewNotificacionService(notificacionRepo)
	a := &app{
		usuarios:       service.NewUsuarioService(usuarioRepo, sesionRepo, configuracionRepo, notificaciones),
		vehiculos:      service.NewVehiculoService(vehiculoRepo, notificaciones),
		despachos:      service.NewDespachoService(cargaRepo, vehiculoRepo, usuarioRepo, estacionRepo, notificacionRepo, cfg.RecibosPath),
		estaciones:     service.NewEstacionService(estacionRepo),
		configuracion:  service.NewConfiguracionService(configuracionRepo, estacionRepo, usuarioRepo),
		notificaciones: notificaciones,
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, uso)
		os.Exit(2)
	}

	if err := a.ejecutar(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func (a *app) ejecutar(ctx context.Context, comando string, args []string) error {
	switch comando {
	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		identificador := fs.String("identificador", "", "usuario del personal o CI del cliente")
		secreto := fs.String("secreto", "", "clave (solo personal)")
		fs.Parse(args)
		u, err := a.usuarios.Login(ctx, dto.LoginRequest{Identificador: *identificador, Secreto: *secreto})
		if err != nil {
			return err
		}
		fmt.Printf("Sesión iniciada: %s (%s)\n", u.Nombre, u.Rol)
		return nil

	case "logout":
		return a.usuarios.Logout(ctx)

	case "quien":
		u, err := a.usuarios.UsuarioActual(ctx)
		if err != nil {
			return err
		}
		return imprimir(u)

	case "registrar-cliente":
		fs := flag.NewFlagSet("registrar-cliente", flag.ExitOnError)
		nombre := fs.String("nombre", "", "nombre completo")
		ci := fs.String("ci", "", "carnet de identidad")
		fs.Parse(args)
		u, err := a.usuarios.RegistrarCliente(ctx, dto.RegistroClienteRequest{Nombre: *nombre, CI: *ci})
		if err != nil {
			return err
		}
		return imprimir(u)

	case "registrar-vehiculo":
		fs := flag.NewFlagSet("registrar-vehiculo", flag.ExitOnError)
		placa := fs.String("placa", "", "placa")
		chasis := fs.String("chasis", "", "número de chasis")
		usuario := fs.String("usuario", "", "id del propietario (por defecto: sesión actual)")
		fs.Parse(args)
		usuarioID, err := a.resolverUsuario(ctx, *usuario)
		if err != nil {
			return err
		}
		v, err := a.vehiculos.Registrar(ctx, dto.RegistroVehiculoRequest{
			UsuarioID: usuarioID.String(),
			Placa:     *placa,
			Chasis:    *chasis,
		})
		if err != nil {
			return err
		}
		return imprimir(v)

	case "vehiculos":
		fs := flag.NewFlagSet("vehiculos", flag.ExitOnError)
		usuario := fs.String("usuario", "", "id del propietario (por defecto: sesión actual)")
		fs.Parse(args)
		usuarioID, err := a.resolverUsuario(ctx, *usuario)
		if err != nil {
			return err
		}
		vs, err := a.vehiculos.VehiculosDeUsuario(ctx, usuarioID)
		if err != nil {
			return err
		}
		return imprimir(vs)

	case "pendientes":
		vs, err := a.vehiculos.VehiculosPendientes(ctx)
		if err != nil {
			return err
		}
		return imprimir(vs)

	case "aprobar":
		fs := flag.NewFlagSet("aprobar", flag.ExitOnError)
		vehiculo := fs.String("vehiculo", "", "id del vehículo")
		fs.Parse(args)
		vehiculoID, err := uuid.Parse(*vehiculo)
		if err != nil {
			return fmt.Errorf("id de vehículo inválido: %w", err)
		}
		gerente, err := a.usuarios.UsuarioActual(ctx)
		if err != nil {
			return err
		}
		return a.vehiculos.Aprobar(ctx, vehiculoID, uuid.MustParse(gerente.ID))

	case "rechazar":
		fs := flag.NewFlagSet("rechazar", flag.ExitOnError)
		vehiculo := fs.String("vehiculo", "", "id del vehículo")
		fs.Parse(args)
		vehiculoID, err := uuid.Parse(*vehiculo)
		if err != nil {
			return fmt.Errorf("id de vehículo inválido: %w", err)
		}
		return a.vehiculos.Rechazar(ctx, vehiculoID)

	case "despachar":
		fs := flag.NewFlagSet("despachar", flag.ExitOnError)
		placa := fs.String("placa", "", "placa del vehículo")
		surtidor := fs.String("surtidor", "", "id del surtidor")
		litros := fs.String("litros", "0", "litros a cargar")
		fs.Parse(args)
		cantidad, err := decimal.NewFromString(*litros)
		if err != nil {
			return fmt.Errorf("litros inválidos: %w", err)
		}
		operador, err := a.usuarios.UsuarioActual(ctx)
		if err != nil {
			return err
		}
		c, err := a.despachos.Despachar(ctx, dto.DespachoRequest{
			Placa:      *placa,
			SurtidorID: *surtidor,
			Litros:     cantidad,
			OperadorID: operador.ID,
		})
		if err != nil {
			return err
		}
		return imprimir(c)

	case "cargas":
		fs := flag.NewFlagSet("cargas", flag.ExitOnError)
		usuario := fs.String("usuario", "", "id del cliente (vacío: todas)")
		fs.Parse(args)
		if *usuario == "" {
			cs, err := a.despachos.ListarCargas(ctx)
			if err != nil {
				return err
			}
			return imprimir(cs)
		}
		usuarioID, err := uuid.Parse(*usuario)
		if err != nil {
			return fmt.Errorf("id de usuario inválido: %w", err)
		}
		cs, err := a.despachos.CargasDeUsuario(ctx, usuarioID)
		if err != nil {
			return err
		}
		return imprimir(cs)

	case "estaciones":
		es, err := a.estaciones.ListarEstaciones(ctx)
		if err != nil {
			return err
		}
		return imprimir(es)

	case "configuracion":
		c, err := a.configuracion.Obtener(ctx)
		if err != nil {
			return err
		}
		return imprimir(c)

	case "precios":
		fs := flag.NewFlagSet("precios", flag.ExitOnError)
		gasolina := fs.String("gasolina", "", "precio gasolina")
		diesel := fs.String("diesel", "", "precio diésel")
		premium := fs.String("premium", "", "precio premium")
		fs.Parse(args)
		req := dto.ActualizarPreciosRequest{}
		var err error
		if req.Gasolina, err = decimal.NewFromString(*gasolina); err != nil {
			return fmt.Errorf("precio gasolina inválido: %w", err)
		}
		if req.Diesel, err = decimal.NewFromString(*diesel); err != nil {
			return fmt.Errorf("precio diésel inválido: %w", err)
		}
		if req.Premium, err = decimal.NewFromString(*premium); err != nil {
			return fmt.Errorf("precio premium inválido: %w", err)
		}
		return a.configuracion.ActualizarPrecios(ctx, req)

	case "limites":
		fs := flag.NewFlagSet("limites", flag.ExitOnError)
		diario := fs.String("diario", "", "límite diario (L)")
		mensual := fs.String("mensual", "", "límite mensual (L)")
		fs.Parse(args)
		req := dto.ActualizarLimitesRequest{}
		var err error
		if req.Diario, err = decimal.NewFromString(*diario); err != nil {
			return fmt.Errorf("límite diario inválido: %w", err)
		}
		if req.Mensual, err = decimal.NewFromString(*mensual); err != nil {
			return fmt.Errorf("límite mensual inválido: %w", err)
		}
		return a.configuracion.ActualizarLimites(ctx, req)

	case "reiniciar-consumos":
		return a.usuarios.ReiniciarConsumos(ctx)

	case "notificaciones":
		fs := flag.NewFlagSet("notificaciones", flag.ExitOnError)
		usuario := fs.String("usuario", "", "id del usuario (por defecto: sesión actual)")
		fs.Parse(args)
		usuarioID, err := a.resolverUsuario(ctx, *usuario)
		if err != nil {
			return err
		}
		ns, err := a.notificaciones.ListarPorUsuario(ctx, usuarioID)
		if err != nil {
			return err
		}
		return imprimir(ns)

	case "leer":
		fs := flag.NewFlagSet("leer", flag.ExitOnError)
		id := fs.String("id", "", "id de la notificación")
		fs.Parse(args)
		notificacionID, err := uuid.Parse(*id)
		if err != nil {
			return fmt.Errorf("id de notificación inválido: %w", err)
		}
		return a.notificaciones.MarcarLeida(ctx, notificacionID)

	default:
		fmt.Fprint(os.Stderr, uso)
		return fmt.Errorf("comando desconocido: %s", comando)
	}
}

// resolverUsuario returns the given id, or the signed-in user's id when empty.
func (a *app) resolverUsuario(ctx context.Context, id string) (uuid.UUID, error) {
	if id != "" {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return uuid.Nil, fmt.Errorf("id de usuario inválido: %w", err)
		}
		return parsed, nil
	}
	u, err := a.usuarios.UsuarioActual(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.MustParse(u.ID), nil
}

func imprimir(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
