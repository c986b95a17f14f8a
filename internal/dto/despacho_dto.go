package dto

import "github.com/shopspring/decimal"

type DespachoRequest struct {
	Placa      string          `json:"placa" validate:"required"`
	SurtidorID string          `json:"surtidor_id" validate:"required"`
	Litros     decimal.Decimal `json:"litros"`
	OperadorID string          `json:"operador_id" validate:"required"`
}

type CargaResponse struct {
	ID             string          `json:"id"`
	VehiculoID     string          `json:"vehiculo_id"`
	UsuarioID      string          `json:"usuario_id"`
	SurtidorID     string          `json:"surtidor_id"`
	OperadorID     string          `json:"operador_id"`
	Litros         decimal.Decimal `json:"litros"`
	PrecioPorLitro decimal.Decimal `json:"precio_por_litro"`
	Total          decimal.Decimal `json:"total"`
	Timestamp      string          `json:"timestamp"`
	Aprobada       bool            `json:"aprobada"`
}
