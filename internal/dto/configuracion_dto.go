package dto

import "github.com/shopspring/decimal"

type ActualizarPreciosRequest struct {
	Gasolina decimal.Decimal `json:"gasolina"`
	Diesel   decimal.Decimal `json:"diesel"`
	Premium  decimal.Decimal `json:"premium"`
}

type ActualizarLimitesRequest struct {
	Diario  decimal.Decimal `json:"diario"`
	Mensual decimal.Decimal `json:"mensual"`
}

type ConfiguracionResponse struct {
	Precios ActualizarPreciosRequest `json:"precios"`
	Limites ActualizarLimitesRequest `json:"limites"`
}
