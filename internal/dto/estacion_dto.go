package dto

import "github.com/shopspring/decimal"

type SurtidorResponse struct {
	ID              string          `json:"id"`
	Numero          int             `json:"numero"`
	TipoCombustible string          `json:"tipo_combustible"`
	PrecioPorLitro  decimal.Decimal `json:"precio_por_litro"`
	StockActual     decimal.Decimal `json:"stock_actual"`
	StockMaximo     decimal.Decimal `json:"stock_maximo"`
	Disponible      bool            `json:"disponible"`
}

type EstacionResponse struct {
	ID         string             `json:"id"`
	Nombre     string             `json:"nombre"`
	Direccion  string             `json:"direccion"`
	Lat        float64            `json:"lat"`
	Lng        float64            `json:"lng"`
	Estado     string             `json:"estado"`
	Surtidores []SurtidorResponse `json:"surtidores"`
}
