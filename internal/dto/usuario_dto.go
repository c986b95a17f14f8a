package dto

import "github.com/shopspring/decimal"

type RegistroClienteRequest struct {
	Nombre string  `json:"nombre" validate:"required"`
	CI     string  `json:"ci" validate:"required"`
	Foto   *string `json:"foto,omitempty"`
}

type LoginRequest struct {
	// Identificador is a staff username or a cliente CI.
	Identificador string `json:"identificador" validate:"required"`
	Secreto       string `json:"secreto,omitempty"`
}

type UsuarioResponse struct {
	ID                string          `json:"id"`
	Nombre            string          `json:"nombre"`
	CI                string          `json:"ci"`
	Rol               string          `json:"rol"`
	DiasAsignados     []string        `json:"dias_asignados"`
	LimiteCombustible decimal.Decimal `json:"limite_combustible"`
	CombustibleUsado  decimal.Decimal `json:"combustible_usado"`
	CreatedAt         string          `json:"created_at"`
}
