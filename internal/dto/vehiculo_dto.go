package dto

type RegistroVehiculoRequest struct {
	UsuarioID string  `json:"usuario_id" validate:"required"`
	Placa     string  `json:"placa" validate:"required"`
	Chasis    string  `json:"chasis" validate:"required"`
	Foto      *string `json:"foto,omitempty"`
}

type VehiculoResponse struct {
	ID          string  `json:"id"`
	UsuarioID   string  `json:"usuario_id"`
	Placa       string  `json:"placa"`
	Chasis      string  `json:"chasis"`
	Estado      string  `json:"estado"`
	AprobadoPor *string `json:"aprobado_por,omitempty"`
	AprobadoEn  *string `json:"aprobado_en,omitempty"`
	CreatedAt   string  `json:"created_at"`
}
