package dto

type NotificacionResponse struct {
	ID        string `json:"id"`
	UsuarioID string `json:"usuario_id"`
	Titulo    string `json:"titulo"`
	Mensaje   string `json:"mensaje"`
	Tipo      string `json:"tipo"`
	Leida     bool   `json:"leida"`
	CreatedAt string `json:"created_at"`
}
