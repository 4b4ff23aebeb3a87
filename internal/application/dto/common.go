package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListResponse metadatos simples para listados completos (sin paginación:
// Firestore devuelve la colección entera en estas pantallas de administración).
type ListResponse struct {
	Total int `json:"total"`
}
