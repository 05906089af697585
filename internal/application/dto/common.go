package dto

import "time"

// ErrorResponse cuerpo de error HTTP. Lleva código de estado, código estable
// de error de dominio, mensaje legible, timestamp y ruta de la petición.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

// NewErrorResponse construye el cuerpo de error con el timestamp actual.
func NewErrorResponse(statusCode int, code, message, path string) ErrorResponse {
	return ErrorResponse{
		StatusCode: statusCode,
		Error:      code,
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
		Path:       path,
	}
}
