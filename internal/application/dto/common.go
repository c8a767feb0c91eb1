package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	RemoteCode string `json:"remote_code,omitempty"` // código devuelto por el WS Cetustek
}
