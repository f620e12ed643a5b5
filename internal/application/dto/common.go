package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CountResponse respuesta de los endpoints de conteo.
type CountResponse struct {
	Count int `json:"count"`
}
