package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ChartData serie lista para graficar (labels paralelos a data).
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}
