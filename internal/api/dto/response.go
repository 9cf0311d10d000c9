package dto

// Response is the uniform success envelope.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Total      *int64      `json:"total,omitempty"`
}

// ErrorResponse is the uniform failure envelope.
type ErrorResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage wraps data with an accompanying message.
func OKMessage(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// OKPage wraps a list page with pagination metadata and the row total.
func OKPage(data interface{}, page Pagination, total int64) Response {
	return Response{Success: true, Data: data, Pagination: &page, Total: &total}
}
