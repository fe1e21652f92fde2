package utils

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ValidationErrors carries field-level messages for 400 responses.
type ValidationErrors struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		Message: "Validation failed",
		Fields:  map[string]string{},
	}
}

func (v *ValidationErrors) Add(field, message string) {
	v.Fields[field] = message
}

func (v *ValidationErrors) HasErrors() bool {
	return len(v.Fields) > 0
}
