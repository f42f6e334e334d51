package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	"onboarding/internal/platform/validator"
)

const CodeValidationFailed = "validation_failed"

type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	ErrorBody
	Errors []FieldError `json:"errors"`
}

// RespondJSON encodes before writing the header so an unencodable payload
// still yields a clean 500.
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func RespondError(w http.ResponseWriter, status int, err error) {
	RespondJSON(w, status, ErrorBody{Error: err.Error()})
}

func RespondCodedError(w http.ResponseWriter, status int, code string, err error) {
	RespondJSON(w, status, ErrorBody{Error: err.Error(), Code: code})
}

func RespondValidation(w http.ResponseWriter, ve validator.ValidationError) {
	fields := make([]FieldError, len(ve.Errors))
	for i, fe := range ve.Errors {
		fields[i] = FieldError{Field: fe.Field, Message: fe.Message}
	}
	RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
		ErrorBody: ErrorBody{Error: "invalid request data", Code: CodeValidationFailed},
		Errors:    fields,
	})
}
