package utils

import (
	"fmt"
	"net/http"
)

// GenericError carries a message and the HTTP status it maps to.
type GenericError struct {
	Message string
	Type    int
}

func (g *GenericError) Error() string {
	return fmt.Sprintf("message: %s, code: %v", g.Message, g.Type)
}

func HTTPGenericError(httpStatus int, errorMessage string) *GenericError {
	return &GenericError{
		Type:    httpStatus,
		Message: errorMessage,
	}
}

// StorageError wraps a failure coming from the database as a 500.
func StorageError(op string, err error) *GenericError {
	return HTTPGenericError(http.StatusInternalServerError, fmt.Sprintf("%s: %s", op, err.Error()))
}

func (g *GenericError) IsValidation() bool {
	return g != nil && g.Type == http.StatusBadRequest
}

func (g *GenericError) IsNotFound() bool {
	return g != nil && g.Type == http.StatusNotFound
}
