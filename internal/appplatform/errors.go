package appplatform

import (
	"errors"
	"fmt"

	"github.com/appplatform-dev/appctl/internal/appplatform/models"
)

// ErrorResponse is the ARM error envelope.
type ErrorResponse struct {
	Error models.Error `json:"error"`
}

var ErrorResourceNotFound = errors.New("resource not found")

var ErrorUnauthorized = errors.New("unauthorized: the access token is missing, invalid or expired")

// ResponseError is returned for any other non-2xx management API response.
type ResponseError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *ResponseError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("management API returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("(%s) %s", e.Code, e.Message)
}

// OperationError reports a long-running operation that ended in Failed or Canceled.
type OperationError struct {
	Status  string
	Code    string
	Message string
}

func (e *OperationError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("operation finished with status %s", e.Status)
	}
	return fmt.Sprintf("operation finished with status %s: (%s) %s", e.Status, e.Code, e.Message)
}

func newOperationError(status string, body *models.Error) *OperationError {
	opErr := &OperationError{Status: status}
	if body != nil {
		opErr.Code = body.Code
		opErr.Message = body.Message
	}
	return opErr
}
