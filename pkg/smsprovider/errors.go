package smsprovider

import (
	"errors"
	"fmt"
)

const (
	ErrorCodeTimeout      = "TIMEOUT"       // For connect or total-operation timeout
	ErrorCodeGatewayError = "GATEWAY_ERROR" // For non-2xx HTTP status
	ErrorCodeNetworkError = "NETWORK_ERROR" // For connection failures
)

var (
	ErrTimeout   = errors.New(ErrorCodeTimeout)
	ErrGateway   = errors.New(ErrorCodeGatewayError)
	ErrTransport = errors.New(ErrorCodeNetworkError)
)

// GatewayError is returned when the gateway answers with a status outside
// [200,300). Message holds the gateway's own explanation when the body had one.
type GatewayError struct {
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrorCodeGatewayError, e.StatusCode)
}

func (e *GatewayError) Is(target error) bool {
	return target == ErrGateway
}
