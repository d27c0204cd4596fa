package models

// Error taxonomy for the service layer. Store errors are translated into one
// of these at the service boundary; handlers map them to HTTP statuses via
// helper.GetStatusCode and never leak raw store messages.

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	return e.Message
}

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	return e.Message
}

func NewNotFound(message string) error {
	return ErrorNotFound{Message: message}
}

func NewUnauthorized(message string) error {
	return ErrorUnauthorized{Message: message}
}

func NewConflict(message string) error {
	return ErrorConflict{Message: message}
}

func NewValidation(message string) error {
	return ErrorValidation{Message: message}
}

func NewInternalServer(message string) error {
	return ErrorInternalServer{Message: message}
}
