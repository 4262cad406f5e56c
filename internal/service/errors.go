package service

type ErrorCode string

const (
	ErrorCodeInvalidBody ErrorCode = "INVALID_BODY"
	ErrorCodeNotFound    ErrorCode = "NOT_FOUND"
	ErrorCodeConflict    ErrorCode = "CONFLICT"
)

// Error - ошибка бизнес-логики с кодом для транспортного слоя
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func (e *Error) Error() string {
	return e.Message
}
