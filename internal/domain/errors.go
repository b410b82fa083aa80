package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Общие доменные ошибки
var (
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("invalid data")
	ErrGrindRequired = fmt.Errorf("%w: grind level required", ErrValidation)
	ErrUnavailable   = errors.New("unavailable")
)

// Kind — категория ошибки для отображения и HTTP-статуса.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindUnavailable
	KindInternal
)

// Error — доменная ошибка с сообщением для пользователя.
type Error struct {
	Kind    Kind
	Message string
	Op      string
	Err     error
}

func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// WithOp задаёт операцию, на которой произошла ошибка.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// HTTPStatus сопоставляет Kind со статусом ответа.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindUnavailable:
		return http.StatusBadGateway
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// Validation — ошибка проверки данных с текстом для пользователя.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: ErrValidation}
}

// NotFound — неизвестный идентификатор.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: ErrNotFound}
}

// GrindRequired — попытка добавить молотый кофе без помола.
func GrindRequired(name string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Пожалуйста, выберите помол перед добавлением.",
		Op:      name,
		Err:     ErrGrindRequired,
	}
}

// GrindMissing — заказ содержит молотый кофе без помола.
func GrindMissing(name string) *Error {
	return &Error{Kind: KindValidation, Message: "Укажите помол для: " + name, Err: ErrGrindRequired}
}

// Unavailable — внешний ресурс не ответил или ответил ошибкой.
func Unavailable(message string, err error) *Error {
	if err == nil {
		err = ErrUnavailable
	} else {
		err = fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &Error{Kind: KindUnavailable, Message: message, Err: err}
}

// UserMessage возвращает текст, который можно показать пользователю.
func UserMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return err.Error()
}

// KindOf извлекает Kind; для чужих ошибок — KindUnknown.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
