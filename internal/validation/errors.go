package validation

import (
	"errors"
	"strings"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

var (
	// ErrInvalidSchema возвращается, когда схема динамических полей услуги настроена некорректно.
	// Это ошибка конфигурации, а не пользовательского ввода
	ErrInvalidSchema = domain.ErrInvalidSchema

	// ErrNilSubmission возвращается при вызове Validate без данных
	ErrNilSubmission = errors.New("validation: nil submission")
)

// FieldError ошибка валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors упорядоченный список ошибок по полям
type FieldErrors []FieldError

// Error реализует интерфейс error
func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation: " + strings.Join(parts, "; ")
}

// Has возвращает true, если есть ошибка для поля
func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func (e *FieldErrors) add(field, message string) {
	// одна ошибка на поле, первая побеждает
	if e.Has(field) {
		return
	}
	*e = append(*e, FieldError{Field: field, Message: message})
}
