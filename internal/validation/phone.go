package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TransferService/internal/domain"
)

var (
	phoneRe          = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	phoneSeparatorRe = regexp.MustCompile(`[\s\-.()]`)
)

// CleanPhoneNumber удаляет пробелы, дефисы, точки и скобки
func CleanPhoneNumber(phone string) string {
	return phoneSeparatorRe.ReplaceAllString(phone, "")
}

// IsValidPhoneNumber проверяет телефон в формате E.164 (плюс необязателен) после удаления разделителей.
// Очищенный номер должен быть не короче domain.MinPhoneLength символов
func IsValidPhoneNumber(phone string) bool {
	cleaned := CleanPhoneNumber(strings.TrimSpace(phone))
	if len(cleaned) < domain.MinPhoneLength {
		return false
	}
	return phoneRe.MatchString(cleaned)
}

func validatePhone(fl validator.FieldLevel) bool {
	return IsValidPhoneNumber(fl.Field().String())
}
