package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TransferService/internal/domain"
	"github.com/m04kA/SMC-TransferService/pkg/types"
)

var tagMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email address",
	"phone":    "must be a valid phone number",
	"max":      "is too long",
}

var validate = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	if err := v.RegisterValidation("phone", validatePhone); err != nil {
		panic(err)
	}

	// Ошибки адресуются по json-имени поля, как его видит сайт
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Struct проверяет произвольную структуру по validate-тегам (в т.ч. правило phone)
// и возвращает ошибки по полям
func Struct(s interface{}) (FieldErrors, error) {
	err := validate.Struct(s)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("validation: Struct - %v", err)
	}

	var fieldErrs FieldErrors
	for _, fe := range verrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		fieldErrs.add(fe.Field(), msg)
	}
	return fieldErrs, nil
}

// Validate проверяет форму бронирования против статической схемы и динамических полей услуги.
// Ожидаемые ошибки ввода возвращаются как FieldErrors, ошибка (третье значение)
// означает некорректную схему полей (ErrInvalidSchema). Функция не выполняет I/O.
func Validate(sub *Submission, fields []domain.ServiceField) (*Candidate, FieldErrors, error) {
	if sub == nil {
		return nil, nil, ErrNilSubmission
	}

	if err := domain.ValidateFieldSchema(fields); err != nil {
		return nil, nil, err
	}

	ordered := make([]domain.ServiceField, len(fields))
	copy(ordered, fields)
	domain.SortFields(ordered)

	normalized := normalize(sub)

	// 1. Статические поля
	fieldErrs, err := Struct(normalized)
	if err != nil {
		return nil, nil, err
	}

	candidate := &Candidate{
		FirstName:           normalized.FirstName,
		LastName:            normalized.LastName,
		Email:               normalized.Email,
		Phone:               CleanPhoneNumber(normalized.Phone),
		Date:                normalized.Date,
		Time:                normalized.Time,
		ServiceID:           normalized.ServiceID,
		VehicleTypeID:       normalized.VehicleTypeID,
		PickupLocation:      normalized.PickupLocation,
		DestinationLocation: normalized.DestinationLocation,
		Passengers:          coercePassengers(normalized.Passengers.String()),
		BabySeats:           coerceNonNegative(normalized.BabySeats.String()),
		BoosterSeats:        coerceNonNegative(normalized.BoosterSeats.String()),
		MeetAndGreet:        normalized.MeetAndGreet,
		Notes:               normalized.Notes,
		DynamicValues:       make(map[string]interface{}),
	}

	// 2. Динамические поля в порядке fieldOrder
	for _, f := range ordered {
		raw, present := dynamicValue(normalized.DynamicFields, f)

		value, msg := checkField(f, raw, present)
		if msg != "" {
			fieldErrs.add(f.FieldKey, msg)
			continue
		}
		if value == nil {
			continue
		}
		candidate.DynamicValues[f.FieldKey] = value

		// 3. Поля pickup/destination перекрывают статические значения
		if s, ok := value.(string); ok && s != "" {
			if f.IsPickup {
				candidate.PickupLocation = s
				candidate.PickupFieldKey = f.FieldKey
			}
			if f.IsDestination {
				candidate.DestinationLocation = s
				candidate.DestinationFieldKey = f.FieldKey
			}
		}
	}

	// 4. Точки подачи и назначения не должны совпадать
	if domain.SameLocation(candidate.PickupLocation, candidate.DestinationLocation) {
		fieldErrs.add("destination", "must differ from pickup location")
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs, nil
	}

	return candidate, nil, nil
}

func normalize(sub *Submission) *Submission {
	n := *sub
	n.FirstName = strings.TrimSpace(sub.FirstName)
	n.LastName = strings.TrimSpace(sub.LastName)
	n.Email = strings.TrimSpace(sub.Email)
	n.Phone = strings.TrimSpace(sub.Phone)
	n.Date = strings.TrimSpace(sub.Date)
	n.Time = strings.TrimSpace(sub.Time)
	n.ServiceID = strings.TrimSpace(sub.ServiceID)
	n.VehicleTypeID = strings.TrimSpace(sub.VehicleTypeID)
	n.PickupLocation = strings.TrimSpace(sub.PickupLocation)
	n.DestinationLocation = strings.TrimSpace(sub.DestinationLocation)
	n.Notes = strings.TrimSpace(sub.Notes)
	return &n
}

// dynamicValue возвращает значение поля или его defaultValue
func dynamicValue(values map[string]types.FlexString, f domain.ServiceField) (string, bool) {
	raw := strings.TrimSpace(values[f.FieldKey].String())
	if raw != "" {
		return raw, true
	}
	if f.DefaultValue != nil && strings.TrimSpace(*f.DefaultValue) != "" {
		return strings.TrimSpace(*f.DefaultValue), true
	}
	return "", false
}

// checkField возвращает типизированное значение поля или сообщение об ошибке.
// nil без ошибки означает, что необязательное поле не заполнено
func checkField(f domain.ServiceField, raw string, present bool) (interface{}, string) {
	if f.FieldType == domain.FieldNumber {
		return checkNumber(f, raw, present)
	}

	if !present {
		if f.Required {
			return nil, "is required"
		}
		return nil, ""
	}

	if f.FieldType == domain.FieldSelect && len(f.Options) > 0 && !contains(f.Options, raw) {
		return nil, "must be one of the available options"
	}

	return raw, ""
}

func checkNumber(f domain.ServiceField, raw string, present bool) (interface{}, string) {
	if !present && !f.Required {
		return nil, ""
	}

	n, err := parseFinite(raw)
	if err != nil {
		if !f.Required {
			return nil, "must be a number"
		}
		// обязательное число: нечисловой ввод приводится к 0 и не проходит проверку >= 1
		n = 0
	}

	if f.Required && n < 1 {
		return nil, "must be at least 1"
	}
	if f.Min != nil && n < *f.Min {
		return nil, fmt.Sprintf("must be at least %s", formatNumber(*f.Min))
	}
	if f.Max != nil && n > *f.Max {
		return nil, fmt.Sprintf("must be at most %s", formatNumber(*f.Max))
	}

	return n, ""
}

// parseFinite как strconv.ParseFloat, но NaN и бесконечности считаются ошибкой
func parseFinite(raw string) (float64, error) {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("validation: %q is not a finite number", raw)
	}
	return n, nil
}

// coercePassengers: отсутствующее, нечисловое или меньше 1 значение превращается в 1
func coercePassengers(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < domain.MinPassengers {
		return domain.DefaultPassengers
	}
	return n
}

func coerceNonNegative(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
