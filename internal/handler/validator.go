package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/WheelShow_Go/internal/domain"
)

// Validator checks request structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce   sync.Once
	sharedValidator *Validator
)

// GetValidator returns the process-wide validator. Field errors are reported
// under their JSON names.
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("side", validateSide)
		_ = v.RegisterValidation("flapper", validateFlapper)
		sharedValidator = &Validator{validate: v}
	})
	return sharedValidator
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// fieldMessages maps a failed tag to the text shown to the client; %s is
// the tag parameter
var fieldMessages = map[string]string{
	"required":    "This field is required",
	"side":        "Must be red or blue",
	"flapper":     "Must be green, blue or yellow",
	"gt":          "Must be greater than %s",
	"max":         "Must be at most %s",
	"min":         "Must be at least %s",
	"excludesall": "Contains invalid characters",
}

// FormatValidationError turns validator errors into field -> message pairs
// without exposing Go struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"error": ErrMsgInvalidRequestFormat}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := fieldMessages[fe.Tag()]
		if !ok {
			msg = ErrMsgInvalidValue
		}
		if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, fe.Param())
		}
		out[strings.ToLower(fe.Field())] = msg
	}
	return out
}

// Empty values pass; 'required' covers presence
func validateSide(fl validator.FieldLevel) bool {
	side := fl.Field().String()
	return side == "" || domain.Side(strings.ToLower(side)).Valid()
}

func validateFlapper(fl validator.FieldLevel) bool {
	flapper := fl.Field().String()
	return flapper == "" || domain.Flapper(strings.ToLower(flapper)).Valid()
}
