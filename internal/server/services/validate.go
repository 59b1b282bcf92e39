package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/common"
	"github.com/aka-Steam/REST-vs-RPC-benchmark/internal/server/models"
)

// CreateTermInput is the payload of a create operation.
type CreateTermInput struct {
	Keyword     string `json:"keyword" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
}

// updateTermInput mirrors models.TermPatch for validation; a present field
// must be non-empty.
type updateTermInput struct {
	Keyword     *string `json:"keyword" validate:"omitnil,min=1,max=255"`
	Description *string `json:"description" validate:"omitnil,min=1"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidateCreate checks a create payload before it reaches the store.
func ValidateCreate(in CreateTermInput) error {
	return validationError(validate.Struct(in))
}

// ValidatePatch checks an update payload before it reaches the store.
func ValidatePatch(p models.TermPatch) error {
	return validationError(validate.Struct(updateTermInput{Keyword: p.Keyword, Description: p.Description}))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) && len(fields) > 0 {
		return &common.ValidationError{Field: fields[0].Field(), Rule: rule(fields[0])}
	}
	return common.ErrorInvalidInput
}

func rule(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}
