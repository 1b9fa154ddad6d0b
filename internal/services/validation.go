package services

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"gorm.io/gorm"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields under their form names rather than Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct tags of input and collects every violation.
func validateStruct(input any) *apperrors.ValidationError {
	verr := &apperrors.ValidationError{}

	err := validate.Struct(input)
	if err == nil {
		return verr
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return verr.Add("", apperrors.CodeInvalid, 0)
	}
	for _, fe := range fieldErrs {
		limit, _ := strconv.Atoi(fe.Param())
		verr.Add(fe.Field(), codeForTag(fe.Tag()), limit)
	}
	return verr
}

func codeForTag(tag string) string {
	switch tag {
	case "required":
		return apperrors.CodeRequired
	case "min":
		return apperrors.CodeTooShort
	case "max":
		return apperrors.CodeTooLong
	case "email":
		return apperrors.CodeEmail
	default:
		return apperrors.CodeInvalid
	}
}

// uniqueCheck adds a "taken" violation on field when taken reports a clash.
// Fields that already failed validation are not checked again.
func uniqueCheck(verr *apperrors.ValidationError, field string, taken func() (bool, error)) error {
	if verr.Has(field) {
		return nil
	}
	clash, err := taken()
	if err != nil {
		return err
	}
	if clash {
		verr.Add(field, apperrors.CodeTaken, 0)
	}
	return nil
}

// duplicateAsValidation turns a unique-index violation that raced past
// uniqueCheck into the same field error.
func duplicateAsValidation(err error, field string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.NewValidationError(field, apperrors.CodeTaken)
	}
	return err
}

// notFound maps gorm's missing-row error onto the service taxonomy.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
