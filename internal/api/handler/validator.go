package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/labstack/echo/v4"

	"github.com/calvacorro/legal-records-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns the validator to assign to echo.Echo.Validator.
// Field names in errors are the request's JSON names.
func NewValidator() echo.Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &echoValidator{v: v}
}

// FieldError reports the first request field that failed validation.
type FieldError struct {
	Field string
	Tag   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s failed validation (%s)", e.Field, e.Tag)
}

// Validate satisfies the echo.Validator interface. It stops at the first
// failing field so callers can phrase a single message.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		return &FieldError{Field: ve[0].Field(), Tag: ve[0].Tag()}
	}
	return err
}

// bindAndValidate binds the request into req and validates it. A missing or
// blank field is reported with requiredMsg, a format string taking the field
// name.
func bindAndValidate(c echo.Context, req any, requiredMsg string) error {
	if err := c.Bind(req); err != nil {
		return bindError()
	}
	return validate(c, req, requiredMsg)
}

func bindError() error {
	return domain.Validation("Cuerpo de la solicitud inválido.")
}

func validate(c echo.Context, req any, requiredMsg string) error {
	err := c.Validate(req)
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return domain.Validation(fmt.Sprintf(requiredMsg, fe.Field))
	}
	return domain.Validation(err.Error())
}
