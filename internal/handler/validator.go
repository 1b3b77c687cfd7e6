package handler

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var seatIDRe = regexp.MustCompile(`^\d+-\d+$`)

// RequestValidator adapts go-playground/validator to Echo's Validator
// interface and registers the custom "seatid" tag used on booking and
// selection payloads.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator builds the validator Echo binds request structs
// against.
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	_ = v.RegisterValidation("seatid", func(fl validator.FieldLevel) bool {
		return seatIDRe.MatchString(fl.Field().String())
	})
	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.  Struct-tag failures surface as a
// 400 so handlers never see a malformed payload.
func (rv *RequestValidator) Validate(i interface{}) error {
	if err := rv.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
