// utils/valid.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator returns a validator that reports fields by their query parameter name
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"query", "param", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("month", func(fl validator.FieldLevel) bool {
		_, err := ParseMonth(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("reportdate", func(fl validator.FieldLevel) bool {
		_, err := ParseReportDate(fl.Field().String())
		return err == nil
	})
	return &CustomValidator{validator: v}
}

// Validate validates the bound request parameters
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// InvalidFields lists the parameter names of i that fail validation
func (cv *CustomValidator) InvalidFields(i interface{}) []string {
	var verrs validator.ValidationErrors
	if err := cv.validator.Struct(i); !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// BindQuery binds the request parameters into dst and validates them.
// Any failure is returned as a 400 *echo.HTTPError naming the parameter.
func BindQuery(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return echo.NewHTTPError(http.StatusBadRequest, he.Message).SetInternal(err)
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request parameters").SetInternal(err)
	}
	if err := c.Validate(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err)).SetInternal(err)
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request parameters"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s parameter is missing", fe.Field())
	default:
		return fmt.Sprintf("%s parameter is invalid", fe.Field())
	}
}
