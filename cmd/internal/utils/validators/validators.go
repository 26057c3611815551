package validators

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"salondesk/cmd/internal/schedule"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// New returns a validator that reports fields by their json names and knows
// the clock, isodate and isomonth tags.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = validate.RegisterValidation("clock", IsClock)
	_ = validate.RegisterValidation("isodate", IsIsoDate)
	_ = validate.RegisterValidation("isomonth", IsIsoMonth)
	return validate
}

// IsClock accepts zero-padded 24h "HH:MM".
func IsClock(fl validator.FieldLevel) bool {
	_, err := schedule.ParseClock(fl.Field().String())
	return err == nil
}

// IsIsoDate accepts calendar dates in "YYYY-MM-DD".
func IsIsoDate(fl validator.FieldLevel) bool {
	_, err := schedule.ParseDate(fl.Field().String())
	return err == nil
}

func IsIsoMonth(fl validator.FieldLevel) bool {
	return monthPattern.MatchString(fl.Field().String())
}
