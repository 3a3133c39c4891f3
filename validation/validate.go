package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

func Validate(data interface{}) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	return validate.Struct(data)
}

var (
	iataRegex    = regexp.MustCompile(`^[A-Z]{3}$`)
	isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// IsValidIATA aceita apenas códigos de três letras maiúsculas.
func IsValidIATA(code string) bool {
	return iataRegex.MatchString(code)
}

// IsValidISODate aceita datas ISO 8601 com pelo menos precisão de dia.
func IsValidISODate(date string) bool {
	return isoDateRegex.MatchString(date)
}
