package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var langCode = regexp.MustCompile(`^[a-z]{2,3}$`)

func init() {
	validate = validator.New()

	validate.RegisterValidation("langcode", validateLangCode)
}

func validateLangCode(fl validator.FieldLevel) bool {
	return langCode.MatchString(fl.Field().String())
}

// Validate checks that b can be stored.
func (b Book) Validate() error {
	err := validate.Struct(b)
	if err == nil {
		return nil
	}

	var msgs []string
	for _, fe := range err.(validator.ValidationErrors) {
		msgs = append(msgs, fmt.Sprintf("%s failed on %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid book %q: %s", b.Title, strings.Join(msgs, ", "))
}
