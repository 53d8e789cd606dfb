package account

import (
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	accountValidator *validator.Validate
	validatorOnce    sync.Once
)

var noSpacesRegex = regexp.MustCompile(`^[^\s]+$`)

func validate() *validator.Validate {
	validatorOnce.Do(func() {
		accountValidator = validator.New(validator.WithRequiredStructEnabled())
		accountValidator.RegisterValidation("service", serviceValidator)
		accountValidator.RegisterValidation("noSpaces", noSpacesValidator)
	})
	return accountValidator
}

func serviceValidator(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(Service)
	return ok && s.IsValid()
}

func noSpacesValidator(fl validator.FieldLevel) bool {
	return noSpacesRegex.MatchString(fl.Field().String())
}
