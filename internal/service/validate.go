package service

import (
	"cupogas/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validar runs struct-tag validation on a request and converts failures into
// the app's validation error with per-field detail.
func validar(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	campos := make(map[string]string, len(errs))
	for _, fe := range errs {
		campos[fe.Field()] = "campo requerido"
	}
	return apperror.NewValidacion(campos)
}
