// Package validation valida los payloads de entrada con la librería
// validator a partir de los tags de los DTOs, y convierte las fallas
// en una lista ordenada de mensajes por campo.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors lista ordenada de mensajes de validación (un mensaje por campo violado).
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, "; ")
}

// phoneRegex acepta un teléfono con prefijo internacional opcional,
// dígitos y separadores comunes (espacio, guion, paréntesis, punto).
var phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{5,19}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Reportar los campos con su nombre json, no el del struct Go.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic("registrar validación phone: " + err.Error())
	}

	return v
}

// Struct valida el payload y devuelve todos los mensajes de campos violados,
// en el orden de declaración del struct. Nil si el payload es válido.
// La validación es pura: no toca la base de datos ni ningún otro estado.
func Struct(s any) Errors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errors{err.Error()}
	}
	out := make(Errors, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es requerido", fe.Field())
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s no debe superar %s caracteres", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s debe ser un email válido", fe.Field())
	case "phone":
		return fmt.Sprintf("%s debe ser un número de teléfono válido", fe.Field())
	case "datetime":
		return fmt.Sprintf("%s debe tener el formato %s", fe.Field(), fe.Param())
	case "uuid":
		return fmt.Sprintf("%s debe ser un UUID válido", fe.Field())
	default:
		return fmt.Sprintf("%s es inválido", fe.Field())
	}
}
