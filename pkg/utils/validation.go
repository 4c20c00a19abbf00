package utils

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// ValidationErrors agrupa as mensagens por campo do JSON
type ValidationErrors map[string][]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, strings.Join(v[field], " "))
	}

	return strings.Join(parts, " ")
}

func (v ValidationErrors) Add(field, message string) {
	v[field] = append(v[field], message)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateStruct valida as tags `validate` e devolve ValidationErrors quando houver falhas
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	result := ValidationErrors{}
	for _, fe := range fieldErrors {
		result.Add(fe.Field(), message(fe))
	}

	return result
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", field)
	case "email":
		return fmt.Sprintf("O campo %s deve ser um endereço de e-mail válido.", field)
	case "max":
		return fmt.Sprintf("O campo %s não pode ter mais de %s caracteres.", field, fe.Param())
	case "min":
		return fmt.Sprintf("O campo %s deve ter pelo menos %s caracteres.", field, fe.Param())
	case "gt":
		return fmt.Sprintf("O campo %s deve ser maior que %s.", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("O campo %s deve estar no formato AAAA-MM-DD.", field)
	default:
		return fmt.Sprintf("O campo %s é inválido.", field)
	}
}
