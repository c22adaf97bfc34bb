package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationError flattens validator.v10 errors into one user-facing
// message.
func FormatValidationError(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, fieldError := range validationErrors {
			messages = append(messages, fieldErrorMessage(fieldError))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fieldName(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s é obrigatório", field)
	case "min":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s precisa de no mínimo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s precisa ser no mínimo %s", field, fe.Param())
	case "max":
		if fe.Type().String() == "string" {
			return fmt.Sprintf("%s pode ter no máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("%s pode ser no máximo %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s precisa ser maior ou igual a %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s é inválido", field)
	}
}

func fieldName(field string) string {
	fieldNames := map[string]string{
		"Team":        "Equipe",
		"Points":      "Pontos",
		"Wins":        "Vitórias",
		"Kills":       "Abates",
		"Title":       "Título",
		"Description": "Descrição",
		"Position":    "Posição",
		"Prize":       "Prêmio",
		"Icon":        "Ícone",
		"Message":     "Mensagem",
		"Username":    "Usuário",
		"Password":    "Senha",
		"KillPoints":  "Pontos por abate",
	}

	if name, ok := fieldNames[field]; ok {
		return name
	}
	return field
}
