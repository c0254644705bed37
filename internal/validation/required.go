// Package validation implementa a checagem mínima de campos obrigatórios feita
// antes de qualquer chamada externa. A checagem é por truthiness: string vazia e
// zero contam como ausentes.
package validation

// Field é um campo nomeado da requisição com seu valor bruto.
type Field struct {
	Name  string
	Value any
}

// Presence mapeia cada campo obrigatório para sua presença na requisição.
type Presence map[string]bool

// Truthy avalia a presença de um valor. Tipos não numéricos e não string
// (structs, slices) contam como presentes quando não nulos.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	case *string:
		return x != nil && *x != ""
	case *float64:
		return x != nil && *x != 0
	default:
		return true
	}
}

// CheckRequired avalia os campos obrigatórios e retorna o mapa de presença e se
// todos estão presentes.
func CheckRequired(fields ...Field) (Presence, bool) {
	presence := make(Presence, len(fields))
	ok := true

	for _, field := range fields {
		present := Truthy(field.Value)
		presence[field.Name] = present

		if !present {
			ok = false
		}
	}

	return presence, ok
}
