// Package validation envuelve go-playground/validator y traduce sus errores a
// violaciones por campo, usando el nombre JSON del campo y el tag `message` si existe.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation error sobre un campo concreto.
type Violation struct {
	Field   string
	Message string
}

// Errors lista de violaciones. Implementa error.
type Errors []Violation

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, v := range e {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "validación fallida: " + strings.Join(parts, "; ")
}

// defaultMessages mensajes por tag cuando el campo no define `message`.
var defaultMessages = map[string]string{
	"required": "must not be empty",
	"min":      "is too short",
	"max":      "is too long",
}

// Validator valida structs con tags `validate`.
type Validator struct {
	v *validator.Validate
}

// New construye el validador registrando el nombre JSON como nombre de campo.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

// Struct valida s. Devuelve Errors si hay violaciones, u otro error si s no es un struct.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validar: %w", err)
	}
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := make(Errors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, Violation{Field: fe.Field(), Message: messageFor(t, fe)})
	}
	return out
}

func messageFor(t reflect.Type, fe validator.FieldError) string {
	if f, ok := fieldByNamespace(t, fe.StructNamespace()); ok {
		if msg := f.Tag.Get("message"); msg != "" {
			return msg
		}
	}
	if msg, ok := defaultMessages[fe.Tag()]; ok {
		return msg
	}
	return "is invalid (" + fe.Tag() + ")"
}

// fieldByNamespace recorre "Tipo.Campo.Sub[0].Hoja" desde t. Los índices de slice o
// map se descartan y se baja al tipo del elemento.
func fieldByNamespace(t reflect.Type, ns string) (reflect.StructField, bool) {
	parts := strings.Split(ns, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}
	var f reflect.StructField
	for _, name := range parts[1:] {
		for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice || t.Kind() == reflect.Array || t.Kind() == reflect.Map {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		var ok bool
		if f, ok = t.FieldByName(name); !ok {
			return reflect.StructField{}, false
		}
		t = f.Type
	}
	return f, true
}
