// Package validation valida payloads con tags de go-playground/validator y arma los
// errores con el formato que esperan los clientes: {"campo": ["mensaje", ...]},
// anidando objetos y listas.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Errors es el cuerpo de un 400 de validación.
// Valores posibles: []string (mensajes), map[string]any (objeto anidado) o []any (lista).
type Errors map[string]any

func (e Errors) Error() string {
	b, _ := json.Marshal(map[string]any(e))
	return "validation failed: " + string(b)
}

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Usar el nombre JSON del campo en los paths de error.
	v.RegisterTagNameFunc(jsonName)

	_ = v.RegisterValidation("notblank", validators.NotBlank)

	return &Validator{v: v}
}

// Struct valida s. Devuelve Errors si falla alguna regla; otros errores (p.ej. s no es
// struct) se devuelven tal cual.
func (x *Validator) Struct(s any) error {
	err := x.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := Errors{}
	for _, fe := range verrs {
		path := strings.Split(fe.Namespace(), ".")
		if len(path) > 1 {
			path = path[1:] // primer segmento = nombre del struct raíz
		}
		out.add(path, message(fe))
	}
	return out
}

// FromDecodeError traduce un *json.UnmarshalTypeError a Errors sobre el campo afectado.
// ok=false si err no es de ese tipo o no trae el campo.
func FromDecodeError(err error) (Errors, bool) {
	var te *json.UnmarshalTypeError
	if !errors.As(err, &te) || strings.TrimSpace(te.Field) == "" {
		return nil, false
	}

	out := Errors{}
	out.add(strings.Split(te.Field, "."), typeMessage(te))
	return out, true
}

// Nulls revisa el JSON crudo contra el tipo de dst y devuelve un error por cada campo
// conocido que vino explícitamente en null (también dentro de objetos y listas).
// nil si no hay ninguno o si data no es JSON válido.
func Nulls(data []byte, dst any) Errors {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	out := Errors{}
	walkNulls(out, nil, doc, reflect.TypeOf(dst))
	if len(out) == 0 {
		return nil
	}
	return out
}

const nullMessage = "This field may not be null."

func walkNulls(out Errors, path []string, doc any, t reflect.Type) {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := doc.(map[string]any)
		if !ok {
			return
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			name := jsonName(f)
			if !f.IsExported() || name == "" {
				continue
			}
			val, present := obj[name]
			if !present {
				continue
			}
			child := append(append([]string(nil), path...), name)
			if val == nil {
				out.add(child, nullMessage)
				continue
			}
			walkNulls(out, child, val, f.Type)
		}
	case reflect.Slice, reflect.Array:
		items, ok := doc.([]any)
		if !ok || len(path) == 0 {
			return
		}
		last := path[len(path)-1]
		for i, item := range items {
			child := append(append([]string(nil), path[:len(path)-1]...), last+"["+strconv.Itoa(i)+"]")
			if item == nil {
				out.add(child, nullMessage)
				continue
			}
			walkNulls(out, child, item, t.Elem())
		}
	}
}

// Merge pisa en e las claves de primer nivel que trae other.
func (e Errors) Merge(other Errors) Errors {
	if e == nil {
		e = Errors{}
	}
	for k, v := range other {
		e[k] = v
	}
	return e
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "notblank":
		return "This field may not be blank."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	default:
		return "Invalid value."
	}
}

func typeMessage(te *json.UnmarshalTypeError) string {
	switch te.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "A valid integer is required."
	case reflect.Float32, reflect.Float64:
		return "A valid number is required."
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Must be a valid boolean."
	case reflect.Struct, reflect.Map:
		return fmt.Sprintf("Invalid data. Expected a dictionary, but got %s.", te.Value)
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("Expected a list of items but got type %q.", te.Value)
	default:
		return "Invalid value."
	}
}

// add inserta msg en el path ("group", "scientific_name") o ("traits[1]", "name").
// Las listas se rellenan con {} hasta el índice con error.
func (e Errors) add(path []string, msg string) {
	insert(map[string]any(e), path, msg)
}

func insert(node map[string]any, path []string, msg string) {
	if len(path) == 0 {
		return
	}
	name, idx, indexed := splitIndex(path[0])
	last := len(path) == 1

	if !indexed {
		if last {
			msgs, _ := node[name].([]string)
			node[name] = append(msgs, msg)
			return
		}
		child, ok := node[name].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[name] = child
		}
		insert(child, path[1:], msg)
		return
	}

	list, _ := node[name].([]any)
	for len(list) <= idx {
		list = append(list, map[string]any{})
	}
	node[name] = list

	if last {
		msgs, _ := list[idx].([]string)
		list[idx] = append(msgs, msg)
		return
	}
	child, ok := list[idx].(map[string]any)
	if !ok {
		child = map[string]any{}
		list[idx] = child
	}
	insert(child, path[1:], msg)
}

func splitIndex(seg string) (string, int, bool) {
	open := strings.IndexByte(seg, '[')
	if open < 0 || !strings.HasSuffix(seg, "]") {
		return seg, 0, false
	}
	idx, err := strconv.Atoi(seg[open+1 : len(seg)-1])
	if err != nil || idx < 0 {
		return seg, 0, false
	}
	return seg[:open], idx, true
}
