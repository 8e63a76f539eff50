package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Encode reflects over a struct (or pointer to one) and collects the non-zero
// fields carrying an env tag into a key/value map.
func Encode(c any) (map[string]string, error) {
	v, err := structValue(c)
	if err != nil {
		return nil, err
	}
	t := v.Type()

	values := make(map[string]string)
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		key := envKey(field)
		if key == "" {
			continue
		}

		val := v.Field(i)
		if isZeroValue(val) {
			continue
		}

		sep := field.Tag.Get("envSeparator")
		if sep == "" {
			sep = ","
		}
		values[key] = formatValue(val, sep)
	}
	return values, nil
}

// Keys lists every env key declared by the struct, zero or not.
func Keys(c any) ([]string, error) {
	v, err := structValue(c)
	if err != nil {
		return nil, err
	}
	t := v.Type()

	var keys []string
	for i := 0; i < t.NumField(); i++ {
		if key := envKey(t.Field(i)); key != "" {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// MarshalEnv renders .env content from base overlaid with the configs. Keys
// a config declares replace base entries, and a zero field removes its key.
// Lines are sorted and values quoted where needed.
func MarshalEnv(base map[string]string, configs ...any) (string, error) {
	values := make(map[string]string, len(base))
	for k, v := range base {
		values[k] = v
	}

	for _, c := range configs {
		keys, err := Keys(c)
		if err != nil {
			return "", err
		}
		for _, k := range keys {
			delete(values, k)
		}

		encoded, err := Encode(c)
		if err != nil {
			return "", err
		}
		for k, v := range encoded {
			values[k] = v
		}
	}

	if len(values) == 0 {
		return "", nil
	}

	out, err := godotenv.Marshal(values)
	if err != nil {
		return "", err
	}
	return out + "\n", nil
}

func structValue(c any) (reflect.Value, error) {
	v := reflect.ValueOf(c)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("env: nil %s", v.Type())
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("env: expected struct, got %s", v.Kind())
	}
	return v, nil
}

// envKey returns the variable name from a tag such as "KEY,required".
func envKey(field reflect.StructField) string {
	if !field.IsExported() {
		return ""
	}
	tag := field.Tag.Get("env")
	if tag == "" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

// isZeroValue checks if a reflect.Value is the zero value for its type
func isZeroValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}

// formatValue converts a reflect.Value to the form caarlos0/env parses back.
func formatValue(v reflect.Value, sep string) string {
	// time.Duration and friends
	if s, ok := v.Interface().(fmt.Stringer); ok && v.Kind() != reflect.String {
		return s.String()
	}

	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Slice:
		items := make([]string, v.Len())
		for i := range items {
			items[i] = formatValue(v.Index(i), sep)
		}
		return strings.Join(items, sep)
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
