package script

import (
	"fmt"

	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	case []float64:
		t := make(starlark.Tuple, len(val))
		for i, f := range val {
			t[i] = starlark.Float(f)
		}
		return t, nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

// FromStarlarkValue converts strings, numbers, bools and sequences of them
// to Go values. Anything else is nil.
func FromStarlarkValue(v starlark.Value) any {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case starlark.Indexable:
		out := make([]any, val.Len())
		for i := range out {
			out[i] = FromStarlarkValue(val.Index(i))
		}
		return out
	}
	return nil
}
