package limits

import (
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Resolve evaluates the Limit for name (see Get) and picks ifTrue when it
// holds, otherwise ifFalse. A nil ifFalse means no value for the falsy branch.
// A picked zero-argument function is called and its first result returned; a
// trailing error result is returned as the error.
//
// When the picked value is empty (nil, false, zero, "", or an empty slice, map
// or array), or nothing was picked, Resolve returns an empty value of the type
// of ifTrue, whichever branch was taken: "" for strings, zero for numbers, an
// empty slice or map, a zero struct or array, a pointer to a new zero struct,
// and false for anything else. So
// Resolve(name, 0, 7) on a truthy Limit returns 0, and Resolve(name, 42, 0) on
// a falsy one returns 0 as well.
func (r *Registry) Resolve(name string, ifTrue, ifFalse any, conds ...Condition) (any, error) {
	ok, err := r.IsTruthy(r.Get(name, conds...))
	if err != nil {
		return nil, err
	}

	var candidate any
	if ok {
		candidate = ifTrue
	} else if ifFalse != nil {
		candidate = ifFalse
	}

	if !isEmpty(candidate) {
		return invoke(candidate)
	}
	return emptyLike(ifTrue), nil
}

func invoke(v any) (any, error) {
	fn := reflect.ValueOf(v)
	if fn.Kind() != reflect.Func || fn.Type().NumIn() != 0 {
		return v, nil
	}

	out := fn.Call(nil)
	if n := len(out); n > 0 && fn.Type().Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			return nil, e.Interface().(error)
		}
		out = out[:n-1]
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan, reflect.String:
		return rv.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return rv.IsZero()
	case reflect.Pointer, reflect.Interface, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func emptyLike(v any) any {
	if v == nil {
		return false
	}

	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128,
		reflect.Array, reflect.Struct:
		return reflect.Zero(t).Interface()
	case reflect.Slice:
		return reflect.MakeSlice(t, 0, 0).Interface()
	case reflect.Map:
		return reflect.MakeMap(t).Interface()
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.Struct {
			return reflect.New(t.Elem()).Interface()
		}
		return false
	default:
		return false
	}
}
