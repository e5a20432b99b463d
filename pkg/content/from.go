package content

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/matzehuels/boxgrid/pkg/errors"
)

// From converts a Go value into content.
//
// Content values are returned unchanged. Otherwise:
//   - nil, nil pointers and nil interfaces become empty Text
//   - fmt.Stringer values, strings, booleans and numbers become Text
//   - byte slices become Text
//   - other slices become a List, arrays a Tuple
//   - maps become a Map with entries sorted by the text of their keys
//   - structs become a Map of their exported fields in declaration order,
//     named by their json tag when one is present
//
// Channels, functions, unsafe pointers and values that contain themselves
// through a pointer, map or slice are rejected with ErrCodeInvalidInput.
// Errors name the path to the offending value, such as "value.Next[2]".
func From(v any) (Content, error) {
	if v == nil {
		return Text(""), nil
	}
	c := converter{seen: make(map[ref]struct{})}
	return c.value(reflect.ValueOf(v), "value")
}

// ref identifies a reference on the current path. Slices also carry their
// length so that a slice and a prefix of it sharing a backing array are
// told apart. Empty slices and maps hold nothing and are never recorded.
type ref struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// converter walks a value tree, tracking the references between the root
// and the value being converted.
type converter struct {
	seen map[ref]struct{}
}

// enter records v on the current path. It fails when v is already on it,
// which means the value contains itself.
func (c *converter) enter(v reflect.Value, path string) (leave func(), err error) {
	r := ref{ptr: v.Pointer(), typ: v.Type()}
	if v.Kind() == reflect.Slice {
		r.len = v.Len()
	}
	if _, ok := c.seen[r]; ok {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: value contains itself", path)
	}
	c.seen[r] = struct{}{}
	return func() { delete(c.seen, r) }, nil
}

var (
	contentType  = reflect.TypeFor[Content]()
	stringerType = reflect.TypeFor[fmt.Stringer]()
)

func (c *converter) value(v reflect.Value, path string) (Content, error) {
	if !v.IsValid() {
		return Text(""), nil
	}
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Text(""), nil
		}
		if v.Type().Implements(contentType) {
			return v.Interface().(Content), nil
		}
		if v.Kind() == reflect.Pointer {
			leave, err := c.enter(v, path)
			if err != nil {
				return nil, err
			}
			defer leave()
		}
		v = v.Elem()
	}
	if v.Type().Implements(contentType) {
		return v.Interface().(Content), nil
	}
	if v.Type().Implements(stringerType) && v.CanInterface() {
		return Text(v.Interface().(fmt.Stringer).String()), nil
	}

	switch v.Kind() {
	case reflect.String:
		return Text(v.String()), nil
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return Text(fmt.Sprint(v.Interface())), nil
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return Text(string(v.Bytes())), nil
		}
		if v.Len() > 0 {
			leave, err := c.enter(v, path)
			if err != nil {
				return nil, err
			}
			defer leave()
		}
		l, err := c.elements(v, path)
		return List(l), err
	case reflect.Array:
		t, err := c.elements(v, path)
		return Tuple(t), err
	case reflect.Map:
		if v.Len() > 0 {
			leave, err := c.enter(v, path)
			if err != nil {
				return nil, err
			}
			defer leave()
		}
		return c.fromMap(v, path)
	case reflect.Struct:
		return c.fromStruct(v, path)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s: cannot draw a %s", path, v.Kind())
	}
}

func (c *converter) elements(v reflect.Value, path string) ([]Content, error) {
	out := make([]Content, v.Len())
	for i := range out {
		e, err := c.value(v.Index(i), fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

// fromMap iterates entries rather than looking keys up again, since keys
// such as NaN never compare equal to themselves.
func (c *converter) fromMap(v reflect.Value, path string) (Map, error) {
	type keyed struct {
		text       string
		key, value reflect.Value
	}
	entries := make([]keyed, 0, v.Len())
	for it := v.MapRange(); it.Next(); {
		entries = append(entries, keyed{fmt.Sprint(it.Key().Interface()), it.Key(), it.Value()})
	}
	slices.SortStableFunc(entries, func(a, b keyed) int { return cmp.Compare(a.text, b.text) })

	m := make(Map, 0, len(entries))
	for _, e := range entries {
		kc, err := c.value(e.key, path)
		if err != nil {
			return nil, err
		}
		vc, err := c.value(e.value, path+"."+e.text)
		if err != nil {
			return nil, err
		}
		m = append(m, Entry{Key: kc, Value: vc})
	}
	return m, nil
}

func (c *converter) fromStruct(v reflect.Value, path string) (Map, error) {
	t := v.Type()
	var m Map
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		fc, err := c.value(v.Field(i), path+"."+name)
		if err != nil {
			return nil, err
		}
		m = append(m, Entry{Key: Text(name), Value: fc})
	}
	return m, nil
}
