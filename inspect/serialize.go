// Package inspect renders nested Go values as indented, human-readable text
// for debugging and String() methods.
package inspect

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"
)

// Serialize renders v with one entry per line:
//
//	Map(2) {
//	    a: 1,
//	    b: Slice(2) [
//	        0: 2,
//	        1: 'x'
//	    ]
//	}
//
// Strings are single-quoted with \n, \r and \t escaped; functions render as
// their signature. Values that expose All() iter.Seq[T], such as
// ranges.Range, are listed element by element. A pointer, map or slice
// that contains itself renders as [Circular].
func Serialize(v any, opts ...Option) string {
	cfg := config{indent: DefaultIndent}
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &serializer{cfg: cfg, visiting: make(map[visit]bool)}
	return s.value(reflect.ValueOf(v), "")
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

type serializer struct {
	cfg      config
	visiting map[visit]bool
}

func (s *serializer) value(v reflect.Value, spaces string) string {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() {
		return "nil"
	}
	if seq, ok := sequenceOf(v); ok {
		return s.sequence(v, seq, spaces)
	}

	switch v.Kind() {
	case reflect.String:
		return "'" + escaper.Replace(v.String()) + "'"
	case reflect.Func:
		if v.IsNil() {
			return "nil"
		}
		return v.Type().String()
	case reflect.Interface:
		return "nil"
	case reflect.Pointer:
		if v.IsNil() {
			return "nil"
		}
		return s.enter(v, func() string { return "&" + s.value(v.Elem(), spaces) })
	case reflect.Map:
		if v.IsNil() {
			return "nil"
		}
		return s.enter(v, func() string { return s.mapping(v, spaces) })
	case reflect.Slice:
		if v.IsNil() {
			return "nil"
		}
		return s.enter(v, func() string { return s.list("Slice", v, spaces) })
	case reflect.Array:
		return s.list("Array", v, spaces)
	case reflect.Struct:
		return s.structure(v, spaces)
	default:
		return fmt.Sprint(v.Interface())
	}
}

var escaper = strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)

// enter guards against cycles through reference values.
func (s *serializer) enter(v reflect.Value, render func() string) string {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if s.visiting[key] {
		return "[Circular]"
	}
	s.visiting[key] = true
	defer delete(s.visiting, key)
	return render()
}

func (s *serializer) block(header, open, close string, props []string, spaces string) string {
	if len(props) == 0 {
		return header + " " + open + close
	}
	return header + " " + open + "\n" + strings.Join(props, ",\n") + "\n" + spaces + close
}

func (s *serializer) inner(spaces string) string {
	return spaces + strings.Repeat(" ", s.cfg.indent)
}

func (s *serializer) list(kind string, v reflect.Value, spaces string) string {
	in := s.inner(spaces)
	props := make([]string, v.Len())
	for i := range props {
		props[i] = fmt.Sprintf("%s%d: %s", in, i, s.value(v.Index(i), in))
	}
	return s.block(fmt.Sprintf("%s(%d)", kind, v.Len()), "[", "]", props, spaces)
}

func (s *serializer) mapping(v reflect.Value, spaces string) string {
	in := s.inner(spaces)
	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	})
	props := make([]string, len(keys))
	for i, k := range keys {
		props[i] = fmt.Sprintf("%s%v: %s", in, k.Interface(), s.value(v.MapIndex(k), in))
	}
	return s.block(fmt.Sprintf("Map(%d)", v.Len()), "{", "}", props, spaces)
}

func (s *serializer) structure(v reflect.Value, spaces string) string {
	in := s.inner(spaces)
	t := v.Type()
	var props []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		props = append(props, fmt.Sprintf("%s%s: %s", in, f.Name, s.value(v.Field(i), in)))
	}
	return s.block(typeName(t), "{", "}", props, spaces)
}

func (s *serializer) sequence(v reflect.Value, items []reflect.Value, spaces string) string {
	in := s.inner(spaces)
	props := make([]string, len(items))
	for i, item := range items {
		props[i] = fmt.Sprintf("%s%d: %s", in, i, s.value(item, in))
	}
	header := fmt.Sprintf("%s(%d)", typeName(v.Type()), len(items))
	if str, ok := v.Interface().(fmt.Stringer); ok {
		header = str.String()
	}
	return s.block(header, "[", "]", props, spaces)
}

func typeName(t reflect.Type) string {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		name, _, _ := strings.Cut(t.Name(), "[")
		return name
	}
	return t.String()
}

// sequenceOf drains v.All() when v has a method of the form
// All() iter.Seq[T].
func sequenceOf(v reflect.Value) ([]reflect.Value, bool) {
	if !v.CanInterface() {
		return nil, false
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, false
		}
	}
	m := v.MethodByName("All")
	if !m.IsValid() {
		return nil, false
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return nil, false
	}
	seqType := mt.Out(0)
	if seqType.Kind() != reflect.Func || seqType.NumIn() != 1 || seqType.NumOut() != 0 {
		return nil, false
	}
	yieldType := seqType.In(0)
	if yieldType.Kind() != reflect.Func || yieldType.NumIn() != 1 ||
		yieldType.NumOut() != 1 || yieldType.Out(0).Kind() != reflect.Bool {
		return nil, false
	}

	var items []reflect.Value
	yield := reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
		items = append(items, args[0])
		return []reflect.Value{reflect.ValueOf(true)}
	})
	m.Call(nil)[0].Call([]reflect.Value{yield})
	return items, true
}

// Seq renders the items of seq as a list.
func Seq[T any](seq iter.Seq[T], opts ...Option) string {
	items := slices.Collect(seq)
	if items == nil {
		items = []T{}
	}
	return Serialize(items, opts...)
}
