package arr

// Prop returns a function reading the value at path. When the path is
// missing or holds nil, the function returns def[0] (or nil).
//
//	getC := arr.Prop("c")
//	getC(map[string]any{"a": 1, "c": 3}) // 3
func Prop(path string, def ...any) func(obj any) any {
	var fallback any
	if len(def) > 0 {
		fallback = def[0]
	}
	return func(obj any) any {
		if v, ok := Get(obj, path); ok && v != nil {
			return v
		}
		return fallback
	}
}

// Props returns a function reading several paths at once. Missing paths
// read as nil. It returns [ErrNoKeys] when paths is empty.
//
//	getAB, _ := arr.Props("a", "b")
//	getAB(map[string]any{"a": 1, "b": 2, "c": 3}) // [1 2]
func Props(paths ...string) (func(obj any) []any, error) {
	if len(paths) == 0 {
		return nil, ErrNoKeys
	}
	return func(obj any) []any {
		out := make([]any, len(paths))
		for i, path := range paths {
			out[i] = Prop(path)(obj)
		}
		return out
	}, nil
}

// Pick returns a function building a new map with only the given paths.
// Paths absent from the source are skipped; nested paths are rebuilt as
// nested maps.
//
//	pickAB := arr.Pick("a", "b")
//	pickAB(map[string]any{"a": 1, "b": 2, "c": 3}) // map[a:1 b:2]
func Pick(paths ...string) func(obj any) map[string]any {
	return func(obj any) map[string]any {
		out := make(map[string]any, len(paths))
		for _, path := range paths {
			if v, ok := Get(obj, path); ok {
				Set(out, path, v)
			}
		}
		return out
	}
}

// Pluck reads path from every object, in order. Missing paths read as nil.
//
//	people := []map[string]any{{"name": "Fred"}, {"name": "Barney"}}
//	arr.Pluck(people, "name") // [Fred Barney]
func Pluck[T any](objs []T, path string) []any {
	get := Prop(path)
	out := make([]any, len(objs))
	for i, obj := range objs {
		out[i] = get(obj)
	}
	return out
}
