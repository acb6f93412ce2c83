// Package arr reads values out of loosely typed objects: nested
// map[string]any and []any trees such as decoded JSON.
//
// # Paths
//
// Keys are dot-separated paths. A segment addresses a map key, or a list
// element when the current value is a []any; list indices may be negative
// and count from the end:
//
//	doc := map[string]any{
//	    "user": map[string]any{
//	        "name": "Alice",
//	        "tags": []any{"admin", "ops"},
//	    },
//	}
//	arr.Get(doc, "user.name")    // "Alice", true
//	arr.Get(doc, "user.tags.-1") // "ops", true
//
// # Pickers
//
// [Prop], [Props] and [Pick] build reusable accessor functions, which pair
// naturally with the sequence helpers in the collections package:
//
//	names := collections.Map(collections.Values(users),
//	    func(u map[string]any, _ int) any { return arr.Prop("name")(u) })
//
// [Pluck] reads one path from every object of a slice.
package arr
