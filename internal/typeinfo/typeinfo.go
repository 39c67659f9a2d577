// Package typeinfo answers, once per element type, whether values of the
// type can hold references to further resources. The answer drives the
// conditional clearing of vacated slots and returned buffers: reference
// holding types must be zeroed so a pool never keeps dead data reachable,
// while plain value types skip the work.
package typeinfo

import "reflect"

// HoldsReferences reports whether values of T can keep other memory alive
// through pointers, maps, channels, functions, interfaces, slices,
// strings, unsafe pointers, or aggregates containing any of those.
//
// The walk runs once per instantiation; callers are expected to cache the
// result.
func HoldsReferences[T any]() bool {
	return holdsReferences(reflect.TypeFor[T]())
}

func holdsReferences(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.Slice, reflect.String, reflect.UnsafePointer:
		return true
	case reflect.Array:
		return t.Len() > 0 && holdsReferences(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if holdsReferences(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
