package core

import (
	"fmt"
	"reflect"
)

// Locator is a registry of shared services keyed by their static type.
// Plugins use it from their factory to reach the clock, window tracker,
// camera controller and anything else the application provides.
type Locator struct {
	objects map[reflect.Type]any
}

func NewLocator() *Locator { return &Locator{objects: map[reflect.Type]any{}} }

// Provide stores v under T, replacing any previous value of that type.
func Provide[T any](l *Locator, v T) {
	l.objects[reflect.TypeFor[T]()] = v
}

func Lookup[T any](l *Locator) (T, bool) {
	v, ok := l.objects[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// MustLookup panics when no T was provided.
func MustLookup[T any](l *Locator) T {
	v, ok := Lookup[T](l)
	if !ok {
		panic(fmt.Sprintf("core: no service of type %s", reflect.TypeFor[T]()))
	}
	return v
}
