package enum

import (
	"fmt"
	"reflect"
)

var registry = map[reflect.Type]any{}

type members[T comparable] map[string]T

// New registers value as a member of the enum type T and returns it
// unchanged, so members can be declared as package-level variables.
func New[T comparable](value T) T {
	t := reflect.TypeOf(value)
	m, ok := registry[t].(members[T])
	if !ok {
		m = members[T]{}
		registry[t] = m
	}

	m[reflect.ValueOf(value).String()] = value
	return value
}

// ToEnum resolves s to the registered member of T.
func ToEnum[T comparable](s string) (T, error) {
	var zero T
	m, ok := registry[reflect.TypeOf(zero)].(members[T])
	if !ok {
		return zero, fmt.Errorf("unregistered enum type %T", zero)
	}

	value, ok := m[s]
	if !ok {
		return zero, fmt.Errorf("invalid %T value %s", zero, s)
	}

	return value, nil
}
