package ecs

import "reflect"

// Row is one result of QueryOne.
type Row[T any] struct {
	Entity Entity
	Value  *T
}

// Row2 is one result of QueryTwo.
type Row2[A, B any] struct {
	Entity Entity
	A      *A
	B      *B
}

// QueryOne returns every entity holding a T component, paired with its value,
// in ascending entity order.
//
// The result is a snapshot: it is fully built before QueryOne returns, so the
// World may be changed while the rows are walked. Rows of entities despawned
// after the call keep pointing at the detached values.
func QueryOne[T any](w *World) []Row[T] {
	s := w.storageFor(reflect.TypeFor[T](), false)
	if s == nil {
		return nil
	}

	entities := s.entities()
	rows := make([]Row[T], 0, len(entities))
	for _, e := range entities {
		if v, ok := typedGet[T](s, e); ok {
			rows = append(rows, Row[T]{Entity: e, Value: v})
		}
	}
	return rows
}

// QueryTwo returns every entity holding both an A and a B component, in
// ascending entity order. Entities holding only one of the two are left out.
// Like QueryOne, the result is a snapshot.
func QueryTwo[A, B any](w *World) []Row2[A, B] {
	sa := w.storageFor(reflect.TypeFor[A](), false)
	sb := w.storageFor(reflect.TypeFor[B](), false)
	if sa == nil || sb == nil {
		return nil
	}

	// Walk the smaller storage and probe the other.
	driver := sa
	if sb.len() < sa.len() {
		driver = sb
	}

	entities := driver.entities()
	rows := make([]Row2[A, B], 0, len(entities))
	for _, e := range entities {
		a, ok := typedGet[A](sa, e)
		if !ok {
			continue
		}
		b, ok := typedGet[B](sb, e)
		if !ok {
			continue
		}
		rows = append(rows, Row2[A, B]{Entity: e, A: a, B: b})
	}
	return rows
}

// Count returns how many entities hold a T component.
func Count[T any](w *World) int {
	s := w.storageFor(reflect.TypeFor[T](), false)
	if s == nil {
		return 0
	}
	return s.len()
}

// EntitiesWith returns the entities holding a T component, ascending.
func EntitiesWith[T any](w *World) []Entity {
	s := w.storageFor(reflect.TypeFor[T](), false)
	if s == nil {
		return nil
	}
	return s.entities()
}
