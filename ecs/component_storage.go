package ecs

import (
	"reflect"
	"slices"

	"github.com/kamstrup/intmap"
)

const defaultStorageCapacity = 64

// componentStorage maps entities to the values of a single component type.
// Values are held as pointers to T behind `any`, so one storage shape can hold
// every component type; typed accessors cast back with a checked assertion.
type componentStorage struct {
	typ    reflect.Type
	values *intmap.Map[Entity, any]
}

func newComponentStorage(typ reflect.Type, capacity int) *componentStorage {
	if capacity <= 0 {
		capacity = defaultStorageCapacity
	}
	return &componentStorage{
		typ:    typ,
		values: intmap.New[Entity, any](capacity),
	}
}

// get returns the *T stored for the entity.
func (cs *componentStorage) get(e Entity) (any, bool) {
	return cs.values.Get(e)
}

// put stores ptr, which must be a pointer to a value of cs.typ.
func (cs *componentStorage) put(e Entity, ptr any) {
	cs.values.Put(e, ptr)
}

// set overwrites the stored value in place, or stores a new copy of value.
// Overwriting in place keeps pointers handed out earlier pointing at the
// current value.
func (cs *componentStorage) set(e Entity, value reflect.Value) {
	if cur, ok := cs.values.Get(e); ok {
		reflect.ValueOf(cur).Elem().Set(value)
		return
	}
	ptr := reflect.New(cs.typ)
	ptr.Elem().Set(value)
	cs.values.Put(e, ptr.Interface())
}

func (cs *componentStorage) has(e Entity) bool {
	return cs.values.Has(e)
}

func (cs *componentStorage) remove(e Entity) bool {
	if !cs.values.Has(e) {
		return false
	}
	cs.values.Del(e)
	return true
}

func (cs *componentStorage) len() int {
	return cs.values.Len()
}

// entities returns the entities holding a value in this storage, ascending.
func (cs *componentStorage) entities() []Entity {
	out := make([]Entity, 0, cs.values.Len())
	cs.values.ForEach(func(e Entity, _ any) bool {
		out = append(out, e)
		return true
	})
	slices.Sort(out)
	return out
}

// typedGet looks up the value of T for e in s, if s holds T values.
func typedGet[T any](s *componentStorage, e Entity) (*T, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.get(e)
	if !ok {
		return nil, false
	}
	ptr, ok := v.(*T)
	return ptr, ok
}

func byTypeName(a, b reflect.Type) int {
	switch as, bs := a.String(), b.String(); {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

func sortTypes(types []reflect.Type) {
	slices.SortFunc(types, byTypeName)
}
