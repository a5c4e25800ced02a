package glr

import (
	"fmt"
	"reflect"
	"sync"
)

// AttribField describes how one field of a vertex record feeds a shader
// attribute.
type AttribField struct {
	Name       string
	Components int32
	Type       uint32 // BYTE, UNSIGNED_BYTE, ..., FLOAT
	Normalized bool
	Offset     int // bytes from the start of the record
}

// VertexLayout is the attribute descriptor table of a vertex record type.
type VertexLayout struct {
	typ    reflect.Type
	stride int
	fields []AttribField
	byName map[string]int
}

// Stride returns the record size in bytes.
func (l *VertexLayout) Stride() int { return l.stride }

// Fields returns the descriptors in declaration order.
func (l *VertexLayout) Fields() []AttribField { return l.fields }

// Field finds the descriptor for an attribute name.
func (l *VertexLayout) Field(name string) (AttribField, bool) {
	i, ok := l.byName[name]
	if !ok {
		return AttribField{}, false
	}
	return l.fields[i], true
}

var vertexLayouts sync.Map

// LayoutOf returns the layout of the vertex record type A, building and
// caching it on first use.
//
// A must be a struct whose memory holds no pointers (no pointers, slices,
// strings, maps, channels, funcs or interfaces, at any depth) since
// records are uploaded as raw bytes. Each exported field is an attribute
// named by its `glr` tag or its lower-camel-case name; `glr:"-"` skips a
// field and `glr:"name,normalized"` maps integer data to [0, 1].
// Attribute field types are the scalars int8, uint8, int16, uint16,
// int32, uint32 and float32, and arrays or structs of 1 to 4 elements of
// one of those scalars (math32.Vector3, Rgba, [4]uint8...).
//
// LayoutOf panics when A breaks these rules.
func LayoutOf[A any]() *VertexLayout {
	return layoutOf(reflect.TypeFor[A]())
}

func layoutOf(t reflect.Type) *VertexLayout {
	if l, ok := vertexLayouts.Load(t); ok {
		return l.(*VertexLayout)
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("glr: vertex record must be a struct, got %s", t))
	}
	if err := checkPlain(t); err != nil {
		panic(fmt.Sprintf("glr: vertex record %s: %v", t, err))
	}
	l := &VertexLayout{typ: t, stride: int(t.Size()), byName: make(map[string]int)}
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, normalized, skip := fieldTag(sf)
		if skip {
			continue
		}
		comps, kind, ok := attribShape(sf.Type)
		if !ok {
			panic(fmt.Sprintf("glr: vertex record %s: field %s has unsupported attribute type %s", t, sf.Name, sf.Type))
		}
		if _, dup := l.byName[name]; dup {
			panic(fmt.Sprintf("glr: vertex record %s: attribute %q declared twice", t, name))
		}
		l.byName[name] = len(l.fields)
		l.fields = append(l.fields, AttribField{
			Name:       name,
			Components: comps,
			Type:       kind,
			Normalized: normalized,
			Offset:     int(sf.Offset),
		})
	}
	actual, _ := vertexLayouts.LoadOrStore(t, l)
	return actual.(*VertexLayout)
}

// checkPlain rejects types whose memory contains references.
func checkPlain(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Array:
		return checkPlain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if err := checkPlain(t.Field(i).Type); err != nil {
				return fmt.Errorf("field %s: %w", t.Field(i).Name, err)
			}
		}
		return nil
	}
	return fmt.Errorf("%s holds a reference and cannot be uploaded", t)
}

func scalarType(k reflect.Kind) (uint32, bool) {
	switch k {
	case reflect.Int8:
		return BYTE, true
	case reflect.Uint8:
		return UNSIGNED_BYTE, true
	case reflect.Int16:
		return SHORT, true
	case reflect.Uint16:
		return UNSIGNED_SHORT, true
	case reflect.Int32:
		return INT, true
	case reflect.Uint32:
		return UNSIGNED_INT, true
	case reflect.Float32:
		return FLOAT, true
	}
	return 0, false
}

// attribShape returns component count and scalar type for a field type.
func attribShape(t reflect.Type) (int32, uint32, bool) {
	if kind, ok := scalarType(t.Kind()); ok {
		return 1, kind, true
	}
	switch t.Kind() {
	case reflect.Array:
		kind, ok := scalarType(t.Elem().Kind())
		if !ok || t.Len() < 1 || t.Len() > 4 {
			return 0, 0, false
		}
		return int32(t.Len()), kind, true
	case reflect.Struct:
		n := t.NumField()
		if n < 1 || n > 4 {
			return 0, 0, false
		}
		elem := t.Field(0).Type
		kind, ok := scalarType(elem.Kind())
		if !ok {
			return 0, 0, false
		}
		for i := 1; i < n; i++ {
			if t.Field(i).Type.Kind() != elem.Kind() {
				return 0, 0, false
			}
		}
		// Components must be packed back to back.
		if t.Size() != uintptr(n)*elem.Size() {
			return 0, 0, false
		}
		return int32(n), kind, true
	}
	return 0, 0, false
}
