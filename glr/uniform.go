package glr

import (
	"fmt"
	"reflect"
	"sync"

	"cogentcore.org/core/base/strcase"
	"cogentcore.org/core/math32"
)

// UniformProvider supplies uniform values. Program.Draw calls ApplyUniform
// once per entry of the program's uniform catalog; a provider ignores
// uniforms it does not know.
type UniformProvider interface {
	ApplyUniform(gl Context, u *Uniform)
}

// UniformFunc adapts a function to UniformProvider.
type UniformFunc func(gl Context, u *Uniform)

func (f UniformFunc) ApplyUniform(gl Context, u *Uniform) { f(gl, u) }

// NoUniforms provides nothing.
type NoUniforms struct{}

func (NoUniforms) ApplyUniform(Context, *Uniform) {}

// UniformField is implemented by types that know how to upload
// themselves to a uniform location.
type UniformField interface {
	ApplyUniformField(gl Context, loc UniformLocation)
}

// Rgba is a float color. It maps to a vec4 uniform and to a four
// component float attribute.
type Rgba struct {
	R, G, B, A float32
}

// NewRgba returns an Rgba.
func NewRgba(r, g, b, a float32) Rgba {
	return Rgba{R: r, G: g, B: b, A: a}
}

func (c Rgba) ApplyUniformField(gl Context, loc UniformLocation) {
	gl.Uniform4f(loc, c.R, c.G, c.B, c.A)
}

type uniformSetter func(gl Context, loc UniformLocation, v reflect.Value)

type uniformFieldInfo struct {
	name  string
	index []int
	set   uniformSetter
}

type uniformLayout struct {
	fields []uniformFieldInfo
	byName map[string]int
}

// uniformLayouts caches one layout per struct type.
var uniformLayouts sync.Map

var (
	uniformFieldType = reflect.TypeFor[UniformField]()
	matrix4Type      = reflect.TypeFor[math32.Matrix4]()
	matrix3Type      = reflect.TypeFor[math32.Matrix3]()
	vector2Type      = reflect.TypeFor[math32.Vector2]()
	vector3Type      = reflect.TypeFor[math32.Vector3]()
	vector4Type      = reflect.TypeFor[math32.Vector4]()
)

// Uniforms returns a provider backed by the exported fields of a struct
// (or pointer to struct). Each field maps to the uniform named by its
// `glr` tag, or by its lower-camel-case field name when untagged. A tag
// of "-" skips the field. Array fields map to "name[0]" and panic with
// ErrUniformArrayNotImplemented when applied.
//
// Supported field types: float32/float64, signed and unsigned integers,
// bool, math32.Vector2/3/4, math32.Matrix3/4 and any UniformField.
// Any other field type panics here, before anything is drawn.
func Uniforms(v any) UniformProvider {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return structUniforms{layout: uniformLayoutOf(rv.Type()), v: rv}
}

type structUniforms struct {
	layout *uniformLayout
	v      reflect.Value
}

func (s structUniforms) ApplyUniform(gl Context, u *Uniform) {
	i, ok := s.layout.byName[u.Name()]
	if !ok {
		return
	}
	f := &s.layout.fields[i]
	f.set(gl, u.Location(), s.v.FieldByIndex(f.index))
}

func uniformLayoutOf(t reflect.Type) *uniformLayout {
	if l, ok := uniformLayouts.Load(t); ok {
		return l.(*uniformLayout)
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("glr: uniform provider must be a struct, got %s", t))
	}
	l := &uniformLayout{byName: make(map[string]int)}
	for _, sf := range reflect.VisibleFields(t) {
		if !sf.IsExported() || sf.Anonymous {
			continue
		}
		name, _, skip := fieldTag(sf)
		if skip {
			continue
		}
		set, array := uniformSetterFor(sf.Type)
		if set == nil {
			panic(fmt.Sprintf("glr: unsupported uniform field %s.%s of type %s", t, sf.Name, sf.Type))
		}
		if array {
			name += "[0]"
		}
		l.byName[name] = len(l.fields)
		l.fields = append(l.fields, uniformFieldInfo{name: name, index: sf.Index, set: set})
	}
	actual, _ := uniformLayouts.LoadOrStore(t, l)
	return actual.(*uniformLayout)
}

// uniformSetterFor picks the native call for a field type. The second
// result reports an array field.
func uniformSetterFor(t reflect.Type) (uniformSetter, bool) {
	if t.Implements(uniformFieldType) {
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			v.Interface().(UniformField).ApplyUniformField(gl, loc)
		}, false
	}
	switch t {
	case matrix4Type:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			m := v.Interface().(math32.Matrix4)
			gl.UniformMatrix4fv(loc, false, m[:])
		}, false
	case matrix3Type:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			m := v.Interface().(math32.Matrix3)
			gl.UniformMatrix3fv(loc, false, m[:])
		}, false
	case vector2Type:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			u := v.Interface().(math32.Vector2)
			gl.Uniform2f(loc, u.X, u.Y)
		}, false
	case vector3Type:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			u := v.Interface().(math32.Vector3)
			gl.Uniform3f(loc, u.X, u.Y, u.Z)
		}, false
	case vector4Type:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			u := v.Interface().(math32.Vector4)
			gl.Uniform4f(loc, u.X, u.Y, u.Z, u.W)
		}, false
	}
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			gl.Uniform1f(loc, float32(v.Float()))
		}, false
	// int, uint and 64-bit integers have no setter.
	case reflect.Int8, reflect.Int16, reflect.Int32:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			gl.Uniform1i(loc, int32(v.Int()))
		}, false
	case reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			gl.Uniform1ui(loc, uint32(v.Uint()))
		}, false
	case reflect.Bool:
		return func(gl Context, loc UniformLocation, v reflect.Value) {
			var b int32
			if v.Bool() {
				b = 1
			}
			gl.Uniform1i(loc, b)
		}, false
	case reflect.Array:
		if elem, _ := uniformSetterFor(t.Elem()); elem == nil {
			return nil, false
		}
		// Uploading N elements needs the element count threaded through
		// every setter; until then refuse rather than upload garbage.
		return func(Context, UniformLocation, reflect.Value) {
			panic(ErrUniformArrayNotImplemented)
		}, true
	}
	return nil, false
}

// fieldTag parses `glr:"name,opt"`. The name defaults to the
// lower-camel-case field name.
func fieldTag(sf reflect.StructField) (name string, normalized, skip bool) {
	tag := sf.Tag.Get("glr")
	if tag == "-" {
		return "", false, true
	}
	name, opts := tag, ""
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			name, opts = tag[:i], tag[i+1:]
			break
		}
	}
	if name == "" {
		name = strcase.ToLowerCamel(sf.Name)
	}
	return name, opts == "normalized", false
}
