package glr

import (
	"fmt"
	"unsafe"
)

// DynamicVertexArray mirrors a slice of vertex records into a GPU buffer.
// Mutations mark it dirty; the next bind uploads. Uploads reallocate only
// when the slice has grown past what the buffer holds, otherwise they
// overwrite in place.
type DynamicVertexArray[A any] struct {
	gl     Context
	layout *VertexLayout
	data   []A
	buf    *Buffer
	bufLen int
	dirty  bool
}

// NewDynamicVertexArray returns an empty array.
func NewDynamicVertexArray[A any](gl Context) (*DynamicVertexArray[A], error) {
	return FromData[A](gl, nil)
}

// FromData returns an array holding a copy of data. Both constructors
// panic if A is not a valid vertex record (see LayoutOf).
func FromData[A any](gl Context, data []A) (*DynamicVertexArray[A], error) {
	layout := LayoutOf[A]()
	buf, err := GenerateBuffer(gl)
	if err != nil {
		return nil, fmt.Errorf("vertex buffer: %w", err)
	}
	return &DynamicVertexArray[A]{
		gl:     gl,
		layout: layout,
		data:   append([]A(nil), data...),
		buf:    buf,
		dirty:  true,
	}, nil
}

// Len returns the number of records.
func (d *DynamicVertexArray[A]) Len() int {
	return len(d.data)
}

// Data returns the records. Writing through the returned slice is not
// tracked; use SetAt, Ptr or Set.
func (d *DynamicVertexArray[A]) Data() []A {
	return d.data
}

// Set replaces the contents with a copy of data.
func (d *DynamicVertexArray[A]) Set(data []A) {
	d.data = append(d.data[:0], data...)
	d.dirty = true
}

// Append adds records at the end.
func (d *DynamicVertexArray[A]) Append(v ...A) {
	d.data = append(d.data, v...)
	d.dirty = true
}

// At returns record i.
func (d *DynamicVertexArray[A]) At(i int) A {
	return d.data[i]
}

// SetAt overwrites record i.
func (d *DynamicVertexArray[A]) SetAt(i int, v A) {
	d.data[i] = v
	d.dirty = true
}

// Ptr returns a pointer to record i for in-place edits. The array is
// marked dirty whether or not the record is then changed.
func (d *DynamicVertexArray[A]) Ptr(i int) *A {
	d.dirty = true
	return &d.data[i]
}

// Dirty reports whether the GPU copy is stale.
func (d *DynamicVertexArray[A]) Dirty() bool {
	return d.dirty
}

// Buffer returns the backing buffer.
func (d *DynamicVertexArray[A]) Buffer() *Buffer {
	return d.buf
}

// Layout returns the record layout.
func (d *DynamicVertexArray[A]) Layout() *VertexLayout {
	return d.layout
}

// BindBuffer binds the backing buffer to ARRAY_BUFFER and uploads the
// records if they changed since the last upload.
func (d *DynamicVertexArray[A]) BindBuffer() {
	if len(d.data) == 0 || d.buf.id == 0 {
		return
	}
	d.gl.BindBuffer(ARRAY_BUFFER, d.buf.id)
	if !d.dirty {
		return
	}
	if len(d.data) > d.bufLen {
		d.gl.BufferData(ARRAY_BUFFER, d.bytes(), DYNAMIC_DRAW)
		d.bufLen = len(d.data)
	} else {
		d.gl.BufferSubData(ARRAY_BUFFER, 0, d.bytes())
	}
	d.dirty = false
}

func (d *DynamicVertexArray[A]) bytes() []byte {
	if len(d.data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(d.data))), len(d.data)*d.layout.stride)
}

// Bind binds every record.
func (d *DynamicVertexArray[A]) Bind(p *Program) Binding {
	return d.bindRange(p, 0)
}

// Sub returns a view of records [start, end). The view shares the buffer
// and binds with attribute offsets shifted to start.
func (d *DynamicVertexArray[A]) Sub(start, end int) VertexRange[A] {
	if start < 0 || end < start || end > len(d.data) {
		panic(fmt.Sprintf("glr: vertex range [%d:%d] out of bounds for length %d", start, end, len(d.data)))
	}
	return VertexRange[A]{array: d, start: start, end: end}
}

func (d *DynamicVertexArray[A]) bindRange(p *Program, start int) Binding {
	en := &attribEnablers{}
	if d.buf.id == 0 {
		return en
	}
	d.BindBuffer()
	base := d.layout.stride * start
	for _, a := range p.attribs {
		f, ok := d.layout.Field(a.name)
		if !ok {
			continue
		}
		en.enable(d.gl, a.location)
		d.gl.VertexAttribPointer(a.location, f.Components, f.Type, f.Normalized, int32(d.layout.stride), base+f.Offset)
	}
	return en
}

// Delete releases the backing buffer and drops the records. A deleted
// array binds nothing. Calling Delete again does nothing.
func (d *DynamicVertexArray[A]) Delete() {
	d.buf.Delete()
	d.bufLen = 0
	d.data = nil
	d.dirty = false
}

// VertexRange is a contiguous slice of a DynamicVertexArray.
type VertexRange[A any] struct {
	array      *DynamicVertexArray[A]
	start, end int
}

// Len returns the number of records in the range.
func (r VertexRange[A]) Len() int {
	return r.end - r.start
}

// Start returns the index of the first record.
func (r VertexRange[A]) Start() int {
	return r.start
}

// Bind uploads the whole array if needed and binds the range.
func (r VertexRange[A]) Bind(p *Program) Binding {
	return r.array.bindRange(p, r.start)
}
