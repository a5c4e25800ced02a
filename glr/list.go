package glr

// Binding keeps attribute streams bound for one draw call.
type Binding interface {
	Release()
}

// AttribProviderList is a set of vertex streams that can be bound
// against a program's attribute catalog.
type AttribProviderList interface {
	// Len is the number of vertices to draw.
	Len() int
	// Bind enables and points every slot of p that the list feeds.
	Bind(p *Program) Binding
}

type noBinding struct{}

func (noBinding) Release() {}

// NilVertexAttrib draws n vertices without binding any stream. The
// vertex shader is expected to derive everything from gl_VertexID.
type NilVertexAttrib int

func (n NilVertexAttrib) Len() int { return int(n) }

func (NilVertexAttrib) Bind(*Program) Binding { return noBinding{} }

// Pair binds two lists for the same draw call. Its length is the shorter
// of the two.
func Pair(a, b AttribProviderList) AttribProviderList {
	return pair{a: a, b: b}
}

type pair struct {
	a, b AttribProviderList
}

func (p pair) Len() int {
	return min(p.a.Len(), p.b.Len())
}

func (p pair) Bind(prg *Program) Binding {
	return pairBinding{first: p.a.Bind(prg), second: p.b.Bind(prg)}
}

type pairBinding struct {
	first, second Binding
}

func (b pairBinding) Release() {
	b.second.Release()
	b.first.Release()
}
