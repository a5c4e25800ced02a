package glr

import (
	"errors"
	"fmt"
)

// GLError is a driver error code. It is the only error kind the driver
// reports; there is no finer classification.
type GLError uint32

func (e GLError) Error() string {
	if name, ok := errorNames[uint32(e)]; ok {
		return fmt.Sprintf("gl error %x (%s)", uint32(e), name)
	}
	return fmt.Sprintf("gl error %x", uint32(e))
}

// Code returns the native error code.
func (e GLError) Code() uint32 {
	return uint32(e)
}

var errorNames = map[uint32]string{
	NO_ERROR:                      "NO_ERROR",
	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
}

var (
	// ErrNoMultisample is returned when the driver accepts none of the
	// multisample counts tried.
	ErrNoMultisample = errors.New("glr: no supported multisample configuration")

	// ErrUniformArrayNotImplemented is the panic value raised when an
	// array-typed uniform field is applied.
	ErrUniformArrayNotImplemented = errors.New("glr: array uniform fields are not implemented")
)

// CheckGL pops the driver error state and returns it as a GLError,
// or nil if there was none.
func CheckGL(gl Context) error {
	if code := gl.GetError(); code != NO_ERROR {
		return GLError(code)
	}
	return nil
}

// errorFrom converts the current driver error into an error value even
// when the driver has nothing queued, so a failed allocation is never
// reported as success.
func errorFrom(gl Context) error {
	return GLError(gl.GetError())
}
