package glr

// Enum values used by glr and its callers. Values match the Khronos
// registry so a Context implementation can pass them straight through.
const (
	NO_ERROR                      = 0x0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_LOOP      = 0x0002
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	BYTE           = 0x1400
	UNSIGNED_BYTE  = 0x1401
	SHORT          = 0x1402
	UNSIGNED_SHORT = 0x1403
	INT            = 0x1404
	UNSIGNED_INT   = 0x1405
	FLOAT          = 0x1406

	FLOAT_VEC2 = 0x8B50
	FLOAT_VEC3 = 0x8B51
	FLOAT_VEC4 = 0x8B52
	INT_VEC2   = 0x8B53
	INT_VEC3   = 0x8B54
	INT_VEC4   = 0x8B55
	BOOL       = 0x8B56
	FLOAT_MAT2 = 0x8B5A
	FLOAT_MAT3 = 0x8B5B
	FLOAT_MAT4 = 0x8B5C
	SAMPLER_2D = 0x8B5E

	VERTEX_SHADER   = 0x8B31
	FRAGMENT_SHADER = 0x8B30
	GEOMETRY_SHADER = 0x8DD9

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STREAM_DRAW          = 0x88E0
	STATIC_DRAW          = 0x88E4
	DYNAMIC_DRAW         = 0x88E8

	VIEWPORT                 = 0x0BA2
	SCISSOR_BOX              = 0x0C10
	CURRENT_PROGRAM          = 0x8B8D
	ARRAY_BUFFER_BINDING     = 0x8894
	VERTEX_ARRAY_BINDING     = 0x85B5
	TEXTURE_BINDING_2D       = 0x8069
	ACTIVE_TEXTURE           = 0x84E0
	DRAW_FRAMEBUFFER_BINDING = 0x8CA6
	READ_FRAMEBUFFER_BINDING = 0x8CAA
	RENDERBUFFER_BINDING     = 0x8CA7

	BLEND        = 0x0BE2
	CULL_FACE    = 0x0B44
	DEPTH_TEST   = 0x0B71
	STENCIL_TEST = 0x0B90
	SCISSOR_TEST = 0x0C11

	FUNC_ADD            = 0x8006
	ZERO                = 0x0
	ONE                 = 0x1
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303

	TEXTURE0           = 0x84C0
	TEXTURE_2D         = 0x0DE1
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812F
	UNPACK_ALIGNMENT   = 0x0CF5

	RED   = 0x1903
	RGB   = 0x1907
	RGBA  = 0x1908
	R8    = 0x8229
	RGBA8 = 0x8058

	FRAMEBUFFER          = 0x8D40
	READ_FRAMEBUFFER     = 0x8CA8
	DRAW_FRAMEBUFFER     = 0x8CA9
	RENDERBUFFER         = 0x8D41
	COLOR_ATTACHMENT0    = 0x8CE0
	FRAMEBUFFER_COMPLETE = 0x8CD5
	COLOR_BUFFER_BIT     = 0x4000
)
