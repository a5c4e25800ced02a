package glr

// multisampleCounts are tried in order, best first.
var multisampleCounts = [...]int32{16, 8, 4, 2}

// TryRenderbufferStorageMultisample allocates storage for the bound
// renderbuffer with the highest sample count the driver accepts and
// returns that count. It returns ErrNoMultisample if every count fails.
func TryRenderbufferStorageMultisample(gl Context, target, internalFormat uint32, width, height int32) (int32, error) {
	for _, samples := range multisampleCounts {
		gl.GetError()
		gl.RenderbufferStorageMultisample(target, samples, internalFormat, width, height)
		if gl.GetError() == NO_ERROR {
			return samples, nil
		}
	}
	return 0, ErrNoMultisample
}
