package seq

import "context"

type optionKey string

const bufferOptionKey optionKey = "buffer_options"

type BufferOptions struct {
	Size int
}

// WithBufferOptions sets the channel capacity used by ToChan bridges created
// under this context.
func WithBufferOptions(ctx context.Context, size int) context.Context {
	return context.WithValue(ctx, bufferOptionKey, BufferOptions{Size: size})
}

// GetBufferSize reads the bridge capacity from ctx, or returns defaultSize.
func GetBufferSize(ctx context.Context, defaultSize int) int {
	options, ok := ctx.Value(bufferOptionKey).(BufferOptions)
	if ok && options.Size >= 0 {
		return options.Size
	}
	return defaultSize
}
