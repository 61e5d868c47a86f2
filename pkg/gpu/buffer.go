package gpu

import (
	"bytes"
	"fmt"

	"volray/pkg/graphics"
)

// DefaultBinding is the buffer binding index ConfigurationBlockSource declares
const DefaultBinding = 0

// Backend is the part of the graphics API a ConfigurationBuffer needs.
// Calls must be made from the goroutine that owns the GL context.
type Backend interface {
	GenBuffer() uint32
	BufferData(buffer uint32, data []byte)
	BufferSubData(buffer uint32, offset int, data []byte)
	BindBufferBase(binding, buffer uint32)
	DeleteBuffer(buffer uint32)
}

// ConfigurationBuffer mirrors one RenderConfiguration in a GPU buffer laid
// out as ConfigurationBlockSource
type ConfigurationBuffer struct {
	backend Backend
	binding uint32
	id      uint32
	last    []byte
}

// NewConfigurationBuffer allocates the buffer, fills it with the default
// configuration and binds it at binding
func NewConfigurationBuffer(backend Backend, binding uint32) *ConfigurationBuffer {
	b := &ConfigurationBuffer{
		backend: backend,
		binding: binding,
		id:      backend.GenBuffer(),
	}

	b.last = graphics.DefaultRenderConfiguration().Bytes()
	backend.BufferData(b.id, b.last)
	backend.BindBufferBase(b.binding, b.id)

	return b
}

// ID returns the GL buffer name
func (b *ConfigurationBuffer) ID() uint32 {
	return b.id
}

// Upload copies cfg to the GPU. The copy is skipped when the bytes did not
// change since the previous upload. It reports whether a copy happened.
func (b *ConfigurationBuffer) Upload(cfg graphics.RenderConfiguration) (bool, error) {
	if b.id == 0 {
		return false, fmt.Errorf("configuration buffer is closed")
	}
	if _, err := cfg.Target(); err != nil {
		return false, fmt.Errorf("refusing to upload configuration: %w", err)
	}

	data := cfg.Bytes()
	if bytes.Equal(data, b.last) {
		return false, nil
	}

	b.backend.BufferSubData(b.id, 0, data)
	b.last = data
	return true, nil
}

// Close releases the buffer
func (b *ConfigurationBuffer) Close() {
	if b.id != 0 {
		b.backend.DeleteBuffer(b.id)
		b.id = 0
	}
}
