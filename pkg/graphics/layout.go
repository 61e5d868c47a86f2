package graphics

import (
	"encoding/binary"
	"fmt"
)

// Byte sizes of the shader-visible structs. Every field is a 4-byte float32
// or uint32, so there is no padding.
const (
	CameraSize           = 28
	RaymarchSettingsSize = 4
	AabbSize             = 24
	ConfigurationSize    = CameraSize + RaymarchSettingsSize + AabbSize + 4
	ColorSize            = 4
)

// Byte offsets of the RenderConfiguration fields
const (
	OffsetCamera       = 0
	OffsetRmSettings   = OffsetCamera + CameraSize
	OffsetBoundingBox  = OffsetRmSettings + RaymarchSettingsSize
	OffsetRenderTarget = OffsetBoundingBox + AabbSize
)

// Bytes returns the little-endian memory image of the configuration,
// render target included, ready for a uniform or storage buffer
func (c RenderConfiguration) Bytes() []byte {
	buf, err := binary.Append(make([]byte, 0, ConfigurationSize), binary.LittleEndian, c)
	if err != nil {
		// only reachable if a field stops being fixed-size
		panic(fmt.Sprintf("graphics: encode configuration: %v", err))
	}
	return buf
}

// ConfigurationFromBytes is the inverse of Bytes
func ConfigurationFromBytes(b []byte) (RenderConfiguration, error) {
	var c RenderConfiguration
	if len(b) != ConfigurationSize {
		return c, fmt.Errorf("configuration buffer is %d bytes, want %d", len(b), ConfigurationSize)
	}
	if _, err := binary.Decode(b, binary.LittleEndian, &c); err != nil {
		return c, fmt.Errorf("error decoding configuration buffer: %w", err)
	}
	return c, nil
}
