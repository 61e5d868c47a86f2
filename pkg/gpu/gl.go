package gpu

import (
	"github.com/go-gl/gl/v4.3-core/gl"
)

// ConfigurationBlockSource declares the std430 storage block matching
// graphics.RenderConfiguration byte for byte. Vectors are float[3] arrays
// because a GLSL vec3 would be padded to 16 bytes.
const ConfigurationBlockSource = `
struct Camera {
    float distance;
    float theta;
    float phi;
    float vfov;
    float target_pos[3];
};

struct RaymarchSettings {
    uint n_steps;
};

struct Aabb {
    float lo[3];
    float hi[3];
};

const uint RENDER_TARGET_COLOR = 0u;
const uint RENDER_TARGET_DENSITY = 1u;

layout (std430, binding = 0) readonly buffer RenderConfiguration {
    Camera camera;
    RaymarchSettings rm_settings;
    Aabb bounding_box;
    uint render_target;
} cfg;
`

// GLBackend implements Backend with shader storage buffers. It requires a
// current OpenGL 4.3 context and gl.Init to have been called.
type GLBackend struct{}

func (GLBackend) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (GLBackend) BufferData(buffer uint32, data []byte) {
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buffer)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(data), gl.Ptr(data), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)
}

func (GLBackend) BufferSubData(buffer uint32, offset int, data []byte) {
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buffer)
	gl.BufferSubData(gl.SHADER_STORAGE_BUFFER, offset, len(data), gl.Ptr(data))
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)
}

func (GLBackend) BindBufferBase(binding, buffer uint32) {
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, binding, buffer)
}

func (GLBackend) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}
