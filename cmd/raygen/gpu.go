package main

import (
	"bytes"
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"volray/internal/logger"
	"volray/pkg/gpu"
	"volray/pkg/graphics"
)

// uploadToGPU creates a hidden window for its GL context, uploads rc to a
// storage buffer and reads it back to check the layout survived
func uploadToGPU(rc graphics.RenderConfiguration, log *logger.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(1, 1, "raygen", nil, nil)
	if err != nil {
		return fmt.Errorf("failed to create GLFW window: %w", err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Debugf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	buf := gpu.NewConfigurationBuffer(gpu.GLBackend{}, gpu.DefaultBinding)
	defer buf.Close()

	if _, err := buf.Upload(rc); err != nil {
		return err
	}

	readback := make([]byte, graphics.ConfigurationSize)
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, buf.ID())
	gl.GetBufferSubData(gl.SHADER_STORAGE_BUFFER, 0, len(readback), gl.Ptr(readback))
	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, 0)

	if !bytes.Equal(readback, rc.Bytes()) {
		return fmt.Errorf("buffer %d readback differs from uploaded configuration", buf.ID())
	}

	log.Infof("Configuration uploaded to storage buffer %d (%d bytes)", buf.ID(), len(readback))
	return nil
}
