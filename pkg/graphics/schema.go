package graphics

import (
	"fmt"
	"io"

	"volray/internal/codec"
)

// Encode writes the persisted schema of c. RenderTarget is not written.
func Encode(w io.Writer, c RenderConfiguration, format codec.Format) error {
	data, err := codec.Marshal(c.Schema(), format)
	if err != nil {
		return fmt.Errorf("error serializing render configuration: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("error writing render configuration: %w", err)
	}
	return nil
}

// Decode reads a persisted schema. Missing keys keep their default values
// and RenderTarget is always DefaultRenderTarget; callers select another
// target with WithTarget.
func Decode(r io.Reader, format codec.Format) (RenderConfiguration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return DefaultRenderConfiguration(), fmt.Errorf("error reading render configuration: %w", err)
	}

	schema := DefaultConfigurationSchema()
	if err := codec.Unmarshal(data, &schema, format); err != nil {
		return DefaultRenderConfiguration(), fmt.Errorf("error parsing render configuration: %w", err)
	}

	return schema.Restore(DefaultRenderTarget), nil
}
