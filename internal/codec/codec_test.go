package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFromPath(t *testing.T) {
	cases := map[string]Format{
		"a.json":      JSON,
		"dir/b.YAML":  YAML,
		"c.yml":       YAML,
		"/tmp/d.toml": TOML,
	}
	for path, want := range cases {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("e.ini")
	assert.Error(t, err)
}

func TestMarshalUnknownFormat(t *testing.T) {
	_, err := Marshal(struct{}{}, "xml")
	assert.Error(t, err)
	assert.Error(t, Unmarshal(nil, &struct{}{}, "xml"))
}

type sample struct {
	Name  string     `json:"name" yaml:"name" toml:"name"`
	Steps uint32     `json:"steps" yaml:"steps" toml:"steps"`
	Pos   [3]float32 `json:"pos" yaml:"pos" toml:"pos"`
}

func TestRoundTrip(t *testing.T) {
	in := sample{Name: "orbit", Steps: 300, Pos: [3]float32{0.5, -1, 2.25}}

	for _, format := range []Format{JSON, YAML, TOML} {
		data, err := Marshal(in, format)
		require.NoError(t, err, format)

		out := sample{Name: "keep"}
		require.NoError(t, Unmarshal(data, &out, format), format)
		assert.Equal(t, in, out, format)
	}
}
