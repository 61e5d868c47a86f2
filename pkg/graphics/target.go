package graphics

import "fmt"

// Wire codes for RenderTarget. These values are shared with shader code and
// must never be renumbered.
const (
	RenderTargetColor   uint32 = 0
	RenderTargetDensity uint32 = 1
)

// RenderTarget selects which output channel a frame produces
type RenderTarget uint32

const (
	TargetColor RenderTarget = iota
	TargetDensity
)

// DefaultRenderTarget is used whenever a configuration carries no explicit target
const DefaultRenderTarget = TargetColor

var targetsByCode = map[uint32]RenderTarget{
	RenderTargetColor:   TargetColor,
	RenderTargetDensity: TargetDensity,
}

var codesByTarget = map[RenderTarget]uint32{
	TargetColor:   RenderTargetColor,
	TargetDensity: RenderTargetDensity,
}

var targetsByToken = map[string]RenderTarget{
	"color":   TargetColor,
	"density": TargetDensity,
}

var tokensByTarget = map[RenderTarget]string{
	TargetColor:   "color",
	TargetDensity: "density",
}

// ParseCodeError is returned for a numeric code that names no RenderTarget
type ParseCodeError struct {
	Code uint32
}

func (e *ParseCodeError) Error() string {
	return fmt.Sprintf("failed to parse RenderTarget, invalid argument '%d'", e.Code)
}

// ParseTokenError is returned for a string that names no RenderTarget
type ParseTokenError struct {
	Token string
}

func (e *ParseTokenError) Error() string {
	return fmt.Sprintf("failed to parse RenderTarget, invalid argument '%s'", e.Token)
}

// RenderTargets returns every target in code order
func RenderTargets() []RenderTarget {
	return []RenderTarget{TargetColor, TargetDensity}
}

// RenderTargetFromCode maps a wire code to its target
func RenderTargetFromCode(code uint32) (RenderTarget, error) {
	t, ok := targetsByCode[code]
	if !ok {
		return DefaultRenderTarget, &ParseCodeError{Code: code}
	}
	return t, nil
}

// ParseRenderTarget maps an exact lowercase token ("color", "density") to its target
func ParseRenderTarget(s string) (RenderTarget, error) {
	t, ok := targetsByToken[s]
	if !ok {
		return DefaultRenderTarget, &ParseTokenError{Token: s}
	}
	return t, nil
}

// Code returns the wire code of the target
func (t RenderTarget) Code() uint32 {
	return codesByTarget[t]
}

func (t RenderTarget) String() string {
	if s, ok := tokensByTarget[t]; ok {
		return s
	}
	return fmt.Sprintf("RenderTarget(%d)", uint32(t))
}

// MarshalText encodes the target as its token
func (t RenderTarget) MarshalText() ([]byte, error) {
	if _, ok := tokensByTarget[t]; !ok {
		return nil, &ParseCodeError{Code: uint32(t)}
	}
	return []byte(t.String()), nil
}

// UnmarshalText decodes a token produced by MarshalText
func (t *RenderTarget) UnmarshalText(text []byte) error {
	v, err := ParseRenderTarget(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
