// Package shader generates WGSL compute shaders that apply a transfer
// curve to a storage buffer of f32 channels, and compiles them to SPIR-V.
//
// The generated module binds one read-write storage buffer at group 0,
// binding 0 and exposes two entry points, [DecodeEntryPoint] and
// [EncodeEntryPoint], each converting the buffer in place with one
// invocation per channel.
package shader

import (
	_ "embed" // for the WGSL template
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/gogpu/naga"

	"github.com/gogpu/srgb"
)

// WorkgroupSize is the number of invocations per workgroup.
const WorkgroupSize = 64

// Entry point names in the generated module.
const (
	DecodeEntryPoint = "decode_main"
	EncodeEntryPoint = "encode_main"
)

//go:embed transfer.wgsl
var transferSource string

var transferTmpl = template.Must(template.New("transfer").Funcs(template.FuncMap{
	"f32": formatF32,
}).Parse(transferSource))

// WGSL returns the shader source for curve c.
func WGSL(c srgb.Curve) (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	data := struct {
		srgb.Curve
		WorkgroupSize int
	}{c, WorkgroupSize}

	var b strings.Builder
	if err := transferTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("shader: render template: %w", err)
	}
	return b.String(), nil
}

// Compile renders the shader for c and compiles it to SPIR-V words.
func Compile(c srgb.Curve) ([]uint32, error) {
	src, err := WGSL(c)
	if err != nil {
		return nil, err
	}
	spirvBytes, err := naga.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("shader: failed to compile: %w", err)
	}
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("shader: SPIR-V length %d is not a multiple of 4", len(spirvBytes))
	}

	// SPIR-V is little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	srgb.Logger().Debug("shader: compiled transfer shader", "words", len(words))
	return words, nil
}

// formatF32 renders v as a WGSL float literal at f32 precision.
func formatF32(v float64) string {
	s := strconv.FormatFloat(float64(float32(v)), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
