package sanctum

import (
	"encoding/json"

	gojson "github.com/goccy/go-json"
)

// Codec serializes request bodies.
type Codec interface {
	Marshal(v any) ([]byte, error)
}

// CodecFunc adapts a plain marshal function to the Codec interface.
type CodecFunc func(v any) ([]byte, error)

// Marshal calls f(v).
func (f CodecFunc) Marshal(v any) ([]byte, error) {
	return f(v)
}

var (
	// FastCodec encodes with github.com/goccy/go-json.
	FastCodec Codec = CodecFunc(gojson.Marshal)
	// StdCodec encodes with encoding/json.
	StdCodec Codec = CodecFunc(json.Marshal)
)

// fallbackCodec tries primary first and retries with secondary on failure.
type fallbackCodec struct {
	primary   Codec
	secondary Codec
}

func (c fallbackCodec) Marshal(v any) ([]byte, error) {
	data, err := c.primary.Marshal(v)
	if err == nil {
		return data, nil
	}
	return c.secondary.Marshal(v)
}

// DefaultCodec returns the codec used when none is configured: the fast
// encoder, falling back to encoding/json for values it cannot handle.
func DefaultCodec() Codec {
	return fallbackCodec{primary: FastCodec, secondary: StdCodec}
}

// NewCodec returns DefaultCodec when fast is true and StdCodec otherwise.
func NewCodec(fast bool) Codec {
	if fast {
		return DefaultCodec()
	}
	return StdCodec
}
