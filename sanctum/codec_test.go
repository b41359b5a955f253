package sanctum

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecsAreEquivalent(t *testing.T) {
	values := []any{
		Payload{"guild_id": int64(1234567890123456789), "name": "demo", "flags": []string{"a", "b"}},
		[]string{"!", "?"},
		[]string{},
		Payload{"nested": map[string]any{"enabled": true, "ratio": 0.5, "nothing": nil}},
	}

	for _, v := range values {
		fast, err := FastCodec.Marshal(v)
		require.NoError(t, err)
		std, err := StdCodec.Marshal(v)
		require.NoError(t, err)
		assert.JSONEq(t, string(std), string(fast))
	}
}

func TestFallbackCodec(t *testing.T) {
	failing := CodecFunc(func(any) ([]byte, error) {
		return nil, errors.New("unsupported")
	})
	codec := fallbackCodec{primary: failing, secondary: StdCodec}

	data, err := codec.Marshal([]string{"!"})
	require.NoError(t, err)
	assert.Equal(t, `["!"]`, string(data))
}

func TestNewCodec(t *testing.T) {
	data, err := NewCodec(true).Marshal(Payload{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	data, err = NewCodec(false).Marshal(Payload{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(data))
}
