//go:build (linux || darwin || windows) && (amd64 || arm64)

package json

import "github.com/bytedance/sonic"

var api = sonic.ConfigStd

// Marshal encodes v as JSON using the current API config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalIndent encodes v as indented JSON using the current API config.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return api.MarshalIndent(v, prefix, indent)
}

// Unmarshal decodes data into v using the current API config.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// SetConfig replaces the sonic configuration used by this package.
//
// It is not safe to call concurrently with encoding or decoding.
func SetConfig(config *sonic.Config) {
	api = config.Froze()
}
