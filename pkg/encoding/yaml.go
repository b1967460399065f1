package encoding

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"
)

// LoadAndUnmarshalYAML loads data from the specified path and decodes it into
// the specified structure. Decoding is strict and will fail if the data
// contains fields unknown to the target structure. Empty files decode
// successfully and leave the target structure unmodified.
func LoadAndUnmarshalYAML(path string, value interface{}) error {
	return LoadAndUnmarshal(path, func(data []byte) error {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(value); err != nil && err != io.EOF {
			return err
		}
		return nil
	})
}
