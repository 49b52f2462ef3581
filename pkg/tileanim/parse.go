package tileanim

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Parse errors.
var (
	ErrEmptyInput   = errors.New("empty animation description")
	ErrNoAnimations = errors.New("animation description contains no animations")
)

// nameKey is the authoring tool's display-name key. It contains a space, so
// it cannot be decoded into a struct field without rewriting.
const nameKey = `"Animation Name"`

// Normalize rewrites a raw export into strictly decodable JSON: the
// non-identifier name key is renamed and the bare top-level array is
// wrapped under a synthetic "animations" key. Pure text rewrite, no
// JSON interpretation.
func Normalize(data []byte) []byte {
	data = bytes.ReplaceAll(data, []byte(nameKey), []byte(`"name"`))

	// Exports are a bare array; wrap so an object decoder can consume it.
	out := make([]byte, 0, len(data)+len(`{"animations":}`))
	out = append(out, `{"animations":`...)
	out = append(out, data...)
	out = append(out, '}')
	return out
}

// Parse decodes a raw animation description into its animations.
// The input is normalized first (see Normalize), then decoded strictly.
// Returns ErrEmptyInput for blank input and ErrNoAnimations when the
// document decodes but holds no animations.
func Parse(data []byte) ([]Animation, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}

	var doc Document
	if err := json.Unmarshal(Normalize(data), &doc); err != nil {
		return nil, fmt.Errorf("decoding animation description: %w", err)
	}

	if len(doc.Animations) == 0 {
		return nil, ErrNoAnimations
	}
	return doc.Animations, nil
}

// ParseFile parses an animation description from disk.
func ParseFile(path string) ([]Animation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading animation description: %w", err)
	}
	return Parse(data)
}
