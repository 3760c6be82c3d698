// Package store implements the key/value persistence adapters behind the
// domain.Store port.
package store

import (
	"encoding/json"
	"fmt"
)

// Storage keys. The aura: prefix namespaces our entries away from anything
// else sharing the same store.
const (
	KeyCart      = "aura:cart"
	KeyUser      = "aura:user"
	KeyDirectory = "aura:users-directory"
)

// schemaVersion tags every stored payload so a future format change can be
// detected instead of silently misread.
const schemaVersion = 1

type envelope struct {
	Version int             `json:"v"`
	Data    json.RawMessage `json:"data"`
}

// Encode wraps v in a versioned JSON envelope.
func Encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return json.Marshal(envelope{Version: schemaVersion, Data: data})
}

// Decode unwraps a versioned envelope into dst. Payloads with an unknown
// version or malformed JSON are rejected; callers fall back to defaults.
func Decode(raw []byte, dst any) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if env.Version != schemaVersion {
		return fmt.Errorf("unsupported payload version %d", env.Version)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
