package domain

import (
	"bytes"
	"fmt"
)

// ActiveFlag is the activo field as it travels on the wire. The legacy
// backend stored it as a MySQL tinyint, so clients may send or expect 1/0
// while newer payloads use booleans. It marshals as 1/0 and accepts either
// representation on input.
type ActiveFlag bool

// Bool returns the normalized boolean value.
func (f ActiveFlag) Bool() bool { return bool(f) }

func (f ActiveFlag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *ActiveFlag) UnmarshalJSON(data []byte) error {
	switch string(bytes.TrimSpace(data)) {
	case "1", "true", `"1"`, `"true"`:
		*f = true
	case "0", "false", "null", `"0"`, `"false"`, `""`:
		*f = false
	default:
		return fmt.Errorf("invalid active flag %q", data)
	}
	return nil
}
