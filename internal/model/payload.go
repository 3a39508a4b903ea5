package model

import (
	"encoding/json"
	"fmt"
)

// Payload is the opaque block payload. On the wire it is a JSON array of byte
// integers, never a base64 string; the coordinator parses it that way.
type Payload []byte

// MarshalJSON renders the payload as an array of integers 0-255.
func (p Payload) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("[]"), nil
	}
	values := make([]uint16, len(p))
	for i, b := range p {
		values[i] = uint16(b)
	}
	return json.Marshal(values)
}

// UnmarshalJSON accepts an array of integers 0-255.
func (p *Payload) UnmarshalJSON(data []byte) error {
	var values []int16
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("payload must be an array of bytes: %w", err)
	}
	out := make(Payload, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("payload element %d out of byte range: %d", i, v)
		}
		out[i] = byte(v)
	}
	*p = out
	return nil
}
