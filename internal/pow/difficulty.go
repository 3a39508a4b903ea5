// Package pow implements the proof-of-work search and its difficulty rule.
package pow

import (
	"encoding/hex"
	"fmt"
)

// MeetsDifficulty reports whether the hex-encoded digest starts with
// `difficulty` zero bytes. The unit is bytes, not hex characters: difficulty d
// demands 2*d leading zeros in the hex rendering. The only error path is a
// digest that is not valid hex.
func MeetsDifficulty(hexHash string, difficulty uint32) (bool, error) {
	digest, err := hex.DecodeString(hexHash)
	if err != nil {
		return false, fmt.Errorf("decode block hash %q: %w", hexHash, err)
	}
	if uint64(difficulty) > uint64(len(digest)) {
		return false, nil
	}
	for _, b := range digest[:difficulty] {
		if b != 0 {
			return false, nil
		}
	}
	return true, nil
}
