package dispatch

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Updates arrive and leave as wire JSON often enough that codec throughput
// matters; ConfigFastest matches encoding/json for the field shapes used here.
var codec = jsoniter.ConfigFastest

// DecodeUpdate decodes one wire update. The decoded value is immutable for
// the duration of a dispatch and may be shared by reference.
func DecodeUpdate(raw []byte) (*Update, error) {
	if !codec.Valid(raw) {
		return nil, fmt.Errorf("decode update: invalid JSON")
	}
	var u Update
	if err := codec.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode update: %w", err)
	}
	return &u, nil
}

// EncodeUpdate encodes an update back to wire JSON. Round-tripping a decoded
// update preserves its classification: KindOf and ContentOf are stable
// across DecodeUpdate(EncodeUpdate(u)).
func EncodeUpdate(u *Update) ([]byte, error) {
	raw, err := codec.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode update: %w", err)
	}
	return raw, nil
}
