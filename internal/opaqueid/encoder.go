// Package opaqueid translates internal numeric identifiers to the opaque,
// URL-safe tokens exposed by the API. Raw numeric IDs never reach clients.
package opaqueid

import (
	"fmt"

	hashids "github.com/speps/go-hashids/v2"
)

const (
	minLength = 8
	alphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"
)

// Encoder is a reversible ID codec. Construct once at startup and share;
// it is read-only afterwards.
type Encoder struct {
	h *hashids.HashID
}

func New(salt string) (*Encoder, error) {
	data := hashids.NewData()
	data.Salt = salt
	data.MinLength = minLength
	data.Alphabet = alphabet

	h, err := hashids.NewWithData(data)
	if err != nil {
		return nil, fmt.Errorf("init hashids: %w", err)
	}
	return &Encoder{h: h}, nil
}

// Encode turns a positive numeric ID into an opaque token.
func (e *Encoder) Encode(id int64) (string, error) {
	if id < 1 {
		return "", fmt.Errorf("invalid id for encoding: %d", id)
	}
	return e.h.EncodeInt64([]int64{id})
}

// Decode reverses Encode. Garbage input returns ok=false, not an error;
// callers treat it the same as a missing resource.
func (e *Encoder) Decode(token string) (int64, bool) {
	if token == "" {
		return 0, false
	}
	ids, err := e.h.DecodeInt64WithError(token)
	if err != nil || len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
