package util

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

// Digest is the hex md5 of b, printed next to converted payloads.
func Digest(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

// HashUUID derives a UUID from the json form of value, so equal values
// always map to the same id. Values that fail to marshal map to uuid.Nil.
func HashUUID(value any) uuid.UUID {
	raw, err := json.Marshal(value)
	if err != nil {
		return uuid.Nil
	}
	sum := md5.Sum(raw)
	id, err := uuid.FromBytes(sum[:])
	if err != nil {
		return uuid.Nil
	}
	return id
}
