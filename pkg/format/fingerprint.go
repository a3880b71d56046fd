package format

import "github.com/google/uuid"

var fingerprintSpace = uuid.NewMD5(uuid.NameSpaceURL, []byte("https://github.com/jpfielding/texel.go/format"))

// Fingerprint returns a stable name-based UUID for f. Two builds agree on
// it as long as the format keeps its name, which makes it usable as a cache
// key across processes where the numeric value might drift.
func Fingerprint(f Format) uuid.UUID {
	return uuid.NewMD5(fingerprintSpace, []byte(f.String()))
}
