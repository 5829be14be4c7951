// Package ident generates the opaque record identifiers used by every
// collection: a millisecond timestamp followed by a short random base36
// suffix. Collision-resistant in practice, not globally unique.
package ident

import (
	"math/rand"
	"strconv"
	"time"
)

const (
	base36      = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixChars = 9
)

// New returns a fresh identifier, e.g. "1724850000000k3j9x2m1q".
func New() string {
	buf := make([]byte, 0, 22)
	buf = strconv.AppendInt(buf, time.Now().UnixMilli(), 10)
	for i := 0; i < suffixChars; i++ {
		buf = append(buf, base36[rand.Intn(len(base36))])
	}
	return string(buf)
}
