// Package ident generates the short string identifiers used for boards,
// columns and tasks.
package ident

import (
	"math/rand/v2"
	"strconv"
	"time"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomDigits = 6
)

// New returns base-36 unix milliseconds followed by six random base-36 digits.
// Collisions are not detected.
func New() string {
	return NewAt(time.Now())
}

// NewAt is New with an explicit clock reading.
func NewAt(now time.Time) string {
	buf := make([]byte, 0, 16)
	buf = strconv.AppendInt(buf, now.UnixMilli(), 36)
	for i := 0; i < randomDigits; i++ {
		buf = append(buf, alphabet[rand.IntN(len(alphabet))])
	}
	return string(buf)
}
