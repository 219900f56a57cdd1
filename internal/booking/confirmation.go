package booking

import (
	"crypto/rand"
	"fmt"
	"time"
)

const confirmationPrefix = "LUM"

// Letters and digits that survive being read over the phone.
const confirmationAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// NewConfirmationNumber builds a human-readable identifier such as
// LUM-847213-K4QT: fixed prefix, time-derived digits, short random suffix.
// Uniqueness is probabilistic; collisions are accepted, not handled.
func NewConfirmationNumber(now time.Time) string {
	return fmt.Sprintf("%s-%06d-%s", confirmationPrefix, now.Unix()%1_000_000, randomSuffix(4))
}

func randomSuffix(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = confirmationAlphabet[int(buf[i])%len(confirmationAlphabet)]
	}
	return string(buf)
}
