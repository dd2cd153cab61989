// Package clients obtains the raw text produced by apt-cache and dpkg.
package clients

import (
	"context"
	"errors"
	"strings"
)

// ErrToolLaunch is returned when an external tool cannot be started
var ErrToolLaunch = errors.New("failed to launch external tool")

// Source yields the complete text output of one external tool
type Source interface {
	Fetch(ctx context.Context) (string, error)
}

// decodeLossy converts tool output to valid UTF-8, replacing invalid
// sequences with U+FFFD.
func decodeLossy(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
