package integrations

import (
	"context"
	"errors"
	"net"
	"net/url"
	"time"
)

// Per-call deadlines for the two request classes.
// Search endpoints answer quickly; detail documents can be large.
const (
	SearchTimeout = 10 * time.Second
	DetailTimeout = 15 * time.Second
)

// URLEncode percent-encodes a string for use in URLs.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }

// PathEncode percent-encodes a string for use as a URL path segment.
// Metabolite names are arbitrary user-entered text and may contain spaces,
// slashes, or non-ASCII characters.
func PathEncode(s string) string { return url.PathEscape(s) }

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
