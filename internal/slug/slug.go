// Package slug converts between a human post title and its URL-safe address.
package slug

import "strings"

// Encode turns a display title into the stored/addressable form: leading and
// trailing whitespace is trimmed and every space becomes a hyphen. Titles that
// already contain hyphens collide with their spaced counterparts ("a-b" and
// "a b" share an address); lookups resolve to the first stored post.
func Encode(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "-")
}

// Decode is the best-effort display inverse of Encode. It cannot tell an
// original hyphen from an original space, so Decode(Encode(t)) may differ
// from t. Only used for rendering, never for lookups.
func Decode(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}
