package render

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// PlaceholderPhoto is served for members without a photo.
const PlaceholderPhoto = "placeholder.png"

// SafeFile normalises a photo file name to exactly one level of URI
// component encoding. Data files carry names both plain ("Ana Diaz.jpg") and
// already encoded ("Ana%20Diaz.jpg"); both come out as "Ana%20Diaz.jpg".
// A name that does not decode cleanly is encoded as is.
func SafeFile(file string) string {
	if file == "" {
		return PlaceholderPhoto
	}
	if decoded, ok := decodeURIComponent(file); ok {
		return EncodeURIComponent(decoded)
	}
	return EncodeURIComponent(file)
}

// EncodeURIComponent escapes everything except the URI unreserved set plus
// !*'(), which is what browsers do for encodeURIComponent. url.PathEscape and
// url.QueryEscape both differ from it.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedComponent(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0f])
	}
	return b.String()
}

func isUnreservedComponent(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// decodeURIComponent fails on malformed escapes and on escapes that decode to
// invalid UTF-8, matching the browser function.
func decodeURIComponent(s string) (string, bool) {
	decoded, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(decoded) {
		return "", false
	}
	return decoded, true
}
