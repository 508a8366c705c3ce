package identity

import (
	"net/http"
	"regexp"
	"strings"
)

// DefaultHeader is the custom username header checked first.
const DefaultHeader = "X-User-Name"

const bearerPrefix = "Bearer "

// Demo tokens embed the username as "user_<name>_...": capture up to the
// next underscore or the end of the token.
var bearerUserPattern = regexp.MustCompile(`user_(\w+?)(?:_|$)`)

// Extract resolves the username for a request using the default header
// name. See ExtractHeader.
func Extract(r *http.Request) (string, bool) {
	return ExtractHeader(r, DefaultHeader)
}

// ExtractHeader resolves the username for a request, trying each scheme in
// order and returning the first match:
//
//  1. The custom username header, value used verbatim.
//  2. HTTP Basic credentials, username used verbatim (the password is
//     ignored, not validated).
//  3. A Bearer token matching the demo "user_<name>_..." pattern.
//
// Malformed headers never produce an error; they simply fail to match and
// the next scheme is tried. When nothing matches the request is anonymous
// and the second return value is false.
func ExtractHeader(r *http.Request, header string) (string, bool) {
	if header == "" {
		header = DefaultHeader
	}
	if user := r.Header.Get(header); user != "" {
		return user, true
	}

	if user, _, ok := r.BasicAuth(); ok && user != "" {
		return user, true
	}

	auth := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(auth, bearerPrefix); ok {
		return userFromToken(token)
	}

	return "", false
}

// userFromToken performs the demo token decode. Real deployments would
// validate the token and read the username from its claims.
func userFromToken(token string) (string, bool) {
	if m := bearerUserPattern.FindStringSubmatch(token); m != nil {
		return m[1], true
	}
	return "", false
}
