package local

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/birkland/lresolv"
	"github.com/pkg/errors"
)

// A known doubly-encoded UTF-8 identifier, and what it must decode to.
var probe = struct {
	encoded string
	decoded string
}{
	encoded: "file%253A%252F%252F%252Fimages%252F%25C3%25A9t%25C3%25A9.jp2",
	decoded: "file:///images/été.jp2",
}

// CheckEncoding verifies that identifiers can be decoded as UTF-8 at all.  A failure
// is a fault of the environment rather than of any particular identifier, so it is
// checked once, when a resolver is created.
func CheckEncoding() error {
	decoded, err := decode(probe.encoded)
	if err != nil || decoded != probe.decoded || !utf8.ValidString(decoded) {
		return errors.Wrapf(lresolv.ErrEnvironment, "UTF-8 self check decoded %q as %q", probe.encoded, decoded)
	}
	return nil
}

// decode form-decodes an identifier exactly twice.  Upstream encodes identifiers twice,
// so two passes recover the canonical form.  This must not become a loop that
// decodes until the value stops changing: a canonical identifier may itself
// contain escapes, e.g. a file literally named 100%25.jp2
func decode(id string) (string, error) {
	once, err := url.QueryUnescape(id)
	if err != nil {
		return "", errors.Wrapf(lresolv.ErrMalformed, "could not decode %q: %s", id, err)
	}

	twice, err := url.QueryUnescape(once)
	if err != nil {
		return "", errors.Wrapf(lresolv.ErrMalformed, "could not decode %q a second time: %s", once, err)
	}

	return twice, nil
}

// clean removes stray newlines from a decoded identifier
func clean(decoded string) string {
	return strings.Replace(decoded, "\n", "", -1)
}
