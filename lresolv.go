package lresolv

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/birkland/lresolv/entity"
	"github.com/pkg/errors"
)

// Status names the outcome of an existence probe
type Status int

// Existence probe outcomes.  Unknown is never produced by a resolver; it is
// the zero value, and the result of parsing an unrecognized status.
const (
	Unknown Status = iota
	Found
	NotFound
)

// HTTPStatus maps a status onto the transport status code used to report it.
func (s Status) HTTPStatus() int {
	switch s {
	case Found:
		return http.StatusOK
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s Status) String() string {
	switch s {
	case Found:
		return "OK"
	case NotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ParseStatus parses a status from its string form, as produced by String().
// Parsing is case insensitive.  Unrecognized strings parse as Unknown.
func ParseStatus(s string) Status {
	switch strings.ToLower(s) {
	case "ok":
		return Found
	case "not found":
		return NotFound
	default:
		return Unknown
	}
}

// ImageRecord pairs a referent identifier with the local image file it resolves to.
type ImageRecord struct {
	Identifier string
	ImageFile  string
}

// Properties configure a resolver implementation
type Properties map[string]string

// Error kinds.  Resolvers wrap these, so compare against errors.Cause(err).
var (
	// ErrEnvironment means the runtime cannot decode identifiers at all.  A resolver
	// that reports it at construction is unusable.
	ErrEnvironment = errors.New("identifier decoding is unsupported in this environment")

	// ErrContract means a caller handed a resolver a referent it cannot interpret,
	// e.g. one without a URI as its first descriptor.
	ErrContract = errors.New("referent does not carry a resolvable URI")

	// ErrMalformed means an identifier could not be percent-decoded.
	ErrMalformed = errors.New("malformed identifier")
)

// ReferentURI returns the identifier of a referent: its first descriptor, which must
// be a URI (*url.URL or url.URL).  Anything else fails with ErrContract.
func ReferentURI(referent *entity.Entity) (*url.URL, error) {
	if referent == nil {
		return nil, errors.Wrap(ErrContract, "no referent given")
	}

	descriptors, err := referent.Descriptors()
	if err != nil {
		return nil, errors.Wrapf(ErrContract, "could not read referent: %s", err)
	}

	if len(descriptors) == 0 {
		return nil, errors.Wrap(ErrContract, "referent has no descriptors")
	}

	switch uri := descriptors[0].(type) {
	case *url.URL:
		if uri == nil {
			return nil, errors.Wrap(ErrContract, "referent URI is nil")
		}
		return uri, nil
	case url.URL:
		return &uri, nil
	default:
		return nil, errors.Wrapf(ErrContract, "first referent descriptor is a %T, not a URI", uri)
	}
}

// ReferentResolver resolves referent identifiers to image records.  Implementations must
// be safe for concurrent use.
type ReferentResolver interface {

	// ImageRecord resolves a (possibly encoded) referent identifier.
	ImageRecord(id string) (*ImageRecord, error)

	// ReferentImageRecord resolves the identifier carried by the first
	// descriptor of a referent entity.
	ReferentImageRecord(referent *entity.Entity) (*ImageRecord, error)

	// Status reports whether the image behind an identifier exists.  A missing
	// image is NotFound, never an error.
	Status(id string) (Status, error)

	// ReferentMigrator returns the migrator used to bring remote referents
	// local, if the resolver has one.
	ReferentMigrator() (ReferentMigrator, bool)

	// SetProperties configures the resolver.
	SetProperties(props Properties) error
}

// ReferentMigrator copies a referent from wherever it lives into storage the image
// server can read from, converting it along the way if need be.
type ReferentMigrator interface {

	// Convert migrates the image at the given URI, returning the local path of the result
	Convert(referent string, uri *url.URL) (string, error)

	// Processing lists referents currently being migrated
	Processing() []string
}
