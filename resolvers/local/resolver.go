package local

import (
	"os"

	"github.com/birkland/lresolv"
	"github.com/birkland/lresolv/entity"
	"github.com/birkland/lresolv/fspath"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Resolver resolves identifiers of images on local disk.  It holds no mutable
// state, and is safe for concurrent use.
type Resolver struct {
	cfg Config
}

// Config encapsulates a local resolver config.
//
// PathFunc maps a decoded, cleaned identifier to an image path.  If not
// provided, fspath.StripFileScheme is used.  Log defaults to discarding
// everything.
type Config struct {
	PathFunc fspath.Generator
	Log      logr.Logger
}

var _ lresolv.ReferentResolver = &Resolver{}

// NewResolver initializes a new local resolver.  It fails with
// lresolv.ErrEnvironment if identifiers cannot be decoded in this environment.
func NewResolver(cfg Config) (*Resolver, error) {
	if err := CheckEncoding(); err != nil {
		return nil, errors.Wrapf(err, "local resolver is unusable")
	}

	if cfg.PathFunc == nil {
		cfg.PathFunc = fspath.StripFileScheme
	}

	if cfg.Log.GetSink() == nil {
		cfg.Log = logr.Discard()
	}

	return &Resolver{cfg: cfg}, nil
}

// ImageRecord resolves a doubly-encoded identifier.  The record's identifier is the
// decoded identifier, file:// scheme and all, minus any newlines.  Its image file
// is that identifier without the scheme.
func (r *Resolver) ImageRecord(id string) (*lresolv.ImageRecord, error) {
	decoded, err := decode(id)
	if err != nil {
		return nil, err
	}

	r.cfg.Log.V(1).Info("found a locally resolvable ID", "id", decoded)

	cleaned := clean(decoded)
	return &lresolv.ImageRecord{
		Identifier: cleaned,
		ImageFile:  r.cfg.PathFunc.Generate(cleaned),
	}, nil
}

// ReferentImageRecord resolves the URI carried as the referent's first descriptor,
// exactly as ImageRecord resolves a string identifier.  Referents without a URI first
// descriptor fail with lresolv.ErrContract.
func (r *Resolver) ReferentImageRecord(referent *entity.Entity) (*lresolv.ImageRecord, error) {
	uri, err := lresolv.ReferentURI(referent)
	if err != nil {
		return nil, err
	}

	return r.ImageRecord(uri.String())
}

// Status reports whether the image file named by an identifier exists.  The file is
// only stat'ed, never opened.  Errors are reserved for identifiers that cannot be
// decoded; a missing file is simply lresolv.NotFound.
func (r *Resolver) Status(id string) (lresolv.Status, error) {
	rec, err := r.ImageRecord(id)
	if err != nil {
		return lresolv.Unknown, err
	}

	_, err = os.Stat(rec.ImageFile)
	if err == nil {
		return lresolv.Found, nil
	}

	// Anything other than "does not exist" (e.g. permission denied) still means
	// we cannot serve it, but is worth knowing about.
	if !os.IsNotExist(err) {
		r.cfg.Log.Error(err, "could not stat image file", "id", rec.Identifier, "path", rec.ImageFile)
	} else {
		r.cfg.Log.V(1).Info("image file does not exist", "id", rec.Identifier, "path", rec.ImageFile)
	}

	return lresolv.NotFound, nil
}

// ReferentMigrator always reports that there is no migrator.  Local images are
// served in place.
func (r *Resolver) ReferentMigrator() (lresolv.ReferentMigrator, bool) {
	return nil, false
}

// SetProperties accepts, and ignores, resolver properties.  The local resolver has
// nothing to configure.
func (r *Resolver) SetProperties(props lresolv.Properties) error {
	return nil
}
