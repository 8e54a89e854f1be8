package resolv

import (
	"io"

	"github.com/birkland/lresolv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadProperties reads resolver properties from a YAML mapping of keys to scalar
// values, e.g.
//
//	resolver.impl: local
//	djatoka.ignore.fscache: true
//
// An empty document yields empty properties.
func LoadProperties(r io.Reader) (lresolv.Properties, error) {
	var raw map[string]string

	err := yaml.NewDecoder(r).Decode(&raw)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "could not decode resolver properties")
	}

	props := make(lresolv.Properties, len(raw))
	for k, v := range raw {
		props[k] = v
	}

	return props, nil
}
