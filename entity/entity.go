package entity

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ErrUninitialized is returned when reading from, or adding to, an entity that
// was constructed without any descriptor sequence at all.
var ErrUninitialized = errors.New("entity descriptors were never initialized")

// Kind names the role an entity plays in a context object
type Kind int

// Entity kinds, as defined by the OpenURL object model
const (
	Unknown Kind = iota
	Referent
	ReferringEntity
	Requester
	ServiceType
	Resolver
	Referrer
)

var kindNames = map[Kind]string{
	Unknown:         "Unknown",
	Referent:        "Referent",
	ReferringEntity: "ReferringEntity",
	Requester:       "Requester",
	ServiceType:     "ServiceType",
	Resolver:        "Resolver",
	Referrer:        "Referrer",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseKind parses a kind from its String() form, ignoring case.
func ParseKind(s string) Kind {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k
		}
	}
	return Unknown
}

// Entity is a party or object in a resolution context, described by an ordered
// list of descriptors.  A descriptor may be any value: a *url.URL, a string, a byte
// slice, a metadata document, etc.
//
// An Entity is meant to be built and read within a single request, and is not
// safe for concurrent mutation.
type Entity struct {
	Kind        Kind
	descriptors []interface{}
	initialized bool
}

// New creates an entity of the given kind.
//
// A nil initial value creates an entity with no descriptor sequence at all, which
// is not the same as an empty one: its accessors return ErrUninitialized.  A
// slice of any element type, e.g. []interface{} or []*url.URL, is copied into the
// entity element by element.  A []byte is a single descriptor, as is anything else.
func New(k Kind, initial interface{}) *Entity {
	e := &Entity{Kind: k}

	switch d := initial.(type) {
	case nil:
		return e
	case []interface{}:
		e.descriptors = make([]interface{}, len(d))
		copy(e.descriptors, d)
	case []byte:
		e.descriptors = []interface{}{d}
	default:
		v := reflect.ValueOf(d)
		if v.Kind() != reflect.Slice {
			e.descriptors = []interface{}{d}
			break
		}

		e.descriptors = make([]interface{}, v.Len())
		for i := range e.descriptors {
			e.descriptors[i] = v.Index(i).Interface()
		}
	}

	e.initialized = true
	return e
}

// NewReferent creates a Referent entity.  See New.
func NewReferent(initial interface{}) *Entity {
	return New(Referent, initial)
}

// Initialized tells whether the entity has a descriptor sequence, empty or not
func (e *Entity) Initialized() bool {
	return e != nil && e.initialized
}

// Descriptors returns a snapshot of all descriptors, in insertion order.  A nil
// entity is treated as uninitialized.
func (e *Entity) Descriptors() ([]interface{}, error) {
	if !e.Initialized() {
		return nil, errors.Wrapf(ErrUninitialized, "could not read descriptors of %s", e.kind())
	}

	snapshot := make([]interface{}, len(e.descriptors))
	copy(snapshot, e.descriptors)
	return snapshot, nil
}

// AddDescriptor appends a descriptor.  Descriptors are neither deduplicated nor
// type checked.
func (e *Entity) AddDescriptor(d interface{}) error {
	if !e.Initialized() {
		return errors.Wrapf(ErrUninitialized, "could not add descriptor to %s", e.kind())
	}

	e.descriptors = append(e.descriptors, d)
	return nil
}

// String lists each descriptor's string form on its own line.
func (e *Entity) String() string {
	if e == nil {
		return ""
	}

	var sb strings.Builder
	for _, d := range e.descriptors {
		fmt.Fprintf(&sb, "%v\n", d)
	}
	return sb.String()
}

// DescriptorsOf returns the descriptors of e that are assignable to T, in their
// original relative order.  If T is an interface type, every descriptor
// implementing it matches.
func DescriptorsOf[T any](e *Entity) ([]T, error) {
	if !e.Initialized() {
		return nil, errors.Wrapf(ErrUninitialized, "could not read descriptors of %s", e.kind())
	}

	matches := []T{}
	for _, d := range e.descriptors {
		if t, ok := d.(T); ok {
			matches = append(matches, t)
		}
	}
	return matches, nil
}

func (e *Entity) kind() Kind {
	if e == nil {
		return Unknown
	}
	return e.Kind
}
