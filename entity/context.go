package entity

import (
	"strings"
)

// ContextObject bundles the entities of a single resolution request around
// its referent.
type ContextObject struct {
	Referent          *Entity
	ReferringEntities []*Entity
	Requesters        []*Entity
	ServiceTypes      []*Entity
	Resolvers         []*Entity
	Referrers         []*Entity
}

// String renders the referent, followed by every other entity, for diagnostics.
func (c *ContextObject) String() string {
	var sb strings.Builder

	if c.Referent != nil {
		sb.WriteString(c.Referent.String())
	}

	for _, group := range [][]*Entity{
		c.ReferringEntities,
		c.Requesters,
		c.ServiceTypes,
		c.Resolvers,
		c.Referrers,
	} {
		for _, e := range group {
			sb.WriteString(e.Kind.String())
			sb.WriteString(":\n")
			sb.WriteString(e.String())
		}
	}

	return sb.String()
}
