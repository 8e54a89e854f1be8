// Package lresolv defines an API for resolving OpenURL referents to locally
// addressable image files.
//
// Resolution is provided by one or more ReferentResolver implementations.  Resolvers
// may map identifiers onto a local filesystem, a pairtree, a remote image source that
// is first migrated into a cache, etc.  See individual resolvers under resolvers/ for
// more information.
package lresolv
