// Package resolv provides facilities for choosing a referent resolver and invoking it.  There may be
// several resolver implementations (local files, pairtrees, remote images migrated into a cache, etc),
// and the resolv package is responsible for instantiating the one a deployment is configured with and
// for turning raw request identifiers into referents it can resolve.
package resolv
