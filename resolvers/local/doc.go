// Package local provides a referent resolver for images that already live on local disk.
//
// Identifiers are expected to be doubly form-encoded file:// URIs (or bare paths).  The
// resolver decodes them, strips the file:// scheme, and uses the remaining path as the
// image file.  It never copies or converts images: when the images and the image server
// share the same storage, migrating them into a cache first is a waste of time.  So
// ReferentMigrator always reports that there is no migrator.
package local
