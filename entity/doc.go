// Package entity models the parties and objects of an OpenURL context object.
//
// Each entity carries an ordered, heterogeneous list of descriptors.  The object
// model deliberately does not constrain what a descriptor is: an identifier is a
// *url.URL, private data can be any value, and the metadata package provides
// types for by-value and by-reference metadata.  Consumers select what they
// understand with DescriptorsOf.
package entity
