// Package metadata contains descriptor types for metadata about OpenURL entities.
// At the moment, it is mostly a 1:1 reflection of the metadata descriptors of the OpenURL 1.0
// object model.
//
// By-value metadata carries its fields inline, either as key/value pairs taken from a request
// or as an XML document.  By-reference metadata points to where the metadata can be fetched.
// In every case a format URI names the metadata format.
//
// Any of these can be attached to an entity as a descriptor, and selected from it with
// entity.DescriptorsOf
package metadata
