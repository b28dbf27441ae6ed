// Package catalog holds the block-type registry: the immutable schema,
// category, and emission template for every kind of block the generator can
// render. Block types are declared in HCL manifests and bound at startup to
// Go template functions registered by name, so a manifest without a matching
// template (or the reverse) is caught before any generation happens.
package catalog
