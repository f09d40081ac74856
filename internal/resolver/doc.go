// Package resolver implements the include-resolution engine: a recursive,
// depth-first walk over a parsed configuration tree that expands every
// $include directive by loading the referenced documents through a
// source.Reader and deep-merging them into place.
//
// Resolution is fail-fast: the first error aborts the whole walk and no
// partial result is returned. Per-resolution state (the chain of open
// documents and the include depth) is copied down the recursion, so
// independent resolutions can run in the same process without interfering.
package resolver
