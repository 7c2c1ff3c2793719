/*
Package registry erases machine type parameters behind a string-rendered
surface so heterogeneous models can share one CLI and HTTP adapter.

Bind adapts a concrete generic machine (plus its W-set and an input
parser) into a Model; a Registry is an ordered catalogue of Models. All
rendering goes through fmt, so symbol types should implement Stringer for
readable output.
*/
package registry
