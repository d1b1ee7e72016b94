// Package gen provides deterministic Go code generation for view
// serialization adapters.
//
// Generation approach uses text/template + go/format for readable,
// allocation-light Go code.
//
// Per resolved view, one file is emitted containing:
//   - the plain view struct (attributes carried verbatim)
//   - a serializer core writing the fields in declaration order
//   - eight single-field wrapper adapters over the {ownership ×
//     container × container-indirection} space, each implementing
//     json.Marshaler by computing every field on demand from the
//     wrapped model value
package gen
