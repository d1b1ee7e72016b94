// Package plan resolves parsed view declarations against the model type
// graph and produces the final ResolvedViewPlan consumed by code
// generation.
//
// Resolution pipeline:
//  1. Analyze model packages → type graph
//  2. Parse declaration files → descriptors
//  3. For each view:
//     - Resolve every source path hop by hop (read-only)
//     - Check identity fields against the resolved terminal type
//     - Check transform input/output signatures
//  4. Emit diagnostics; any error fails the whole unit, nothing partial
//
// All checks happen here, at generation time. If resolution succeeds,
// serialization in the generated code is total over the model type:
// field access cannot fail at runtime because every path was proven to
// resolve statically. Borrowed access is safe in the generated code
// because every pointer taken into the model is scoped to the single
// serialization call that created it.
package plan
