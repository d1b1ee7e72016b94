// Package diagnostic provides structured errors and warnings for the
// view generator.
//
// Key capabilities:
//   - Declaration validation errors with field coordinates
//   - Type mismatch reports pointing at the specific view field
//   - Aggregation of all findings for a generation unit, so a run
//     either succeeds cleanly or fails with the full picture
package diagnostic
