// Package decl parses view declaration files into validated
// field-mapping descriptors.
//
// A declaration names a view, the model type it projects, and an ordered
// list of field specifications:
//
//	view UserResponse<store.User> {
//		user_id: string = ID => |id: *store.RecordID| -> string { id.Key },
//		email_id: string = Email,
//	}
//
// Each field maps a view field name and type to a source path on the
// model, optionally through an inlined transform expression. Parsing is
// pure: no I/O beyond reading the input, no partial descriptors on error.
package decl
