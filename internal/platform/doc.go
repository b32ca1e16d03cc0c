// Package platform loads extension binding declarations and turns them into
// mode providers merged over the base grammar.
//
// A declaration names host actions and the keys that trigger them:
//
//	name = "eclipse"
//
//	[[bindings]]
//	mode = "normal"
//	keys = "<C-f>"
//	action = "goto.pageDown"
//
//	[[bindings]]
//	mode = "normal"
//	keys = "gc"
//	action = "toggle.comment"
//	operator = true
//	deselect = true
//
//	[[bindings]]
//	mode = "visual"
//	keys = "gU"
//	action = "upperCase"
//	leave_visual = true
//
// Declarations are read from TOML or YAML files. Operator bindings apply
// their action to every motion and text object of the base grammar.
package platform
