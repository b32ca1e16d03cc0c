// Package config loads modalcore settings.
//
// Settings come from built-in defaults, an optional YAML or TOML file and
// MODALCORE_* environment variables, in increasing priority:
//
//	selection = "exclusive"
//	extensions = ["~/.config/modalcore/extensions"]
//	scripts = ["~/.config/modalcore/actions.lua"]
//	validate = true
//	watch = true
//	watch_debounce = "250ms"
//
//	[log]
//	level = "debug"
//	format = "json"
//
// Nested keys use an underscore in the environment: MODALCORE_LOG_LEVEL.
//
// Without an explicit path, Load looks for config.{yaml,toml} in .modalcore/
// and then in ~/.config/modalcore/. A missing file is not an error.
package config
