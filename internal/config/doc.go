// Package config resolves vx settings from CLI flags, environment
// variables, and the user config file, with uniform per-field precedence:
// CLI flag > environment variable > config file > built-in default.
//
// The config file lives at ~/.config/vx/vx.toml:
//
//	[xbps]
//	sudo = true
//	install = "xbps-install"
//	remove = "xbps-remove"
//	query = "xbps-query"
//
//	[void_packages]
//	path = "/home/user/void-packages"
//	local_repo = "hostdir/binpkgs"
//	use_nonfree = true
//
//	[update]
//	continue_on_error = false
//
// A missing config file falls through to defaults; a malformed one is a
// hard error. The void-packages path is validated lazily: only commands
// that operate on the source tree call RequireVoidpkgs.
package config
