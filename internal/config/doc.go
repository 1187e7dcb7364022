// Package config loads the optional TOML configuration from
// ~/.config/lazytail/config.toml. A missing file is not an error; every
// field has a default, and zero or blank values fall back to it.
package config
