// Package config loads the cookshow server configuration.
//
// Values are layered in increasing precedence: Default, an optional YAML
// file, then COOKSHOW_* environment variables (a .env file in the working
// directory is loaded first). The CLI applies its flags on top.
package config
