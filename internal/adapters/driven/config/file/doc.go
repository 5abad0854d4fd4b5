// Package file implements configuration storage backed by a TOML
// file in the litorg config directory.
package file
