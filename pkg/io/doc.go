// Package io reads the documents that boxgrid renders.
//
// A document is a JSON or TOML file whose decoded value is handed to
// [github.com/matzehuels/boxgrid/pkg/content.From]. JSON decoding keeps
// numbers as [encoding/json.Number] so that "1.50" renders as written
// rather than as a reformatted float. TOML documents always decode to a
// table, so their top level renders as a map.
//
// The format follows the file extension. Stdin and files without a known
// extension are tried as JSON first and as TOML second.
package io
