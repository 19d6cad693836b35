// Package data holds the embedded default countries dataset.
package data

import _ "embed"

//go:embed countries.json
var countries []byte

// Countries returns the raw JSON of the default dataset.
func Countries() []byte { return countries }
