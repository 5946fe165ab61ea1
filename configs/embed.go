// Package configs embeds the configuration template shipped with the
// binary. `retriva init` writes it out as a starting point; the
// defaults it shows match internal/config.NewConfig.
package configs

import _ "embed"

// ConfigTemplate is the annotated starter configuration written by
// `retriva init`.
//
//go:embed config.example.yaml
var ConfigTemplate string
