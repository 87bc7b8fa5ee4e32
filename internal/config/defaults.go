package config

import (
	_ "embed"
)

//go:embed defaults/cornmaze.yaml
var defaultYAML []byte
