package config

import _ "embed" // because we embed a file

// DefaultConfig is the content of a freshly created config file.
//
//go:embed default-config.json
var DefaultConfig []byte
