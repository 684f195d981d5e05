package web

import "embed"

//go:embed templates
var Files embed.FS
