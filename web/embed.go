package web

import "embed"

// TemplatesFS embeds the report page templates.
//
//go:embed templates/*.html
var TemplatesFS embed.FS
