// Package web holds the browser front end served at the site root.
package web

import _ "embed"

// IndexHTML is the single-page editor.
//
//go:embed index.html
var IndexHTML string
