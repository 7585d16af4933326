// Package assets embeds the default report page template and stylesheet
// bundle.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed templates/report_template.html
var templateFS embed.FS

//go:embed templates/css
var cssFS embed.FS

// Provider serves the built-in report assets.
type Provider struct{}

// ReportTemplate returns the HTML page template text.
func (Provider) ReportTemplate() (string, error) {
	data, err := templateFS.ReadFile("templates/report_template.html")
	if err != nil {
		return "", fmt.Errorf("reading embedded report template: %w", err)
	}
	return string(data), nil
}

// CSS returns the stylesheet bundle as a filesystem rooted at the css
// directory.
func (Provider) CSS() (fs.FS, error) {
	return fs.Sub(cssFS, "templates/css")
}
