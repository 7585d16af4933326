package render

import (
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/schema"
)

// reportPage carries the pre-escaped fragments substituted into the page
// template.
type reportPage struct {
	Headers template.HTML
	Content template.HTML
}

// ResolveOutputPath maps the --output value to the report directory and
// file. Empty picks the default directory; a *.html value is used as-is;
// anything else is treated as a directory receiving index.html.
func ResolveOutputPath(output string) (dir, file string) {
	switch {
	case output == "":
		return "wily_report", filepath.Join("wily_report", "index.html")
	case strings.HasSuffix(output, ".html"):
		return filepath.Dir(output), output
	default:
		return output, filepath.Join(output, "index.html")
	}
}

// WriteHTML renders the report into an HTML page and places the stylesheet
// bundle next to it.
func WriteHTML(table *schema.ReportTable, outputPath string, assets contract.AssetProvider, logger contract.Logger) error {
	dir, file := ResolveOutputPath(outputPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	text, err := assets.ReportTemplate()
	if err != nil {
		return fmt.Errorf("loading report template: %w", err)
	}
	tmpl, err := template.New("report").Parse(text)
	if err != nil {
		return fmt.Errorf("parsing report template: %w", err)
	}

	page := reportPage{
		Headers: buildHeaderCells(table.Headers),
		Content: buildBodyRows(table.Rows),
	}

	out, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := tmpl.Execute(out, page); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}

	if err := copyCSS(dir, assets); err != nil {
		return err
	}

	logger.Infof("wily report was saved to %s", dir)
	return nil
}

// buildHeaderCells escapes each header into a th fragment.
func buildHeaderCells(headers []string) template.HTML {
	var b strings.Builder
	for _, h := range headers {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(h))
		b.WriteString("</th>")
	}
	return template.HTML(b.String()) // #nosec G203 -- every cell is escaped above
}

// buildBodyRows escapes each cell into tr/td fragments.
func buildBodyRows(rows [][]string) template.HTML {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	return template.HTML(b.String()) // #nosec G203 -- every cell is escaped above
}

// copyCSS places the stylesheet bundle under <dir>/css, keeping any bundle
// a user customized in place.
func copyCSS(dir string, assets contract.AssetProvider) error {
	target := filepath.Join(dir, "css")
	if _, err := os.Stat(target); err == nil {
		return nil
	}

	bundle, err := assets.CSS()
	if err != nil {
		return fmt.Errorf("loading css assets: %w", err)
	}
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("creating css directory: %w", err)
	}
	if err := os.CopyFS(target, bundle); err != nil {
		return fmt.Errorf("copying css assets: %w", err)
	}
	return nil
}
