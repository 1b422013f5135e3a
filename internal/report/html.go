package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
)

// htmlDocument is the report page. It is a package-scoped constant, so a
// run can never alter the shape of the next run's report.
const htmlDocument = `<!DOCTYPE html>
<html>
  <head>
    <title>wfctl run results</title>
    <style>
      ul#results {border: 2px ridge maroon; background-color: #ffffcc; padding: 0.25em 1.5em; margin-left: 0;}
      li.success {color: #006400;}
      li.failure {color: #dc143c; text-decoration: line-through;}
    </style>
  </head>
  <body>
    <h1>wfctl run results</h1>
    <ul id="results">
{{- range .Entries}}
      <li class="{{.Status}}">{{.Timestamp.Format "2006-01-02 15:04:05"}} | {{.Label}} | {{.Text}}</li>
{{- end}}
    </ul>
  </body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlDocument))

// WriteHTML renders the document as one complete HTML page.
func WriteHTML(w io.Writer, doc Document) error {
	return htmlTemplate.Execute(w, doc)
}

// AppendHTMLFile appends a rendered page to path, creating the file if
// needed. Successive runs accumulate one page each, so earlier results
// are never lost.
func AppendHTMLFile(path string, doc Document) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("report: open %s: %w", path, err)
	}
	if err := WriteHTML(f, doc); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	return nil
}
