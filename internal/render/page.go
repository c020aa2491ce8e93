package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/page.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/page.html"))

type pageData struct {
	View
	SocketPort string
}

// Page writes the full score tracker document. socketPort is where the page listens for live updates.
func Page(w io.Writer, view View, socketPort string) error {
	if err := pageTemplate.Execute(w, pageData{View: view, SocketPort: socketPort}); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}

	return nil
}
