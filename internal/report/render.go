// Where: internal/report/render.go
// What: Render the status block and the post-run summary.
// Why: Keep operator-facing report layout in templates, not format strings.
package report

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// ClosingData feeds the summary printed after a reset or clean run.
type ClosingData struct {
	Mode           string
	ServerVersion  string
	Containers     int
	Images         int
	Volumes        int
	Networks       int
	SpaceReclaimed string
	Warnings       []string
}

// StatusData feeds the engine status block.
type StatusData struct {
	EngineName        string
	ServerVersion     string
	OperatingSystem   string
	Containers        int
	ContainersRunning int
	Images            int
}

func RenderClosing(data ClosingData) (string, error) {
	return renderTemplate("closing.tmpl", data)
}

func RenderStatus(data StatusData) (string, error) {
	return renderTemplate("status.tmpl", data)
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		return value.(*template.Template), nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
