package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"portfolio/pkg/http/server/flash"
	"portfolio/pkg/models"

	"github.com/spf13/afero"
)

const (
	ProjectsTemplate    = "projects.html"
	AddProjectTemplate  = "add_project.html"
	EditProjectTemplate = "edit_project.html"

	layoutTemplate = "layout.html"
)

//go:embed templates/*.html
var embedded embed.FS

// ProjectsPage is rendered by GET /projects.
type ProjectsPage struct {
	Projects []models.Project
	Flashes  []flash.Message
}

// ProjectFormPage backs both the add and the edit form.
type ProjectFormPage struct {
	Project models.Project
	Flashes []flash.Message
}

type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data interface{}) error
}

type templateRenderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page in fsys together with the shared layout.
func NewRenderer(fsys fs.FS) (Renderer, error) {
	renderer := &templateRenderer{templates: map[string]*template.Template{}}

	for _, name := range []string{ProjectsTemplate, AddProjectTemplate, EditProjectTemplate} {
		tmpl, err := template.New(layoutTemplate).ParseFS(fsys, layoutTemplate, name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		renderer.templates[name] = tmpl
	}

	return renderer, nil
}

// LoadRenderer uses templateDir on appFs when set and the built-in templates otherwise.
func LoadRenderer(appFs afero.Fs, templateDir string) (Renderer, error) {
	if templateDir != "" {
		return NewRenderer(afero.NewIOFS(afero.NewBasePathFs(appFs, templateDir)))
	}
	return NewRenderer(DefaultTemplates())
}

func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Render executes the template into a buffer first so a failing template never leaves a half written page.
func (renderer *templateRenderer) Render(w http.ResponseWriter, status int, name string, data interface{}) error {
	tmpl, ok := renderer.templates[name]
	if !ok {
		return fmt.Errorf("unknown template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layoutTemplate, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
