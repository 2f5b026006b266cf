package annotation

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/abiosoft/mold"
	"github.com/russross/blackfriday/v2"
)

var (
	//go:embed templates/*
	templateFS embed.FS

	//go:embed assets/report.css
	cssContent string

	defaultTemplates = sync.OnceValues(func() (*TemplateManager, error) {
		sub, err := fs.Sub(templateFS, "templates")
		if err != nil {
			return nil, err
		}
		return NewTemplateManager(sub)
	})
)

// TemplateManager renders views inside the layout.html found at the root of its filesystem.
type TemplateManager struct {
	engine interface {
		Render(w io.Writer, view string, data any) error
	}
}

func NewTemplateManager(fsys fs.FS) (*TemplateManager, error) {
	engine, err := mold.New(fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return &TemplateManager{engine: engine}, nil
}

// Render executes view with data. CSS is injected when data is a map without one.
func (tm *TemplateManager) Render(w io.Writer, view string, data map[string]any) error {
	if data == nil {
		data = make(map[string]any)
	}
	if _, ok := data["CSS"]; !ok {
		data["CSS"] = template.CSS(cssContent)
	}
	return tm.engine.Render(w, view, data)
}

// RenderHTML turns a markdown report into a standalone HTML page.
func RenderHTML(markdown []byte, title string) ([]byte, error) {
	tm, err := defaultTemplates()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = tm.Render(&buf, "report.html", map[string]any{
		"Title":   title,
		"Content": template.HTML(blackfriday.Run(markdown)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}
