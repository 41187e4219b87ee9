package mail

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed templates/*.yaml
var templateFiles embed.FS

// TemplateContact is the notification sent for contact-form submissions.
const TemplateContact = "contact"

type templateFile struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

type compiledTemplate struct {
	subject *template.Template
	body    *template.Template
}

// Templates holds the embedded email templates, keyed by file name without extension.
// It is read-only after construction.
type Templates struct {
	templates map[string]*compiledTemplate
}

// NewTemplates parses every embedded template file.
func NewTemplates() (*Templates, error) {
	return loadTemplates(templateFiles)
}

func loadTemplates(fsys fs.FS) (*Templates, error) {
	files, err := fs.Glob(fsys, "templates/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	t := &Templates{templates: make(map[string]*compiledTemplate, len(files))}
	for _, filename := range files {
		name := strings.TrimSuffix(path.Base(filename), ".yaml")
		if err := t.loadFile(fsys, filename, name); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Templates) loadFile(fsys fs.FS, filename, name string) error {
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var file templateFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}
	if file.Subject == "" || file.Body == "" {
		return fmt.Errorf("%s: subject and body are required", filename)
	}

	subject, err := template.New(name + ".subject").Option("missingkey=error").Parse(file.Subject)
	if err != nil {
		return fmt.Errorf("%s: parse subject: %w", filename, err)
	}
	body, err := template.New(name + ".body").Option("missingkey=error").Parse(file.Body)
	if err != nil {
		return fmt.Errorf("%s: parse body: %w", filename, err)
	}

	t.templates[name] = &compiledTemplate{subject: subject, body: body}
	return nil
}

// Render executes the named template against data.
func (t *Templates) Render(name string, data any) (subject, body string, err error) {
	tmpl, ok := t.templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown template: %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.subject.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render %s subject: %w", name, err)
	}
	// Subjects are single-line headers
	subject = strings.Join(strings.Fields(buf.String()), " ")

	buf.Reset()
	if err := tmpl.body.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("render %s body: %w", name, err)
	}

	return subject, buf.String(), nil
}
