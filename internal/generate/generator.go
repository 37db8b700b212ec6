package generate

import (
	"bytes"
	_ "embed"
	"go/format"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed keymap.go.tmpl
var keymapTemplate string

var tmpl = template.Must(template.New("keymap.go.tmpl").Parse(keymapTemplate))

// TemplateGenerator implements the Generator interface using templates
type TemplateGenerator struct {
	outFile string
	outDir  string
}

// NewTemplateGenerator returns a new instance of TemplateGenerator
func NewTemplateGenerator(outFile string) *TemplateGenerator {
	return &TemplateGenerator{
		outFile: outFile,
		outDir:  filepath.Dir(outFile),
	}
}

// Render executes the keymap template and gofmts the result
func Render(data Data) ([]byte, error) {
	buf := bytes.Buffer{}

	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}

// Generate implements the Generate method using templates
func (t *TemplateGenerator) Generate(data Data) error {
	src, err := Render(data)

	if err != nil {
		return err
	}

	if err := os.MkdirAll(t.outDir, 0751); err != nil {
		return err
	}

	return os.WriteFile(t.outFile, src, 0644)
}
