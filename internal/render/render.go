package render

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/seitarof/gen-builder/internal/classmodel"
	"github.com/seitarof/gen-builder/internal/codestyle"
)

//go:embed templates/*.java.tmpl
var templateFS embed.FS

// Emitter renders classes to source files.
type Emitter interface {
	Emit(outDir string, classes []*classmodel.Class) error
}

// Formatter normalizes rendered source text.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes rendered source to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type emitterImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type javaFormatter struct{}

type fileWriter struct{}

// New creates an Emitter.
func New(f Formatter, w FileWriter) Emitter {
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"mods":    renderMods,
		"ret":     renderReturn,
		"params":  renderParams,
		"extends": renderExtends,
	}).ParseFS(templateFS, "templates/*.java.tmpl"))
	return &emitterImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewJavaFormatter creates a Formatter backed by brace-depth
// reindentation.
func NewJavaFormatter() Formatter {
	return &javaFormatter{}
}

// NewFileWriter creates a file writer that creates missing parent
// directories.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

// Emit renders each class to <outDir>/<Name>.java.
func (e *emitterImpl) Emit(outDir string, classes []*classmodel.Class) error {
	if len(classes) == 0 {
		return fmt.Errorf("no classes to emit")
	}
	for _, c := range classes {
		var buf bytes.Buffer
		if err := e.tmpl.ExecuteTemplate(&buf, "class.java.tmpl", c); err != nil {
			return fmt.Errorf("template %s: %w", c.Name, err)
		}
		filename := filepath.Join(outDir, c.Name+".java")
		formatted, err := e.formatter.Format(filename, buf.Bytes())
		if err != nil {
			return fmt.Errorf("format %s: %w", c.Name, err)
		}
		if err := e.writer.Write(filename, formatted); err != nil {
			return fmt.Errorf("write %s: %w", c.Name, err)
		}
	}
	return nil
}

func (f *javaFormatter) Format(filename string, src []byte) ([]byte, error) {
	return []byte(codestyle.Format(string(src))), nil
}

func (w *fileWriter) Write(filename string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func renderMods(m classmodel.ModifierSet) string {
	return m.String()
}

func renderReturn(m *classmodel.Method) string {
	if m.Constructor {
		return ""
	}
	return m.ReturnType + " "
}

func renderParams(params []classmodel.Parameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type + " " + p.Name
	}
	return strings.Join(parts, ", ")
}

func renderExtends(super *classmodel.Class) string {
	if super == nil {
		return ""
	}
	return " extends " + super.QualifiedName
}
