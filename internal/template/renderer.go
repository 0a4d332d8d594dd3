package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"maps"
	"regexp"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// templateFuncMap provides the functions available in all templates:
// sprig's text functions plus a few project-specific helpers.
var templateFuncMap = buildFuncMap()

func buildFuncMap() template.FuncMap {
	funcs := template.FuncMap{}
	maps.Copy(funcs, sprig.TxtFuncMap())

	title := cases.Title(language.English)
	maps.Copy(funcs, template.FuncMap{
		// jsonEscape escapes a string for safe embedding in JSON values.
		"jsonEscape": func(s string) string {
			b, err := json.Marshal(s)
			if err != nil {
				return s
			}
			return string(b[1 : len(b)-1])
		},
		// posixPath converts Windows backslash paths to forward-slash POSIX paths.
		"posixPath": func(s string) string {
			return strings.ReplaceAll(s, "\\", "/")
		},
		"title": title.String,
	})
	return funcs
}

// unexpandedTokenPattern detects template actions left in rendered output,
// such as {{.Name}} produced by a nested template. Mustache-style
// expressions with spaces ({{ count }}) belong to frontend frameworks and
// are allowed.
var unexpandedTokenPattern = regexp.MustCompile(`\{\{\.[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template from the template FS and executes
	// it with the given data. Returns ErrMissingTemplateKey if a key is
	// missing and ErrUnexpandedToken if tokens remain after rendering.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), templateName)
	}
	return result, nil
}
