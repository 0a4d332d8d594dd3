// Package template holds the embedded project templates and renders them
// into a new project: strict text/template rendering for .tmpl files and
// tree copies for static assets.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates a template file or tree does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced missing data.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates template actions survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token in output")

	// ErrPathTraversal indicates a template path escapes the destination.
	ErrPathTraversal = errors.New("template: path escapes destination")
)
