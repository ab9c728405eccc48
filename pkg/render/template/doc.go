// Package template declares the template engine contract used by the HTML
// renderer, decoupling it from the concrete pongo2-backed implementation in
// the gotemplate subpackage.
package template
