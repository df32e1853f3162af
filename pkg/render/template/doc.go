// Package template defines the template rendering seam used by the html
// renderer. The pongo subpackage provides the default pongo2 engine.
package template
