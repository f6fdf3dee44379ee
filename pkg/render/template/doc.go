// Package template defines the template engine contract used to wrap rendered
// pages in full documents. The gotemplate subpackage provides a pongo2
// implementation.
package template
