// Package renderer turns a single declared field into an HTML control.
//
// A Registry maps each model.FieldType to a Factory. Callers resolve a
// renderer, Configure it with the field name, the field's FieldConfig and the
// page's PageConfig, then call Render. Renderers never mutate their inputs
// and Render is idempotent, so the same configured renderer may be rendered
// any number of times.
//
// Every renderer shares the helpers in base.go: DOM id and name derivation
// ("{page}_{field}" and "{page}[{field}]"), value resolution including the
// extcol_ extended-column lookup, inline error display, hint blocks and the
// data-* attributes generated from behaviour rules.
package renderer
