// Package model defines the data shared by page nodes and field renderers:
// the per-page PageConfig (DOM name prefix, bound form object, field errors
// and page options), the per-field FieldConfig, and the behaviour rules that
// wire client-side interactivity onto rendered controls. The types live in
// internal/model and are re-exported here so callers never import internal
// packages.
package model
