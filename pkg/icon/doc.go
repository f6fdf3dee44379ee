// Package icon renders the small inline SVG icons used by field chrome (hint
// triggers, copy-to-clipboard buttons) and page nodes (back buttons). Icon
// bodies are sanitised with bluemonday before they are stored, so custom
// icons registered at runtime cannot smuggle script or event handlers into a
// page.
package icon
