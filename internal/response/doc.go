// Package response flattens calculated nodes into the records returned to
// the editor.
package response
