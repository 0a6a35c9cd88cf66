// Package formdef loads declarative form definitions from JSON/YAML documents
// over an fs.FS, with the quote and contact forms embedded as defaults. The
// two shipped documents are deliberately two configurations of one engine:
// new categories and fields are additive data, not new code paths.
package formdef
