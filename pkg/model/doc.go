// Package model defines the typed form definition the engine consumes: a
// closed field-identity enumeration, per-field metadata (owning category,
// format rule, messages, normalization), the category table, and cross-field
// rules. A Definition is plain declarative data: the formdef package loads
// one from YAML/JSON and the openapi packages derive one from an API schema.
// Registry is the validated, pre-indexed form the engine works against.
package model
