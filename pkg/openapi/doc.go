// Package openapi exposes the public contracts for loading OpenAPI documents
// and building form definitions from their operations. Implementations live
// under internal/openapi to keep kin-openapi dependencies hidden from
// consumers.
package openapi
