// Package swagconvert converts Swagger 2.0 (OpenAPI 2.0) API descriptions
// into OpenAPI 3.0 documents.
//
// The module is organized into focused packages:
//   - [github.com/swagtools/swagconvert/parser] - Parse Swagger 2.0 documents into a typed model
//   - [github.com/swagtools/swagconvert/openapi] - The OpenAPI 3.0 target object model
//   - [github.com/swagtools/swagconvert/converter] - The conversion engine
//
// The swagconvert CLI under cmd/swagconvert wires these together:
//
//	swagconvert swagger.json -o openapi.json
//
// Conversion is a pure, single-pass transformation: the source document is
// parsed entirely into memory, walked once, and reassembled as an OpenAPI 3.0
// value. Structural problems in the source (bad version tag, unresolvable
// schema shapes, unsupported security scheme kinds) fail the parse; individual
// elements that cannot be represented in the target format are dropped or
// replaced with a placeholder and reported as conversion issues, so that
// mostly-valid real-world documents remain convertible.
package swagconvert
