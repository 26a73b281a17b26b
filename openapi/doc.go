// Package openapi defines the OpenAPI 3.0 document model that conversion
// produces.
//
// The model is output-oriented: it exists to be assembled by the converter
// package and serialized, not to be parsed back. Reference values are folded
// into their owning structs (a Schema with a non-empty Ref marshals as a
// bare $ref object), and specification extensions are carried out-of-band
// in Extensions maps that the JSON marshalers merge into the output objects.
//
// Schema.Type is deliberately loose (any): a converted schema carries either
// a single type name or a two-element type set when the source marked the
// schema nullable.
package openapi
