// Package parser parses Swagger 2.0 (OpenAPI 2.0) documents into a precise
// typed model suitable for conversion.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("swagger.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Document.Info.Title)
//
// Or use a reusable Parser instance:
//
//	p := parser.New()
//	result, err := p.Parse("swagger.json")
//
// Both JSON and YAML input are accepted; the detected format is recorded in
// ParseResult.SourceFormat so tools can keep the output format consistent.
//
// # Structural Decoding
//
// Swagger 2.0 schema nodes are not tagged with their shape. The parser
// resolves each node structurally, attempting the Array, Object, and AllOf
// shapes in that order and accepting the first that matches. This ordered,
// first-match-wins resolution is a contract of the format as found in real
// documents, not an implementation convenience; see [Schema].
//
// Only the "2.0" version tag is accepted. Documents declaring any other
// version, and security schemes of any kind other than oauth2, fail the
// parse with an error naming the offending field.
package parser
