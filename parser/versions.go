package parser

// SwaggerVersion is the only input document version the parser accepts.
// Swagger 2.0 is the final release of the 2.x line; there is no other
// version to speak of, so anything else is rejected outright rather than
// parsed on a best-effort basis.
const SwaggerVersion = "2.0"
