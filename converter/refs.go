package converter

import "strings"

// rewriteRef relocates a local reference into the components namespace.
// Only the first path segment after "#" is renamed (definitions becomes
// schemas); every other segment is carried through untouched, so the
// referenced name itself is never altered:
//
//	#/definitions/Pet       -> #/components/schemas/Pet
//	#/responses/NotFound    -> #/components/responses/NotFound
//	#/definitions/a/b       -> #/components/schemas/a/b
//
// References that are not local pointers are returned unchanged.
func rewriteRef(ref string) string {
	rest, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return ref
	}
	segments := strings.Split(rest, "/")
	if segments[0] == "definitions" {
		segments[0] = "schemas"
	}
	return "#/components/" + strings.Join(segments, "/")
}
