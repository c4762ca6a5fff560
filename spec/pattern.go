package spec

// Pattern is a partial structural matcher over the incoming event and
// current bindings, with named wildcard captures (spec.md GLOSSARY). It is
// a plain map so every compiler package can build one with struct-literal
// ergonomics; Document.MarshalJSON serializes it once, at the document
// boundary, never via intermediate string concatenation (spec.md DESIGN
// NOTES §9).
type Pattern map[string]any

// Wildcard returns a wildcard-capture value: a binding name prefixed by
// "?" (single-capture) that, on match, writes the captured value into
// bindings under name.
func Wildcard(name string) string {
	return "?" + name
}

// DoubleWildcard returns a "??name" greedy wildcard capture, used where the
// trigger compiler needs to match and discard an arbitrary nested shape
// (e.g. the trouble event's nested `extra` object).
func DoubleWildcard(name string) string {
	return "??" + name
}

// PatternAddConstraintsRequired marks p as eligible to branch to the
// `constraints` node: it asserts that the standard constraint-time
// bindings (event time, sunrise, sunset, system status) are present,
// satisfying spec.md invariant 7.
func PatternAddConstraintsRequired(p Pattern) Pattern {
	if p == nil {
		p = Pattern{}
	}
	p["constraints-required"] = true
	return p
}
