package composer

// isDependentOn reports whether document a must be merged after document b.
// Documents are compared by name; a document never depends on itself. The
// two predicates stay separate so each is testable in isolation, and
// multiple true sub-conditions still collapse to a single edge.
func isDependentOn(a, b *Document) bool {
	if a.Name == b.Name {
		return false
	}
	return hasExtensionsFor(a, b) || hasTypesFor(a, b)
}

// hasExtensionsFor reports whether a extends something b defines. Schema
// extensions are anonymous, so any schema extension in a depends on any
// schema definition in b; typed extensions match a definition of the same
// category and name.
func hasExtensionsFor(a, b *Document) bool {
	for _, target := range a.targets {
		if target.Category == CategorySchema {
			if b.defs.hasSchema {
				return true
			}
			continue
		}
		if b.defs.types[typeKey{Category: target.Category, Name: target.Name}] {
			return true
		}
	}
	return false
}

// hasTypesFor reports whether a references a directive or type that b
// defines. Only definitions in b count; an extension in b does not satisfy
// a reference.
func hasTypesFor(a, b *Document) bool {
	for name := range a.refs.directiveNames {
		if b.defs.directives[name] {
			return true
		}
	}
	for name := range a.refs.typeNames {
		if b.defs.typeNames[name] {
			return true
		}
	}
	return false
}
