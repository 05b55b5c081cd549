package composer

import "github.com/vektah/gqlparser/v2/ast"

// referenceSet lists the names one document depends on without defining
// them itself: every named type reached through a field, argument,
// implemented interface, or union member, and every directive applied
// anywhere in the document. Built once per document, read-only afterward.
type referenceSet struct {
	typeNames      map[string]bool
	directiveNames map[string]bool
}

// extractReferences walks every definition and extension of a document in
// document order. Pure function of the AST; no side effects.
func extractReferences(sd *ast.SchemaDocument) referenceSet {
	refs := referenceSet{
		typeNames:      make(map[string]bool),
		directiveNames: make(map[string]bool),
	}
	for _, def := range sd.Definitions {
		refs.collect(def)
	}
	for _, ext := range sd.Extensions {
		refs.collect(ext)
	}
	return refs
}

func (r referenceSet) collect(def *ast.Definition) {
	for _, d := range def.Directives {
		r.directiveNames[d.Name] = true
	}

	switch def.Kind {
	case ast.Object, ast.Interface:
		for _, iface := range def.Interfaces {
			r.typeNames[iface] = true
		}
		r.collectFields(def.Fields)
	case ast.InputObject:
		r.collectFields(def.Fields)
	case ast.Union:
		for _, member := range def.Types {
			r.typeNames[member] = true
		}
	case ast.Enum:
		for _, value := range def.EnumValues {
			for _, d := range value.Directives {
				r.directiveNames[d.Name] = true
			}
		}
	}
}

func (r referenceSet) collectFields(fields ast.FieldList) {
	for _, field := range fields {
		if field.Type != nil {
			r.typeNames[namedType(field.Type)] = true
		}
		for _, arg := range field.Arguments {
			if arg.Type != nil {
				r.typeNames[namedType(arg.Type)] = true
			}
		}
		for _, d := range field.Directives {
			r.directiveNames[d.Name] = true
		}
	}
}

// namedType strips list and non-null wrappers until the base named type is
// reached. Wrapper nesting is finite and strictly decreasing, so the loop
// terminates.
func namedType(t *ast.Type) string {
	for t.NamedType == "" && t.Elem != nil {
		t = t.Elem
	}
	return t.NamedType
}
