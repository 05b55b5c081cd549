package composer

import (
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/graphkit/sdlmerge/sdlerrors"
)

// Source is one raw SDL document: a name (its path relative to the source
// root) and its text. The loader produces these from a source tree; tests
// construct them directly.
type Source struct {
	// Name uniquely identifies the document within one compose run
	Name string
	// Input is the raw SDL text
	Input string
}

// Category identifies what kind of declaration a definition or extension is.
// Extensions match definitions by category equality plus name, never by
// inspecting the AST's kind strings at comparison time.
type Category string

const (
	CategoryScalar    Category = "scalar"
	CategoryObject    Category = "object"
	CategoryInterface Category = "interface"
	CategoryUnion     Category = "union"
	CategoryEnum      Category = "enum"
	CategoryInput     Category = "input"
	// CategorySchema marks anonymous schema definitions and extensions
	CategorySchema Category = "schema"
)

var kindCategories = map[ast.DefinitionKind]Category{
	ast.Scalar:      CategoryScalar,
	ast.Object:      CategoryObject,
	ast.Interface:   CategoryInterface,
	ast.Union:       CategoryUnion,
	ast.Enum:        CategoryEnum,
	ast.InputObject: CategoryInput,
}

func categoryOf(kind ast.DefinitionKind) Category {
	return kindCategories[kind]
}

// typeKey identifies one type-shaped definition by category and name.
type typeKey struct {
	Category Category
	Name     string
}

// extensionTarget describes one extension a document declares: the category
// of the extended declaration and its name. Schema extensions are anonymous,
// so their target carries CategorySchema and no name.
type extensionTarget struct {
	Category Category
	Name     string
}

// definitionIndex records what one document defines, for classifier and
// assembler lookups. Extensions are deliberately excluded: extending a type
// does not define it.
type definitionIndex struct {
	types      map[typeKey]bool
	typeNames  map[string]bool
	directives map[string]bool
	hasSchema  bool
}

// Document is one parsed SDL source plus everything the pipeline derives
// from it exactly once: the names it references, the targets it extends,
// and the names it defines. Documents are created fresh per compose run and
// never mutated after construction.
type Document struct {
	// Name is the document's unique name (source path relative to the root)
	Name string
	// AST is the parsed schema document
	AST *ast.SchemaDocument

	refs    referenceSet
	targets []extensionTarget
	defs    definitionIndex
}

// parseDocument parses one source into a Document and computes its indexes.
func parseDocument(src Source) (*Document, error) {
	sd, err := parser.ParseSchema(&ast.Source{Name: src.Name, Input: src.Input})
	if err != nil {
		return nil, &sdlerrors.ParseError{Document: src.Name, Cause: err}
	}

	return &Document{
		Name:    src.Name,
		AST:     sd,
		refs:    extractReferences(sd),
		targets: extractExtensionTargets(sd),
		defs:    indexDefinitions(sd),
	}, nil
}

// indexDefinitions records the type, directive, and schema definitions a
// document declares.
func indexDefinitions(sd *ast.SchemaDocument) definitionIndex {
	idx := definitionIndex{
		types:      make(map[typeKey]bool, len(sd.Definitions)),
		typeNames:  make(map[string]bool, len(sd.Definitions)),
		directives: make(map[string]bool, len(sd.Directives)),
		hasSchema:  len(sd.Schema) > 0,
	}
	for _, def := range sd.Definitions {
		idx.types[typeKey{Category: categoryOf(def.Kind), Name: def.Name}] = true
		idx.typeNames[def.Name] = true
	}
	for _, dir := range sd.Directives {
		idx.directives[dir.Name] = true
	}
	return idx
}

// extractExtensionTargets lists every extension a document declares, in
// document order.
func extractExtensionTargets(sd *ast.SchemaDocument) []extensionTarget {
	targets := make([]extensionTarget, 0, len(sd.Extensions)+len(sd.SchemaExtension))
	for _, ext := range sd.Extensions {
		targets = append(targets, extensionTarget{Category: categoryOf(ext.Kind), Name: ext.Name})
	}
	for range sd.SchemaExtension {
		targets = append(targets, extensionTarget{Category: CategorySchema})
	}
	return targets
}
