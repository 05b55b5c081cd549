package composer

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"

	"github.com/graphkit/sdlmerge/sdlerrors"
)

// assemble folds the ordered documents into one schema document: the first
// document seeds the accumulation and every later document is applied to
// it. The fold is strictly sequential. Each step admits the document's own
// definitions before checking its extension targets, since extending a type
// defined earlier in the same file is legal.
func assemble(order []*Document) (*ast.SchemaDocument, error) {
	merged := &ast.SchemaDocument{}
	defined := make(map[typeKey]bool)

	for _, doc := range order {
		for key := range doc.defs.types {
			defined[key] = true
		}
		for _, target := range doc.targets {
			if target.Category == CategorySchema {
				// Anonymous target; the default operation types always exist.
				continue
			}
			if !defined[typeKey{Category: target.Category, Name: target.Name}] {
				return nil, &sdlerrors.AssembleError{
					Document: doc.Name,
					Target:   target.Name,
					Message: fmt.Sprintf("extends %s %q which is not defined by any preceding document",
						target.Category, target.Name),
				}
			}
		}
		merged.Merge(doc.AST)
	}
	return merged, nil
}

// validate runs schema well-formedness validation over the merged document
// plus the prelude of built-in types, the same way gqlparser.LoadSchema
// does. Every reported violation is collected into one ValidationError.
func validate(merged *ast.SchemaDocument) (*ast.Schema, error) {
	prelude, err := parser.ParseSchema(validator.Prelude)
	if err != nil {
		return nil, fmt.Errorf("parsing prelude: %w", err)
	}

	full := &ast.SchemaDocument{}
	full.Merge(prelude)
	full.Merge(merged)

	schema, err := validator.ValidateSchemaDocument(full)
	if err != nil {
		return nil, &sdlerrors.ValidationError{Messages: violationMessages(err)}
	}
	return schema, nil
}

// violationMessages expands a validator error into its individual
// violations, preserving their order.
func violationMessages(err error) []string {
	var list gqlerror.List
	if errors.As(err, &list) {
		msgs := make([]string, 0, len(list))
		for _, gerr := range list {
			msgs = append(msgs, gerr.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}

// printSchema serializes the schema in canonical SDL form. Definitions that
// came from the built-in prelude are omitted by the formatter.
func printSchema(schema *ast.Schema) []byte {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchema(schema)
	return buf.Bytes()
}
