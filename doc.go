// Package sdlmerge composes modular GraphQL SDL documents into a single schema.
//
// A schema spread across many .graphql files rarely carries import statements:
// one file defines a type, another extends it, a third applies a directive the
// first declared. sdlmerge infers the merge order from the documents
// themselves, folds them into one schema in dependency order, validates the
// result, and prints it in canonical SDL form.
//
// # Overview
//
// The repository consists of four primary packages:
//
//   - loader: Discover and read SDL documents under a source tree
//   - composer: Extract references, classify dependencies, order documents,
//     and assemble + validate the merged schema
//   - watcher: Re-run the pipeline on source-tree changes, one build at a time
//   - sdlerrors: Structured error types shared by the pipeline stages
//
// # Quick Start
//
// Compose a source tree into a single schema file:
//
//	l := loader.New()
//	sources, err := l.Load("./schema")
//	if err != nil {
//		log.Fatal(err)
//	}
//	c := composer.New()
//	result, err := c.Compose(sources)
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = c.WriteResult(result, "merged.graphql")
//
// Or use the CLI:
//
//	sdlmerge -s ./schema -o merged.graphql
//	sdlmerge -s ./schema -o merged.graphql -w
//
// Parsing, schema building, validation, and printing are delegated to
// github.com/vektah/gqlparser/v2; sdlmerge owns everything between raw files
// and a validated, printable schema.
package sdlmerge
