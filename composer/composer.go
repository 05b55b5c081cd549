package composer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/graphkit/sdlmerge/internal/fileutil"
)

// composerLogger is used for debug output in composer functions.
// Tests can replace this with a discard logger to suppress expected output.
var composerLogger = slog.Default()

// Stats contains statistical information about one compose run.
type Stats struct {
	// DocumentCount is the number of documents folded into the schema
	DocumentCount int
	// EdgeCount is the number of dependency edges inferred between documents
	EdgeCount int
	// TypeCount is the number of type definitions declared by the documents
	TypeCount int
	// DirectiveCount is the number of directive definitions declared by the documents
	DirectiveCount int
}

// Result contains the outcome of one successful compose run.
type Result struct {
	// Schema is the assembled, validated schema
	Schema *ast.Schema
	// SDL is the schema serialized in canonical SDL form
	SDL []byte
	// MergeOrder lists document names in the order they were folded
	MergeOrder []string
	// Stats contains counts gathered during the run
	Stats Stats
	// Elapsed is the total compose time
	Elapsed time.Duration
}

// Composer folds independently authored SDL documents into one validated
// schema. Every call to Compose processes its sources from scratch; nothing
// is cached between runs.
//
// Concurrency: Composer instances are not safe for concurrent use.
// Create separate Composer instances for concurrent operations.
type Composer struct{}

// New creates a Composer.
func New() *Composer {
	return &Composer{}
}

// Compose runs the full pipeline over the given sources: parse each
// document, infer pairwise dependencies, order the documents so every
// extension follows the definition it extends, fold them into one schema,
// and validate it. Source order is the discovery order and breaks ordering
// ties, so an unchanged source list always produces identical output.
func (c *Composer) Compose(sources []Source) (*Result, error) {
	start := time.Now()

	docs := make([]*Document, 0, len(sources))
	for _, src := range sources {
		doc, err := parseDocument(src)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	graph, err := buildGraph(docs)
	if err != nil {
		return nil, err
	}

	order, err := graph.sort()
	if err != nil {
		return nil, err
	}

	merged, err := assemble(order)
	if err != nil {
		return nil, err
	}

	schema, err := validate(merged)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Schema:     schema,
		SDL:        printSchema(schema),
		MergeOrder: make([]string, 0, len(order)),
		Stats: Stats{
			DocumentCount:  len(order),
			EdgeCount:      graph.edgeCount(),
			TypeCount:      len(merged.Definitions),
			DirectiveCount: len(merged.Directives),
		},
		Elapsed: time.Since(start),
	}
	for _, doc := range order {
		result.MergeOrder = append(result.MergeOrder, doc.Name)
	}

	composerLogger.Debug("composed schema",
		"documents", result.Stats.DocumentCount,
		"edges", result.Stats.EdgeCount,
		"types", result.Stats.TypeCount,
		"elapsed", result.Elapsed)

	return result, nil
}

// WriteResult writes the composed SDL to outputPath, creating parent
// directories as needed. Callers invoke this only after Compose succeeded,
// so a failed build never touches the output file.
func (c *Composer) WriteResult(result *Result, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("composer: failed to create output directory: %w", err)
		}
	}

	// Restrictive permissions; schema files can describe private APIs
	if err := os.WriteFile(outputPath, result.SDL, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("composer: failed to write output file: %w", err)
	}

	return nil
}
