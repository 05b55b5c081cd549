// Package sdlerrors provides structured error types for sdlmerge.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - DiscoveryError: source-tree scanning and file read failures
//   - ParseError: SDL parsing failures in a single document
//   - DuplicateDocumentError: two documents normalizing to the same name
//   - CycleError: documents that mutually require each other
//   - AssembleError: an extension applied before (or without) its target
//   - ValidationError: the merged schema is not well-formed
//
// # Usage with errors.Is
//
//	result, err := c.Compose(sources)
//	if err != nil {
//	    var cycleErr *sdlerrors.CycleError
//	    if errors.As(err, &cycleErr) {
//	        // cycleErr.Documents names the documents on the cycle
//	    }
//	}
package sdlerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrDiscovery indicates a source discovery or file read failure.
	ErrDiscovery = errors.New("discovery error")

	// ErrParse indicates an SDL parsing failure.
	ErrParse = errors.New("parse error")

	// ErrDuplicateDocument indicates two documents share one name.
	ErrDuplicateDocument = errors.New("duplicate document")

	// ErrCycle indicates a dependency cycle between documents.
	ErrCycle = errors.New("dependency cycle")

	// ErrAssemble indicates a schema assembly failure.
	ErrAssemble = errors.New("assembly error")

	// ErrValidation indicates the merged schema failed validation.
	ErrValidation = errors.New("validation error")
)

// DiscoveryError represents a failure to scan the source tree or read a
// candidate document.
type DiscoveryError struct {
	// Path is the file or directory that could not be read
	Path string
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DiscoveryError) Error() string {
	msg := "discovery error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DiscoveryError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DiscoveryError) Is(target error) bool {
	return target == ErrDiscovery
}

// ParseError represents a failure to parse one SDL document.
type ParseError struct {
	// Document is the root-relative name of the offending document
	Document string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying parser error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Document != "" {
		msg += " in " + e.Document
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DuplicateDocumentError represents two distinct documents normalizing to the
// same name. Document names key the dependency graph, so a collision would
// silently drop one document; it is reported as a configuration error instead.
type DuplicateDocumentError struct {
	// Name is the colliding document name
	Name string
}

// Error returns a human-readable error message.
func (e *DuplicateDocumentError) Error() string {
	msg := "duplicate document"
	if e.Name != "" {
		msg += " " + e.Name
	}
	return msg
}

// Unwrap returns nil as DuplicateDocumentError has no underlying cause.
func (e *DuplicateDocumentError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *DuplicateDocumentError) Is(target error) bool {
	return target == ErrDuplicateDocument
}

// CycleError represents a set of documents that mutually require each other
// through extension or reference chains, making a merge order impossible.
type CycleError struct {
	// Documents names the documents on the cycle, in discovery order
	Documents []string
}

// Error returns a human-readable error message.
func (e *CycleError) Error() string {
	msg := "dependency cycle"
	if len(e.Documents) > 0 {
		msg += " between documents: " + strings.Join(e.Documents, ", ")
	}
	return msg
}

// Unwrap returns nil as CycleError has no underlying cause.
func (e *CycleError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycle
}

// AssembleError represents a failure to fold a document into the accumulated
// schema, typically an extension whose target is not defined by any document
// merged so far.
type AssembleError struct {
	// Document is the document being folded when assembly failed
	Document string
	// Target is the name of the missing extension target ("schema" for
	// anonymous schema extensions)
	Target string
	// Message describes the assembly failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *AssembleError) Error() string {
	msg := "assembly error"
	if e.Document != "" {
		msg += " in " + e.Document
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *AssembleError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *AssembleError) Is(target error) bool {
	return target == ErrAssemble
}

// ValidationError represents a merged schema that failed well-formedness
// validation. Every collected violation is retained so the caller can report
// them together.
type ValidationError struct {
	// Messages holds every violation reported by the validator, in order
	Messages []string
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	switch len(e.Messages) {
	case 0:
		return "validation error"
	case 1:
		return "validation error: " + e.Messages[0]
	default:
		return fmt.Sprintf("validation error (%d violations): %s", len(e.Messages), strings.Join(e.Messages, "; "))
	}
}

// Unwrap returns nil as ValidationError has no underlying cause.
func (e *ValidationError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
