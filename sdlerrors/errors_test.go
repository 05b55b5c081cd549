package sdlerrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &ParseError{
			Document: "schema/user.graphql",
			Message:  "unexpected token",
			Cause:    cause,
		}

		msg := err.Error()
		if msg != "parse error in schema/user.graphql: unexpected token: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
	})

	t.Run("Is does not match other sentinels", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if errors.Is(err, ErrCycle) || errors.Is(err, ErrValidation) {
			t.Error("ParseError should not match unrelated sentinels")
		}
	})
}

func TestDiscoveryError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := &DiscoveryError{
			Path:    "/schemas/private",
			Message: "cannot read directory",
			Cause:   cause,
		}
		want := "discovery error at /schemas/private: cannot read directory: permission denied"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrDiscovery", func(t *testing.T) {
		err := &DiscoveryError{Path: "x"}
		if !errors.Is(err, ErrDiscovery) {
			t.Error("DiscoveryError should match ErrDiscovery")
		}
	})
}

func TestDuplicateDocumentError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &DuplicateDocumentError{Name: "user.graphql"}
		if err.Error() != "duplicate document user.graphql" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrDuplicateDocument", func(t *testing.T) {
		err := &DuplicateDocumentError{Name: "user.graphql"}
		if !errors.Is(err, ErrDuplicateDocument) {
			t.Error("DuplicateDocumentError should match ErrDuplicateDocument")
		}
	})
}

func TestCycleError(t *testing.T) {
	t.Run("Error message names documents", func(t *testing.T) {
		err := &CycleError{Documents: []string{"x.graphql", "y.graphql"}}
		want := "dependency cycle between documents: x.graphql, y.graphql"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message without documents", func(t *testing.T) {
		err := &CycleError{}
		if err.Error() != "dependency cycle" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrCycle", func(t *testing.T) {
		err := &CycleError{Documents: []string{"a"}}
		if !errors.Is(err, ErrCycle) {
			t.Error("CycleError should match ErrCycle")
		}
	})
}

func TestAssembleError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &AssembleError{
			Document: "ext.graphql",
			Target:   "Query",
			Message:  `extends object "Query" which is not defined by any preceding document`,
		}
		want := `assembly error in ext.graphql: extends object "Query" which is not defined by any preceding document`
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrAssemble", func(t *testing.T) {
		err := &AssembleError{Document: "ext.graphql"}
		if !errors.Is(err, ErrAssemble) {
			t.Error("AssembleError should match ErrAssemble")
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with one violation", func(t *testing.T) {
		err := &ValidationError{Messages: []string{"Undefined type Missing."}}
		if err.Error() != "validation error: Undefined type Missing." {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with multiple violations", func(t *testing.T) {
		err := &ValidationError{Messages: []string{"first", "second"}}
		want := "validation error (2 violations): first; second"
		if err.Error() != want {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with no violations", func(t *testing.T) {
		err := &ValidationError{}
		if err.Error() != "validation error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		err := &ValidationError{Messages: []string{"x"}}
		if !errors.Is(err, ErrValidation) {
			t.Error("ValidationError should match ErrValidation")
		}
	})
}

func TestErrorWrapping(t *testing.T) {
	t.Run("wrapped typed error still matches sentinel", func(t *testing.T) {
		inner := &CycleError{Documents: []string{"a.graphql", "b.graphql"}}
		wrapped := fmt.Errorf("composing schema: %w", inner)

		if !errors.Is(wrapped, ErrCycle) {
			t.Error("wrapped CycleError should match ErrCycle")
		}

		var cycleErr *CycleError
		if !errors.As(wrapped, &cycleErr) {
			t.Fatal("errors.As should find CycleError")
		}
		if len(cycleErr.Documents) != 2 {
			t.Errorf("unexpected documents: %v", cycleErr.Documents)
		}
	})
}
