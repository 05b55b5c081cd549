package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	sdlmerge "github.com/graphkit/sdlmerge"
	"github.com/graphkit/sdlmerge/composer"
	"github.com/graphkit/sdlmerge/internal/cliutil"
	"github.com/graphkit/sdlmerge/loader"
	"github.com/graphkit/sdlmerge/sdlerrors"
	"github.com/graphkit/sdlmerge/watcher"
)

// mergeFlags contains the CLI flags
type mergeFlags struct {
	source  string
	output  string
	watch   bool
	version bool
}

func setupFlags() (*flag.FlagSet, *mergeFlags) {
	fs := flag.NewFlagSet("sdlmerge", flag.ContinueOnError)
	flags := &mergeFlags{}

	fs.StringVar(&flags.source, "s", "", "root directory to scan for schema documents (required)")
	fs.StringVar(&flags.source, "source", "", "root directory to scan for schema documents (required)")
	fs.StringVar(&flags.output, "o", "", "destination path for the merged schema (required)")
	fs.StringVar(&flags.output, "output", "", "destination path for the merged schema (required)")
	fs.BoolVar(&flags.watch, "w", false, "keep running and rebuild on source changes")
	fs.BoolVar(&flags.watch, "watch", false, "keep running and rebuild on source changes")
	fs.BoolVar(&flags.version, "v", false, "print version and exit")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: sdlmerge -s <dir> -o <file> [-w]\n\n")
		cliutil.Writef(fs.Output(), "Merge modular GraphQL SDL files into a single validated schema.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nFile Selection:\n")
		cliutil.Writef(fs.Output(), "  Any file under the source tree ending in .graphql, .graphqls, or .gql\n")
		cliutil.Writef(fs.Output(), "  (case-insensitive) is merged. The output file is ignored even when it\n")
		cliutil.Writef(fs.Output(), "  lives under the source tree.\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  sdlmerge -s ./schema -o merged.graphql\n")
		cliutil.Writef(fs.Output(), "  sdlmerge --source ./schema --output ./build/schema.graphql --watch\n")
	}

	return fs, flags
}

func main() {
	fs, flags := setupFlags()

	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}

	if flags.version {
		fmt.Printf("sdlmerge v%s\n", sdlmerge.Version())
		return
	}

	if flags.source == "" || flags.output == "" {
		fs.Usage()
		fmt.Fprintln(os.Stderr, "\nError: source and output are required (use -s and -o)")
		os.Exit(1)
	}

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", formatError(err))
		os.Exit(1)
	}
}

func run(flags *mergeFlags) error {
	l := loader.New()
	l.Exclude = []string{flags.output}
	c := composer.New()

	build := func() error {
		sources, err := l.Load(flags.source)
		if err != nil {
			return err
		}
		result, err := c.Compose(sources)
		if err != nil {
			return err
		}
		if err := c.WriteResult(result, flags.output); err != nil {
			return err
		}
		fmt.Printf("Merged %d documents (%d types, %d directives, %d edges) into %s in %v\n",
			result.Stats.DocumentCount, result.Stats.TypeCount, result.Stats.DirectiveCount,
			result.Stats.EdgeCount, flags.output, result.Elapsed)
		return nil
	}

	if !flags.watch {
		return build()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// In watch mode a failed build is reported but the process keeps watching.
	if err := build(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", formatError(err))
	}

	fmt.Printf("Watching %s for changes...\n", flags.source)
	w := watcher.New(flags.source, l.IsDocument, build)
	return w.Watch(ctx)
}

// formatError expands a validation failure so every violation is reported
// on its own line; other errors render as-is.
func formatError(err error) string {
	var validationErr *sdlerrors.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Messages) > 1 {
		msg := fmt.Sprintf("validation failed with %d violations:", len(validationErr.Messages))
		for _, m := range validationErr.Messages {
			msg += "\n  - " + m
		}
		return msg
	}
	return err.Error()
}
