package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/cv-chat/internal/cvparser"
	"github.com/jonathan/cv-chat/internal/observability"
	"github.com/jonathan/cv-chat/internal/schemas"
	"github.com/jonathan/cv-chat/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxParallelParses bounds how many files are parsed at once.
const maxParallelParses = 8

var parseCVCmd = &cobra.Command{
	Use:   "parse-cv FILE...",
	Short: "Parse markdown CVs into profile JSON",
	Long: `Parse one or more markdown CV files into profile JSON.

Without --out the profiles are printed to stdout as a JSON array in argument order.
With --out each FILE.md is written to DIR/FILE.json.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParseCV,
}

var (
	parseOutDir   string
	parseValidate bool
	parseVerbose  bool
)

func init() {
	parseCVCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory to write one JSON file per input")
	parseCVCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate each profile against "+schemas.ProfileSchema)
	parseCVCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a summary box per profile to stderr")

	rootCmd.AddCommand(parseCVCmd)
}

// parsedCV is one parsed input file
type parsedCV struct {
	Path    string
	Profile *types.Profile
	JSON    []byte
}

type parseOptions struct {
	Validate   bool
	SchemaPath string
}

func runParseCV(cmd *cobra.Command, args []string) error {
	opts := parseOptions{Validate: parseValidate}
	if parseValidate {
		opts.SchemaPath = schemas.ResolveSchemaPath(schemas.ProfileSchema)
		if opts.SchemaPath == "" {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: %s not found, skipping validation\n", schemas.ProfileSchema)
			opts.Validate = false
		}
	}

	results, err := parseCVFiles(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		for _, r := range results {
			printer.PrintProfile(filepath.Base(r.Path), r.Profile)
		}
	}

	if parseOutDir == "" {
		return writeProfilesArray(os.Stdout, results)
	}
	return writeProfileFiles(parseOutDir, results)
}

// parseCVFiles parses paths concurrently; results keep the order of paths.
func parseCVFiles(ctx context.Context, paths []string, opts parseOptions) ([]parsedCV, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]parsedCV, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelParses)

	for i, path := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			result, err := parseCVFile(path, opts)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseCVFile(path string, opts parseOptions) (*parsedCV, error) {
	patch, err := parseMarkdownFile(path)
	if err != nil {
		return nil, err
	}

	profile := &types.Profile{}
	profile.Apply(patch)

	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if opts.Validate {
		if err := schemas.ValidateBytes(opts.SchemaPath, data); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return nil, fmt.Errorf("%s does not validate against schema: %w", path, err)
			}
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not validate %s: %v\n", path, err)
		}
	}

	return &parsedCV{Path: path, Profile: profile, JSON: data}, nil
}

// parseMarkdownFile reads and parses one markdown CV.
func parseMarkdownFile(path string) (*types.ProfilePatch, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	patch, err := cvparser.Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return patch, nil
}

func writeProfilesArray(w io.Writer, results []parsedCV) error {
	profiles := make([]*types.Profile, len(results))
	for i, r := range results {
		profiles[i] = r.Profile
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(profiles)
}

func writeProfileFiles(dir string, results []parsedCV) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, r := range results {
		name := strings.TrimSuffix(filepath.Base(r.Path), filepath.Ext(r.Path)) + ".json"
		out := filepath.Join(dir, name)
		if err := os.WriteFile(out, r.JSON, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", out)
	}
	return nil
}
