package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	isoval "github.com/open-payments/isoval"
	"github.com/open-payments/isoval/message"
)

var (
	failFast bool
	jsonOut  bool
)

func init() {
	validateCmd.Flags().BoolVar(&failFast, "fail-fast", false, "stop at the first violation per message")
	validateCmd.Flags().BoolVar(&jsonOut, "json", false, "emit one JSON report per file instead of plain text")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <file|dir>...",
	Short: "Decode and validate message files",
	Long: `validate reads each argument, walking directories recursively, and
validates every .xml, .json, .yaml or .yml file found. The exit status is
nonzero when any file fails to decode or validate.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = isoval.WithFailFast(ctx, failFast)

		var failed int
		for _, arg := range args {
			files, err := collectFiles(arg)
			if err != nil {
				return err
			}
			for _, f := range files {
				if !validateFile(ctx, cmd, f) {
					failed++
				}
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d file(s) failed validation", failed)
		}
		return nil
	},
}

// report is the per-file JSON output shape.
type report struct {
	File   string        `json:"file"`
	Tag    string        `json:"tag,omitempty"`
	Known  bool          `json:"known"`
	Valid  bool          `json:"valid"`
	Issues isoval.Issues `json:"issues,omitempty"`
}

func validateFile(ctx context.Context, cmd *cobra.Command, path string) bool {
	rep := checkFile(ctx, path)
	if jsonOut {
		b, err := json.Marshal(rep)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
			return false
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return rep.Valid
	}
	switch {
	case !rep.Known && rep.Tag != "":
		fmt.Fprintf(cmd.OutOrStdout(), "%s: unknown message %q\n", path, rep.Tag)
	case rep.Valid:
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", path, rep.Tag)
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s: invalid (%s)\n", path, rep.Tag)
		for _, it := range rep.Issues {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s at %s: %s\n", it.Code, it.Path, it.Message)
		}
	}
	return rep.Valid
}

func checkFile(ctx context.Context, path string) report {
	rep := report{File: path}
	b, err := os.ReadFile(path)
	if err != nil {
		rep.Issues = isoval.Issues{{Code: isoval.CodeParseError, Message: err.Error(), Cause: err}}
		return rep
	}
	doc, err := decodeByExt(path, b)
	if err != nil {
		rep.Issues, _ = isoval.AsIssues(err)
		if rep.Issues == nil {
			rep.Issues = isoval.Issues{{Code: isoval.CodeParseError, Message: err.Error(), Cause: err}}
		}
		return rep
	}
	rep.Tag = doc.Tag()
	rep.Known = doc.Known()
	if !doc.Known() {
		// Unknown messages pass through; the caller decides what to do.
		rep.Valid = false
		return rep
	}
	if err := doc.Validate(ctx); err != nil {
		rep.Issues, _ = isoval.AsIssues(err)
		return rep
	}
	rep.Valid = true
	return rep
}

func decodeByExt(path string, b []byte) (message.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return message.DecodeXMLBytes(b)
	case ".json":
		return message.DecodeJSON(b)
	case ".yaml", ".yml":
		return message.DecodeYAML(b)
	default:
		return message.Document{}, fmt.Errorf("unsupported file type: %s", path)
	}
}

func collectFiles(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	var files []string
	err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".xml", ".json", ".yaml", ".yml":
			files = append(files, p)
		}
		return nil
	})
	return files, err
}
