package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"kwset/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Create a kwset.toml manifest",
	Long: `Initialize a consuming package by creating a kwset.toml manifest that pins
the artifact directory and the sets to generate into it. If [path|name] is
omitted, initializes the current directory. If a non-existing name is
provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	// Resolve target directory
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
	}

	// Ensure directory exists
	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	// Determine package name from directory basename
	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "kwset-consumer"
	}

	// Refuse to clobber an existing manifest
	manifestPath := filepath.Join(target, "kwset.toml")
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("already initialized: %s exists", manifestPath)
	}

	if err := os.WriteFile(manifestPath, []byte(buildDefaultManifest(name)), os.FileMode(0o600)); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	output.SetStyled(colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)))

	w := cmd.OutOrStdout()
	output.Success(w, "initialized "+rel)
	output.Step(w, "kwset.toml")
	output.Info(w, "run kwset gen to create the artifacts")
	return nil
}

// buildDefaultManifest returns the manifest init writes: artifacts land next
// to the manifest and cover the two sets the raw-identifier tables need.
func buildDefaultManifest(name string) string {
	return fmt.Sprintf(`# kwset manifest
[package]
name = "%s"

[generate]
dir = "."
sets = ["difference", "intersection"]
`, name)
}
