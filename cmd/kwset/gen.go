package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"kwset/internal/emit"
	"kwset/internal/kwset"
	"kwset/internal/output"
	"kwset/internal/project"
)

var genCmd = &cobra.Command{
	Use:   "gen [flags]",
	Short: "Regenerate the .expr artifacts",
	Long: `Gen writes one <set>.expr file per configured set, byte-identical to the
stdout of "kwset --expr <set>". Settings come from the nearest kwset.toml
when present; --dir and --sets override it. Artifacts that already hold the
right bytes are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runGen,
}

func init() {
	genCmd.Flags().String("dir", "", "output directory (default from kwset.toml, else .)")
	genCmd.Flags().StringSlice("sets", nil, "sets to emit (default from kwset.toml, else difference,intersection)")
	genCmd.Flags().Bool("check", false, "write nothing, fail when artifacts are missing or stale")
}

func runGen(cmd *cobra.Command, args []string) error {
	dirFlag, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("failed to get dir flag: %w", err)
	}
	setsFlag, err := cmd.Flags().GetStringSlice("sets")
	if err != nil {
		return fmt.Errorf("failed to get sets flag: %w", err)
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}

	manifest, found, err := project.Load(".")
	if err != nil {
		return err
	}
	req, err := genRequest(manifest, found, dirFlag, setsFlag, check)
	if err != nil {
		return err
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	output.SetStyled(colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)))

	results, runErr := emit.Run(cmd.Context(), req)
	for _, r := range results {
		reportResult(cmd.OutOrStdout(), r)
	}
	return runErr
}

// genRequest merges manifest settings with flag overrides; flags win.
func genRequest(manifest *project.Manifest, found bool, dirFlag string, setsFlag []string, check bool) (emit.Request, error) {
	dir := "."
	sets := []string{"difference", "intersection"}
	if found {
		dir = filepath.Join(manifest.Root, manifest.Config.Generate.Dir)
		sets = manifest.Config.Generate.Sets
	}
	if dirFlag != "" {
		dir = dirFlag
	}
	if len(setsFlag) > 0 {
		sets = setsFlag
	}

	ops := make([]kwset.Op, 0, len(sets))
	for _, s := range sets {
		op, err := kwset.ParseOp(s)
		if err != nil {
			return emit.Request{}, fmt.Errorf("invalid set name: %w", err)
		}
		ops = append(ops, op)
	}
	return emit.Request{Dir: dir, Ops: ops, Check: check}, nil
}

func reportResult(w io.Writer, r emit.Result) {
	switch r.Status {
	case emit.StatusWritten:
		output.Success(w, "wrote "+r.Path)
	case emit.StatusUnchanged:
		output.Step(w, "unchanged "+r.Path)
	case emit.StatusOK:
		output.Step(w, "ok "+r.Path)
	case emit.StatusStale:
		output.Error(w, "stale "+r.Path)
	case emit.StatusMissing:
		output.Error(w, "missing "+r.Path)
	}
}
