package cli

import (
	"fmt"
	"os/exec"

	"github.com/mazinko450/mspyl/internal/config"
	"github.com/mazinko450/mspyl/internal/python"
	"github.com/mazinko450/mspyl/internal/uv"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the mspyl environment",
	Long:  `Run diagnostic checks: uv presence and version, config validity, and Python availability.`,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	// uv on PATH.
	uvBin := uv.Executable()
	if path, err := exec.LookPath(uvBin); err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found on PATH, install it from https://docs.astral.sh/uv/\n", uvBin)
		failed++
	} else {
		fmt.Fprintf(out, "  [ OK ] %s found at %s\n", uvBin, path)

		// uv version.
		r := newRunner()
		if v, err := python.UvVersion(cmd.Context(), r); err != nil {
			fmt.Fprintf(out, "  [WARN] could not determine uv version: %v\n", err)
		} else if !python.UvSupported(v) {
			fmt.Fprintf(out, "  [FAIL] uv %s is older than the supported minimum %s\n", v, python.MinimumUvVersion)
			failed++
		} else {
			fmt.Fprintf(out, "  [ OK ] uv %s (minimum %s)\n", v, python.MinimumUvVersion)
		}
	}

	// Config file schema.
	if result, err := config.ValidateFile(config.FilePath()); err != nil {
		fmt.Fprintf(out, "  [WARN] could not validate config: %v\n", err)
	} else if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %s has %d schema issues, run `mspyl config validate`\n", config.FilePath(), len(result.Issues))
		failed++
	} else {
		fmt.Fprintf(out, "  [ OK ] config is valid\n")
	}

	// Python discovery.
	if _, err := exec.LookPath("python3"); err != nil {
		fmt.Fprintf(out, "  [WARN] python3 not found on PATH\n")
	} else {
		fmt.Fprintf(out, "  [ OK ] python3 found\n")
	}

	if failed > 0 {
		return fmt.Errorf("%d checks failed", failed)
	}
	return nil
}
