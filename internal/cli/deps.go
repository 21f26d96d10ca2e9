package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pokefetch/dexmap/internal/config"
	"github.com/pokefetch/dexmap/internal/deps"
	"github.com/spf13/cobra"
)

var (
	depsOutputFlag  string
	depsQuietFlag   bool
	depsIncludeFlag []string
	depsIgnoreFlag  []string
)

// depsCmd represents the deps command
var depsCmd = &cobra.Command{
	Use:   "deps <dir>",
	Short: "List external modules imported by TypeScript sources",
	Long: `Deps walks a directory tree, scans the import statements of every
matching TypeScript file, and prints the sorted set of external module
names. Relative imports and node builtins are excluded; scoped packages
are reported by their scope.

Examples:
  # Scan a vendored checkout
  dexmap deps vendor/pokemon-showdown

  # Narrow the scan and write the list to a file
  dexmap deps src --include '**.ts' --ignore '**test**' -o modules.txt
`,
	Args: cobra.ExactArgs(1),
	RunE: runDeps,
}

func init() {
	rootCmd.AddCommand(depsCmd)
	depsCmd.Flags().StringVarP(&depsOutputFlag, "output", "o", "", "Write the module list to this path (defaults to stdout)")
	depsCmd.Flags().BoolVarP(&depsQuietFlag, "quiet", "q", false, "Suppress progress output")
	depsCmd.Flags().StringSliceVar(&depsIncludeFlag, "include", nil, "Glob patterns of files to scan (defaults from config)")
	depsCmd.Flags().StringSliceVar(&depsIgnoreFlag, "ignore", nil, "Glob patterns of files to skip (defaults from config)")
}

func runDeps(cmd *cobra.Command, args []string) error {
	rootDir := args[0]

	if _, err := os.Stat(rootDir); os.IsNotExist(err) {
		return fmt.Errorf("%s does not exist", rootDir)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	include := cfg.Deps.Include
	if cmd.Flags().Changed("include") {
		include = depsIncludeFlag
	}
	ignore := cfg.Deps.Ignore
	if cmd.Flags().Changed("ignore") {
		ignore = depsIgnoreFlag
	}

	discovery, err := deps.NewDiscovery(rootDir, include, ignore)
	if err != nil {
		return err
	}
	files, err := discovery.Discover()
	if err != nil {
		return fmt.Errorf("failed to discover files: %w", err)
	}

	reporter := NewScanProgressReporter(depsQuietFlag)
	reporter.OnScanStart(len(files))
	modules := deps.Scan(files, func(string) { reporter.OnFileScanned() })
	reporter.OnScanComplete(len(modules))

	text := strings.Join(modules, "\n")
	if depsOutputFlag == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if dir := filepath.Dir(depsOutputFlag); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(depsOutputFlag, []byte(text+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
