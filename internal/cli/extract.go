package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/pokefetch/dexmap/internal/config"
	"github.com/pokefetch/dexmap/internal/extract"
	"github.com/spf13/cobra"
)

var (
	extractOutputFlag string
	extractSampleFlag int
	extractStatsFlag  bool
	extractWatchFlag  bool
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <input.ts>",
	Short: "Parse the id → forms map literal inside a TypeScript file",
	Long: `Extract reads a TypeScript source file, finds the map literal keyed by
quoted numeric ids, and writes the resulting mapping as pretty-printed
JSON. Entries whose value spans multiple lines are handled, block
comments are stripped first, and anything that does not look like an
entry is skipped.

Examples:
  # Print the JSON to stdout
  dexmap extract pokedex.ts

  # Write to a file, creating parent directories as needed
  dexmap extract pokedex.ts -o out/pokedex.json

  # Show the first 10 entries and a summary line
  dexmap extract pokedex.ts --sample 10 --stats

  # Keep the output file in sync while editing the source
  dexmap extract pokedex.ts -o out/pokedex.json --watch
`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().StringVarP(&extractOutputFlag, "output", "o", "", "Write the resulting JSON to this path (defaults to stdout)")
	extractCmd.Flags().IntVar(&extractSampleFlag, "sample", 5, "Show the first N entries after parsing (0 disables)")
	extractCmd.Flags().BoolVar(&extractStatsFlag, "stats", false, "Print a short summary about the parsed data")
	extractCmd.Flags().BoolVar(&extractWatchFlag, "watch", false, "Re-run extraction whenever the input file changes (requires --output)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Fail before any parsing when the input is missing.
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("%s does not exist", inputPath)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	sample := cfg.Extract.Sample
	if cmd.Flags().Changed("sample") {
		sample = extractSampleFlag
	}

	if extractWatchFlag && extractOutputFlag == "" {
		return fmt.Errorf("--watch requires --output")
	}

	if err := extractOnce(cmd, inputPath, sample); err != nil {
		return err
	}

	if !extractWatchFlag {
		return nil
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	watcher, err := extract.NewWatcher(inputPath, func() {
		if err := extractOnce(cmd, inputPath, sample); err != nil {
			log.Printf("re-extract failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", inputPath, err)
	}
	watcher.Start(ctx)
	defer watcher.Stop()

	log.Printf("Watching %s (Ctrl-C to stop)", inputPath)
	<-ctx.Done()
	return nil
}

// extractOnce runs one full parse-and-report cycle.
func extractOnce(cmd *cobra.Command, inputPath string, sample int) error {
	entries, err := extract.ParseFile(inputPath)
	if err != nil {
		return err
	}

	if err := writeJSON(entries, extractOutputFlag, cmd.OutOrStdout()); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sample > 0 {
		fmt.Fprintln(out, "\nSample entries:")
		fmt.Fprintln(out, extract.Sample(entries, sample))
	}
	if extractStatsFlag {
		fmt.Fprintln(out, "\n"+extract.Summarize(entries))
	}
	return nil
}

// writeJSON renders the mapping with an indent of 2 and HTML escaping
// off, so non-ASCII form names pass through unescaped. Stdout output
// carries a trailing newline; file output is written without one, with
// parent directories created as needed.
func writeJSON(entries extract.EntryMap, outputPath string, stdout io.Writer) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}

	if outputPath == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
