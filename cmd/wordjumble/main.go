// Package main provides the CLI entrypoint for wordjumble.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordjumble/internal/config"
	"github.com/verte-zerg/wordjumble/internal/jumble"
	"github.com/verte-zerg/wordjumble/internal/letters"
	"github.com/verte-zerg/wordjumble/internal/model"
	"github.com/verte-zerg/wordjumble/internal/stats"
	"github.com/verte-zerg/wordjumble/internal/store"
	"github.com/verte-zerg/wordjumble/internal/tui"
	"github.com/verte-zerg/wordjumble/internal/wordlist"
)

const (
	defaultFormat      = jumble.FormatNameList
	defaultHistoryLast = 20
	defaultHistoryTop  = 5
	defaultImportLang  = "en"
)

var errUsage = errors.New("expected usage is 'wordjumble <input string>'")

var (
	solveDict    string
	solveFormat  string
	solveHistory bool

	historySince    string
	historyLast     int
	historyContains string
	historyTop      int
	historyClear    bool

	wordlistOut   string
	wordlistLang  string
	wordlistForce bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordjumble <input string>",
		Short:         "Find dictionary words spelled from a jumble of letters",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          requireQuery,
		RunE:          runSolveCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&solveDict, "dict", "d", jumble.DefaultDictionary, "dictionary file, one word per line")
	rootCmd.PersistentFlags().BoolVar(&solveHistory, "history", true, "record searches in the query history")
	rootCmd.Flags().StringVar(&solveFormat, "format", defaultFormat, "output format (list, lines)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newInteractiveCmd())
	rootCmd.AddCommand(newWordlistCmd())

	return rootCmd
}

func requireQuery(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	return nil
}

func loadSettings(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "dict", &solveDict, fileCfg.Dictionary.Path)
	applyStringConfig(cmd, "format", &solveFormat, fileCfg.Output.Format)
	applyBoolConfig(cmd, "history", &solveHistory, fileCfg.History.Enabled)

	cfg := model.Config{
		DictPath: solveDict,
		Format:   solveFormat,
		History:  solveHistory,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runSolveCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	res, err := jumble.Search(args[0], cfg.DictPath)
	if err != nil {
		return fmt.Errorf("there was an issue reading the dictionary: %w", err)
	}
	out, err := jumble.Format(cfg.Format, res.Matches)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cfg.History {
		recordQuery(res.Record(time.Now()))
	}
	return nil
}

func recordQuery(rec model.QueryRecord) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open history db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()
	if _, err := st.InsertQuery(context.Background(), rec); err != nil {
		logErrf("failed to save query: %v\n", err)
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <letters> <word>",
		Short: "Report whether word can be spelled from letters",
		Args:  cobra.ExactArgs(2),
		RunE:  runCheckCmd,
	}
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	ok := letters.New(args[0]).CanForm(args[1])
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(ok)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded searches",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", defaultHistoryLast, "limit to last N searches (0 for all)")
	cmd.Flags().StringVar(&historyContains, "contains", "", "only searches whose query contains this text")
	cmd.Flags().IntVar(&historyTop, "top", defaultHistoryTop, "number of most searched letter sets to show")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded searches")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "last", &historyLast, fileCfg.History.Last)

	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		utc := parsed.UTC()
		sinceTime = &utc
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	if historyClear {
		removed, err := st.ClearQueries(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d searches\n", removed)
		return err
	}

	cfg := model.HistoryConfig{
		Since:    sinceTime,
		Last:     historyLast,
		Contains: historyContains,
		Top:      historyTop,
	}
	report, err := stats.BuildReport(ctx, st, cfg)
	if err != nil {
		return fmt.Errorf("failed to build history: %w", err)
	}
	out := cmd.OutOrStdout()
	if err := stats.RenderHistory(out, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(report.Queries) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderSummary(out, report.Queries); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Search the dictionary interactively",
		Args:  cobra.NoArgs,
		RunE:  runInteractiveCmd,
	}
}

func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	if _, err := os.Stat(cfg.DictPath); err != nil {
		return fmt.Errorf("there was an issue reading the dictionary: %w", err)
	}

	var recorder tui.Recorder
	if cfg.History {
		st, err := store.Open(config.DefaultDBPath())
		if err != nil {
			logErrf("failed to open history db: %v\n", err)
		} else {
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close history db: %v\n", cerr)
				}
			}()
			recorder = st
		}
	}

	program := tea.NewProgram(tui.NewModel(cfg.DictPath, recorder), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newWordlistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist <source>",
		Short: "Import a word list as the dictionary",
		Args:  cobra.ExactArgs(1),
		RunE:  runWordlistCmd,
	}
	cmd.Flags().StringVar(&wordlistOut, "out", "", "output path (default: configured dictionary)")
	cmd.Flags().StringVar(&wordlistLang, "lang", defaultImportLang, "filter words for language ('en' keeps a-z only, anything else keeps all)")
	cmd.Flags().BoolVar(&wordlistForce, "force", false, "overwrite existing file")
	return cmd
}

func runWordlistCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	outPath := wordlistOut
	if outPath == "" {
		outPath = cfg.DictPath
	}
	source := args[0]
	if sameFile(source, outPath) {
		return fmt.Errorf("source and output are the same file: %s", outPath)
	}
	if !wordlistForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("word list already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat word list: %w", err)
		}
	}

	lines, err := wordlist.ReadLines(source)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", source, err)
	}
	words := wordlist.Normalize(lines, wordlist.FilterForLang(wordlistLang))
	if len(words) == 0 {
		return fmt.Errorf("no usable words in %s", source)
	}
	if err := wordlist.WriteWords(outPath, words); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logErrf("Wrote %d words to %s (skipped %d lines)\n", len(words), outPath, len(lines)-len(words))
	return nil
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordjumble configuration
# Uncomment a value to enable it. CLI flags override config values.

[dictionary]
# path = %q   # Word list, one word per line

[output]
# format = %q         # list or lines

[history]
# enabled = true        # Record searches
# last = %d             # Searches shown by 'wordjumble history'
`,
		jumble.DefaultDictionary,
		defaultFormat,
		defaultHistoryLast,
	)
}

func validateConfig(cfg model.Config) error {
	if strings.TrimSpace(cfg.DictPath) == "" {
		return fmt.Errorf("--dict must not be empty")
	}
	if _, err := jumble.Format(cfg.Format, nil); err != nil {
		return fmt.Errorf("invalid --format: %w", err)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
