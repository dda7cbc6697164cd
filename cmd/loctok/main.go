package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	progressbar "github.com/schollz/progressbar/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/loctok/loctok"
)

var (
	// Scan
	encodingName  string
	showHidden    bool
	extFilter     string
	maxSizeBytes  int64
	numThreads    int
	tokenizerFile string

	// Output
	outputFormat    string
	showProgress    bool
	copyToClipboard bool
	pdfOutputFile   string

	// Interactive mode
	interactiveMode bool
)

// version is set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "loctok [PATH]",
	Short:   "Count LOC (lines of code) & TOK (LLM tokens), fast.",
	Long: `loctok scans a directory tree, honoring .gitignore and .ignore rules,
and reports non-empty line counts and BPE token counts per file and per
language. It also accepts git repository URLs (cloned to a temp dir) and
web URLs (converted to markdown before counting).`,
	Version:      version,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	start := time.Now()

	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	if interactiveMode {
		picked, err := pickRootInteractive()
		if err != nil {
			return fmt.Errorf("interactive mode: %w", err)
		}
		if picked == "" {
			// Selection aborted.
			return nil
		}
		target = picked
	}

	opts := loctok.Options{
		Encoding:      encodingName,
		IncludeHidden: showHidden,
		IncludeExts:   parseExtFilter(extFilter),
		MaxFileSize:   maxSizeBytes,
		TokenizerFile: tokenizerFile,
		Workers:       numThreads,
	}

	root := target
	switch classifyTarget(target) {
	case targetWeb:
		return countWebURL(target, opts)
	case targetGit:
		tempDir, err := cloneGitRepo(target)
		if err != nil {
			return err
		}
		defer os.RemoveAll(tempDir)
		root = tempDir
	}

	var result *loctok.CountResult
	var err error
	if showProgress {
		result, err = countWithProgressBar(root, opts)
	} else {
		result, err = loctok.CountPath(root, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", target, err)
	}

	if copyToClipboard {
		if err := copyOutputToClipboard(root, opts); err != nil {
			fmt.Fprintf(os.Stderr, "warn: clipboard export failed: %v\n", err)
		} else {
			fmt.Fprintln(os.Stderr, "File tree and contents copied to clipboard.")
		}
	}

	if pdfOutputFile != "" {
		return writePDFReport(pdfOutputFile, target, encodingName, result)
	}

	elapsed := time.Since(start)
	switch outputFormat {
	case "json":
		return printJSON(target, encodingName, result)
	case "tree":
		printScanHeader(elapsed, len(result.Files))
		printTree(root, result.Files)
	case "table":
		printScanHeader(elapsed, len(result.Files))
		printLanguageTable(result)
	default:
		return fmt.Errorf("unknown output format: %s (use table, json, or tree)", outputFormat)
	}
	return nil
}

// countWithProgressBar wires the core's progress callback to a stderr bar.
// The callback arrives from multiple workers, so bar creation and updates are
// serialized here.
func countWithProgressBar(root string, opts loctok.Options) (*loctok.CountResult, error) {
	var mu sync.Mutex
	var bar *progressbar.ProgressBar
	last := 0

	progress := func(done, total int) {
		mu.Lock()
		defer mu.Unlock()
		if bar == nil {
			if total == 0 {
				return
			}
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionThrottle(65*time.Millisecond),
			)
		}
		if done > last {
			_ = bar.Add(done - last)
			last = done
		}
	}

	result, err := loctok.CountPathWithProgress(root, opts, progress)

	mu.Lock()
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(os.Stderr)
	}
	mu.Unlock()

	return result, err
}

// copyOutputToClipboard re-enumerates root and puts the tree-plus-contents
// dump on the system clipboard.
func copyOutputToClipboard(root string, opts loctok.Options) error {
	texts, err := loctok.CollectFilteredTexts(root, opts)
	if err != nil {
		return err
	}
	return clipboard.WriteAll(loctok.BuildCopyOutput(texts))
}

// parseExtFilter turns "rs,py,js" into the allow-list form the core expects.
// An empty or all-whitespace value means no filtering.
func parseExtFilter(s string) map[string]struct{} {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	set := make(map[string]struct{})
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(part), "."))
		set[part] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func isWebURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

type targetKind int

const (
	targetLocal targetKind = iota
	targetGit
	targetWeb
)

// classifyTarget decides how the positional argument is scanned. Git URLs are
// checked first so an https clone URL ending in .git is cloned rather than
// fetched as a web page.
func classifyTarget(input string) targetKind {
	switch {
	case isGitURL(input):
		return targetGit
	case isWebURL(input):
		return targetWeb
	default:
		return targetLocal
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLanguageOverrides)

	rootCmd.Flags().StringVar(&encodingName, "encoding", "o200k_base",
		"Encoding to use ("+strings.Join(loctok.Encodings, ", ")+")")
	viper.BindPFlag("encoding", rootCmd.Flags().Lookup("encoding"))
	rootCmd.Flags().BoolVar(&showHidden, "hidden", false, "Include hidden files (dotfiles)")
	viper.BindPFlag("hidden", rootCmd.Flags().Lookup("hidden"))
	rootCmd.Flags().StringVar(&extFilter, "ext", "",
		`Comma-separated list of file extensions to include (e.g. "rs,py,js"); empty means all`)
	viper.BindPFlag("ext", rootCmd.Flags().Lookup("ext"))
	rootCmd.Flags().Int64VarP(&maxSizeBytes, "max-size", "s", 0, "Maximum file size in bytes (0 for the 64MiB default)")
	viper.BindPFlag("max_size", rootCmd.Flags().Lookup("max-size"))
	rootCmd.Flags().IntVarP(&numThreads, "threads", "t", 0, "Number of worker threads (0 for auto)")
	viper.BindPFlag("threads", rootCmd.Flags().Lookup("threads"))
	rootCmd.Flags().StringVar(&tokenizerFile, "tokenizer-file", "", "Count with a local HuggingFace tokenizer.json instead of tiktoken")
	viper.BindPFlag("tokenizer_file", rootCmd.Flags().Lookup("tokenizer-file"))

	rootCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "Output format: table, json, or tree")
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	rootCmd.Flags().BoolVar(&showProgress, "progress", true, "Show progress while scanning (prints to stderr)")
	viper.BindPFlag("progress", rootCmd.Flags().Lookup("progress"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "copy", "c", false, "Copy the file tree and contents to the clipboard")
	viper.BindPFlag("copy", rootCmd.Flags().Lookup("copy"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Write the language summary as a PDF report")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))

	rootCmd.Flags().BoolVarP(&interactiveMode, "interactive", "i", false, "Pick the scan root interactively")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))
}

// initConfig reads the config file and LOCTOK_* environment variables.
func initConfig() {
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "loctok"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.SetEnvPrefix("LOCTOK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warn: reading config file: %v\n", err)
		}
	}

	// Config and env provide defaults; explicit flags win.
	if !rootCmd.Flags().Changed("encoding") && viper.IsSet("encoding") {
		encodingName = viper.GetString("encoding")
	}
	if !rootCmd.Flags().Changed("format") && viper.IsSet("format") {
		outputFormat = viper.GetString("format")
	}
	if !rootCmd.Flags().Changed("ext") && viper.IsSet("ext") {
		extFilter = viper.GetString("ext")
	}
	if !rootCmd.Flags().Changed("threads") && viper.IsSet("threads") {
		numThreads = viper.GetInt("threads")
	}
}

// initLanguageOverrides merges an optional languages.yml over the builtin
// extension table.
func initLanguageOverrides() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	path := filepath.Join(home, ".config", "loctok", "languages.yml")
	if _, err := os.Stat(path); err != nil {
		return
	}
	overrides, err := loctok.LoadLanguageOverrides(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warn: %v\n", err)
		return
	}
	loctok.ApplyLanguageOverrides(overrides)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
