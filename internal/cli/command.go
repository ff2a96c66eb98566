package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"codeberg.org/langl/langl/internal"
	"codeberg.org/langl/langl/internal/app"
	"codeberg.org/langl/langl/internal/session"
)

// DefaultResultsDir is where test results are saved unless configured.
func DefaultResultsDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "langl", "results")
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "langl [collections-dir]",
		Short: "Vocabulary flashcard trainer",
		Long: `langl drills vocabulary from plain-text collection files.

Each file in the collections directory is one collection:

  @ lang(en)
  $ name=Basics
  cat | kot / kotek
  dog | pies

Learn mode asks every word over and over. Test mode asks a random
subset once and can save the results.

Examples:
  langl ./collections                     # Start with a directory loaded
  langl --mode test --words 10 ./words    # Preselect a 10 word test
  langl list ./collections                # Show collections and warnings`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

// CreateListCommand creates the command that prints loaded collections.
func CreateListCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list [collections-dir]",
		Short: "List collections and their parse warnings",
		Args:  cobra.MaximumNArgs(1),
	}
}

// CreateGenerateCommand creates the command that builds a collection file
// from a word list by translating it.
func CreateGenerateCommand(flags *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a collection file from a word list",
		Long: `generate translates a word list into a collection file.

The batch file holds one word per line. A line of the form
"word = meaning / meaning" is used as is and not translated.`,
		Args: cobra.NoArgs,
	}

	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Word list to translate (one word per line)")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Collection file to write (default: <name>.txt in the collections directory)")
	cmd.Flags().StringVar(&flags.CollectionName, "name", "", "Value of the $name variable")
	cmd.Flags().StringVar(&flags.Language, "lang", "", "Language tag written as @ lang(...)")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List chat models available to the OpenAI key and exit")
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Translation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model name (default depends on provider)")
	cmd.Flags().StringVar(&flags.SourceLanguage, "from", flags.SourceLanguage, "Language of the words in the batch file")
	cmd.Flags().StringVar(&flags.TargetLanguage, "to", flags.TargetLanguage, "Language of the meanings")

	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("translate.model", cmd.Flags().Lookup("model"))
	viper.BindPFlag("translate.source_language", cmd.Flags().Lookup("from"))
	viper.BindPFlag("translate.target_language", cmd.Flags().Lookup("to"))

	return cmd
}

// CreateArchiveCommand creates the command that rotates saved results.
func CreateArchiveCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Move saved test results into a timestamped archive directory",
		Args:  cobra.NoArgs,
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.langl.yaml)")
	cmd.PersistentFlags().StringVarP(&flags.CollectionsDir, "collections", "d", "", "Directory of collection files")
	cmd.PersistentFlags().StringVar(&flags.ResultsDir, "results", DefaultResultsDir(), "Directory for saved test results")
	cmd.PersistentFlags().StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&flags.LogDevelopment, "log-dev", false, "Human friendly development logging")

	// Local flags
	cmd.Flags().Var(&flags.Mode, "mode", "Preselected work mode: learn or test")
	cmd.Flags().IntVarP(&flags.WordCount, "words", "n", flags.WordCount, fmt.Sprintf("Words per test (%d-%d)", app.MinWordCount, app.MaxWordCount))

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("collections.directory", lookupFlag(cmd, "collections"))
	viper.BindPFlag("results.directory", lookupFlag(cmd, "results"))
	viper.BindPFlag("log.level", lookupFlag(cmd, "log-level"))
	viper.BindPFlag("log.development", lookupFlag(cmd, "log-dev"))
	viper.BindPFlag("session.mode", lookupFlag(cmd, "mode"))
	viper.BindPFlag("session.words", lookupFlag(cmd, "words"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".langl" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".langl")
	}

	// Environment variables, e.g. LANGL_SESSION_WORDS
	viper.SetEnvPrefix("LANGL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies the merged flag, environment and config file values
// back into flags and validates them.
func ApplyConfig(flags *Flags) error {
	flags.CollectionsDir = viper.GetString("collections.directory")
	flags.ResultsDir = viper.GetString("results.directory")
	flags.LogLevel = viper.GetString("log.level")
	flags.LogDevelopment = viper.GetBool("log.development")

	if v := viper.GetString("session.mode"); v != "" {
		mode, err := session.ParseMode(v)
		if err != nil {
			return err
		}
		flags.Mode = mode
	}
	if viper.IsSet("session.words") {
		flags.WordCount = viper.GetInt("session.words")
	}
	if flags.WordCount < app.MinWordCount || flags.WordCount > app.MaxWordCount {
		return fmt.Errorf("words must be between %d and %d, got %d", app.MinWordCount, app.MaxWordCount, flags.WordCount)
	}

	if v := viper.GetString("translate.provider"); v != "" {
		flags.Provider = v
	}
	if v := viper.GetString("translate.model"); v != "" {
		flags.Model = v
	}
	if v := viper.GetString("translate.source_language"); v != "" {
		flags.SourceLanguage = v
	}
	if v := viper.GetString("translate.target_language"); v != "" {
		flags.TargetLanguage = v
	}

	if flags.ResultsDir == "" {
		flags.ResultsDir = DefaultResultsDir()
	}
	return nil
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("translate.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("translate.gemini_key")
}
