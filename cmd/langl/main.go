package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"codeberg.org/langl/langl/internal"
	"codeberg.org/langl/langl/internal/app"
	"codeberg.org/langl/langl/internal/archive"
	"codeberg.org/langl/langl/internal/batch"
	"codeberg.org/langl/langl/internal/cli"
	"codeberg.org/langl/langl/internal/collection"
	"codeberg.org/langl/langl/internal/terminal"
	"codeberg.org/langl/langl/internal/translation"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create the command tree
	rootCmd := cli.CreateRootCommand(flags)
	listCmd := cli.CreateListCommand(flags)
	generateCmd := cli.CreateGenerateCommand(flags)
	archiveCmd := cli.CreateArchiveCommand(flags)
	rootCmd.AddCommand(listCmd, generateCmd, archiveCmd)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runSession(cmd, args, flags)
	}
	listCmd.RunE = func(cmd *cobra.Command, args []string) error {
		log, err := prepare(flags)
		if err != nil {
			return err
		}
		defer log.Sync()
		return runList(cmd.OutOrStdout(), collectionsDir(args, flags), log)
	}
	generateCmd.RunE = func(cmd *cobra.Command, args []string) error {
		log, err := prepare(flags)
		if err != nil {
			return err
		}
		defer log.Sync()
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runGenerate(ctx, cmd.OutOrStdout(), flags, log)
	}
	archiveCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := cli.ApplyConfig(flags); err != nil {
			return err
		}
		return runArchive(cmd.OutOrStdout(), flags.ResultsDir)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// prepare merges flags with config and environment and builds the logger.
func prepare(flags *cli.Flags) (*zap.Logger, error) {
	if err := cli.ApplyConfig(flags); err != nil {
		return nil, err
	}
	return cli.NewLogger(flags)
}

func collectionsDir(args []string, flags *cli.Flags) string {
	if len(args) > 0 {
		return args[0]
	}
	return flags.CollectionsDir
}

func runSession(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	log, err := prepare(flags)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := terminal.New(cmd.InOrStdin(), cmd.OutOrStdout())
	a := app.New(app.Config{
		Loader:     collection.NewLoader(log),
		Logger:     log,
		ResultsDir: flags.ResultsDir,
		Mode:       flags.Mode,
		WordCount:  flags.WordCount,
		InitialDir: collectionsDir(args, flags),
	})

	log.Debug("starting session",
		zap.String("collections", collectionsDir(args, flags)),
		zap.String("results", flags.ResultsDir),
		zap.Stringer("mode", flags.Mode),
		zap.Int("words", flags.WordCount))

	if err := a.Run(ctx, term.Events(ctx), term); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runList(w io.Writer, dir string, log *zap.Logger) error {
	if dir == "" {
		return fmt.Errorf("no collections directory given; pass one or set collections.directory")
	}

	reports, err := collection.NewLoader(log).ScanDir(dir)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintf(w, "No collection files in %s\n", dir)
		return nil
	}

	for _, r := range reports {
		if r.Err != nil {
			fmt.Fprintf(w, "%3d  %s\n     error: %v\n", r.ID, filepath.Base(r.Path), r.Err)
			continue
		}
		fmt.Fprintf(w, "%3d  %s (%d words)  %s\n", r.ID, r.Collection, r.Collection.Len(), filepath.Base(r.Path))
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "     warning: %s\n", warning)
		}
	}
	return nil
}

func runGenerate(ctx context.Context, w io.Writer, flags *cli.Flags, log *zap.Logger) error {
	// Handle --list-models flag
	if flags.ListModels {
		key := cli.GetOpenAIKey()
		if key == "" {
			return fmt.Errorf("%w: set OPENAI_API_KEY or translate.openai_key in .langl.yaml", translation.ErrNoAPIKey)
		}
		models, err := translation.NewOpenAIProvider(key, "").ListChatModels(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Chat models usable for translation:")
		for _, m := range models {
			fmt.Fprintf(w, "  %s\n", m)
		}
		return nil
	}

	if flags.BatchFile == "" {
		return fmt.Errorf("--batch is required")
	}
	entries, err := batch.ReadBatchFile(flags.BatchFile)
	if err != nil {
		return err
	}

	var translator *translation.Translator
	if len(batch.Pending(entries)) > 0 {
		provider, err := translation.NewProvider(ctx, translation.ProviderConfig{
			Name:      flags.Provider,
			Model:     flags.Model,
			OpenAIKey: cli.GetOpenAIKey(),
			GeminiKey: cli.GetGeminiKey(),
		})
		if err != nil {
			return err
		}
		translator = translation.NewTranslator(provider, translation.Options{
			SourceLanguage: flags.SourceLanguage,
			TargetLanguage: flags.TargetLanguage,
		}, log)
	}

	res, err := translation.NewGenerator(translator, log).Generate(ctx, entries, translation.GenerateOptions{
		Name:     flags.CollectionName,
		Language: flags.Language,
	})
	if err != nil {
		return err
	}

	path := outputPath(flags)
	if err := collection.SaveFile(path, res.Collection, false); err != nil {
		return err
	}

	fmt.Fprintf(w, "Wrote %d words (%d translated) to %s\n", res.Collection.Len(), res.Translated, path)
	if len(res.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped: %s\n", strings.Join(res.Skipped, ", "))
	}
	return nil
}

// outputPath defaults to <name>.txt in the collections directory.
func outputPath(flags *cli.Flags) string {
	if flags.OutputFile != "" {
		return flags.OutputFile
	}

	name := flags.CollectionName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(flags.BatchFile), filepath.Ext(flags.BatchFile))
	}
	dir := flags.CollectionsDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, internal.SanitizeFilename(name)+".txt")
}

func runArchive(w io.Writer, resultsDir string) error {
	path, err := archive.ArchiveResults(resultsDir)
	if err != nil {
		return fmt.Errorf("failed to archive results: %w", err)
	}
	fmt.Fprintf(w, "Results directory archived to: %s\n", path)
	return nil
}
