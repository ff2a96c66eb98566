package cli

import (
	"codeberg.org/langl/langl/internal/session"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile        string
	CollectionsDir string
	ResultsDir     string
	LogLevel       string
	LogDevelopment bool

	// Session flags
	Mode      session.Mode
	WordCount int

	// Generate flags
	BatchFile      string
	OutputFile     string
	CollectionName string
	Language       string
	ListModels     bool

	// Translation flags
	Provider       string
	Model          string
	SourceLanguage string
	TargetLanguage string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		LogLevel:       "warn",
		Mode:           session.ModeLearn,
		WordCount:      5,
		Provider:       "openai",
		SourceLanguage: "English",
		TargetLanguage: "Polish",
	}
}
