package models

// Default external commands and family marker
const (
	DefaultIndexCommand  = "apt-cache show 'librust-*'"
	DefaultStatusCommand = "dpkg -l"
	DefaultFamilyMarker  = "librust-"
)

// Config holds configuration for the scanner
type Config struct {
	// Only keep crates whose name contains this term (case-sensitive)
	SearchTerm string

	// Output settings
	OutputFormat string // "terminal", "table", "json"
	OutputFile   string // Optional output file path

	// External tools
	IndexCommand  string // Prints full package descriptions
	StatusCommand string // Lists packages with their dpkg status
	FamilyMarker  string // Substring identifying listing lines of interest

	// Captured tool output to read instead of running the commands
	IndexFile  string
	StatusFile string

	// Extra package name -> crate name mappings for irregular descriptions
	Exceptions map[string]string

	InstalledOnly bool
	Verbose       bool
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		OutputFormat:  "terminal",
		IndexCommand:  DefaultIndexCommand,
		StatusCommand: DefaultStatusCommand,
		FamilyMarker:  DefaultFamilyMarker,
		Exceptions:    map[string]string{},
	}
}
