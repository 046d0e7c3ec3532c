package config

// Evaluator names accepted in configuration and on the command line.
const (
	EvaluatorCore = "core"
	EvaluatorLess = "less"
)

// ConfigFileNames are looked up, in order, in the working directory and
// its parents.
var ConfigFileNames = []string{".colorexpr.yaml", ".colorexpr.yml"}

// DefaultCacheSize is the number of parsed programs an engine keeps.
const DefaultCacheSize = 256

// Log levels understood by the log_level key.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Color output modes of the command line tool.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// REPL line prefixes that switch the mode of a single line.
const (
	LessLinePrefix = "less "
	AstLinePrefix  = "ast "
	FmtLinePrefix  = "fmt "
)

// Environment variables consulted for terminal color support.
const (
	NoColorEnv   = "NO_COLOR"
	TermEnv      = "TERM"
	ColorTermEnv = "COLORTERM"
)
