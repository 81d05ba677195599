package semconv

// Build
const (
	// Random ID for a single compiler run. Watch mode allocates a new one
	// for every rebuild.
	BuildID = "build_id"

	// Pipeline stage emitting the entry (tokenize, parse, transform, generate).
	Stage = "stage"
)

// Files
const (
	// Path of the file being compiled. "-" is standard input.
	InputPath = "input_path"

	// Path the generated code is written to.
	OutputPath = "output_path"
)

// Counters
const (
	// Number of top level statements in a program.
	StatementCount = "statement_count"

	// Number of tokens produced by the lexer.
	TokenCount = "token_count"
)
