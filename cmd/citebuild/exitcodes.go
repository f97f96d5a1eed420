package main

// Exit codes shared across commands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (missing library, invalid paths)
	ExitDataError   = 3 // Data error (malformed input, unknown work type)
	ExitNotFound    = 4 // Work or DOI not found
	ExitAPIError    = 5 // doi.org request failed
)
