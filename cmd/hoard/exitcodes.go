package main

// Exit codes used across subcommands.
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (home directory unresolvable, settings write failure)
	ExitDataError   = 3 // Data error (malformed import file, invalid post-edit entry)
)
