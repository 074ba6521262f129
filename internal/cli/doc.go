// Package cli implements the lcdstat command-line interface.
//
// Each Cobra command delegates to a function that wires the internal
// packages together:
//
//	lcdstat run         - Drive the LCD and buttons until interrupted
//	lcdstat simulate    - Show the same pages on a virtual LCD in the terminal
//	lcdstat stats       - Print the sampled metrics as text or JSON
//	lcdstat init        - Write an lcdstat.yaml with the pin wiring
//	lcdstat doctor      - Check config, gpio lines and metric sources
//	lcdstat version     - Print build information
//	lcdstat completion  - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the root
// command. --verbose turns on debug logging for every component, the same
// as setting LCDSTAT_DEBUG.
//
// # Shutdown
//
// Execute runs the command tree under a context cancelled by SIGINT or
// SIGTERM. Long-running commands watch that context; run clears the
// display before releasing its gpio lines.
package cli
