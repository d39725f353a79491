// Package cli runs single LightBnB data-access operations from the command line.
//
// Each invocation names one command followed by its flags; configuration flags
// (see package config) may be mixed in and are ignored here. Results are
// written to stdout as indented JSON.
//
// Commands:
//   - user -email EMAIL | -id ID
//   - register -name NAME -email EMAIL -password PASSWORD
//   - reservations -guest ID [-limit N]
//   - search [-city C] [-min-price P] [-max-price P] [-min-rating R] [-owner ID] [-limit N]
//   - add-property -owner ID -title T -cost P -street S -city C -province P -post-code Z -country C ...
package cli
