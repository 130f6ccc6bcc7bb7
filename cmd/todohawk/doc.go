// Package todohawk provides the command-line interface for the todohawk
// tool. It configures subcommands (scan, action, patterns, completion),
// parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/todohawk/todohawk/cmd/todohawk"
//	func main() { todohawk.Execute() }
package todohawk
