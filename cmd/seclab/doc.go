// Package seclab provides the command-line interface for the seclab tool.
// It configures subcommands (caesar, rot13, vigenere, analyze, playground,
// etc.), parses flags, loads layered configuration and executes the selected
// command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/redactyl/seclab/cmd/seclab"
//	func main() { seclab.Execute() }
package seclab
