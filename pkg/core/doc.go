// Package core provides a small, stable facade over seclab's internal cipher
// and password packages for external integrations such as a web front end.
// It re-exports a narrow API surface so callers can depend on a stable import
// path without reaching into internal implementation packages.
//
// Example:
//
//	out := core.CaesarEncrypt("Hello, World!", 3) // "Khoor, Zruog!"
//	report := core.AnalyzePassword("hunter2")
//	_ = core.MarshalReport(os.Stdout, report)
package core
