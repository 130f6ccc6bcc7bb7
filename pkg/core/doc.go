// Package core provides a small, stable facade over todohawk's internal
// engine for external integrations. It deliberately re-exports a narrow API
// surface so bots and third-party tools can depend on a stable import path
// without exposing internal implementation packages.
//
// Example:
//
//	tree, _ := core.NewLocalTree(".")
//	findings, err := core.Scan(ctx, core.Config{Tree: tree, Log: zerolog.Nop()})
//	if err != nil { /* handle */ }
//	_ = core.MarshalFindings(os.Stdout, findings)
package core
