// Package diag defines the diagnostic model shared by the scanner and parser.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Issue – what went wrong (see issue.go), with a stable code from Issue.ID.
//   - Level – Error, Warn or Info, fixed per Issue. Only IssueInternalWarning
//     is a warning today and nothing is Info.
//   - Message – help text printed as "help: ..." below the snippet.
//   - Report – the span the snippet underlines plus a short label printed
//     after the underline.
//
// # Storage
//
// Engine keeps diagnostics in an arena list in emission order. Producers push
// into it directly; there is no sorting, filtering or deduplication, so what
// the user sees is exactly the order problems were found in.
//
// Rendering lives in internal/diagfmt.
package diag
