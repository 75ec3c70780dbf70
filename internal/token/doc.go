// Package token defines lexical token kinds and the token list for m2l.
// Invariants:
//   - Token.Span always points into the Source the token was scanned from.
//   - A completed List ends with exactly one EOF token.
//   - Newlines, spaces and tabs never appear as tokens.
package token
