// Package fuzztests holds Go fuzz harnesses for the scanner and parser.
// They check that arbitrary bytes never panic, hang, or produce a tree that
// breaks span invariants.
//
// Назначение: прогонять произвольные байты через lexer/parser и проверять
// инварианты результата.
//
// Run with:
//
//	go test ./internal/fuzz -fuzz=FuzzParse -fuzztime=30s
package fuzztests
