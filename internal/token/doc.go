// Package token defines lexical token kinds for the zx front end.
// Invariants:
//   - Token.Lexeme is the verbatim source substring, never a converted
//     value; validity decisions are deferred to later stages.
//   - Token.Col is a byte offset from the start of the input (it does
//     not reset at newlines and multi-byte characters advance it by
//     their encoded length). Token.Line is 1-based.
//   - A token stream produced by the lexer ends with exactly one EOF.
//   - Data-type names and keywords are disjoint tables; lookup order
//     affects cost only, never classification.
package token
