// Package syntax implements the Jomini game-script parsing core: a lossless
// lexer, a buffered lookahead lexer, a trivia-stripping token source, an
// event-driven recursive-descent parser with forward-parent markers and
// token-set recovery, an immutable green concrete syntax tree with a lazy
// red overlay, AST lowering, and the analysis facts the rule engine
// consumes.
//
// The pipeline mirrors Biome/rust-analyzer's architecture, the same lineage
// the teacher package (gotypst's syntax package) draws its own lossless
// tree from: lex, strip trivia into a token source, emit a flat event
// stream from a recursive-descent parser, replay events into an immutable
// green tree, wrap the green tree lazily in a parent-pointed red tree, then
// lower the red tree into a typed AST.
package syntax
