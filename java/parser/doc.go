// Package parser turns Java source text into a concrete syntax tree.
//
// # Overview
//
// Parsing is delegated to the tree-sitter Java grammar. The package wraps the
// grammar with the things the rest of swapcheck needs: file identity, 1-based
// positions, and a strict notion of failure.
//
//	┌─────────────┐     ┌─────────────┐     ┌─────────────┐
//	│   Input     │────▶│ tree-sitter │────▶│    Tree     │
//	│  (bytes)    │     │   (java)    │     │  (nodes)    │
//	└─────────────┘     └─────────────┘     └─────────────┘
//	                                               │
//	                                               ▼
//	                                        ┌─────────────┐
//	                                        │ ParseError  │
//	                                        │ (first bad  │
//	                                        │  node)      │
//	                                        └─────────────┘
//
// # Strictness
//
// tree-sitter recovers from syntax errors by inserting ERROR and MISSING
// nodes. A declaration model built from a recovered tree could silently drop
// methods, so Parse rejects any tree containing such nodes and reports the
// first one as a [ParseError]:
//
//	tree, err := parser.Parse(ctx, src, parser.WithFile("Foo.java"))
//	if err != nil {
//	    var perr *parser.ParseError
//	    if errors.As(err, &perr) {
//	        fmt.Println(perr.Pos.Line, perr.Pos.Column)
//	    }
//	}
//	defer tree.Close()
//
// # Positions
//
// Positions are 1-based lines and 1-based byte columns, matching what editors
// and compilers print:
//
//	type Position struct {
//	    File   string // source file path
//	    Offset int    // byte offset from start of file
//	    Line   int    // 1-based line number
//	    Column int    // 1-based column (in bytes, not runes)
//	}
//
// # Concurrency
//
// Every call to Parse creates its own tree-sitter parser, so independent
// files can be parsed from independent goroutines. A Tree must not be shared
// between goroutines while it is being walked.
package parser
