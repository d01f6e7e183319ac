package parser_test

import (
	"reflect"
	"testing"

	"zx/internal/ast"
	"zx/internal/diag"
	"zx/internal/lexer"
	"zx/internal/parser"
)

// parseSource lexes and parses input. Lex errors fail the test; parse
// errors come back through the flag.
func parseSource(t *testing.T, input string) (*ast.Tree, bool) {
	t.Helper()
	tokens, lexFailed := lexer.New(input).Lex()
	if lexFailed {
		t.Fatalf("unexpected lex errors in %q", input)
	}
	return parser.Parse(tokens)
}

// cleanTree parses input and fails on any embedded error.
func cleanTree(t *testing.T, input string) *ast.Tree {
	t.Helper()
	tree, hasErr := parseSource(t, input)
	if hasErr {
		var msgs []string
		for _, e := range tree.Errors() {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("unexpected parse errors in %q:\n%v", input, msgs)
	}
	return tree
}

// singleFn parses input expecting exactly one clean function declaration.
func singleFn(t *testing.T, input string) *ast.FnDecl {
	t.Helper()
	tree := cleanTree(t, input)
	if len(tree.Decls) != 1 {
		t.Fatalf("expected 1 declaration, got %d", len(tree.Decls))
	}
	d := tree.Decls[0]
	if d.Kind != ast.DeclFn || d.Fn == nil {
		t.Fatalf("expected fn declaration, got %v", d.Kind)
	}
	return d.Fn
}

// stmts parses body inside a wrapper function and returns its statements.
func stmts(t *testing.T, body string) []ast.Stmt {
	t.Helper()
	return singleFn(t, "fn f() { "+body+" }").Body.Stmts
}

func TestParse_EmptyInput(t *testing.T) {
	tree, hasErr := parseSource(t, "")
	if hasErr {
		t.Fatal("empty input must parse cleanly")
	}
	if len(tree.Decls) != 0 {
		t.Fatalf("expected no declarations, got %d", len(tree.Decls))
	}
}

func TestParse_MultipleDeclarations(t *testing.T) {
	tree := cleanTree(t, `
struct Point { u32 x; u32 y; };
enum Dir { North, South };
fn main() {}
`)
	if len(tree.Decls) != 3 {
		t.Fatalf("expected 3 declarations, got %d", len(tree.Decls))
	}
	wantKinds := []ast.DeclKind{ast.DeclStruct, ast.DeclEnum, ast.DeclFn}
	for i, want := range wantKinds {
		if tree.Decls[i].Kind != want {
			t.Errorf("decl %d: got %v, want %v", i, tree.Decls[i].Kind, want)
		}
	}
}

func TestParse_UnexpectedTopLevelToken(t *testing.T) {
	tree, hasErr := parseSource(t, "xyz")
	if !hasErr {
		t.Fatal("expected error flag")
	}
	if len(tree.Decls) != 1 {
		t.Fatalf("expected 1 error declaration, got %d", len(tree.Decls))
	}
	d := tree.Decls[0]
	if d.Kind != ast.DeclError || d.Err == nil {
		t.Fatalf("expected error declaration, got %+v", d)
	}
	if d.Err.Kind != diag.ParseUnexpectedToken || d.Err.Msg != "xyz" {
		t.Errorf("error = %v %q, want unexpected token / xyz", d.Err.Kind, d.Err.Msg)
	}
}

func TestParse_ConstOnTypeDeclarations(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"pub const enum Color { Red }", "The `const` keyword cannot be used with `enum` types."},
		{"const struct S { u32 x; }", "The `const` keyword cannot be used with `struct` types."},
		{"const intf I { fn f(); }", "The `const` keyword cannot be used with `intf` types."},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tree, hasErr := parseSource(t, tt.input)
			if !hasErr {
				t.Fatal("expected error flag")
			}
			d := tree.Decls[0]
			if d.Kind != ast.DeclError || d.Err == nil {
				t.Fatalf("expected error declaration, got %+v", d)
			}
			if d.Err.Kind != diag.ParseInvalidSyntax {
				t.Errorf("error kind = %v, want invalid syntax", d.Err.Kind)
			}
			if d.Err.Msg != tt.want {
				t.Errorf("message = %q, want %q", d.Err.Msg, tt.want)
			}
		})
	}
}

// Garbage input must terminate: the top-level loop guarantees progress
// even when a declaration attempt consumes nothing.
func TestParse_GarbageTerminates(t *testing.T) {
	tree, hasErr := parseSource(t, ") } ) {")
	if !hasErr {
		t.Fatal("expected error flag")
	}
	if len(tree.Decls) != 4 {
		t.Fatalf("expected 4 error declarations, got %d", len(tree.Decls))
	}
	for i, d := range tree.Decls {
		if d.Kind != ast.DeclError {
			t.Errorf("decl %d: got %v, want error", i, d.Kind)
		}
	}
}

// The same token stream always produces the same tree.
func TestParse_Deterministic(t *testing.T) {
	src := `
struct Point { u32 x; u32 y; };
fn len(Point p) -> u32 {
	ret p;
}
`
	tokens, lexFailed := lexer.New(src).Lex()
	if lexFailed {
		t.Fatal("unexpected lex errors")
	}
	first, firstErr := parser.Parse(tokens)
	second, secondErr := parser.Parse(tokens)
	if firstErr != secondErr {
		t.Fatalf("error flags differ: %v vs %v", firstErr, secondErr)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two parses of the same stream produced different trees")
	}
}

// Errors are collected in source order across the whole tree.
func TestParse_ErrorsInSourceOrder(t *testing.T) {
	tree, hasErr := parseSource(t, "xyz\nabc")
	if !hasErr {
		t.Fatal("expected error flag")
	}
	errs := tree.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Line > errs[1].Line {
		t.Errorf("errors out of order: line %d before line %d", errs[0].Line, errs[1].Line)
	}
	if !tree.HasErrors() {
		t.Error("HasErrors must report true")
	}
}
