package parser_test

import (
	"testing"

	"zx/internal/ast"
	"zx/internal/diag"
)

func TestParseStruct(t *testing.T) {
	tree := cleanTree(t, "struct Point { u32 x; u32 y; Color tint; }")
	s := tree.Decls[0].Struct
	if s == nil || s.Name.Name() != "Point" {
		t.Fatalf("expected struct Point, got %+v", tree.Decls[0])
	}
	if len(s.Fields) != 3 {
		t.Fatalf("fields = %d, want 3", len(s.Fields))
	}
	if s.Fields[0].Type.Kind != ast.TypePrimitive || s.Fields[0].Name.Name() != "x" {
		t.Errorf("field 0 = %+v, want primitive x", s.Fields[0])
	}
	if s.Fields[2].Type.Kind != ast.TypeNamed || s.Fields[2].Type.Name != "Color" {
		t.Errorf("field 2 type = %+v, want named Color", s.Fields[2].Type)
	}
}

func TestParseStruct_Empty(t *testing.T) {
	tree := cleanTree(t, "struct Unit {}")
	s := tree.Decls[0].Struct
	if s == nil || len(s.Fields) != 0 {
		t.Fatalf("expected empty struct, got %+v", s)
	}
}

func TestParseStruct_Generics(t *testing.T) {
	tree := cleanTree(t, "struct Pair<type A, type B> { A first; B second; }")
	s := tree.Decls[0].Struct
	if s.Generics == nil || len(s.Generics.Entries) != 2 {
		t.Fatalf("expected 2 generic entries, got %+v", s.Generics)
	}
	if s.Fields[0].Type.Kind != ast.TypeNamed || s.Fields[0].Type.Name != "A" {
		t.Errorf("field 0 type = %+v, want named A", s.Fields[0].Type)
	}
}

func TestParseStruct_MissingFieldTerminator(t *testing.T) {
	tree, hasErr := parseSource(t, "struct S { u32 x }")
	if !hasErr {
		t.Fatal("expected error flag")
	}
	s := tree.Decls[0].Struct
	if s == nil || s.Err == nil {
		t.Fatalf("expected embedded error, got %+v", tree.Decls[0])
	}
	if s.Err.Kind != diag.ParseMissingToken {
		t.Errorf("error kind = %v, want missing token", s.Err.Kind)
	}
	// The field parsed before the failure is kept.
	if len(s.Fields) != 1 || s.Fields[0].Name.Name() != "x" {
		t.Errorf("fields = %+v, want the one parsed field", s.Fields)
	}
}

func TestParseEnum(t *testing.T) {
	tree := cleanTree(t, "enum Shape { Dot, Circle(u32), Rect(u32, u32) }")
	e := tree.Decls[0].Enum
	if e == nil || e.Name.Name() != "Shape" {
		t.Fatalf("expected enum Shape, got %+v", tree.Decls[0])
	}
	if len(e.Variants) != 3 {
		t.Fatalf("variants = %d, want 3", len(e.Variants))
	}
	if len(e.Variants[0].Tuple) != 0 {
		t.Errorf("Dot must be a unit variant, got tuple %v", e.Variants[0].Tuple)
	}
	if len(e.Variants[1].Tuple) != 1 || len(e.Variants[2].Tuple) != 2 {
		t.Errorf("tuple arities = %d/%d, want 1/2",
			len(e.Variants[1].Tuple), len(e.Variants[2].Tuple))
	}
	if e.Variants[2].Name.Name() != "Rect" {
		t.Errorf("variant 2 = %q, want Rect", e.Variants[2].Name.Name())
	}
}

func TestParseEnum_TrailingComma(t *testing.T) {
	tree := cleanTree(t, "enum Dir { North, South, }")
	e := tree.Decls[0].Enum
	if len(e.Variants) != 2 {
		t.Fatalf("variants = %d, want 2", len(e.Variants))
	}
}

func TestParseEnum_BadVariant(t *testing.T) {
	tree, hasErr := parseSource(t, "enum E { 1 }")
	if !hasErr {
		t.Fatal("expected error flag")
	}
	e := tree.Decls[0].Enum
	if e == nil || e.Err == nil {
		t.Fatalf("expected embedded error, got %+v", tree.Decls[0])
	}
	if e.Err.Kind != diag.ParseInvalidSyntax {
		t.Errorf("error kind = %v, want invalid syntax", e.Err.Kind)
	}
}

func TestParseIntf(t *testing.T) {
	tree := cleanTree(t, `
intf Shape {
	fn area() -> u32;
	fn scale(u32 factor);
}`)
	it := tree.Decls[0].Intf
	if it == nil || it.Name.Name() != "Shape" {
		t.Fatalf("expected intf Shape, got %+v", tree.Decls[0])
	}
	if len(it.Methods) != 2 {
		t.Fatalf("methods = %d, want 2", len(it.Methods))
	}
	area := it.Methods[0]
	if area.Name.Name() != "area" || area.Ret == nil || len(area.Params) != 0 {
		t.Errorf("area = %+v, want bodiless sig with return type", area)
	}
	scale := it.Methods[1]
	if scale.Name.Name() != "scale" || scale.Ret != nil || len(scale.Params) != 1 {
		t.Errorf("scale = %+v, want one param and no return type", scale)
	}
}

func TestParseIntf_GenericMethod(t *testing.T) {
	tree := cleanTree(t, "intf Conv { fn to<type T>() -> T; }")
	it := tree.Decls[0].Intf
	sig := it.Methods[0]
	if sig.Generics == nil || len(sig.Generics.Entries) != 1 {
		t.Fatalf("expected generic method signature, got %+v", sig)
	}
}

func TestParseIntf_MethodWithoutFn(t *testing.T) {
	tree, hasErr := parseSource(t, "intf I { area(); }")
	if !hasErr {
		t.Fatal("expected error flag")
	}
	it := tree.Decls[0].Intf
	if it == nil || it.Err == nil {
		t.Fatalf("expected embedded error, got %+v", tree.Decls[0])
	}
}

func TestParseTypeDecl_UnterminatedBody(t *testing.T) {
	tests := []string{
		"struct S { u32 x;",
		"enum E { A,",
		"intf I { fn f();",
	}
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tree, hasErr := parseSource(t, input)
			if !hasErr {
				t.Fatal("expected error flag")
			}
			errs := tree.Errors()
			if len(errs) == 0 {
				t.Fatal("expected at least one collected error")
			}
			if errs[0].Kind != diag.ParseUnexpectedEOF {
				t.Errorf("error kind = %v, want unexpected EOF", errs[0].Kind)
			}
		})
	}
}
