package parser

import (
	"testing"

	"github.com/ucum-go/ucum/internal/ast"
)

func parseOK(t *testing.T, src string) string {
	t.Helper()
	node, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): unexpected error: %v", src, err)
	}
	return node.String()
}

func TestParseBasic(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"m", "m"},
		{"kg.m", "kg.m"},
		{"kg/m2", "kg/m2"},
		{"/min", "1/min"},
		{"(m.s)", "(m.s)"},
		{"s-2", "s-2"},
		{"s+2", "s2"},
		{"[ft_i]", "[ft_i]"},
		{"mm[Hg]", "mm[Hg]"},
		{"mg{total}", "mg{total}"},
		{"kg.m/s2", "kg.m/s2"},
		{"kg.m.s/s2.m2", "kg.m.s/s2.m2"},
		{"10*3", "10*3"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := parseOK(t, tt.src); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseLeftToRightEqualPrecedence(t *testing.T) {
	// "a/b.c" must parse as (a/b).c, not a/(b.c): '/' and '.' share equal
	// left-to-right precedence (spec §4.3).
	node, err := Parse("kg/m.s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prod, ok := node.(*ast.Product)
	if !ok {
		t.Fatalf("root node = %T, want *ast.Product", node)
	}
	if _, ok := prod.Left.(*ast.Quotient); !ok {
		t.Errorf("left operand = %T, want *ast.Quotient", prod.Left)
	}
	if node.String() != "kg/m.s" {
		t.Errorf("String() = %q, want %q", node.String(), "kg/m.s")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"(m.s",
		"m.",
		".m",
		"m)",
		"kg m",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			if _, err := Parse(src); err == nil {
				t.Fatalf("Parse(%q): expected error, got none", src)
			}
		})
	}
}

func TestParseAnnotationOnly(t *testing.T) {
	node, err := Parse("{ibu}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.String() != "{ibu}" {
		t.Errorf("String() = %q, want %q", node.String(), "{ibu}")
	}
}

func TestParseBareFactor(t *testing.T) {
	node, err := Parse("123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.String() != "123" {
		t.Errorf("String() = %q, want %q", node.String(), "123")
	}
}
