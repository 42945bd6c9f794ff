package entryql

import (
	"errors"
	"testing"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []TokenType
	}{
		{"value:user1", []TokenType{TokenIdent, TokenColon, TokenIdent, TokenEOF}},
		{`value:"a b"`, []TokenType{TokenIdent, TokenColon, TokenString, TokenEOF}},
		{"a AND b", []TokenType{TokenIdent, TokenAnd, TokenIdent, TokenEOF}},
		{"a or b", []TokenType{TokenIdent, TokenOr, TokenIdent, TokenEOF}},
		{"NOT a", []TokenType{TokenNot, TokenIdent, TokenEOF}},
		{"(a)", []TokenType{TokenLParen, TokenIdent, TokenRParen, TokenEOF}},
		{`value!="x"`, []TokenType{TokenIdent, TokenNeq, TokenString, TokenEOF}},
		{"user-1@example.com", []TokenType{TokenIdent, TokenEOF}},
		{"a ! b", []TokenType{TokenIdent, TokenIllegal, TokenIdent, TokenEOF}},
		{`"open`, []TokenType{TokenIllegal, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lexer := NewLexer(tt.input)
			for i, expected := range tt.expected {
				tok := lexer.NextToken()
				if tok.Type != expected {
					t.Errorf("token %d: expected %v, got %v (%q)", i, expected, tok.Type, tok.Value)
				}
			}
		})
	}
}

func TestLexerUnescapesStrings(t *testing.T) {
	tok := NewLexer(`"say \"hi\""`).NextToken()
	if tok.Type != TokenString || tok.Value != `say "hi"` {
		t.Errorf("got %v %q", tok.Type, tok.Value)
	}
}

func TestLexerMultiByte(t *testing.T) {
	// 0xC3 0x85 is Å; the second byte must not be read as whitespace.
	tok := NewLexer("Åsa").NextToken()
	if tok.Type != TokenIdent || tok.Value != "Åsa" {
		t.Errorf("got %v %q", tok.Type, tok.Value)
	}
}

func TestParseSimple(t *testing.T) {
	tests := []struct {
		input string
		check func(Node) bool
	}{
		{
			input: "value:user1",
			check: func(n Node) bool {
				m, ok := n.(MatchExpr)
				return ok && m.Key == "value" && m.Value == "user1" && m.Op == OpEqual
			},
		},
		{
			input: "v!=user1",
			check: func(n Node) bool {
				m, ok := n.(MatchExpr)
				return ok && m.Key == "value" && m.Value == "user1" && m.Op == OpNotEqual
			},
		},
		{
			input: `PREFIX:"adm"`,
			check: func(n Node) bool {
				m, ok := n.(MatchExpr)
				return ok && m.Key == "prefix" && m.Value == "adm" && m.Op == OpEqual
			},
		},
		{
			input: `"time out"`,
			check: func(n Node) bool {
				m, ok := n.(MatchExpr)
				return ok && m.Key == "" && m.Value == "time out" && m.Op == OpContains
			},
		},
		{
			input: "guest",
			check: func(n Node) bool {
				m, ok := n.(MatchExpr)
				return ok && m.Key == "" && m.Value == "guest" && m.Op == OpContains
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			node, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if !tt.check(node) {
				t.Errorf("check failed for input %q, got: %+v", tt.input, node)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		node, err := Parse(in)
		if err != nil || node != nil {
			t.Errorf("Parse(%q) = %+v, %v", in, node, err)
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	node, err := Parse("a OR b AND c")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	or, ok := node.(BinaryExpr)
	if !ok || or.Op != "OR" {
		t.Fatalf("expected OR at root, got %+v", node)
	}
	and, ok := or.Right.(BinaryExpr)
	if !ok || and.Op != "AND" {
		t.Errorf("expected AND on the right, got %+v", or.Right)
	}
}

func TestParseParentheses(t *testing.T) {
	node, err := Parse("prefix:user AND (value:user1 OR value:user2)")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	bin, ok := node.(BinaryExpr)
	if !ok || bin.Op != "AND" {
		t.Fatalf("expected AND at root, got %+v", node)
	}
	inner, ok := bin.Right.(BinaryExpr)
	if !ok || inner.Op != "OR" {
		t.Errorf("expected OR inside parentheses, got %+v", bin.Right)
	}
}

func TestParseNot(t *testing.T) {
	node, err := Parse("NOT NOT value:a")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	outer, ok := node.(NotExpr)
	if !ok {
		t.Fatalf("expected NotExpr, got %+v", node)
	}
	if _, ok := outer.Expr.(NotExpr); !ok {
		t.Errorf("expected nested NotExpr, got %+v", outer.Expr)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"(value:a",
		"value:a)",
		"color:red",
		"value:",
		"value:(a)",
		"a AND",
		"NOT",
		`"open`,
		"!",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Fatalf("expected SyntaxError, got %v", err)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		query string
		value string
		want  bool
	}{
		{"value:user1", "user1", true},
		{"value:user1", "User1", false},
		{"value!=user1", "user2", true},
		{"value!=user1", "user1", false},
		{"prefix:us", "user", true},
		{"prefix!=us", "user", false},
		{"suffix:er", "user", true},
		{"SER", "user", true},
		{`"u s"`, "user", false},
		{"prefix:a AND suffix:z", "abcz", true},
		{"prefix:a AND suffix:z", "abc", false},
		{"value:x OR value:y", "y", true},
		{"NOT value:x", "y", true},
		{"NOT (value:x OR value:y)", "y", false},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.value, func(t *testing.T) {
			node, err := Parse(tt.query)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			if got := Match(node, tt.value); got != tt.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.query, tt.value, got, tt.want)
			}
		})
	}
}

func TestMatchNil(t *testing.T) {
	if !Match(nil, "anything") {
		t.Error("nil node should match everything")
	}
}
