package entryql

// Node is the interface implemented by all AST nodes.
type Node interface {
	node() // marker method
}

// Op is a match operator.
type Op string

const (
	OpEqual    Op = "="
	OpNotEqual Op = "!="
	OpContains Op = "CONTAINS"
)

// BinaryExpr represents a binary logical expression (AND, OR).
type BinaryExpr struct {
	Op    string // "AND" or "OR"
	Left  Node
	Right Node
}

func (BinaryExpr) node() {}

// MatchExpr represents a key:value match expression.
// If Key is empty, it is a case-insensitive substring search.
type MatchExpr struct {
	Key   string // "value", "prefix" or "suffix". Empty for substring.
	Value string
	Op    Op
}

func (MatchExpr) node() {}

// NotExpr negates its inner expression.
type NotExpr struct {
	Expr Node
}

func (NotExpr) node() {}
