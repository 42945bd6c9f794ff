package entryql

import (
	"strings"
)

// Match evaluates the AST node against a single entry value.
func Match(node Node, value string) bool {
	if node == nil {
		return true // No filter means match all
	}

	switch n := node.(type) {
	case BinaryExpr:
		return evalBinary(n, value)
	case MatchExpr:
		return evalMatch(n, value)
	case NotExpr:
		return !Match(n.Expr, value)
	default:
		return false
	}
}

func evalBinary(expr BinaryExpr, value string) bool {
	switch expr.Op {
	case "AND":
		return Match(expr.Left, value) && Match(expr.Right, value)
	case "OR":
		return Match(expr.Left, value) || Match(expr.Right, value)
	default:
		return false
	}
}

func evalMatch(expr MatchExpr, value string) bool {
	var hit bool
	switch expr.Key {
	case "":
		return containsIgnoreCase(value, expr.Value)
	case "value":
		hit = value == expr.Value
	case "prefix":
		hit = strings.HasPrefix(value, expr.Value)
	case "suffix":
		hit = strings.HasSuffix(value, expr.Value)
	default:
		return false
	}

	if expr.Op == OpNotEqual {
		return !hit
	}
	return hit
}

// containsIgnoreCase checks if haystack contains needle (case-insensitive).
func containsIgnoreCase(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
