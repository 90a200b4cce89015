package internal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PrintAST renders a tree in parenthesized prefix form, e.g. (+ 1 (* 2 3))
func PrintAST(expr Expr) string {
	return expr.Accept(astPrinter{}).(string)
}

// PrintSource renders a tree back to source code. Scanning and parsing the
// result gives back the same tree.
func PrintSource(expr Expr) string {
	return expr.Accept(sourcePrinter{}).(string)
}

type astPrinter struct{}

func (v astPrinter) VisitAssignExpr(expr *AssignExpr) R {
	return fmt.Sprintf("(= %s %v)", expr.Name.Lexeme, expr.Value.Accept(v))
}

func (v astPrinter) VisitBinaryExpr(expr *BinaryExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.Operator.Lexeme, expr.Left.Accept(v), expr.Right.Accept(v))
}

func (v astPrinter) VisitGroupingExpr(expr *GroupingExpr) R {
	return fmt.Sprintf("(group %v)", expr.Expression.Accept(v))
}

func (v astPrinter) VisitLiteralExpr(expr *LiteralExpr) R {
	return literalString(expr.Value)
}

func (v astPrinter) VisitLogicalExpr(expr *LogicalExpr) R {
	return fmt.Sprintf("(%s %v %v)", expr.Operator.Lexeme, expr.Left.Accept(v), expr.Right.Accept(v))
}

func (v astPrinter) VisitUnaryExpr(expr *UnaryExpr) R {
	return fmt.Sprintf("(%s %v)", expr.Operator.Lexeme, expr.Right.Accept(v))
}

type sourcePrinter struct{}

func (v sourcePrinter) VisitAssignExpr(expr *AssignExpr) R {
	return fmt.Sprintf("%s = %v", expr.Name.Lexeme, expr.Value.Accept(v))
}

func (v sourcePrinter) VisitBinaryExpr(expr *BinaryExpr) R {
	return fmt.Sprintf("%v %s %v", expr.Left.Accept(v), expr.Operator.Lexeme, expr.Right.Accept(v))
}

func (v sourcePrinter) VisitGroupingExpr(expr *GroupingExpr) R {
	return fmt.Sprintf("(%v)", expr.Expression.Accept(v))
}

func (v sourcePrinter) VisitLiteralExpr(expr *LiteralExpr) R {
	if f, ok := expr.Value.(float64); ok && math.IsInf(f, 1) {
		return overflowDigits
	}
	return literalString(expr.Value)
}

// overflowDigits is the shortest digit run that scans back to +Inf
var overflowDigits = "1" + strings.Repeat("0", 309)

func (v sourcePrinter) VisitLogicalExpr(expr *LogicalExpr) R {
	return fmt.Sprintf("%v %s %v", expr.Left.Accept(v), expr.Operator.Lexeme, expr.Right.Accept(v))
}

func (v sourcePrinter) VisitUnaryExpr(expr *UnaryExpr) R {
	return fmt.Sprintf("%s%v", expr.Operator.Lexeme, expr.Right.Accept(v))
}

func literalString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return "\"" + v + "\""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
