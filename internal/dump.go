package internal

import (
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

type tokenDoc struct {
	Type    string      `yaml:"type"`
	Lexeme  string      `yaml:"lexeme"`
	Literal interface{} `yaml:"literal,omitempty"`
	Line    int         `yaml:"line"`
}

// DumpTokens renders a token list as a YAML sequence
func DumpTokens(tokens []Token) ([]byte, error) {
	docs := make([]tokenDoc, 0, len(tokens))
	for _, tk := range tokens {
		docs = append(docs, tokenDoc{
			Type:    tk.Type.String(),
			Lexeme:  tk.Lexeme,
			Literal: tk.Literal,
			Line:    tk.Line,
		})
	}
	return yaml.Marshal(docs)
}

// DumpExpr renders a tree as nested YAML mappings, one per node
func DumpExpr(expr Expr) ([]byte, error) {
	return yaml.Marshal(expr.Accept(yamlDumper{}).(*yaml.Node))
}

type yamlDumper struct{}

func (v yamlDumper) node(kind string, expr Expr, fields ...*yaml.Node) *yaml.Node {
	content := []*yaml.Node{
		strNode("kind"), strNode(kind),
		strNode("id"), scalarNode("!!int", strconv.Itoa(expr.ID())),
	}
	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: append(content, fields...),
	}
}

func (v yamlDumper) VisitAssignExpr(expr *AssignExpr) R {
	return v.node("assign", expr,
		strNode("name"), strNode(expr.Name.Lexeme),
		strNode("value"), expr.Value.Accept(v).(*yaml.Node),
	)
}

func (v yamlDumper) VisitBinaryExpr(expr *BinaryExpr) R {
	return v.node("binary", expr,
		strNode("operator"), strNode(expr.Operator.Lexeme),
		strNode("left"), expr.Left.Accept(v).(*yaml.Node),
		strNode("right"), expr.Right.Accept(v).(*yaml.Node),
	)
}

func (v yamlDumper) VisitGroupingExpr(expr *GroupingExpr) R {
	return v.node("grouping", expr,
		strNode("expression"), expr.Expression.Accept(v).(*yaml.Node),
	)
}

func (v yamlDumper) VisitLiteralExpr(expr *LiteralExpr) R {
	return v.node("literal", expr, strNode("value"), literalNode(expr.Value))
}

func (v yamlDumper) VisitLogicalExpr(expr *LogicalExpr) R {
	return v.node("logical", expr,
		strNode("operator"), strNode(expr.Operator.Lexeme),
		strNode("left"), expr.Left.Accept(v).(*yaml.Node),
		strNode("right"), expr.Right.Accept(v).(*yaml.Node),
	)
}

func (v yamlDumper) VisitUnaryExpr(expr *UnaryExpr) R {
	return v.node("unary", expr,
		strNode("operator"), strNode(expr.Operator.Lexeme),
		strNode("right"), expr.Right.Accept(v).(*yaml.Node),
	)
}

func literalNode(value interface{}) *yaml.Node {
	switch val := value.(type) {
	case nil:
		return scalarNode("!!null", "null")
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val))
	case float64:
		switch {
		case math.IsInf(val, 1):
			return scalarNode("!!float", ".inf")
		case math.IsInf(val, -1):
			return scalarNode("!!float", "-.inf")
		case math.IsNaN(val):
			return scalarNode("!!float", ".nan")
		}
		return scalarNode("!!float", strconv.FormatFloat(val, 'f', -1, 64))
	case string:
		return strNode(val)
	default:
		return strNode(literalString(val))
	}
}

func strNode(value string) *yaml.Node {
	return scalarNode("!!str", value)
}

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
