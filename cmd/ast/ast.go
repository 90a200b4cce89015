package main

import (
	"fmt"
	"go/format"
	"os"
	"strings"
)

// Generates internal/expr.go, see internal/generate.go

var exprTypes = []string{
	"Assign: Name Token, Value Expr",
	"Binary: Left Expr, Operator Token, Right Expr",
	"Grouping: Expression Expr",
	"Literal: Value interface{}",
	"Logical: Left Expr, Operator Token, Right Expr",
	"Unary: Operator Token, Right Expr",
}

func main() {
	if len(os.Args) != 2 || os.Args[1] != "Expr" {
		fmt.Fprintln(os.Stderr, "Usage: ast Expr")
		os.Exit(64)
	}

	out, err := format.Source([]byte(generateAst("Expr", exprTypes)))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Print(string(out))
}

func generateAst(baseName string, types []string) string {
	out := "// Code generated by cmd/ast; DO NOT EDIT.\n\n"
	out += "package internal\n\n"

	out += "// R is the result of visiting a node\n"
	out += "type R interface{}\n\n"

	// Start base interface
	out += fmt.Sprintf("// %s is a node of an expression tree\n", baseName)
	out += "type " + baseName + " interface {\n"
	out += "\tAccept(" + baseName + "Visitor) R\n"
	out += "\tID() int\n"
	out += "}\n\n"
	// End base interface

	// Start Visitor interface
	out += fmt.Sprintf("// %sVisitor has one method per %s variant\n", baseName, baseName)
	out += fmt.Sprintf("type %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		name := strings.TrimSpace(typeDef[0])
		structType := name + baseName
		out += "\tVisit" + structType + "(" + strings.ToLower(baseName) + " *" + structType + ") R\n"
	}
	out += "}\n\n"
	// End Visitor interface

	// Start  structs
	for _, t := range types {
		typeDef := strings.Split(t, ":")
		structName := strings.TrimSpace(typeDef[0])
		structFields := strings.TrimSpace(typeDef[1])
		out += generateType(baseName, structName, structFields)
	}
	// End structs

	return out
}

func generateType(baseName, name, fields string) string {
	// Start Structure Definition
	structName := name + baseName
	out := "type " + structName + " struct {\n"
	out += "\tid int\n"
	fieldArray := strings.Split(fields, ",")
	for _, field := range fieldArray {
		out += "\t" + strings.TrimSpace(field) + "\n"
	}
	out += "}\n\n"
	// End Structure Definition

	// Start Method Definition
	out += "func (s *" + structName + ") Accept(visitor " + baseName + "Visitor) R {\n"
	out += "\treturn visitor.Visit" + structName + "(s)\n"
	out += "}\n\n"

	out += "func (s *" + structName + ") ID() int {\n"
	out += "\treturn s.id\n"
	out += "}\n\n"
	// End Method Definition

	return out
}
