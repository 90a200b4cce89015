package internal

//go:generate sh -c "go run ../cmd/ast Expr > expr.go"
