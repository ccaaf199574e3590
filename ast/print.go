/*
File   : dang/ast/print.go
Package: ast

Print renders an indented, human-readable dump of a Node tree. It exists
for this package's tests and for cmd/dang's -ast debug flag; the evaluator never
calls it. Grounded on the teacher's PrintingVisitor (go-mix's
print_visitor.go), generalized from that Visitor's per-kind methods into a
single recursive type switch matching this package's narrower node set.
*/
package ast

import (
	"fmt"
	"strings"
)

const printIndent = "  "

// Print returns an indented dump of node, one line per node visited.
func Print(node Node) string {
	var buf strings.Builder
	printNode(&buf, node, 0)
	return buf.String()
}

func printNode(buf *strings.Builder, node Node, depth int) {
	indent := strings.Repeat(printIndent, depth)

	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(buf, "%sProgram\n", indent)
		for _, s := range n.Statements {
			printNode(buf, s, depth+1)
		}
	case *LetStatement:
		fmt.Fprintf(buf, "%sLetStatement %s\n", indent, n.Name.Value)
		if n.Value != nil {
			printNode(buf, n.Value, depth+1)
		}
	case *ReturnStatement:
		fmt.Fprintf(buf, "%sReturnStatement\n", indent)
		if n.ReturnValue != nil {
			printNode(buf, n.ReturnValue, depth+1)
		}
	case *ExpressionStatement:
		fmt.Fprintf(buf, "%sExpressionStatement\n", indent)
		printNode(buf, n.Expression, depth+1)
	case *BlockStatement:
		fmt.Fprintf(buf, "%sBlockStatement\n", indent)
		for _, s := range n.Statements {
			printNode(buf, s, depth+1)
		}
	case *Identifier:
		fmt.Fprintf(buf, "%sIdentifier %s\n", indent, n.Value)
	case *PrefixExpression:
		fmt.Fprintf(buf, "%sPrefixExpression %s\n", indent, n.Operator)
		printNode(buf, n.Right, depth+1)
	case *InfixExpression:
		fmt.Fprintf(buf, "%sInfixExpression %s\n", indent, n.Operator)
		printNode(buf, n.Left, depth+1)
		printNode(buf, n.Right, depth+1)
	case *IfExpression:
		fmt.Fprintf(buf, "%sIfExpression\n", indent)
		printNode(buf, n.Condition, depth+1)
		printNode(buf, n.Consequence, depth+1)
		if n.Alternative != nil {
			printNode(buf, n.Alternative, depth+1)
		}
	case *FunctionLiteral:
		params := make([]string, len(n.Parameters))
		for i, p := range n.Parameters {
			params[i] = p.Value
		}
		fmt.Fprintf(buf, "%sFunctionLiteral (%s)\n", indent, strings.Join(params, ", "))
		printNode(buf, n.Body, depth+1)
	case *CallExpression:
		fmt.Fprintf(buf, "%sCallExpression\n", indent)
		printNode(buf, n.Function, depth+1)
		for _, a := range n.Arguments {
			printNode(buf, a, depth+1)
		}
	case *IntegerLiteral:
		fmt.Fprintf(buf, "%sIntegerLiteral %d\n", indent, n.Value)
	case *BooleanLiteral:
		fmt.Fprintf(buf, "%sBooleanLiteral %t\n", indent, n.Value)
	default:
		fmt.Fprintf(buf, "%s<unknown node %T>\n", indent, n)
	}
}
