/*
File   : dang/ast/ast_test.go
Package: ast
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dang-lang/dang/token"
)

func TestLetStatement_String(t *testing.T) {
	stmt := &LetStatement{
		Token: token.New(token.LET, "let"),
		Name:  &Identifier{Token: token.New(token.IDENT, "x"), Value: "x"},
		Value: &IntegerLiteral{Token: token.New(token.INT, "5"), Value: 5},
	}

	assert.Equal(t, "let x 5", stmt.String())
	assert.Equal(t, "let", stmt.TokenLiteral())
}

func TestLetStatement_String_NoInitializer(t *testing.T) {
	stmt := &LetStatement{
		Token: token.New(token.LET, "let"),
		Name:  &Identifier{Token: token.New(token.IDENT, "x"), Value: "x"},
	}

	assert.Equal(t, "let x", stmt.String())
}

func TestInfixExpression_String(t *testing.T) {
	expr := &InfixExpression{
		Token:    token.New(token.PLUS, "+"),
		Left:     &IntegerLiteral{Value: 1},
		Operator: "+",
		Right: &InfixExpression{
			Token:    token.New(token.ASTERISK, "*"),
			Left:     &IntegerLiteral{Value: 2},
			Operator: "*",
			Right:    &IntegerLiteral{Value: 3},
		},
	}

	assert.Equal(t, "(1 + (2 * 3))", expr.String())
}

func TestPrint_Program(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&ExpressionStatement{Expression: &IntegerLiteral{Value: 5}},
		},
	}

	out := Print(prog)
	assert.Contains(t, out, "Program")
	assert.Contains(t, out, "ExpressionStatement")
	assert.Contains(t, out, "IntegerLiteral 5")
}
