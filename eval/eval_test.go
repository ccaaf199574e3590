/*
File   : dang/eval/eval_test.go
Package: eval
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dang-lang/dang/environment"
	"github.com/dang-lang/dang/lexer"
	"github.com/dang-lang/dang/object"
	"github.com/dang-lang/dang/parser"
)

func testEval(t *testing.T, input string) object.Object {
	t.Helper()
	p := parser.New(lexer.New(input))
	prog := p.ParseProgram()
	require.Empty(t, p.Diagnostics(), "unexpected parser diagnostics: %v", p.Diagnostics())
	return Eval(prog, environment.New())
}

func TestEval_IntegerLiterals(t *testing.T) {
	assert.Equal(t, int64(5), testEval(t, "5").(*object.Integer).Value)
	assert.Equal(t, int64(10), testEval(t, "10").(*object.Integer).Value)
}

func TestEval_EmptyInputIsNull(t *testing.T) {
	assert.Same(t, object.NULL, testEval(t, ""))
}

func TestEval_IfElse(t *testing.T) {
	assert.Equal(t, int64(10), testEval(t, "if (1 < 2) { 10 } else { 20 }").(*object.Integer).Value)
	assert.Equal(t, int64(20), testEval(t, "if (1 > 2) { 10 } else { 20 }").(*object.Integer).Value)
}

func TestEval_IfWithoutElseIsNull(t *testing.T) {
	assert.Same(t, object.NULL, testEval(t, "if (1 > 2) { 10 }"))
}

func TestEval_BangOperator(t *testing.T) {
	assert.Equal(t, object.FALSE, testEval(t, "!true"))
	assert.Equal(t, object.TRUE, testEval(t, "!false"))
}

func TestEval_MinusPrefixOperator(t *testing.T) {
	assert.Equal(t, int64(-5), testEval(t, "-5").(*object.Integer).Value)
}

func TestEval_MinusOnBooleanIsError(t *testing.T) {
	result := testEval(t, "-true")
	require.True(t, object.IsError(result))
}

func TestEval_ArithmeticPrecedence(t *testing.T) {
	assert.Equal(t, int64(7), testEval(t, "1 + 2 * 3").(*object.Integer).Value)
	assert.Equal(t, int64(9), testEval(t, "(1 + 2) * 3").(*object.Integer).Value)
}

func TestEval_DivisionByZeroIsError(t *testing.T) {
	result := testEval(t, "1 / 0")
	require.True(t, object.IsError(result))
}

func TestEval_ReturnShortCircuitsProgram(t *testing.T) {
	assert.Equal(t, int64(3), testEval(t, "return 3; 4").(*object.Integer).Value)
}

func TestEval_ReturnPropagatesThroughNestedBlocks(t *testing.T) {
	input := "if (true) { if (true) { return 10 }\nreturn 1 }"
	assert.Equal(t, int64(10), testEval(t, input).(*object.Integer).Value)
}

func TestEval_LetInitializerErrorsPropagate(t *testing.T) {
	result := testEval(t, "let x -true")
	require.True(t, object.IsError(result))
}

func TestEval_LetDoesNotBindIntoEnvironment(t *testing.T) {
	env := environment.New()
	p := parser.New(lexer.New("let x 5"))
	prog := p.ParseProgram()
	require.Empty(t, p.Diagnostics())

	Eval(prog, env)

	_, ok := env.Get("x")
	assert.False(t, ok, "let is a documented no-op: it must not install a binding")
}

func TestEval_UnknownIdentifierIsError(t *testing.T) {
	result := testEval(t, "foo")
	require.True(t, object.IsError(result))
}

func TestEval_MixedBooleanInfixCoercesOtherSide(t *testing.T) {
	assert.Equal(t, object.TRUE, testEval(t, "true == 1"))
	assert.Equal(t, object.FALSE, testEval(t, "true == 0"))
}

func TestEval_CallExpressionPlaceholderUnwrapsCallee(t *testing.T) {
	assert.Equal(t, int64(1), testEval(t, "${ 1 2 }").(*object.Integer).Value)
}

func TestEval_TruthinessIsTotal(t *testing.T) {
	assert.True(t, isTruthy(&object.Integer{Value: 1}))
	assert.False(t, isTruthy(&object.Integer{Value: 0}))
	assert.True(t, isTruthy(object.TRUE))
	assert.False(t, isTruthy(object.FALSE))
	assert.False(t, isTruthy(object.NULL))
}
