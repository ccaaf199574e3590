/*
File   : dang/eval/eval.go
Package: eval

Package eval walks an *ast.Program (or any ast.Node reachable from one)
and produces an object.Object. Eval is pure: it never mutates global
state, and every scope it reads from or writes to is threaded in
explicitly as an *environment.Environment argument.

Grounded on the teacher's eval/evaluator_expressions.go Eval method: a
single type switch over every node kind the AST can produce, dispatching
each to its own handler. This package's switch covers every node kind
package ast defines except FunctionLiteral; any node without a case,
FunctionLiteral included, yields an "unimplemented node kind" error.
*/
package eval

import (
	"fmt"

	"github.com/dang-lang/dang/ast"
	"github.com/dang-lang/dang/environment"
	"github.com/dang-lang/dang/object"
)

// Eval evaluates node in env and returns the resulting Object. A
// *object.Error result means evaluation failed; callers should check
// object.IsError before using the result further.
func Eval(node ast.Node, env *environment.Environment) object.Object {
	switch n := node.(type) {
	case *ast.Program:
		return evalProgram(n, env)
	case *ast.BlockStatement:
		return evalBlockStatement(n, env)
	case *ast.ExpressionStatement:
		if n.Expression == nil {
			return object.NULL
		}
		return Eval(n.Expression, env)
	case *ast.LetStatement:
		return evalLetStatement(n, env)
	case *ast.ReturnStatement:
		return evalReturnStatement(n, env)

	case *ast.IntegerLiteral:
		return &object.Integer{Value: n.Value}
	case *ast.BooleanLiteral:
		return object.NativeBool(n.Value)
	case *ast.Identifier:
		return evalIdentifier(n, env)

	case *ast.PrefixExpression:
		return evalPrefixExpression(n, env)
	case *ast.InfixExpression:
		return evalInfixExpression(n, env)
	case *ast.IfExpression:
		return evalIfExpression(n, env)
	case *ast.CallExpression:
		return evalCallExpression(n, env)
	}

	return newError("unimplemented node kind %T", node)
}

func newError(format string, args ...interface{}) *object.Error {
	return &object.Error{Message: fmt.Sprintf(format, args...)}
}

// evalProgram evaluates each top-level statement in order. A Return
// marker produced by any statement unwinds evaluation immediately,
// unwrapped to the value it carries — there is no outer call boundary at
// the program level to unwrap it at instead.
func evalProgram(prog *ast.Program, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range prog.Statements {
		result = Eval(stmt, env)

		switch result := result.(type) {
		case *object.ReturnValue:
			return result.Value
		case *object.Error:
			return result
		}
	}

	return result
}

// evalBlockStatement evaluates each statement in order, but — unlike
// evalProgram — leaves a Return marker wrapped when propagating it, so
// that an enclosing call boundary (or evalProgram, for a bare top-level
// block) is what performs the unwrap.
func evalBlockStatement(block *ast.BlockStatement, env *environment.Environment) object.Object {
	var result object.Object = object.NULL

	for _, stmt := range block.Statements {
		result = Eval(stmt, env)

		if result != nil {
			kind := result.Type()
			if kind == object.RETURN_OBJ || kind == object.ERROR_OBJ {
				return result
			}
		}
	}

	return result
}

// evalLetStatement evaluates the initializer, if any, purely for its
// side effect of surfacing errors — the binding itself is never installed
// into env. This is deliberate, not an omission.
func evalLetStatement(stmt *ast.LetStatement, env *environment.Environment) object.Object {
	if stmt.Value == nil {
		return object.NULL
	}
	val := Eval(stmt.Value, env)
	if object.IsError(val) {
		return val
	}
	return object.NULL
}

func evalReturnStatement(stmt *ast.ReturnStatement, env *environment.Environment) object.Object {
	if stmt.ReturnValue == nil {
		return &object.ReturnValue{Value: object.NULL}
	}
	val := Eval(stmt.ReturnValue, env)
	if object.IsError(val) {
		return val
	}
	return &object.ReturnValue{Value: val}
}

func evalIdentifier(node *ast.Identifier, env *environment.Environment) object.Object {
	if val, ok := env.Get(node.Value); ok {
		return val
	}
	return newError("identifier not found: %s", node.Value)
}

// evalCallExpression is a placeholder: it evaluates the callee position
// and returns its value unwrapped, ignoring arguments entirely. Full
// call semantics — parameter binding, closure capture, return-unwrap at
// the call boundary — are unspecified; see DESIGN.md.
func evalCallExpression(node *ast.CallExpression, env *environment.Environment) object.Object {
	if node.Function == nil {
		return object.NULL
	}
	return Eval(node.Function, env)
}
