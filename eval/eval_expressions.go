/*
File   : dang/eval/eval_expressions.go
Package: eval

Prefix, infix, and conditional expression evaluation. Split from eval.go
the way the teacher splits its dispatcher (eval/evaluator_expressions.go)
from its per-construct helpers (eval/eval_statements.go).
*/
package eval

import (
	"github.com/dang-lang/dang/ast"
	"github.com/dang-lang/dang/environment"
	"github.com/dang-lang/dang/object"
)

// isTruthy is the total function mapping every Value to a bool: Null is
// false, Boolean passes through, and any other value (here, only
// Integer) is truthy exactly when it is nonzero.
func isTruthy(obj object.Object) bool {
	switch obj := obj.(type) {
	case *object.Null:
		return false
	case *object.Boolean:
		return obj.Value
	case *object.Integer:
		return obj.Value != 0
	default:
		return true
	}
}

func evalPrefixExpression(node *ast.PrefixExpression, env *environment.Environment) object.Object {
	right := Eval(node.Right, env)
	if object.IsError(right) {
		return right
	}

	switch node.Operator {
	case "!":
		return object.NativeBool(!isTruthy(right))
	case "-":
		return evalMinusPrefixExpression(right)
	default:
		return newError("unimplemented prefix operator %q", node.Operator)
	}
}

func evalMinusPrefixExpression(right object.Object) object.Object {
	intVal, ok := right.(*object.Integer)
	if !ok {
		return newError("'-' does not support operand of type %s", right.Type())
	}
	return &object.Integer{Value: -intVal.Value}
}

func evalInfixExpression(node *ast.InfixExpression, env *environment.Environment) object.Object {
	left := Eval(node.Left, env)
	if object.IsError(left) {
		return left
	}
	right := Eval(node.Right, env)
	if object.IsError(right) {
		return right
	}

	leftInt, leftIsInt := left.(*object.Integer)
	rightInt, rightIsInt := right.(*object.Integer)
	if leftIsInt && rightIsInt {
		return evalIntegerInfixExpression(node.Operator, leftInt, rightInt)
	}

	leftBool, leftIsBool := left.(*object.Boolean)
	rightBool, rightIsBool := right.(*object.Boolean)
	if leftIsBool && rightIsBool {
		return evalBooleanInfixExpression(node.Operator, leftBool, rightBool)
	}

	// Mixed Boolean/other: coerce the non-Boolean side to Boolean via
	// truthiness, then apply boolean comparison.
	if leftIsBool {
		return evalBooleanInfixExpression(node.Operator, leftBool, object.NativeBool(isTruthy(right)))
	}
	if rightIsBool {
		return evalBooleanInfixExpression(node.Operator, object.NativeBool(isTruthy(left)), rightBool)
	}

	return newError("unimplemented infix for %q between %s and %s", node.Operator, left.Type(), right.Type())
}

func evalIntegerInfixExpression(operator string, left, right *object.Integer) object.Object {
	switch operator {
	case "+":
		return &object.Integer{Value: left.Value + right.Value}
	case "-":
		return &object.Integer{Value: left.Value - right.Value}
	case "*":
		return &object.Integer{Value: left.Value * right.Value}
	case "/":
		if right.Value == 0 {
			return newError("division by zero")
		}
		return &object.Integer{Value: left.Value / right.Value}
	case "<":
		return object.NativeBool(left.Value < right.Value)
	case ">":
		return object.NativeBool(left.Value > right.Value)
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return newError("unimplemented infix operator %q for INTEGER", operator)
	}
}

func evalBooleanInfixExpression(operator string, left, right *object.Boolean) object.Object {
	switch operator {
	case "==":
		return object.NativeBool(left.Value == right.Value)
	case "!=":
		return object.NativeBool(left.Value != right.Value)
	default:
		return newError("unimplemented infix operator %q for BOOLEAN", operator)
	}
}

func evalIfExpression(node *ast.IfExpression, env *environment.Environment) object.Object {
	condition := Eval(node.Condition, env)
	if object.IsError(condition) {
		return condition
	}

	if isTruthy(condition) {
		return Eval(node.Consequence, env)
	}
	if node.Alternative != nil {
		return Eval(node.Alternative, env)
	}
	return object.NULL
}
