/*
File   : dang/object/object_test.go
Package: object
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteger_Inspect(t *testing.T) {
	i := &Integer{Value: 42}
	assert.Equal(t, INTEGER_OBJ, i.Type())
	assert.Equal(t, "42", i.Inspect())
}

func TestBoolean_Singletons(t *testing.T) {
	assert.Same(t, TRUE, NativeBool(true))
	assert.Same(t, FALSE, NativeBool(false))
	assert.Equal(t, "true", TRUE.Inspect())
	assert.Equal(t, "false", FALSE.Inspect())
}

func TestNull_Inspect(t *testing.T) {
	assert.Equal(t, NULL_OBJ, NULL.Type())
	assert.Equal(t, "null", NULL.Inspect())
}

func TestReturnValue_Inspect(t *testing.T) {
	rv := &ReturnValue{Value: &Integer{Value: 7}}
	assert.Equal(t, RETURN_OBJ, rv.Type())
	assert.Equal(t, "7", rv.Inspect())
}

func TestError_Inspect(t *testing.T) {
	err := &Error{Message: "type mismatch: INTEGER + BOOLEAN"}
	assert.Equal(t, ERROR_OBJ, err.Type())
	assert.Equal(t, "ERROR: type mismatch: INTEGER + BOOLEAN", err.Inspect())
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(&Error{Message: "boom"}))
	assert.False(t, IsError(&Integer{Value: 1}))
	assert.False(t, IsError(nil))
}
