/*
File   : dang/cmd/dang/main_test.go
Package: main
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_SuccessPrintsResult(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run("1 + 2 * 3", false, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "7")
	assert.Empty(t, stderr.String())
}

func TestRun_ParseErrorExitsNonZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run("let;", false, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "PARSE ERROR")
}

func TestRun_EvalErrorExitsNonZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run("1 / 0", false, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "division by zero")
}

func TestRun_PrintAST(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run("5", true, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "Program")
	assert.Contains(t, stdout.String(), "IntegerLiteral 5")
}

func TestRun_IfElseScenario(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run("if (1 < 2) { 10 } else { 20 }", false, &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "10")
}
