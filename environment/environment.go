/*
File   : dang/environment/environment.go
Package: environment

Package environment implements Dang's lexical scoping: a chain of
string-to-Object maps, each linking to the scope it was created inside of.
Lookup walks outward from the innermost scope until a binding is found or
the chain is exhausted.

Grounded on the teacher's scope/scope.go, trimmed to a single binding
kind: go-mix's Scope separately tracks Consts, LetVars, and LetTypes for
its var/const distinction, none of which this language has (see
DESIGN.md's Open Question on let-as-no-op).
*/
package environment

import "github.com/dang-lang/dang/object"

// Environment is a lexical scope: a set of bindings plus a link to the
// enclosing scope it was created inside of, if any.
type Environment struct {
	store map[string]object.Object
	outer *Environment
}

// New creates an empty, top-level Environment with no enclosing scope.
func New() *Environment {
	return &Environment{store: make(map[string]object.Object)}
}

// NewEnclosed creates an Environment nested inside outer. Lookups that
// miss in the new scope fall through to outer, and its ancestors.
func NewEnclosed(outer *Environment) *Environment {
	env := New()
	env.outer = outer
	return env
}

// Get looks up name in this scope, then each enclosing scope in turn. The
// second return value reports whether a binding was found anywhere in
// the chain.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.outer != nil {
		return e.outer.Get(name)
	}
	return obj, ok
}

// Set binds name to val in this scope and returns val. Set never reaches
// into an enclosing scope: a binding always lands in the scope it was
// made in.
func (e *Environment) Set(name string, val object.Object) object.Object {
	e.store[name] = val
	return val
}
