// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package elab

import (
	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

// Env is an elaboration environment: the signature, the top-level definitions, and the free
// variables and type variables which are in scope for the terms being elaborated.
//
// Elaboration does not modify the environment; an environment may be shared across threads
// if each thread uses its own Context.
type Env struct {
	Signature   *Signature
	Definitions Definitions
	// Types of the free variables in scope
	Vars types.VarMap
	// Free type variables in scope
	TyVars types.VarMap
	// Next unused free variable id. Free variables created during elaboration are allocated
	// from this id, so every free variable passed to elaboration must have a smaller id.
	NextVarId int
}

// Create an environment. The new environment will inherit the signature, definitions, and
// variables of the parent, if the parent is not nil. Declarations added to the new environment
// are not visible in the parent.
func NewEnv(parent *Env) *Env {
	if parent == nil {
		return &Env{Signature: NewSignature()}
	}
	env := *parent
	return &env
}

// Create an environment with the standard signature of primitive types and builtins.
func NewStandardEnv() *Env {
	return &Env{Signature: NewStandardSignature()}
}

// Create a free variable with a unique id.
func (e *Env) NewVar(name string) types.FreeVar {
	v := types.NewFreeVar(name, e.NextVarId)
	e.NextVarId++
	return v
}

// Declare the type of a free variable.
func (e *Env) Declare(v types.FreeVar, t types.Type) { e.Vars = e.Vars.Set(v, t) }

// Declare a free type variable.
func (e *Env) DeclareTyVar(v types.FreeVar) { e.TyVars = e.TyVars.Set(v, nil) }

// Add an elaborated top-level definition.
func (e *Env) Define(name string, term core.Term, t types.Type) {
	e.Definitions = e.Definitions.Set(name, Definition{Term: term, Type: t})
}
