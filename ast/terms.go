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

package ast

import (
	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

// Term is the base for all surface terms.
type Term interface {
	// Name of the syntax-type of the term.
	ExprName() string
}

var (
	_ Term = (*Var)(nil)
	_ Term = (*Decname)(nil)
	_ Term = (*Ann)(nil)
	_ Term = (*Let)(nil)
	_ Term = (*Lam)(nil)
	_ Term = (*App)(nil)
	_ Term = (*Con)(nil)
	_ Term = (*Case)(nil)
	_ Term = (*Success)(nil)
	_ Term = (*Failure)(nil)
	_ Term = (*Bind)(nil)
	_ Term = (*Builtin)(nil)
	_ Term = (*Lit)(nil)
)

// Scope binds a list of names within a term. Occurrences of the i'th name within Body
// are represented as types.BoundVar{Depth: d, Index: i}, where d counts the scopes
// between the occurrence and this scope.
type Scope struct {
	Names []string
	Body  Term
}

// Variable: free, bound by an enclosing scope, or (never in well-formed input) a metavariable
type Var struct {
	Var types.Variable
}

// "Var"
func (e *Var) ExprName() string { return "Var" }

// Reference to a top-level definition
type Decname struct {
	Name string
}

// "Decname"
func (e *Decname) ExprName() string { return "Decname" }

// Type annotation: `(m : A)`
type Ann struct {
	Term Term
	Type types.Type
}

// "Ann"
func (e *Ann) ExprName() string { return "Ann" }

// Annotated let-binding: `let x : A = m in n`
type Let struct {
	Type  types.Type
	Value Term
	// Body binds a single name.
	Body Scope
}

// "Let"
func (e *Let) ExprName() string { return "Let" }

// Abstraction: `\x -> m`
type Lam struct {
	// Body binds a single name.
	Body Scope
}

// "Lam"
func (e *Lam) ExprName() string { return "Lam" }

// Application: `f a`
type App struct {
	Func Term
	Arg  Term
}

// "App"
func (e *App) ExprName() string { return "App" }

// Constructor application: `Cons(m, n)`
type Con struct {
	Name string
	Args []Term
}

// "Con"
func (e *Con) ExprName() string { return "Con" }

// Pattern-matching case expression over one or more scrutinees:
//
//  case m1, m2 of {
//      P1, Q1 -> n1
//    | P2, Q2 -> n2
//  }
type Case struct {
	Scrutinees []Term
	Clauses    []*Clause
}

// "Case"
func (e *Case) ExprName() string { return "Case" }

// Clause within Case. The clause is a single scope binding Names within every pattern
// and within the body; there is one pattern per scrutinee.
type Clause struct {
	Names    []string
	Patterns []Pattern
	Body     Term
}

// Successful computation: `success m`
type Success struct {
	Term Term
}

// "Success"
func (e *Success) ExprName() string { return "Success" }

// Failed computation: `failure`
type Failure struct{}

// "Failure"
func (e *Failure) ExprName() string { return "Failure" }

// Monadic bind: `do x <- m; n`
type Bind struct {
	Term Term
	// Body binds a single name.
	Body Scope
}

// "Bind"
func (e *Bind) ExprName() string { return "Bind" }

// Builtin application: `!addInt(m, n)`
type Builtin struct {
	Name string
	Args []Term
}

// "Builtin"
func (e *Builtin) ExprName() string { return "Builtin" }

// Primitive literal
type Lit struct {
	Prim core.Prim
}

// Returns the printed literal value.
func (e *Lit) ExprName() string { return core.PrimString(e.Prim) }

// Pattern is the base for all patterns.
type Pattern interface {
	PatternName() string
}

var (
	_ Pattern = (*PatVar)(nil)
	_ Pattern = (*PatCon)(nil)
)

// Variable pattern
type PatVar struct {
	Var types.Variable
}

// "PatVar"
func (p *PatVar) PatternName() string { return "PatVar" }

// Constructor pattern: `Cons(x, xs)`
type PatCon struct {
	Name string
	Args []Pattern
}

// "PatCon"
func (p *PatCon) PatternName() string { return "PatCon" }
