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

// core is the explicit output calculus of elaboration. Core terms carry no type
// information; every binder is resolved to a plain name.
package core

import (
	"github.com/wdamron/elab/types"
)

// Term is the base for all core terms.
type Term interface {
	// Name of the syntax-type of the term.
	TermName() string
}

var (
	_ Term = (*Var)(nil)
	_ Term = (*Decname)(nil)
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

func (e *Var) TermName() string     { return "Var" }
func (e *Decname) TermName() string { return "Decname" }
func (e *Lam) TermName() string     { return "Lam" }
func (e *App) TermName() string     { return "App" }
func (e *Con) TermName() string     { return "Con" }
func (e *Case) TermName() string    { return "Case" }
func (e *Success) TermName() string { return "Success" }
func (e *Failure) TermName() string { return "Failure" }
func (e *Bind) TermName() string    { return "Bind" }
func (e *Builtin) TermName() string { return "Builtin" }
func (e *Lit) TermName() string     { return "Lit" }

// Variable
type Var struct {
	Name string
}

// Reference to a top-level definition
type Decname struct {
	Name string
}

// Abstraction: `(lam x M)`
type Lam struct {
	Name string
	Body Term
}

// Application: `[ M N ]`
type App struct {
	Func Term
	Arg  Term
}

// Constructed data: `(con Cons M N)`
type Con struct {
	Name string
	Args []Term
}

// Case analysis over one or more scrutinees
type Case struct {
	Scrutinees []Term
	Clauses    []Clause
}

// Clause within Case: one pattern per scrutinee
type Clause struct {
	Patterns []Pattern
	Body     Term
}

// Successful computation
type Success struct {
	Term Term
}

// Failed computation
type Failure struct{}

// Monadic bind: `(bind M x N)`
type Bind struct {
	Term Term
	Name string
	Body Term
}

// Builtin application
type Builtin struct {
	Name string
	Args []Term
}

// Primitive literal
type Lit struct {
	Prim Prim
}

// Pattern is the base for all core patterns.
type Pattern interface {
	PatternName() string
}

func (p *PatVar) PatternName() string { return "PatVar" }
func (p *PatCon) PatternName() string { return "PatCon" }

// Variable pattern
type PatVar struct {
	Name string
}

// Constructor pattern
type PatCon struct {
	Name string
	Args []Pattern
}

// Prim is a primitive value.
type Prim interface {
	// Name of the primitive type-constructor of the value.
	PrimType() string
}

type (
	PrimInt        int64
	PrimFloat      float64
	PrimByteString []byte
)

func (PrimInt) PrimType() string        { return types.IntName }
func (PrimFloat) PrimType() string      { return types.FloatName }
func (PrimByteString) PrimType() string { return types.ByteStringName }
