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

package types

import "strconv"

// Variable is a variable occurrence within a type, term, or pattern. A variable is
// either free (FreeVar), bound by an enclosing scope (BoundVar), or a placeholder for
// an unknown type (MetaVar).
type Variable interface {
	VarName() string
	isVariable()
}

var (
	_ Variable = FreeVar{}
	_ Variable = BoundVar{}
	_ Variable = MetaVar(0)
)

// Free variable
//
// Free variables are compared by Id; the name is only a display hint.
type FreeVar struct {
	Name string
	Id   int
}

// Create a free variable with the given display name and unique id.
func NewFreeVar(name string, id int) FreeVar { return FreeVar{Name: name, Id: id} }

func (v FreeVar) VarName() string { return v.Name }

// Same returns true if v and w are the same variable.
func (v FreeVar) Same(w FreeVar) bool { return v.Id == w.Id }

// Bound variable: a de Bruijn reference to an enclosing scope. Depth counts the scopes
// between the occurrence and its binder (0 is the innermost scope); Index selects one
// of the names bound by that scope.
type BoundVar struct {
	Depth int
	Index int
}

func (v BoundVar) VarName() string {
	return "#" + strconv.Itoa(v.Depth) + "." + strconv.Itoa(v.Index)
}

// Metavariable: a placeholder for a type which is solved during unification.
// Metavariables are allocated in increasing order within an elaboration session.
type MetaVar int

func (m MetaVar) VarName() string { return "?" + strconv.Itoa(int(m)) }

func (FreeVar) isVariable()  {}
func (BoundVar) isVariable() {}
func (MetaVar) isVariable()  {}
