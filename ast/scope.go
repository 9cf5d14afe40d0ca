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
	"github.com/wdamron/elab/types"
)

// Instantiate substitutes vs for the names bound by sc. Bound variables which refer to
// scopes enclosing sc are shifted to account for the removed scope.
func Instantiate(sc Scope, vs []types.Variable) Term {
	if len(vs) != len(sc.Names) {
		panic("scope instantiated with the wrong number of variables")
	}
	return mapVars(0, sc.Body, instantiateVar(vs))
}

// InstantiateClause substitutes vs for the names bound by a clause, within its patterns
// and its body.
func InstantiateClause(c *Clause, vs []types.Variable) ([]Pattern, Term) {
	if len(vs) != len(c.Names) {
		panic("clause instantiated with the wrong number of variables")
	}
	f := instantiateVar(vs)
	patterns := make([]Pattern, len(c.Patterns))
	for i, p := range c.Patterns {
		patterns[i] = mapPatternVars(0, p, f)
	}
	return patterns, mapVars(0, c.Body, f)
}

// Abstract closes m over vs, producing a scope which binds the names of vs.
func Abstract(vs []types.FreeVar, m Term) Scope {
	return Scope{Names: varNames(vs), Body: mapVars(0, m, abstractVar(vs))}
}

// AbstractClause closes patterns and body over vs, producing a clause which binds the
// names of vs.
func AbstractClause(vs []types.FreeVar, patterns []Pattern, body Term) *Clause {
	f := abstractVar(vs)
	abstracted := make([]Pattern, len(patterns))
	for i, p := range patterns {
		abstracted[i] = mapPatternVars(0, p, f)
	}
	return &Clause{Names: varNames(vs), Patterns: abstracted, Body: mapVars(0, body, f)}
}

func varNames(vs []types.FreeVar) []string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = v.Name
	}
	return names
}

type varMapper func(depth int, v types.Variable) types.Variable

func instantiateVar(vs []types.Variable) varMapper {
	return func(depth int, v types.Variable) types.Variable {
		bv, ok := v.(types.BoundVar)
		if !ok {
			return v
		}
		switch {
		case bv.Depth == depth:
			return vs[bv.Index]
		case bv.Depth > depth:
			return types.BoundVar{Depth: bv.Depth - 1, Index: bv.Index}
		}
		return v
	}
}

func abstractVar(vs []types.FreeVar) varMapper {
	return func(depth int, v types.Variable) types.Variable {
		switch v := v.(type) {
		case types.FreeVar:
			for i, w := range vs {
				if v.Same(w) {
					return types.BoundVar{Depth: depth, Index: i}
				}
			}
		case types.BoundVar:
			if v.Depth >= depth {
				return types.BoundVar{Depth: v.Depth + 1, Index: v.Index}
			}
		}
		return v
	}
}

func mapScope(depth int, sc Scope, f varMapper) Scope {
	return Scope{Names: sc.Names, Body: mapVars(depth+1, sc.Body, f)}
}

func mapTerms(depth int, ms []Term, f varMapper) []Term {
	if ms == nil {
		return nil
	}
	mapped := make([]Term, len(ms))
	for i, m := range ms {
		mapped[i] = mapVars(depth, m, f)
	}
	return mapped
}

func mapVars(depth int, e Term, f varMapper) Term {
	switch e := e.(type) {
	case *Var:
		return &Var{Var: f(depth, e.Var)}

	case *Decname, *Failure, *Lit:
		return e

	case *Ann:
		return &Ann{Term: mapVars(depth, e.Term, f), Type: e.Type}

	case *Let:
		return &Let{Type: e.Type, Value: mapVars(depth, e.Value, f), Body: mapScope(depth, e.Body, f)}

	case *Lam:
		return &Lam{Body: mapScope(depth, e.Body, f)}

	case *App:
		return &App{Func: mapVars(depth, e.Func, f), Arg: mapVars(depth, e.Arg, f)}

	case *Con:
		return &Con{Name: e.Name, Args: mapTerms(depth, e.Args, f)}

	case *Case:
		clauses := make([]*Clause, len(e.Clauses))
		for i, c := range e.Clauses {
			patterns := make([]Pattern, len(c.Patterns))
			for j, p := range c.Patterns {
				patterns[j] = mapPatternVars(depth+1, p, f)
			}
			clauses[i] = &Clause{Names: c.Names, Patterns: patterns, Body: mapVars(depth+1, c.Body, f)}
		}
		return &Case{Scrutinees: mapTerms(depth, e.Scrutinees, f), Clauses: clauses}

	case *Success:
		return &Success{Term: mapVars(depth, e.Term, f)}

	case *Bind:
		return &Bind{Term: mapVars(depth, e.Term, f), Body: mapScope(depth, e.Body, f)}

	case *Builtin:
		return &Builtin{Name: e.Name, Args: mapTerms(depth, e.Args, f)}
	}
	panic("unknown term type: " + e.ExprName())
}

func mapPatternVars(depth int, p Pattern, f varMapper) Pattern {
	switch p := p.(type) {
	case *PatVar:
		return &PatVar{Var: f(depth, p.Var)}

	case *PatCon:
		args := make([]Pattern, len(p.Args))
		for i, arg := range p.Args {
			args[i] = mapPatternVars(depth, arg, f)
		}
		return &PatCon{Name: p.Name, Args: args}
	}
	panic("unknown pattern type: " + p.PatternName())
}
