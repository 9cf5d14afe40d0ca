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
	"testing"

	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

func TestAbstractInstantiate(t *testing.T) {
	x, y, z := types.NewFreeVar("x", 0), types.NewFreeVar("y", 1), types.NewFreeVar("z", 2)
	// \x -> \y -> f x y z
	body := &App{Func: &App{Func: &Var{Var: x}, Arg: &Var{Var: y}}, Arg: &Var{Var: z}}
	inner := Abstract([]types.FreeVar{y}, body)
	outer := Abstract([]types.FreeVar{x}, &Lam{Body: inner})

	lam, ok := outer.Body.(*Lam)
	if !ok {
		t.Fatalf("expected a lambda body")
	}
	app := lam.Body.Body.(*App)
	if v := app.Func.(*App).Func.(*Var).Var; v != (types.BoundVar{Depth: 1, Index: 0}) {
		t.Fatalf("expected x to refer to the outer scope, found %s", v.VarName())
	}
	if v := app.Func.(*App).Arg.(*Var).Var; v != (types.BoundVar{Depth: 0, Index: 0}) {
		t.Fatalf("expected y to refer to the inner scope, found %s", v.VarName())
	}
	if s := ExprString(&Lam{Body: outer}); s != "\\x -> \\y -> x y z" {
		t.Fatalf("expr: %s", s)
	}

	w := types.NewFreeVar("w", 3)
	opened := Instantiate(outer, []types.Variable{w})
	if s := ExprString(opened); s != "\\y -> w y z" {
		t.Fatalf("opened: %s", s)
	}
	if v := opened.(*Lam).Body.Body.(*App).Func.(*App).Func.(*Var).Var; v != types.Variable(w) {
		t.Fatalf("expected w, found %s", v.VarName())
	}
}

func TestClauseScope(t *testing.T) {
	x, xs := types.NewFreeVar("x", 0), types.NewFreeVar("xs", 1)
	c := AbstractClause([]types.FreeVar{x, xs},
		[]Pattern{&PatCon{Name: "Cons", Args: []Pattern{&PatVar{Var: x}, &PatVar{Var: xs}}}},
		&Con{Name: "Pair", Args: []Term{&Var{Var: xs}, &Var{Var: x}}})
	if v := c.Patterns[0].(*PatCon).Args[1].(*PatVar).Var; v != (types.BoundVar{Depth: 0, Index: 1}) {
		t.Fatalf("expected xs to be bound at index 1, found %s", v.VarName())
	}
	m := &Case{Scrutinees: []Term{&Lit{Prim: core.PrimInt(1)}}, Clauses: []*Clause{c}}
	if s := ExprString(m); s != "case 1 of { Cons(x, xs) -> Pair(xs, x) }" {
		t.Fatalf("expr: %s", s)
	}

	a, b := types.NewFreeVar("a", 2), types.NewFreeVar("b", 3)
	patterns, body := InstantiateClause(c, []types.Variable{a, b})
	if s := PatternString(patterns[0]); s != "Cons(a, b)" {
		t.Fatalf("pattern: %s", s)
	}
	if s := ExprString(body); s != "Pair(b, a)" {
		t.Fatalf("body: %s", s)
	}
}

func TestExprString(t *testing.T) {
	x := types.NewFreeVar("x", 0)
	m := &Let{
		Type:  types.NewTyCon(types.IntName),
		Value: &Builtin{Name: "blocknum"},
		Body: Abstract([]types.FreeVar{x}, &Bind{
			Term: &Ann{Term: &Success{Term: &Var{Var: x}}, Type: &types.Comp{Type: types.NewTyCon(types.IntName)}},
			Body: Abstract([]types.FreeVar{x}, &Success{Term: &Decname{Name: "one"}}),
		}),
	}
	expected := "let x : Int = !blocknum() in do x <- (success x : Comp[Int]); success @one"
	if s := ExprString(m); s != expected {
		t.Fatalf("expected %s, found %s", expected, s)
	}
}
