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

package elab_test

import (
	"testing"

	. "github.com/wdamron/elab"
	. "github.com/wdamron/elab/construct"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/types"
)

func benchListEnv() *Env {
	env := NewStandardEnv()
	a := env.NewVar("a")
	list := func(t types.Type) types.Type { return TCon("List", t) }
	env.Signature.TyCons["List"] = types.TyConSig{Arity: 1}
	env.Signature.Cons["Nil"] = ConSig([]types.FreeVar{a}, nil, list(TVar(a)))
	env.Signature.Cons["Cons"] = ConSig([]types.FreeVar{a}, []types.Type{TVar(a), list(TVar(a))}, list(TVar(a)))
	return env
}

func BenchmarkCheckList(b *testing.B) {
	env := benchListEnv()
	ctx := NewContext()

	var m ast.Term = Con("Nil")
	for i := 0; i < 32; i++ {
		m = Con("Cons", Int(int64(i)), m)
	}
	goal := TCon("List", TCon("Int"))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		c, err := ctx.Check(m, goal, env)
		if err != nil || c == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSynthCase(b *testing.B) {
	env := benchListEnv()
	ctx := NewContext()

	a := env.NewVar("a")
	id := env.NewVar("id")
	env.Declare(id, TForall(a, TFun(TVar(a), TVar(a))))
	xs, x, rest := env.NewVar("xs"), env.NewVar("x"), env.NewVar("rest")
	comp := TComp(TCon("Int"))

	m := Ann(Lam(xs,
		Case([]ast.Term{Var(xs)},
			Clause(nil, []ast.Pattern{PCon("Nil")}, Ann(Failure(), comp)),
			Clause([]types.FreeVar{x, rest}, []ast.Pattern{PCon("Cons", PVar(x), PVar(rest))},
				Ann(Bind(Ann(Success(App(Var(id), Var(x))), comp), x, Success(Builtin("addInt", Var(x), Int(1)))), comp)))),
		TFun(TCon("List", TCon("Int")), comp))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		_, t, err := ctx.Synth(m, env)
		if err != nil || t == nil {
			b.Fatal(err)
		}
	}
}
