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
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/core"
	. "github.com/wdamron/elab/construct"
	"github.com/wdamron/elab/types"
)

func TestElaborateProgram(t *testing.T) {
	env := NewStandardEnv()
	ctx := NewContext()

	a, b := env.NewVar("a"), env.NewVar("b")
	n, x, xs := env.NewVar("n"), env.NewVar("x"), env.NewVar("xs")
	tTree := func(t types.Type) types.Type { return TCon("Tree", t) }
	tForest := func(t types.Type) types.Type { return TCon("Forest", t) }

	prog := &Program{
		Data: []DataDecl{
			// Trees and forests refer to each other.
			{Name: "Tree", Params: []types.FreeVar{a}, Cons: []ConDecl{
				{Name: "Node", Args: []types.Type{TVar(a), tForest(TVar(a))}},
			}},
			{Name: "Forest", Params: []types.FreeVar{b}, Cons: []ConDecl{
				{Name: "Empty"},
				{Name: "Grow", Args: []types.Type{tTree(TVar(b)), tForest(TVar(b))}},
			}},
		},
		Terms: []TermDecl{
			// size refers to count, which is declared after it.
			{Name: "size", Type: TFun(tTree(tInt), tInt), Term: Lam(n,
				Case([]ast.Term{Var(n)}, Clause([]types.FreeVar{x, xs},
					[]ast.Pattern{PCon("Node", PVar(x), PVar(xs))},
					Builtin("addInt", Int(1), App(Decname("count"), Var(xs))))))},
			{Name: "count", Type: TFun(tForest(tInt), tInt), Term: Lam(n,
				Case([]ast.Term{Var(n)},
					Clause(nil, []ast.Pattern{PCon("Empty")}, Int(0)),
					Clause([]types.FreeVar{x, xs}, []ast.Pattern{PCon("Grow", PVar(x), PVar(xs))},
						Builtin("addInt", App(Decname("size"), Var(x)), App(Decname("count"), Var(xs))))))},
			{Name: "leaf", Type: tTree(tInt), Term: Con("Node", Int(7), Con("Empty"))},
		},
	}

	penv, err := ctx.ElaborateProgram(prog, env)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.Signature.TyCons["Tree"]; ok {
		t.Fatalf("expected the original signature to be unmodified")
	}
	if env.Definitions.Len() != 0 {
		t.Fatalf("expected the original definitions to be unmodified")
	}
	if s := types.ConSigString(penv.Signature.Cons["Grow"]); s != "forall b. (Tree[b], Forest[b]) -> Forest[b]" {
		t.Fatalf("Grow: %s", s)
	}

	expected := map[string]string{
		"size":  "(lam n (case (n) (cl ((con Node x xs)) (builtin addInt 1 [ (decname count) xs ]))))",
		"count": "(lam n (case (n) (cl ((con Empty)) 0) (cl ((con Grow x xs)) (builtin addInt [ (decname size) x ] [ (decname count) xs ]))))",
		"leaf":  "(con Node 7 (con Empty))",
	}
	found := make(map[string]string)
	penv.Definitions.Range(func(name string, def Definition) bool {
		found[name] = core.TermString(def.Term)
		return true
	})
	if diff := pretty.Compare(expected, found); diff != "" {
		t.Fatalf("unexpected definitions (-expected +found):\n%s", diff)
	}

	// Later programs may use the elaborated definitions.
	c, ty, err := ctx.Synth(App(Decname("size"), Decname("leaf")), penv)
	if err != nil {
		t.Fatal(err)
	}
	if core.TermString(c) != "[ (decname size) (decname leaf) ]" || types.TypeString(ty) != "Int" {
		t.Fatalf("unexpected result: %s : %s", core.TermString(c), types.TypeString(ty))
	}
}

func TestElaborateProgramErrors(t *testing.T) {
	env := NewStandardEnv()
	ctx := NewContext()
	a := env.NewVar("a")

	_, err := ctx.ElaborateProgram(&Program{Data: []DataDecl{{Name: "Bool"}}}, env)
	expectKind(t, err, DuplicateDeclaration)

	_, err = ctx.ElaborateProgram(&Program{Data: []DataDecl{
		{Name: "Box", Cons: []ConDecl{{Name: "Box", Args: []types.Type{TVar(a)}}}},
	}}, env)
	expectKind(t, err, UnboundTypeVariable)
	if !strings.HasPrefix(err.Error(), "Constructor Box: ") {
		t.Fatalf("expected the declaration to be named: %v", err)
	}

	_, err = ctx.ElaborateProgram(&Program{Data: []DataDecl{
		{Name: "Box", Params: []types.FreeVar{a}, Cons: []ConDecl{{Name: "True", Args: []types.Type{TVar(a)}}}},
	}}, env)
	expectKind(t, err, DuplicateDeclaration)

	_, err = ctx.ElaborateProgram(&Program{Terms: []TermDecl{
		{Name: "one", Type: tInt, Term: Int(1)},
		{Name: "one", Type: tInt, Term: Int(1)},
	}}, env)
	expectKind(t, err, DuplicateDeclaration)

	_, err = ctx.ElaborateProgram(&Program{Terms: []TermDecl{
		{Name: "one", Type: tInt, Term: Con("True")},
	}}, env)
	expectKind(t, err, UnificationFailure)
	if !strings.HasPrefix(err.Error(), "Definition one: ") {
		t.Fatalf("expected the declaration to be named: %v", err)
	}
}

func TestValidate(t *testing.T) {
	env := listEnv()
	ctx := NewContext()
	if err := ctx.Validate(env); err != nil {
		t.Fatal(err)
	}

	env.Signature = env.Signature.Clone()
	a := env.NewVar("a")
	stray := env.NewVar("stray")
	env.Signature.Cons["Bad"] = ConSig([]types.FreeVar{a}, []types.Type{TVar(stray)}, tList(TVar(a)))
	env.Signature.Cons["Fn"] = ConSig(nil, nil, TFun(tInt, tInt))
	env.Signature.Builtins["lengthOf"] = ConSig([]types.FreeVar{a}, []types.Type{TCon("Array", TVar(a))}, tInt)
	env.Define("broken", &core.Decname{Name: "broken"}, TCon("List"))

	err := ctx.Validate(env)
	if err == nil {
		t.Fatalf("expected validation to fail")
	}
	msg := err.Error()
	for _, part := range []string{
		"Constructor Bad: Type variable stray not found",
		"Constructor Fn must return a type constructor",
		"Builtin lengthOf: Type constructor Array not found",
		"Definition broken: Type constructor List expects 1 arguments, found 0",
	} {
		if !strings.Contains(msg, part) {
			t.Fatalf("expected %q in validation errors:\n%s", part, msg)
		}
	}
	if ctx.Error() != err {
		t.Fatalf("expected the context to record the validation error")
	}
	// Problems are reported in name order; the kind is taken from the first.
	if KindOf(err) != UnboundTypeVariable {
		t.Fatalf("expected %s, found %s", UnboundTypeVariable, KindOf(err))
	}
}
