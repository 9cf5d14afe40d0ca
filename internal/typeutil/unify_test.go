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

package typeutil

import (
	"testing"

	"github.com/wdamron/elab/types"
)

var (
	tInt  = types.NewTyCon("Int")
	tBool = types.NewTyCon("Bool")
)

func list(t types.Type) types.Type { return types.NewTyCon("List", t) }

func TestUnifySolvesMetas(t *testing.T) {
	var ctx CommonContext
	ctx.Reset(0)
	a, b := ctx.NewMeta(), ctx.NewMeta()
	if err := ctx.Unify(&types.Fun{Arg: a, Ret: list(a)}, &types.Fun{Arg: tInt, Ret: b}); err != nil {
		t.Fatal(err)
	}
	if !ctx.Solved() {
		t.Fatalf("expected all metas to be solved, unsolved: %v", ctx.Unsolved())
	}
	if s := types.TypeString(ctx.Apply(b)); s != "List[Int]" {
		t.Fatalf("expected List[Int], found %s", s)
	}
}

func TestUnifyMismatch(t *testing.T) {
	var ctx CommonContext
	ctx.Reset(0)
	a := ctx.NewMeta()
	err := ctx.Unify(types.NewTyCon("Pair", a, a), types.NewTyCon("Pair", tInt, tBool))
	if err == nil {
		t.Fatalf("expected unification to fail")
	}
	uerr, ok := err.(*UnifyError)
	if !ok {
		t.Fatalf("expected *UnifyError, found %T", err)
	}
	if types.TypeString(uerr.Left) != "Int" || types.TypeString(uerr.Right) != "Bool" {
		t.Fatalf("unexpected mismatched types: %s", uerr.Msg)
	}
	if uerr.Msg != "Failed to unify Int with Bool" {
		t.Fatalf("unexpected message: %s", uerr.Msg)
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	var ctx CommonContext
	ctx.Reset(0)
	a := ctx.NewMeta()
	if err := ctx.Unify(a, list(a)); err == nil {
		t.Fatalf("expected occurs check to fail")
	}
	if ctx.Subst.Len() != 0 {
		t.Fatalf("expected no solutions after a failed occurs check")
	}
}

func TestUnifyRejectsLooseBound(t *testing.T) {
	var ctx CommonContext
	ctx.Reset(0)
	a := ctx.NewMeta()
	// forall x. ?0 ~ forall x. x
	lhs := &types.Forall{Name: "x", Body: a}
	rhs := &types.Forall{Name: "x", Body: types.NewTyVar(types.BoundVar{})}
	if err := ctx.Unify(lhs, rhs); err == nil {
		t.Fatalf("expected bound variable escape to fail")
	}
}

func TestUnifyForallPositional(t *testing.T) {
	var ctx CommonContext
	ctx.Reset(0)
	x, y := types.NewFreeVar("x", 0), types.NewFreeVar("y", 1)
	idx := types.NewForall(x, &types.Fun{Arg: types.NewTyVar(x), Ret: types.NewTyVar(x)})
	idy := types.NewForall(y, &types.Fun{Arg: types.NewTyVar(y), Ret: types.NewTyVar(y)})
	if err := ctx.Unify(idx, idy); err != nil {
		t.Fatal(err)
	}
}

func TestUnifyRigidVars(t *testing.T) {
	var ctx CommonContext
	ctx.Reset(0)
	x, y := types.NewTyVar(types.NewFreeVar("a", 0)), types.NewTyVar(types.NewFreeVar("a", 1))
	if err := ctx.Unify(x, x); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Unify(x, y); err == nil {
		t.Fatalf("expected distinct free variables with the same name to differ")
	}
}

func TestSubstIdempotent(t *testing.T) {
	var ctx CommonContext
	ctx.Reset(0)
	a, b, c := ctx.NewMeta(), ctx.NewMeta(), ctx.NewMeta()
	// solve ?0 := List[?1] before ?1 is known, then ?1 := ?2, then ?2 := Int
	steps := [][2]types.Type{{a, list(b)}, {b, c}, {c, tInt}}
	for _, step := range steps {
		if err := ctx.Unify(step[0], step[1]); err != nil {
			t.Fatal(err)
		}
	}
	ctx.Subst.Range(func(m types.MetaVar, sol types.Type) bool {
		for n := types.MetaVar(0); n < ctx.VarTracker.NextMeta; n++ {
			if types.Occurs(n, sol) {
				t.Fatalf("solution for %s contains %s: %s", m.VarName(), n.VarName(), types.TypeString(sol))
			}
		}
		return true
	})
	ty := &types.Fun{Arg: a, Ret: c}
	once := ctx.Apply(ty)
	twice := ctx.Apply(once)
	if !types.Equal(once, twice) {
		t.Fatalf("expected %s to equal %s", types.TypeString(once), types.TypeString(twice))
	}
	if s := types.TypeString(once); s != "List[Int] -> Int" {
		t.Fatalf("unexpected type %s", s)
	}
}

func TestNewFreeVarIds(t *testing.T) {
	var vt VarTracker
	vt.Reset(10)
	a, b := vt.NewFreeVar("a"), vt.NewFreeVar("a")
	if a.Id != 10 || b.Id != 11 || a.Same(b) {
		t.Fatalf("unexpected ids: %d, %d", a.Id, b.Id)
	}
	if ts := vt.NewMetaList(2); len(ts) != 2 || vt.NextMeta != 2 {
		t.Fatalf("expected 2 metas to be allocated")
	}
}
