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

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	a, b := NewFreeVar("a", 0), NewFreeVar("b", 1)
	tInt := NewTyCon(IntName)
	cases := []struct {
		t        Type
		expected string
	}{
		{tInt, "Int"},
		{NewTyCon("Pair", tInt, NewTyCon("List", NewTyVar(a))), "Pair[Int, List[a]]"},
		{&Fun{Arg: &Fun{Arg: tInt, Ret: tInt}, Ret: tInt}, "(Int -> Int) -> Int"},
		{&Fun{Arg: tInt, Ret: &Fun{Arg: tInt, Ret: tInt}}, "Int -> Int -> Int"},
		{NewForall(a, &Fun{Arg: NewTyVar(a), Ret: NewTyVar(a)}), "forall a. a -> a"},
		{NewForall(a, NewForall(b, &Fun{Arg: NewTyVar(a), Ret: NewTyVar(b)})), "forall a. forall b. a -> b"},
		{&Fun{Arg: NewForall(a, NewTyVar(a)), Ret: &Comp{Type: NewMeta(3)}}, "(forall a. a) -> Comp[?3]"},
		{nil, "<nil>"},
	}
	for _, c := range cases {
		if s := TypeString(c.t); s != c.expected {
			t.Fatalf("expected %s, found %s", c.expected, s)
		}
	}
}

func TestConSigString(t *testing.T) {
	a := NewFreeVar("a", 0)
	list := NewTyCon("List", NewTyVar(a))
	sig := NewConSig([]FreeVar{a}, []Type{NewTyVar(a), list}, list)
	if s := ConSigString(sig); s != "forall a. (a, List[a]) -> List[a]" {
		t.Fatalf("sig: %s", s)
	}
	if sig.Arity() != 1 {
		t.Fatalf("expected arity 1, found %d", sig.Arity())
	}
	args, ret := sig.Instantiate([]Type{NewTyCon(IntName)})
	if TypeString(args[0]) != "Int" || TypeString(args[1]) != "List[Int]" || TypeString(ret) != "List[Int]" {
		t.Fatalf("unexpected instantiation: %s, %s -> %s", TypeString(args[0]), TypeString(args[1]), TypeString(ret))
	}
}

func TestInstantiateAbstract(t *testing.T) {
	a, b, c := NewFreeVar("a", 0), NewFreeVar("b", 1), NewFreeVar("c", 2)
	// forall a. forall b. a -> b
	f := NewForall(a, NewForall(b, &Fun{Arg: NewTyVar(a), Ret: NewTyVar(b)}))
	inner, ok := Instantiate(f, NewTyVar(c)).(*Forall)
	if !ok {
		t.Fatalf("expected the inner quantifier to remain")
	}
	if s := TypeString(inner); s != "forall b. c -> b" {
		t.Fatalf("instantiated: %s", s)
	}
	if HasLooseBound(inner) {
		t.Fatalf("expected no loose bound variables")
	}
	if !HasLooseBound(inner.Body) {
		t.Fatalf("expected a loose bound variable within the body")
	}

	// Abstracting and instantiating with the same variable is the identity.
	body := &Fun{Arg: NewTyVar(a), Ret: NewTyCon("List", NewTyVar(a))}
	round := InstantiateScope(Abstract([]FreeVar{a}, body), []Type{NewTyVar(a)})
	if !Equal(body, round) {
		t.Fatalf("expected %s, found %s", TypeString(body), TypeString(round))
	}
}

func TestEqual(t *testing.T) {
	a, b := NewFreeVar("a", 0), NewFreeVar("a", 1)
	if Equal(NewTyVar(a), NewTyVar(b)) {
		t.Fatalf("expected free variables to be compared by id")
	}
	idA := NewForall(a, &Fun{Arg: NewTyVar(a), Ret: NewTyVar(a)})
	idB := NewForall(b, &Fun{Arg: NewTyVar(b), Ret: NewTyVar(b)})
	if !Equal(idA, idB) {
		t.Fatalf("expected alpha-equivalent types to be equal")
	}
	if Equal(&Comp{Type: NewMeta(0)}, &Comp{Type: NewMeta(1)}) {
		t.Fatalf("expected distinct metavariables to differ")
	}
}

func TestOccurs(t *testing.T) {
	a, b := NewFreeVar("a", 0), NewFreeVar("b", 1)
	ty := &Fun{Arg: NewTyVar(a), Ret: NewTyCon("Pair", NewMeta(2), NewTyVar(b), NewTyVar(a), NewMeta(0))}
	if !Occurs(2, ty) || Occurs(1, ty) {
		t.Fatalf("unexpected occurs check result")
	}
}

func TestVarMap(t *testing.T) {
	a, b := NewFreeVar("a", 0), NewFreeVar("a", 1)
	m := EmptyVarMap
	m1 := m.Set(a, NewTyCon(IntName))
	m2 := m1.Set(b, nil)
	if m.Len() != 0 || m1.Len() != 1 || m2.Len() != 2 {
		t.Fatalf("expected extensions to leave earlier maps unchanged")
	}
	if ty, ok := m2.Get(a); !ok || TypeString(ty) != "Int" {
		t.Fatalf("expected a : Int")
	}
	if !m2.Contains(b) || m1.Contains(b) {
		t.Fatalf("unexpected membership")
	}
	if names := m2.Names(); len(names) != 2 || names[0] != "a" || names[1] != "a" {
		t.Fatalf("unexpected names: %v", names)
	}
	var zero VarMap
	if zero.Len() != 0 || zero.Contains(a) {
		t.Fatalf("expected the zero map to be empty")
	}
}
