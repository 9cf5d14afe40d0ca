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
	"github.com/wdamron/elab/types"
)

// UnifyError describes the pair of types which could not be unified. Left and Right are the
// innermost mismatched types, with the substitution applied.
type UnifyError struct {
	Left, Right types.Type
	Msg         string
}

func (e *UnifyError) Error() string { return e.Msg }

func mismatch(a, b types.Type) *UnifyError {
	return &UnifyError{Left: a, Right: b, Msg: "Failed to unify " + types.TypeString(a) + " with " + types.TypeString(b)}
}

// Unify a and b, extending the substitution with solutions for metavariables. Bound
// variables are compared by position. On failure the substitution may contain solutions
// made before the mismatch was found.
func (ctx *CommonContext) Unify(a, b types.Type) error {
	return ctx.unify(ctx.Apply(a), ctx.Apply(b))
}

func (ctx *CommonContext) unify(a, b types.Type) error {
	if ma, ok := types.IsMeta(a); ok {
		if mb, ok := types.IsMeta(b); ok && ma == mb {
			return nil
		}
		return ctx.solve(ma, b)
	}
	if mb, ok := types.IsMeta(b); ok {
		return ctx.solve(mb, a)
	}

	switch a := a.(type) {
	case *types.TyVar:
		if b, ok := b.(*types.TyVar); ok && types.Equal(a, b) {
			return nil
		}

	case *types.TyCon:
		b, ok := b.(*types.TyCon)
		if !ok || a.Name != b.Name || len(a.Args) != len(b.Args) {
			break
		}
		for i := range a.Args {
			if err := ctx.unify(ctx.Apply(a.Args[i]), ctx.Apply(b.Args[i])); err != nil {
				return err
			}
		}
		return nil

	case *types.Fun:
		b, ok := b.(*types.Fun)
		if !ok {
			break
		}
		if err := ctx.unify(a.Arg, b.Arg); err != nil {
			return err
		}
		return ctx.unify(ctx.Apply(a.Ret), ctx.Apply(b.Ret))

	case *types.Forall:
		if b, ok := b.(*types.Forall); ok {
			return ctx.unify(a.Body, b.Body)
		}

	case *types.Comp:
		if b, ok := b.(*types.Comp); ok {
			return ctx.unify(a.Type, b.Type)
		}
	}
	return mismatch(a, b)
}

func (ctx *CommonContext) solve(m types.MetaVar, t types.Type) error {
	if types.Occurs(m, t) {
		return &UnifyError{
			Left:  types.NewMeta(m),
			Right: t,
			Msg:   "Implicitly recursive types are not supported: " + m.VarName() + " occurs in " + types.TypeString(t),
		}
	}
	if types.HasLooseBound(t) {
		return &UnifyError{
			Left:  types.NewMeta(m),
			Right: t,
			Msg:   "Failed to unify " + m.VarName() + " with " + types.TypeString(t) + ", which escapes its quantifier",
		}
	}
	ctx.Subst.extend(m, t)
	if ctx.Logf != nil {
		ctx.Logf("solved %s := %s", m.VarName(), types.TypeString(t))
	}
	return nil
}
