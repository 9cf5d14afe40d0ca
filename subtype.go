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
	"github.com/wdamron/elab/types"
)

// subtype checks that a term of type s may be used where a term of type t is expected.
//
// A quantifier on the right is skolemized, since s must then hold for any instantiation. A
// quantifier on the left is instantiated with a metavariable. Function types are compared
// contravariantly in their argument and covariantly in their result. Anything else is unified.
func (ctx *Context) subtype(s, t types.Type) error {
	s, t = ctx.apply(s), ctx.apply(t)
	if ctx.Debug {
		ctx.logf("subtype %s <: %s", types.TypeString(s), types.TypeString(t))
	}

	if tf, ok := t.(*types.Forall); ok {
		sk := ctx.freshen(tf.Name)
		defer ctx.restoreTyVars(ctx.extendTyVar(sk))
		return ctx.subtype(s, types.Instantiate(tf, types.NewTyVar(sk)))
	}
	if sf, ok := s.(*types.Forall); ok {
		return ctx.subtype(types.Instantiate(sf, ctx.newMeta()), t)
	}
	if sfun, ok := s.(*types.Fun); ok {
		if tfun, ok := t.(*types.Fun); ok {
			if err := ctx.subtype(tfun.Arg, sfun.Arg); err != nil {
				return err
			}
			return ctx.subtype(sfun.Ret, tfun.Ret)
		}
	}
	return ctx.unify(s, t)
}
