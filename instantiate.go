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

// instantiateParams instantiates the parameters of a constructor or builtin signature with
// fresh metavariables. The same metavariables are shared by every argument type and the return
// type, so solving one while checking an argument refines the others.
func (ctx *Context) instantiateParams(sig *types.ConSig) (args []types.Type, ret types.Type) {
	metas := ctx.common.VarTracker.NewMetaList(sig.Arity())
	return sig.Instantiate(metas)
}

// instantiateQuantifiers strips the leading quantifiers of t, instantiating each with a fresh
// metavariable. Quantifiers nested under the head are left in place.
func (ctx *Context) instantiateQuantifiers(t types.Type) types.Type {
	for {
		f, ok := ctx.apply(t).(*types.Forall)
		if !ok {
			return ctx.apply(t)
		}
		t = types.Instantiate(f, ctx.newMeta())
	}
}
