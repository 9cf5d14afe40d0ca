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
	"strconv"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

// synthify elaborates m and synthesizes its type. The returned type may contain metavariables
// which are solved later in the session.
func (ctx *Context) synthify(m ast.Term) (core.Term, types.Type, error) {
	if ctx.Debug {
		ctx.logf("synth %s", ast.ExprString(m))
	}
	switch m := m.(type) {
	case *ast.Var:
		x, t, err := ctx.lookupVar(m.Var)
		if err != nil {
			return nil, nil, ctx.fail(m, err)
		}
		return &core.Var{Name: x.Name}, ctx.apply(t), nil

	case *ast.Decname:
		def, ok := ctx.env.Definitions.Get(m.Name)
		if !ok {
			return nil, nil, ctx.fail(m, newError(UnknownDefinition, "Definition "+m.Name+" not found"))
		}
		return &core.Decname{Name: m.Name}, def.Type, nil

	case *ast.Lit:
		return &core.Lit{Prim: m.Prim}, types.NewTyCon(m.Prim.PrimType()), nil

	case *ast.Ann:
		if err := ctx.isType(m.Type); err != nil {
			return nil, nil, ctx.fail(m, err)
		}
		c, err := ctx.checkify(m.Term, m.Type)
		if err != nil {
			return nil, nil, err
		}
		return c, ctx.apply(m.Type), nil

	case *ast.Lam:
		x, body := ctx.openScope(m.Body)
		dom := ctx.newMeta()
		defer ctx.restoreVars(ctx.extendVar(x, dom))
		c, t, err := ctx.synthify(body)
		if err != nil {
			return nil, nil, err
		}
		return &core.Lam{Name: x.Name, Body: c}, &types.Fun{Arg: ctx.apply(dom), Ret: t}, nil

	case *ast.App:
		cf, ft, err := ctx.synthify(m.Func)
		if err != nil {
			return nil, nil, err
		}
		fun, ok := ctx.instantiateQuantifiers(ft).(*types.Fun)
		if !ok {
			return nil, nil, ctx.fail(m, newError(TypeMismatch, "Expected a function type, found "+types.TypeString(ctx.apply(ft))))
		}
		ca, err := ctx.checkify(m.Arg, fun.Arg)
		if err != nil {
			return nil, nil, err
		}
		return &core.App{Func: cf, Arg: ca}, ctx.apply(fun.Ret), nil

	case *ast.Con:
		sig, ok := ctx.env.Signature.Cons[m.Name]
		if !ok {
			return nil, nil, ctx.fail(m, newError(UnknownConstructor, "Constructor "+m.Name+" not found"))
		}
		args, ret := ctx.instantiateParams(sig)
		if err := checkArity("Constructor", m.Name, len(args), len(m.Args)); err != nil {
			return nil, nil, ctx.fail(m, err)
		}
		cs, err := ctx.checkifyMulti(m.Args, args)
		if err != nil {
			return nil, nil, err
		}
		return &core.Con{Name: m.Name, Args: cs}, ctx.apply(ret), nil

	case *ast.Builtin:
		sig, ok := ctx.env.Signature.Builtins[m.Name]
		if !ok {
			return nil, nil, ctx.fail(m, newError(UnknownBuiltin, "Builtin "+m.Name+" not found"))
		}
		args, ret := ctx.instantiateParams(sig)
		if err := checkArity("Builtin", m.Name, len(args), len(m.Args)); err != nil {
			return nil, nil, ctx.fail(m, err)
		}
		cs, err := ctx.checkifyMulti(m.Args, args)
		if err != nil {
			return nil, nil, err
		}
		return &core.Builtin{Name: m.Name, Args: cs}, ctx.apply(ret), nil

	case *ast.Case:
		cs := make([]core.Term, len(m.Scrutinees))
		ts := make([]types.Type, len(m.Scrutinees))
		for i, scrutinee := range m.Scrutinees {
			c, t, err := ctx.synthify(scrutinee)
			if err != nil {
				return nil, nil, err
			}
			cs[i], ts[i] = c, t
		}
		clauses, t, err := ctx.synthifyClauses(m, ts)
		if err != nil {
			return nil, nil, err
		}
		return &core.Case{Scrutinees: cs, Clauses: clauses}, t, nil

	case *ast.Let:
		return nil, nil, ctx.fail(m, newError(Unsynthesizable, "Cannot synthesize the type of a let-binding"))

	case *ast.Success, *ast.Failure, *ast.Bind:
		return nil, nil, ctx.fail(m, newError(Unsynthesizable, "Cannot synthesize the type of a computation"))
	}
	internalError("unexpected term", m)
	return nil, nil, nil
}

func checkArity(what, name string, expected, found int) error {
	if expected == found {
		return nil
	}
	return newError(ArityMismatch, what+" "+name+" expects "+strconv.Itoa(expected)+" arguments, found "+strconv.Itoa(found))
}
