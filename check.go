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
	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

// checkify elaborates m against the expected type goal.
func (ctx *Context) checkify(m ast.Term, goal types.Type) (core.Term, error) {
	goal = ctx.apply(goal)
	if ctx.Debug {
		ctx.logf("check %s : %s", ast.ExprString(m), types.TypeString(goal))
	}

	if f, ok := goal.(*types.Forall); ok {
		v := ctx.freshen(f.Name)
		defer ctx.restoreTyVars(ctx.extendTyVar(v))
		return ctx.checkify(m, types.Instantiate(f, types.NewTyVar(v)))
	}

	switch m := m.(type) {
	case *ast.Let:
		if err := ctx.isType(m.Type); err != nil {
			return nil, ctx.fail(m, err)
		}
		cm, err := ctx.checkify(m.Value, m.Type)
		if err != nil {
			return nil, err
		}
		x, body := ctx.openScope(m.Body)
		defer ctx.restoreVars(ctx.extendVar(x, m.Type))
		cn, err := ctx.checkify(body, goal)
		if err != nil {
			return nil, err
		}
		return &core.App{Func: &core.Lam{Name: x.Name, Body: cn}, Arg: cm}, nil

	case *ast.Lam:
		fun, err := ctx.expectFun(m, goal)
		if err != nil {
			return nil, err
		}
		x, body := ctx.openScope(m.Body)
		defer ctx.restoreVars(ctx.extendVar(x, fun.Arg))
		c, err := ctx.checkify(body, fun.Ret)
		if err != nil {
			return nil, err
		}
		return &core.Lam{Name: x.Name, Body: c}, nil

	case *ast.Con:
		sig, ok := ctx.env.Signature.Cons[m.Name]
		if !ok {
			return nil, ctx.fail(m, newError(UnknownConstructor, "Constructor "+m.Name+" not found"))
		}
		args, ret := ctx.instantiateParams(sig)
		if err := checkArity("Constructor", m.Name, len(args), len(m.Args)); err != nil {
			return nil, ctx.fail(m, err)
		}
		// The goal refines the parameters before any argument is checked.
		if err := ctx.unify(ret, goal); err != nil {
			return nil, ctx.fail(m, err)
		}
		cs, err := ctx.checkifyMulti(m.Args, args)
		if err != nil {
			return nil, err
		}
		return &core.Con{Name: m.Name, Args: cs}, nil

	case *ast.Success:
		comp, err := ctx.expectComp(m, goal)
		if err != nil {
			return nil, err
		}
		c, err := ctx.checkify(m.Term, comp.Type)
		if err != nil {
			return nil, err
		}
		return &core.Success{Term: c}, nil

	case *ast.Failure:
		if _, err := ctx.expectComp(m, goal); err != nil {
			return nil, err
		}
		return &core.Failure{}, nil

	case *ast.Bind:
		if _, err := ctx.expectComp(m, goal); err != nil {
			return nil, err
		}
		cm, t, err := ctx.synthify(m.Term)
		if err != nil {
			return nil, err
		}
		comp, err := ctx.expectComp(m.Term, t)
		if err != nil {
			return nil, err
		}
		x, body := ctx.openScope(m.Body)
		defer ctx.restoreVars(ctx.extendVar(x, ctx.apply(comp.Type)))
		cn, err := ctx.checkify(body, goal)
		if err != nil {
			return nil, err
		}
		return &core.Bind{Term: cm, Name: x.Name, Body: cn}, nil
	}

	// Subsumption only instantiates; the synthesized term is used unchanged.
	c, t, err := ctx.synthify(m)
	if err != nil {
		return nil, err
	}
	if err := ctx.subtype(t, goal); err != nil {
		return nil, ctx.fail(m, err)
	}
	return c, nil
}

// checkifyMulti checks each term against the corresponding type, left to right. Each expected
// type is refined by the solutions found while checking the terms before it.
func (ctx *Context) checkifyMulti(ms []ast.Term, ts []types.Type) ([]core.Term, error) {
	if len(ms) == 0 {
		return nil, nil
	}
	cs := make([]core.Term, len(ms))
	for i, m := range ms {
		c, err := ctx.checkify(m, ctx.apply(ts[i]))
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	return cs, nil
}

// expectFun requires t to be a function type. An unsolved metavariable is not refined: a lambda
// checked against an unknown type must be annotated.
func (ctx *Context) expectFun(m ast.Term, t types.Type) (*types.Fun, error) {
	t = ctx.apply(t)
	if fun, ok := t.(*types.Fun); ok {
		return fun, nil
	}
	return nil, ctx.fail(m, newError(TypeMismatch, "Expected a function type for "+ast.ExprString(m)+", found "+types.TypeString(t)))
}

// expectComp requires t to be a computation type. Like expectFun, an unsolved metavariable is
// rejected rather than refined.
func (ctx *Context) expectComp(m ast.Term, t types.Type) (*types.Comp, error) {
	t = ctx.apply(t)
	if comp, ok := t.(*types.Comp); ok {
		return comp, nil
	}
	return nil, ctx.fail(m, newError(TypeMismatch, "Expected a computation type for "+ast.ExprString(m)+", found "+types.TypeString(t)))
}
