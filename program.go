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
	"github.com/wdamron/elab/internal/errwrap"
	"github.com/wdamron/elab/types"
)

// DataDecl declares a data type and its constructors:
//
//  data List a = Nil | Cons a (List a)
type DataDecl struct {
	Name   string
	Params []types.FreeVar
	Cons   []ConDecl
}

// ConDecl declares a constructor of a data type. The constructor returns the data type applied
// to its parameters; the argument types may refer to the parameters.
type ConDecl struct {
	Name string
	Args []types.Type
}

// TermDecl declares a top-level term with its type.
type TermDecl struct {
	Name string
	Type types.Type
	Term ast.Term
}

// Program is a group of declarations. Data types may refer to one another in any order, and so
// may term declarations.
type Program struct {
	Data  []DataDecl
	Terms []TermDecl
}

// ElaborateProgram elaborates every declaration in prog within env. The returned environment
// extends env with the declared data types and the elaborated terms; env is not modified.
func (ctx *Context) ElaborateProgram(prog *Program, env *Env) (*Env, error) {
	penv := NewEnv(env)
	penv.Signature = env.Signature.Clone()

	for _, d := range prog.Data {
		if err := penv.Signature.AddTyCon(d.Name, len(d.Params)); err != nil {
			return nil, ctx.failDecl(err, "Data type %s", d.Name)
		}
	}
	for _, d := range prog.Data {
		params := make([]types.Type, len(d.Params))
		for i, p := range d.Params {
			params[i] = types.NewTyVar(p)
		}
		ret := types.NewTyCon(d.Name, params...)
		for _, c := range d.Cons {
			if err := ctx.isConDecl(penv, d.Params, c); err != nil {
				return nil, ctx.failDecl(err, "Constructor %s", c.Name)
			}
			if err := penv.Signature.AddCon(c.Name, types.NewConSig(d.Params, c.Args, ret)); err != nil {
				return nil, ctx.failDecl(err, "Constructor %s", c.Name)
			}
		}
	}

	for _, d := range prog.Terms {
		if _, exists := penv.Definitions.Get(d.Name); exists {
			err := newError(DuplicateDeclaration, "Definition "+d.Name+" is already declared")
			return nil, ctx.failDecl(err, "Definition %s", d.Name)
		}
		if err := ctx.isDeclType(penv, d.Type); err != nil {
			return nil, ctx.failDecl(err, "Definition %s", d.Name)
		}
		penv.Define(d.Name, &core.Decname{Name: d.Name}, d.Type)
	}
	for _, d := range prog.Terms {
		c, err := ctx.Check(d.Term, d.Type, penv)
		if err != nil {
			return nil, ctx.failDecl(err, "Definition %s", d.Name)
		}
		penv.Define(d.Name, c, d.Type)
	}
	return penv, nil
}

func (ctx *Context) failDecl(err error, format string, name string) error {
	ctx.err = errwrap.Wrapf(err, format, name)
	return ctx.err
}

func (ctx *Context) isConDecl(env *Env, params []types.FreeVar, c ConDecl) error {
	ctx.start(env)
	defer ctx.end()
	for _, p := range params {
		ctx.extendTyVar(p)
	}
	for _, arg := range c.Args {
		if err := ctx.isType(arg); err != nil {
			return err
		}
	}
	return nil
}

func (ctx *Context) isDeclType(env *Env, t types.Type) error {
	ctx.start(env)
	defer ctx.end()
	return ctx.isType(t)
}
