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
	"github.com/pkg/errors"

	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

// Context is a reusable context for elaboration. Each call to Check or Synth is an independent
// session: metavariables and the substitution are discarded when the call returns.
//
// A context cannot be used concurrently.
type Context struct {
	// Debug enables logging of checking steps and metavariable solutions through Logf.
	Debug bool
	// Logf is the logging function used when Debug is enabled.
	Logf func(format string, v ...interface{})

	state
	needsReset bool

	err     error
	invalid ast.Term
}

// Create a new elaboration context. A context may be reused for elaboration.
func NewContext() *Context { return &Context{} }

func (ctx *Context) reset() {
	ctx.err, ctx.invalid, ctx.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before elaboration.
func (ctx *Context) Reset() {
	if !ctx.needsReset {
		return
	}
	ctx.reset()
}

// Get the error which caused elaboration to fail.
func (ctx *Context) Error() error { return ctx.err }

// Get the term which caused elaboration to fail.
func (ctx *Context) InvalidTerm() ast.Term { return ctx.invalid }

func (ctx *Context) logf(format string, v ...interface{}) {
	if ctx.Debug && ctx.Logf != nil {
		ctx.Logf("elab: "+format, v...)
	}
}

func (ctx *Context) start(env *Env) {
	if ctx.needsReset {
		ctx.reset()
	}
	ctx.state.begin(env)
	ctx.common.Logf = nil
	if ctx.Debug && ctx.Logf != nil {
		ctx.common.Logf = ctx.logf
	}
	ctx.needsReset = true
}

// Record the term which caused elaboration to fail. The innermost failing term is kept.
func (ctx *Context) fail(m ast.Term, err error) error {
	if ctx.invalid == nil {
		ctx.invalid = m
	}
	ctx.err = err
	return err
}

// Check elaborates m against the expected type t within env. The type must be well-formed
// within env.
//
// Elaboration does not modify env; an environment may be shared across threads if each thread
// uses its own Context.
func (ctx *Context) Check(m ast.Term, t types.Type, env *Env) (core.Term, error) {
	if m == nil {
		return nil, errors.New("Empty term")
	}
	ctx.start(env)
	defer ctx.end()
	if err := ctx.isType(t); err != nil {
		return nil, ctx.fail(m, err)
	}
	c, err := ctx.checkify(m, t)
	if err == nil {
		err = ctx.metasSolved()
	}
	if err != nil {
		return nil, ctx.fail(m, err)
	}
	return c, nil
}

// Synth elaborates m within env and infers its principal type.
//
// Elaboration does not modify env; an environment may be shared across threads if each thread
// uses its own Context.
func (ctx *Context) Synth(m ast.Term, env *Env) (core.Term, types.Type, error) {
	if m == nil {
		return nil, nil, errors.New("Empty term")
	}
	ctx.start(env)
	defer ctx.end()
	c, t, err := ctx.synthify(m)
	if err == nil {
		err = ctx.metasSolved()
	}
	if err != nil {
		return nil, nil, ctx.fail(m, err)
	}
	return c, ctx.apply(t), nil
}
