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

	"github.com/wdamron/elab/internal/errwrap"
	"github.com/wdamron/elab/types"
	"golang.org/x/exp/slices"
)

// isType checks that t is a well-formed type under the current type-variable context and
// signature.
func (ctx *Context) isType(t types.Type) error {
	switch t := t.(type) {
	case *types.TyVar:
		v, ok := t.Var.(types.FreeVar)
		if !ok {
			internalError("non-free type variable in well-formedness check", t)
		}
		if !ctx.tyVars.Contains(v) {
			return newError(UnboundTypeVariable, "Type variable "+v.Name+" not found")
		}
		return nil

	case *types.TyCon:
		sig, ok := ctx.env.Signature.TyCons[t.Name]
		if !ok {
			return newError(UnknownTypeConstructor, "Type constructor "+t.Name+" not found")
		}
		if sig.Arity != len(t.Args) {
			return newError(ArityMismatch, "Type constructor "+t.Name+" expects "+strconv.Itoa(sig.Arity)+
				" arguments, found "+strconv.Itoa(len(t.Args)))
		}
		for _, arg := range t.Args {
			if err := ctx.isType(arg); err != nil {
				return err
			}
		}
		return nil

	case *types.Fun:
		if err := ctx.isType(t.Arg); err != nil {
			return err
		}
		return ctx.isType(t.Ret)

	case *types.Forall:
		v := ctx.freshen(t.Name)
		defer ctx.restoreTyVars(ctx.extendTyVar(v))
		return ctx.isType(types.Instantiate(t, types.NewTyVar(v)))

	case *types.Comp:
		return ctx.isType(t.Type)
	}
	internalError("unexpected type in well-formedness check", t)
	return nil
}

// isConSig checks the argument and return types of a signature, with its parameters in scope.
func (ctx *Context) isConSig(sig *types.ConSig) error {
	params := make([]types.Type, len(sig.Params))
	prev := ctx.tyVars
	defer ctx.restoreTyVars(prev)
	for i, name := range sig.Params {
		v := ctx.freshen(name)
		ctx.extendTyVar(v)
		params[i] = types.NewTyVar(v)
	}
	args, ret := sig.Instantiate(params)
	for _, arg := range args {
		if err := ctx.isType(arg); err != nil {
			return err
		}
	}
	return ctx.isType(ret)
}

// Validate checks that every signature and definition type in env is well-formed, and that
// every constructor returns a declared type-constructor. All problems are reported, in name
// order; KindOf reports the kind of the first.
func (ctx *Context) Validate(env *Env) error {
	ctx.start(env)
	defer ctx.end()

	var reterr error
	for _, name := range sortedKeys(env.Signature.Cons) {
		sig := env.Signature.Cons[name]
		if err := ctx.isConSig(sig); err != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "Constructor %s", name))
			continue
		}
		if _, ok := sig.Return.(*types.TyCon); !ok {
			err := newError(TypeMismatch, "Constructor "+name+" must return a type constructor, found "+types.ConSigString(sig))
			reterr = errwrap.Append(reterr, err)
		}
	}
	for _, name := range sortedKeys(env.Signature.Builtins) {
		if err := ctx.isConSig(env.Signature.Builtins[name]); err != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "Builtin %s", name))
		}
	}
	env.Definitions.Range(func(name string, def Definition) bool {
		if err := ctx.isType(def.Type); err != nil {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "Definition %s", name))
		}
		return true
	})
	ctx.err = reterr
	return reterr
}

func sortedKeys(m map[string]*types.ConSig) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
