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

package construct

import (
	"github.com/wdamron/elab/ast"
	"github.com/wdamron/elab/core"
	"github.com/wdamron/elab/types"
)

// Types

// Type-constructor application: `List[Int]`
func TCon(name string, args ...types.Type) *types.TyCon {
	return &types.TyCon{Name: name, Args: args}
}

// Function type: `Int -> Int`
func TFun(arg, ret types.Type) *types.Fun {
	return &types.Fun{Arg: arg, Ret: ret}
}

// Curried function type: `Int -> Int -> Int`
func TFunN(ret types.Type, args ...types.Type) types.Type {
	for i := len(args) - 1; i >= 0; i-- {
		ret = &types.Fun{Arg: args[i], Ret: ret}
	}
	return ret
}

// Universally quantified type: `forall a. a -> a`
//
// Occurrences of v within body are abstracted into the quantifier's scope.
func TForall(v types.FreeVar, body types.Type) *types.Forall {
	return types.NewForall(v, body)
}

// Computation type: `Comp[Int]`
func TComp(t types.Type) *types.Comp {
	return &types.Comp{Type: t}
}

// Type variable
func TVar(v types.FreeVar) *types.TyVar {
	return types.NewTyVar(v)
}

// Metavariable
func TMeta(m int) *types.TyVar {
	return types.NewMeta(types.MetaVar(m))
}

// Free variable with the given display name and id
func FreeVar(name string, id int) types.FreeVar {
	return types.NewFreeVar(name, id)
}

// Constructor or builtin signature: `forall a. (a, List[a]) -> List[a]`
func ConSig(params []types.FreeVar, args []types.Type, ret types.Type) *types.ConSig {
	return types.NewConSig(params, args, ret)
}

// Terms

// Variable
func Var(v types.FreeVar) *ast.Var {
	return &ast.Var{Var: v}
}

// Reference to a top-level definition
func Decname(name string) *ast.Decname {
	return &ast.Decname{Name: name}
}

// Type annotation: `(m : A)`
func Ann(m ast.Term, t types.Type) *ast.Ann {
	return &ast.Ann{Term: m, Type: t}
}

// Annotated let-binding: `let x : A = m in n`
func Let(t types.Type, m ast.Term, x types.FreeVar, n ast.Term) *ast.Let {
	return &ast.Let{Type: t, Value: m, Body: ast.Abstract([]types.FreeVar{x}, n)}
}

// Abstraction: `\x -> m`
func Lam(x types.FreeVar, body ast.Term) *ast.Lam {
	return &ast.Lam{Body: ast.Abstract([]types.FreeVar{x}, body)}
}

// Application: `f a`
func App(f, a ast.Term) *ast.App {
	return &ast.App{Func: f, Arg: a}
}

// Curried application: `f a b`
func AppN(f ast.Term, args ...ast.Term) ast.Term {
	for _, arg := range args {
		f = &ast.App{Func: f, Arg: arg}
	}
	return f
}

// Constructor application: `Cons(m, n)`
func Con(name string, args ...ast.Term) *ast.Con {
	return &ast.Con{Name: name, Args: args}
}

// Case expression over one or more scrutinees
func Case(scrutinees []ast.Term, clauses ...*ast.Clause) *ast.Case {
	return &ast.Case{Scrutinees: scrutinees, Clauses: clauses}
}

// Clause binding vars within patterns and body
func Clause(vars []types.FreeVar, patterns []ast.Pattern, body ast.Term) *ast.Clause {
	return ast.AbstractClause(vars, patterns, body)
}

// Variable pattern
func PVar(v types.FreeVar) *ast.PatVar {
	return &ast.PatVar{Var: v}
}

// Constructor pattern: `Cons(x, xs)`
func PCon(name string, args ...ast.Pattern) *ast.PatCon {
	return &ast.PatCon{Name: name, Args: args}
}

// Successful computation
func Success(m ast.Term) *ast.Success {
	return &ast.Success{Term: m}
}

// Failed computation
func Failure() *ast.Failure {
	return &ast.Failure{}
}

// Monadic bind: `do x <- m; n`
func Bind(m ast.Term, x types.FreeVar, n ast.Term) *ast.Bind {
	return &ast.Bind{Term: m, Body: ast.Abstract([]types.FreeVar{x}, n)}
}

// Builtin application: `!addInt(m, n)`
func Builtin(name string, args ...ast.Term) *ast.Builtin {
	return &ast.Builtin{Name: name, Args: args}
}

// Integer literal
func Int(v int64) *ast.Lit {
	return &ast.Lit{Prim: core.PrimInt(v)}
}

// Floating-point literal
func Float(v float64) *ast.Lit {
	return &ast.Lit{Prim: core.PrimFloat(v)}
}

// Byte-string literal
func ByteString(v []byte) *ast.Lit {
	return &ast.Lit{Prim: core.PrimByteString(v)}
}
