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

// CommonContext holds the state which accumulates over one elaboration session: the
// metavariable counter, the free variable counter, and the substitution.
type CommonContext struct {
	VarTracker VarTracker
	Subst      Subst
	// Logf is called for each solved metavariable, if non-nil.
	Logf func(format string, v ...interface{})
}

// Reset the session. Free variable ids will be allocated starting from nextId.
func (ctx *CommonContext) Reset(nextId int) {
	ctx.VarTracker.Reset(nextId)
	ctx.Subst.Reset()
}

// Apply the current substitution to t.
func (ctx *CommonContext) Apply(t types.Type) types.Type { return ctx.Subst.Apply(t) }

// Allocate a metavariable, as a type.
func (ctx *CommonContext) NewMeta() types.Type { return types.NewMeta(ctx.VarTracker.NewMeta()) }

// Unsolved returns the allocated metavariables which have no solution, in order of allocation.
func (ctx *CommonContext) Unsolved() []types.MetaVar {
	var unsolved []types.MetaVar
	for m := types.MetaVar(0); m < ctx.VarTracker.NextMeta; m++ {
		if _, ok := ctx.Subst.Lookup(m); !ok {
			unsolved = append(unsolved, m)
		}
	}
	return unsolved
}

// Solved returns true if every allocated metavariable has a solution.
func (ctx *CommonContext) Solved() bool {
	return int(ctx.VarTracker.NextMeta) == ctx.Subst.Len()
}
