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

	"github.com/hashicorp/go-set/v3"

	"github.com/wdamron/elab/types"
)

// freshen allocates a free variable with a unique id for a binder. The display name is the
// binder's name hint, suffixed with a number if the hint is already used by a variable or type
// variable in scope, so that names in elaborated core terms are never captured.
func (ctx *Context) freshen(hint string) types.FreeVar {
	if hint == "" {
		hint = "x"
	}
	taken := set.From(ctx.vars.Names())
	taken.InsertSlice(ctx.tyVars.Names())
	name := hint
	for i := 1; taken.Contains(name); i++ {
		name = hint + strconv.Itoa(i)
	}
	return ctx.common.VarTracker.NewFreeVar(name)
}
