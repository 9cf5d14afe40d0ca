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

// metasSolved checks that every metavariable allocated during the session has been solved.
// It is only meaningful at the end of a top-level call.
func (ctx *Context) metasSolved() error {
	if ctx.common.Solved() {
		return nil
	}
	unsolved := ctx.common.Unsolved()
	msg := "Unresolved metavariables:"
	for _, m := range unsolved {
		msg += " " + m.VarName()
	}
	ts := make([]types.Type, len(unsolved))
	for i, m := range unsolved {
		ts[i] = types.NewMeta(m)
	}
	return newError(UnresolvedMetavariables, msg, ts...)
}
