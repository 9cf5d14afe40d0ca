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

// VarTracker allocates metavariables and fresh free variables for one elaboration session.
type VarTracker struct {
	// The next metavariable to be allocated. Metavariables are allocated in increasing
	// order starting from 0, so NextMeta is also the number of allocations.
	NextMeta types.MetaVar
	// The id of the next free variable to be allocated.
	NextId int
}

// Reset the tracker. Free variable ids will be allocated starting from nextId.
func (vt *VarTracker) Reset(nextId int) { vt.NextMeta, vt.NextId = 0, nextId }

// Allocate a metavariable.
func (vt *VarTracker) NewMeta() types.MetaVar {
	m := vt.NextMeta
	vt.NextMeta++
	return m
}

// Allocate count metavariables, as types.
func (vt *VarTracker) NewMetaList(count int) []types.Type {
	if count == 0 {
		return nil
	}
	ts := make([]types.Type, count)
	for i := range ts {
		ts[i] = types.NewMeta(vt.NewMeta())
	}
	return ts
}

// Allocate a free variable with a unique id and the given display name.
func (vt *VarTracker) NewFreeVar(name string) types.FreeVar {
	v := types.NewFreeVar(name, vt.NextId)
	vt.NextId++
	return v
}
