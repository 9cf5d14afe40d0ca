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

package types

// Type-constructor signature. Kinds are restricted to `*^k -> *`, so only the arity is
// recorded.
type TyConSig struct {
	Arity int
}

// Constructor signature: `forall a*. (A0, ..., Ak) -> B`
//
// Args and Return share a single scope binding Params; within them, the i'th parameter
// is referred to as BoundVar{Depth: 0, Index: i}. Constructor signatures are also used
// for builtins.
type ConSig struct {
	Params []string
	Args   []Type
	Return Type
}

// Create a constructor signature quantified over params. Occurrences of params within
// args and ret are abstracted into the signature's scope.
func NewConSig(params []FreeVar, args []Type, ret Type) *ConSig {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	abstracted := make([]Type, len(args))
	for i, arg := range args {
		abstracted[i] = Abstract(params, arg)
	}
	return &ConSig{Params: names, Args: abstracted, Return: Abstract(params, ret)}
}

// Arity returns the number of quantified parameters of the signature.
func (sig *ConSig) Arity() int { return len(sig.Params) }

// Instantiate the parameters of the signature with ts. The same types are substituted
// within every argument and the return type.
func (sig *ConSig) Instantiate(ts []Type) (args []Type, ret Type) {
	args = make([]Type, len(sig.Args))
	for i, arg := range sig.Args {
		args[i] = InstantiateScope(arg, ts)
	}
	return args, InstantiateScope(sig.Return, ts)
}
