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

// Names of the standard data types.
const (
	BoolName = "Bool"
	UnitName = "Unit"
)

func monoSig(ret types.Type, args ...types.Type) *types.ConSig {
	return &types.ConSig{Args: args, Return: ret}
}

// Create a signature with the primitive types, booleans, unit, and the standard builtins.
func NewStandardSignature() *Signature {
	var (
		tInt        = types.NewTyCon(types.IntName)
		tFloat      = types.NewTyCon(types.FloatName)
		tByteString = types.NewTyCon(types.ByteStringName)
		tBool       = types.NewTyCon(BoolName)
		tUnit       = types.NewTyCon(UnitName)
	)

	sig := NewSignature()
	for _, name := range []string{types.IntName, types.FloatName, types.ByteStringName, BoolName, UnitName} {
		sig.TyCons[name] = types.TyConSig{Arity: 0}
	}
	sig.Cons["True"] = monoSig(tBool)
	sig.Cons["False"] = monoSig(tBool)
	sig.Cons["Unit"] = monoSig(tUnit)

	for _, name := range []string{"addInt", "subtractInt", "multiplyInt", "divideInt", "remainderInt"} {
		sig.Builtins[name] = monoSig(tInt, tInt, tInt)
	}
	for _, name := range []string{"lessThanInt", "lessThanEqualsInt", "greaterThanInt", "greaterThanEqualsInt", "equalsInt"} {
		sig.Builtins[name] = monoSig(tBool, tInt, tInt)
	}
	for _, name := range []string{"addFloat", "subtractFloat", "multiplyFloat", "divideFloat"} {
		sig.Builtins[name] = monoSig(tFloat, tFloat, tFloat)
	}
	for _, name := range []string{"lessThanFloat", "lessThanEqualsFloat", "equalsFloat"} {
		sig.Builtins[name] = monoSig(tBool, tFloat, tFloat)
	}
	sig.Builtins["intToFloat"] = monoSig(tFloat, tInt)
	sig.Builtins["concatenate"] = monoSig(tByteString, tByteString, tByteString)
	sig.Builtins["equalsByteString"] = monoSig(tBool, tByteString, tByteString)
	sig.Builtins["takeByteString"] = monoSig(tByteString, tInt, tByteString)
	sig.Builtins["dropByteString"] = monoSig(tByteString, tInt, tByteString)
	sig.Builtins["sha2_256"] = monoSig(tByteString, tByteString)
	sig.Builtins["sha3_256"] = monoSig(tByteString, tByteString)
	sig.Builtins["blocknum"] = monoSig(tInt)
	return sig
}
