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

package errwrap

import (
	"fmt"
	"testing"
)

func TestWrapfNil(t *testing.T) {
	if err := Wrapf(nil, "while checking %s", "x"); err != nil {
		t.Fatalf("expected nil result")
	}
}

func TestWrapfCause(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := Wrapf(Wrapf(inner, "outer %d", 1), "outermost")
	if Cause(err) != inner {
		t.Fatalf("expected inner cause, found %v", Cause(err))
	}
	if err.Error() != "outermost: outer 1: inner" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestAppend(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Fatalf("expected nil result")
	}
	a, b := fmt.Errorf("a"), fmt.Errorf("b")
	if err := Append(a, nil); err != a {
		t.Fatalf("expected a")
	}
	if err := Append(nil, b); err != b {
		t.Fatalf("expected b")
	}
	errs := Errors(Append(Append(a, b), nil))
	if len(errs) != 2 || errs[0] != a || errs[1] != b {
		t.Fatalf("unexpected errors: %v", errs)
	}
}
