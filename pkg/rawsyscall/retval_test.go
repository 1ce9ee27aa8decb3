// Copyright 2026 The rlinux Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rawsyscall

import (
	"testing"

	"golang.org/x/sys/unix"
)

const max = ^uintptr(0)

// The classification and decode arithmetic is pure value math, independent of
// which architecture produced the word, so it is pinned here against literal
// constants with no live kernel call involved.
func TestRetvalClassification(t *testing.T) {
	for _, tc := range []struct {
		name    string
		v       uintptr
		isError bool
		errno   unix.Errno
	}{
		{"zero", 0, false, 0},
		{"one", 1, false, 0},
		{"pointerish", 0x7fff_0000, false, 0},
		{"largest success", max - MaxErrno, false, 0},
		{"smallest error", max - MaxErrno + 1, true, unix.Errno(MaxErrno)},
		{"enoent", max - 1, true, unix.Errno(2)},
		{"eperm", max, true, unix.Errno(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r := Retval(tc.v)
			if got := r.IsError(); got != tc.isError {
				t.Errorf("Retval(%#x).IsError() = %t, want %t", tc.v, got, tc.isError)
			}
			if got := r.IsSuccess(); got == tc.isError {
				t.Errorf("Retval(%#x).IsSuccess() = %t, want %t", tc.v, got, !tc.isError)
			}
			if got := r.Uintptr(); got != tc.v {
				t.Errorf("Retval(%#x).Uintptr() = %#x", tc.v, got)
			}
			v, e := r.Result()
			if tc.isError {
				if e != tc.errno || v != 0 {
					t.Errorf("Retval(%#x).Result() = (%#x, %d), want (0, %d)", tc.v, v, e, tc.errno)
				}
				if got := r.Errno(); got != tc.errno {
					t.Errorf("Retval(%#x).Errno() = %d, want %d", tc.v, got, tc.errno)
				}
				if got := r.ErrnoUnchecked(); got != tc.errno {
					t.Errorf("Retval(%#x).ErrnoUnchecked() = %d, want %d", tc.v, got, tc.errno)
				}
			} else {
				if e != 0 || v != tc.v {
					t.Errorf("Retval(%#x).Result() = (%#x, %d), want (%#x, 0)", tc.v, v, e, tc.v)
				}
				if got := r.Value(); got != tc.v {
					t.Errorf("Retval(%#x).Value() = %#x", tc.v, got)
				}
				if got := r.ValueUnchecked(); got != tc.v {
					t.Errorf("Retval(%#x).ValueUnchecked() = %#x", tc.v, got)
				}
			}
		})
	}
}

// Every decoded errno must land in [1, MaxErrno].
func TestRetvalErrnoRange(t *testing.T) {
	for v := max - MaxErrno + 1; v != 0; v++ {
		e := Retval(v).Errno()
		if e < 1 || e > MaxErrno {
			t.Fatalf("Retval(%#x).Errno() = %d, outside [1, %d]", v, e, MaxErrno)
		}
	}
}

func TestRetvalIdempotent(t *testing.T) {
	r := Retval(max - 10)
	for i := 0; i < 3; i++ {
		if !r.IsError() {
			t.Fatalf("classification changed on repeat %d", i)
		}
		if got := r.Errno(); got != unix.Errno(11) {
			t.Fatalf("Errno() = %d on repeat %d, want 11", got, i)
		}
	}
	s := Retval(42)
	for i := 0; i < 3; i++ {
		if got := s.Value(); got != 42 {
			t.Fatalf("Value() = %d on repeat %d, want 42", got, i)
		}
	}
}

func mustPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", what)
		}
	}()
	f()
}

// Misusing the checked accessors is a caller bug and must abort, not hand
// back a plausible word.
func TestRetvalContractViolations(t *testing.T) {
	mustPanic(t, "Value on error", func() { Retval(max).Value() })
	mustPanic(t, "Errno on success", func() { Retval(0).Errno() })
	mustPanic(t, "Errno on boundary success", func() { Retval(max - MaxErrno).Errno() })
}
