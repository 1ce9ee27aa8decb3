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

//go:build linux

package rawsyscall

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// MaxErrno is the number of result-word values the kernel reserves for error
// codes. Any result strictly greater than ^uintptr(0)-MaxErrno is an error.
const MaxErrno = 4096

// Retval is the raw result word of a system call.
//
// The kernel returns a native word in the result register and reserves the
// top MaxErrno values for error codes. Retval carries that word unmodified
// and provides the classification once, so call sites never re-derive the
// boundary. Construct one by converting the raw word: Retval(word).
//
// Retval is an immutable value; copies are independent and every method is a
// pure function of the stored word.
type Retval uintptr

// Uintptr returns the raw underlying result word.
func (r Retval) Uintptr() uintptr {
	return uintptr(r)
}

// IsError returns true if r lies in the kernel's reserved error range.
func (r Retval) IsError() bool {
	return uintptr(r) > ^uintptr(0)-MaxErrno
}

// IsSuccess returns true if r is a success result.
func (r Retval) IsSuccess() bool {
	return !r.IsError()
}

// ValueUnchecked returns the success value without verifying the
// classification. The caller must have already checked IsSuccess.
func (r Retval) ValueUnchecked() uintptr {
	return uintptr(r)
}

// Value returns the success value. It panics if r is an error result; that is
// a bug in the caller, not a runtime condition.
func (r Retval) Value() uintptr {
	if r.IsError() {
		panic(fmt.Sprintf("rawsyscall: Value called on error Retval %#x (errno %d)", uintptr(r), r.ErrnoUnchecked()))
	}
	return uintptr(r)
}

// ErrnoUnchecked returns the decoded error number without verifying the
// classification. The caller must have already checked IsError.
func (r Retval) ErrnoUnchecked() unix.Errno {
	return unix.Errno(-uintptr(r))
}

// Errno returns the decoded error number, in [1, MaxErrno]. It panics if r is
// a success result; that is a bug in the caller, not a runtime condition.
func (r Retval) Errno() unix.Errno {
	if !r.IsError() {
		panic(fmt.Sprintf("rawsyscall: Errno called on success Retval %#x", uintptr(r)))
	}
	return r.ErrnoUnchecked()
}

// Result splits r into the shape the rest of the tree handles: the success
// value and a zero errno, or a zero value and the decoded errno. Most callers
// want this; the unchecked accessors exist for paths that already branched on
// the classification.
func (r Retval) Result() (uintptr, unix.Errno) {
	if r.IsError() {
		return 0, r.ErrnoUnchecked()
	}
	return uintptr(r), 0
}
