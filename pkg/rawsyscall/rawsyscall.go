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

//go:build linux && (386 || amd64)

// Package rawsyscall provides raw and direct access to Linux system calls,
// without going through the runtime's syscall plumbing. It exports seven
// entry points, one for each possible number of arguments a system call can
// take (Syscall0 through Syscall6). It is always safe to use Syscall6 and set
// unused trailing arguments to any value; the matching entry point avoids
// moving dead registers, so prefer it where it matters.
//
// Linux system calls take between 0 and 6 arguments. Every argument and the
// return value is a native machine word; the caller decides whether a given
// word is a pointer, a signed integer, or a flag set. Argument order is
// architecture-defined and a handful of calls flip argument order between
// architectures for binary-compatibility reasons, so consult the kernel
// documentation for the call being issued. The pkg/sys package carries
// audited prototypes for the common calls.
//
// The kernel reserves the top 4096 values of the result word for error codes.
// For most calls it is enough to treat the result as a signed integer and
// take any negative value as an error, but a few calls legitimately return
// words in the negative range. Retval encodes the exact split once so call
// sites never re-derive it.
//
// Nothing in this package validates the call number or the arguments, and
// every entry point can have arbitrary side effects on the process. Callers
// carry the same burden as with any foreign-function boundary.
package rawsyscall

// Syscall0 invokes system call nr with no arguments.
//
//go:noescape
func Syscall0(nr uintptr) Retval

// Syscall1 invokes system call nr with one argument.
//
//go:noescape
func Syscall1(nr, a1 uintptr) Retval

// Syscall2 invokes system call nr with two arguments.
//
//go:noescape
func Syscall2(nr, a1, a2 uintptr) Retval

// Syscall3 invokes system call nr with three arguments.
//
//go:noescape
func Syscall3(nr, a1, a2, a3 uintptr) Retval

// Syscall4 invokes system call nr with four arguments.
//
//go:noescape
func Syscall4(nr, a1, a2, a3, a4 uintptr) Retval

// Syscall5 invokes system call nr with five arguments.
//
//go:noescape
func Syscall5(nr, a1, a2, a3, a4, a5 uintptr) Retval

// Syscall6 invokes system call nr with six arguments.
//
//go:noescape
func Syscall6(nr, a1, a2, a3, a4, a5, a6 uintptr) Retval
