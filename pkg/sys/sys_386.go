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

//go:build linux && 386

package sys

import (
	"rlinux.dev/rlinux/pkg/rawsyscall"
	"rlinux.dev/rlinux/pkg/sysnum/native"
)

// 64-bit offsets do not fit in a 32-bit argument word. The x86-32 ABI splits
// them across two consecutive arguments, low word first.

// Pread reads from fd at offset off without moving the file offset.
func Pread(fd int, b []byte, off int64) (int, error) {
	n, err := result(rawsyscall.Syscall5(native.PREAD64, uintptr(fd), bufPtr(b), uintptr(len(b)), uintptr(off), uintptr(off>>32)))
	return int(n), err
}

// Pwrite writes to fd at offset off without moving the file offset.
func Pwrite(fd int, b []byte, off int64) (int, error) {
	n, err := result(rawsyscall.Syscall5(native.PWRITE64, uintptr(fd), bufPtr(b), uintptr(len(b)), uintptr(off), uintptr(off>>32)))
	return int(n), err
}

// Ftruncate sets the size of the file behind fd to length. The 32-bit table
// keeps the legacy ftruncate for 32-bit lengths; use the 64-bit variant
// unconditionally.
func Ftruncate(fd int, length int64) error {
	_, err := result(rawsyscall.Syscall3(native.FTRUNCATE64, uintptr(fd), uintptr(length), uintptr(length>>32)))
	return err
}
