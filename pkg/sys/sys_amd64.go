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

//go:build linux && amd64

package sys

import (
	"rlinux.dev/rlinux/pkg/rawsyscall"
	"rlinux.dev/rlinux/pkg/sysnum/native"
)

// 64-bit offsets fit in one argument word here; no splitting required.

// Pread reads from fd at offset off without moving the file offset.
func Pread(fd int, b []byte, off int64) (int, error) {
	n, err := result(rawsyscall.Syscall4(native.PREAD64, uintptr(fd), bufPtr(b), uintptr(len(b)), uintptr(off)))
	return int(n), err
}

// Pwrite writes to fd at offset off without moving the file offset.
func Pwrite(fd int, b []byte, off int64) (int, error) {
	n, err := result(rawsyscall.Syscall4(native.PWRITE64, uintptr(fd), bufPtr(b), uintptr(len(b)), uintptr(off)))
	return int(n), err
}

// Ftruncate sets the size of the file behind fd to length.
func Ftruncate(fd int, length int64) error {
	_, err := result(rawsyscall.Syscall2(native.FTRUNCATE, uintptr(fd), uintptr(length)))
	return err
}
