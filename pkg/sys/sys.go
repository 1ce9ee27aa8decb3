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

// Package sys carries typed prototypes for common system calls. Each wrapper
// marshals its arguments into the positional form the kernel expects and
// issues the call through pkg/rawsyscall, so the architecture-defined
// splitting (64-bit offsets across two words on 32-bit targets, NUL
// termination of paths) lives here and nowhere else. Binary formatting of
// argument structures is still the caller's job.
//
// Kernel errors come back as unix.Errno values; a nil error means the call
// succeeded. Nothing here retries EINTR or interprets results beyond the
// success/error split.
package sys

import (
	"unsafe"

	"golang.org/x/sys/unix"
	"rlinux.dev/rlinux/pkg/rawsyscall"
	"rlinux.dev/rlinux/pkg/sysnum/native"
)

// result converts a Retval into the (value, error) shape used throughout this
// package.
func result(r rawsyscall.Retval) (uintptr, error) {
	v, e := r.Result()
	if e != 0 {
		return 0, e
	}
	return v, nil
}

// bufPtr returns the address of the first byte of b, or zero for an empty
// slice. The kernel accepts a null buffer when the count is zero.
func bufPtr(b []byte) uintptr {
	if len(b) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&b[0]))
}

// Exit tears down the calling task with the given exit code. Other tasks of
// the thread group keep running. It never returns; the kernel uses only the
// low byte of code.
func Exit(code int) {
	rawsyscall.Syscall1(native.EXIT, uintptr(code))
	panic("sys.Exit returned")
}

// ExitGroup tears down all tasks of the calling thread group with the given
// exit code. It never returns.
func ExitGroup(code int) {
	rawsyscall.Syscall1(native.EXIT_GROUP, uintptr(code))
	panic("sys.ExitGroup returned")
}

// RestartSyscall resumes an interrupted system call with time-adjusted
// parameters. The kernel issues it on behalf of resumed tasks; user space has
// no ordinary reason to call it, and without a call to resume it fails with
// EINTR.
func RestartSyscall() (uintptr, error) {
	return result(rawsyscall.Syscall0(native.RESTART_SYSCALL))
}

// Getpid returns the process id of the calling task's thread group. It cannot
// fail.
func Getpid() int {
	return int(rawsyscall.Syscall0(native.GETPID).Value())
}

// Getppid returns the process id of the parent. It cannot fail.
func Getppid() int {
	return int(rawsyscall.Syscall0(native.GETPPID).Value())
}

// Gettid returns the task id of the calling task. It cannot fail.
func Gettid() int {
	return int(rawsyscall.Syscall0(native.GETTID).Value())
}

// SchedYield relinquishes the processor.
func SchedYield() error {
	_, err := result(rawsyscall.Syscall0(native.SCHED_YIELD))
	return err
}

// Read reads from fd into b and returns the number of bytes read. Zero with a
// nil error means end of file.
func Read(fd int, b []byte) (int, error) {
	n, err := result(rawsyscall.Syscall3(native.READ, uintptr(fd), bufPtr(b), uintptr(len(b))))
	return int(n), err
}

// Write writes b to fd and returns the number of bytes written, which may be
// short.
func Write(fd int, b []byte) (int, error) {
	n, err := result(rawsyscall.Syscall3(native.WRITE, uintptr(fd), bufPtr(b), uintptr(len(b))))
	return int(n), err
}

// Close unlinks fd from the file-descriptor table. The descriptor is gone
// even when an error comes back, so never retry a close.
func Close(fd int) error {
	_, err := result(rawsyscall.Syscall1(native.CLOSE, uintptr(fd)))
	return err
}

// Dup duplicates fd onto the lowest free descriptor.
func Dup(fd int) (int, error) {
	n, err := result(rawsyscall.Syscall1(native.DUP, uintptr(fd)))
	return int(n), err
}

// Dup3 duplicates oldfd onto newfd. flags may carry O_CLOEXEC. Unlike dup2,
// oldfd == newfd is an error.
func Dup3(oldfd, newfd, flags int) (int, error) {
	n, err := result(rawsyscall.Syscall3(native.DUP3, uintptr(oldfd), uintptr(newfd), uintptr(flags)))
	return int(n), err
}

// Pipe2 creates a pipe and returns the read and write descriptors. flags may
// carry O_CLOEXEC, O_NONBLOCK, or O_DIRECT.
func Pipe2(flags int) (int, int, error) {
	var fds [2]int32
	if _, err := result(rawsyscall.Syscall2(native.PIPE2, uintptr(unsafe.Pointer(&fds)), uintptr(flags))); err != nil {
		return -1, -1, err
	}
	return int(fds[0]), int(fds[1]), nil
}

// Openat opens path relative to dirfd (or the working directory, for
// unix.AT_FDCWD) and returns the new descriptor. mode is consulted only when
// flags creates a file.
func Openat(dirfd int, path string, flags int, mode uint32) (int, error) {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return -1, err
	}
	n, err := result(rawsyscall.Syscall4(native.OPENAT, uintptr(dirfd), uintptr(unsafe.Pointer(p)), uintptr(flags), uintptr(mode)))
	return int(n), err
}

// Unlinkat removes the directory entry at path relative to dirfd. With
// unix.AT_REMOVEDIR it removes a directory instead.
func Unlinkat(dirfd int, path string, flags int) error {
	p, err := unix.BytePtrFromString(path)
	if err != nil {
		return err
	}
	_, err = result(rawsyscall.Syscall3(native.UNLINKAT, uintptr(dirfd), uintptr(unsafe.Pointer(p)), uintptr(flags)))
	return err
}

// MemfdCreate creates an anonymous memory-backed file and returns its
// descriptor. name shows up in /proc for debugging only.
func MemfdCreate(name string, flags int) (int, error) {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return -1, err
	}
	n, err := result(rawsyscall.Syscall2(native.MEMFD_CREATE, uintptr(unsafe.Pointer(p)), uintptr(flags)))
	return int(n), err
}

// Getrandom fills b with random bytes and returns how many were written.
func Getrandom(b []byte, flags int) (int, error) {
	n, err := result(rawsyscall.Syscall3(native.GETRANDOM, bufPtr(b), uintptr(len(b)), uintptr(flags)))
	return int(n), err
}

// CopyFileRange copies up to n bytes from infd to outfd without passing the
// data through user space, returning the number of bytes copied. A non-nil
// inoff or outoff is read and advanced in place instead of the descriptor's
// own file offset. flags must be zero.
//
// This is the six-argument prototype on every supported architecture.
func CopyFileRange(infd int, inoff *int64, outfd int, outoff *int64, n int, flags int) (int, error) {
	c, err := result(rawsyscall.Syscall6(native.COPY_FILE_RANGE,
		uintptr(infd), uintptr(unsafe.Pointer(inoff)),
		uintptr(outfd), uintptr(unsafe.Pointer(outoff)),
		uintptr(n), uintptr(flags)))
	return int(c), err
}
