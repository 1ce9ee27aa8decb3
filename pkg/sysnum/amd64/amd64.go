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

// Package amd64 lists system call numbers of the x86-64 Linux ABI, as
// declared in arch/x86/entry/syscalls/syscall_64.tbl.
//
// The package carries no build constraint: the table is pure data and stays
// checkable on every build target. Use pkg/sysnum/native for the table of the
// architecture being compiled for.
package amd64

// Process control.
const (
	CLONE           = 56
	FORK            = 57
	VFORK           = 58
	EXECVE          = 59
	EXIT            = 60
	WAIT4           = 61
	KILL            = 62
	GETPID          = 39
	GETPPID         = 110
	PTRACE          = 101
	PRCTL           = 157
	GETTID          = 186
	TKILL           = 200
	FUTEX           = 202
	SET_TID_ADDRESS = 218
	RESTART_SYSCALL = 219
	EXIT_GROUP      = 231
	TGKILL          = 234
	EXECVEAT        = 322
	RSEQ            = 334
	PIDFD_OPEN      = 434
	CLONE3          = 435
)

// File I/O.
const (
	READ            = 0
	WRITE           = 1
	OPEN            = 2
	CLOSE           = 3
	STAT            = 4
	FSTAT           = 5
	LSTAT           = 6
	POLL            = 7
	LSEEK           = 8
	IOCTL           = 16
	PREAD64         = 17
	PWRITE64        = 18
	READV           = 19
	WRITEV          = 20
	ACCESS          = 21
	PIPE            = 22
	SELECT          = 23
	DUP             = 32
	DUP2            = 33
	SENDFILE        = 40
	FCNTL           = 72
	FLOCK           = 73
	FSYNC           = 74
	FDATASYNC       = 75
	FTRUNCATE       = 77
	GETDENTS        = 78
	CREAT           = 85
	GETDENTS64      = 217
	OPENAT          = 257
	MKDIRAT         = 258
	FCHOWNAT        = 260
	NEWFSTATAT      = 262
	UNLINKAT        = 263
	RENAMEAT        = 264
	LINKAT          = 265
	SYMLINKAT       = 266
	READLINKAT      = 267
	FCHMODAT        = 268
	FACCESSAT       = 269
	PPOLL           = 271
	SPLICE          = 275
	TEE             = 276
	SYNC_FILE_RANGE = 277
	DUP3            = 292
	PIPE2           = 293
	PREADV          = 295
	PWRITEV         = 296
	MEMFD_CREATE    = 319
	COPY_FILE_RANGE = 326
	PREADV2         = 327
	PWRITEV2        = 328
	STATX           = 332
	CLOSE_RANGE     = 436
	OPENAT2         = 437
	FACCESSAT2      = 439
)

// Filesystem.
const (
	TRUNCATE = 76
	GETCWD   = 79
	CHDIR    = 80
	FCHDIR   = 81
	RENAME   = 82
	MKDIR    = 83
	RMDIR    = 84
	LINK     = 86
	UNLINK   = 87
	SYMLINK  = 88
	READLINK = 89
	CHMOD    = 90
	FCHMOD   = 91
	CHOWN    = 92
	FCHOWN   = 93
	UMASK    = 95
	STATFS   = 137
	FSTATFS  = 138
	CHROOT   = 161
	MOUNT    = 165
	MKNOD    = 133
)

// Memory management.
const (
	MMAP     = 9
	MPROTECT = 10
	MUNMAP   = 11
	BRK      = 12
	MREMAP   = 25
	MSYNC    = 26
	MADVISE  = 28
)

// Credentials.
const (
	GETUID  = 102
	GETGID  = 104
	SETUID  = 105
	SETGID  = 106
	GETEUID = 107
	GETEGID = 108
)

// Signals.
const (
	RT_SIGACTION   = 13
	RT_SIGPROCMASK = 14
	RT_SIGRETURN   = 15
	PAUSE          = 34
	ALARM          = 37
)

// Time and scheduling.
const (
	SCHED_YIELD     = 24
	NANOSLEEP       = 35
	GETTIMEOFDAY    = 96
	GETRUSAGE       = 98
	TIMES           = 100
	TIME            = 201
	CLOCK_GETTIME   = 228
	CLOCK_NANOSLEEP = 230
	PRLIMIT64       = 302
)

// Misc.
const (
	UNAME     = 63
	SOCKET    = 41
	GETRANDOM = 318
)
