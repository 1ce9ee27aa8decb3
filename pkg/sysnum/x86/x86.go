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

// Package x86 lists system call numbers of the 32-bit x86 Linux ABI, as
// declared in arch/x86/entry/syscalls/syscall_32.tbl.
//
// The package carries no build constraint: the table is pure data and stays
// checkable on every build target. Use pkg/sysnum/native for the table of the
// architecture being compiled for.
package x86

// Process control.
const (
	RESTART_SYSCALL = 0
	EXIT            = 1
	FORK            = 2
	WAITPID         = 7
	EXECVE          = 11
	GETPID          = 20
	PTRACE          = 26
	PAUSE           = 29
	KILL            = 37
	GETPPID         = 64
	WAIT4           = 114
	CLONE           = 120
	PRCTL           = 172
	VFORK           = 190
	GETTID          = 224
	TKILL           = 238
	FUTEX           = 240
	EXIT_GROUP      = 252
	SET_TID_ADDRESS = 258
	TGKILL          = 270
	EXECVEAT        = 358
	RSEQ            = 386
	PIDFD_OPEN      = 434
	CLONE3          = 435
)

// File I/O.
const (
	READ            = 3
	WRITE           = 4
	OPEN            = 5
	CLOSE           = 6
	CREAT           = 8
	LSEEK           = 19
	ACCESS          = 33
	SYNC            = 36
	DUP             = 41
	PIPE            = 42
	IOCTL           = 54
	FCNTL           = 55
	DUP2            = 63
	FTRUNCATE       = 93
	FSYNC           = 118
	FDATASYNC       = 148
	LLSEEK          = 140
	GETDENTS        = 141
	NEWSELECT       = 142
	FLOCK           = 143
	READV           = 145
	WRITEV          = 146
	POLL            = 168
	PREAD64         = 180
	PWRITE64        = 181
	SENDFILE        = 187
	FTRUNCATE64     = 194
	STAT64          = 195
	LSTAT64         = 196
	FSTAT64         = 197
	GETDENTS64      = 220
	FCNTL64         = 221
	OPENAT          = 295
	MKDIRAT         = 296
	FCHOWNAT        = 298
	FSTATAT64       = 300
	UNLINKAT        = 301
	RENAMEAT        = 302
	LINKAT          = 303
	SYMLINKAT       = 304
	READLINKAT      = 305
	FCHMODAT        = 306
	FACCESSAT       = 307
	PPOLL           = 309
	SPLICE          = 313
	SYNC_FILE_RANGE = 314
	TEE             = 315
	DUP3            = 330
	PIPE2           = 331
	PREADV          = 333
	PWRITEV         = 334
	MEMFD_CREATE    = 356
	COPY_FILE_RANGE = 377
	PREADV2         = 378
	PWRITEV2        = 379
	STATX           = 383
	CLOSE_RANGE     = 436
	OPENAT2         = 437
	FACCESSAT2      = 439
)

// Filesystem.
const (
	LINK     = 9
	UNLINK   = 10
	CHDIR    = 12
	MKNOD    = 14
	CHMOD    = 15
	MOUNT    = 21
	RENAME   = 38
	MKDIR    = 39
	RMDIR    = 40
	UMASK    = 60
	CHROOT   = 61
	SYMLINK  = 83
	READLINK = 85
	TRUNCATE = 92
	FCHMOD   = 94
	FCHOWN   = 95
	STATFS   = 99
	FSTATFS  = 100
	FCHDIR   = 133
	CHOWN    = 182
	GETCWD   = 183
)

// Memory management.
const (
	BRK      = 45
	MMAP     = 90
	MUNMAP   = 91
	MPROTECT = 125
	MSYNC    = 144
	MREMAP   = 163
	MMAP2    = 192
	MADVISE  = 219
)

// Credentials.
const (
	SETUID    = 23
	GETUID    = 24
	SETGID    = 46
	GETGID    = 47
	GETEUID   = 49
	GETEGID   = 50
	GETUID32  = 199
	GETGID32  = 200
	GETEUID32 = 201
	GETEGID32 = 202
)

// Signals.
const (
	ALARM          = 27
	RT_SIGRETURN   = 173
	RT_SIGACTION   = 174
	RT_SIGPROCMASK = 175
)

// Time and scheduling.
const (
	TIME            = 13
	TIMES           = 43
	GETRUSAGE       = 77
	GETTIMEOFDAY    = 78
	SCHED_YIELD     = 158
	NANOSLEEP       = 162
	CLOCK_GETTIME   = 265
	CLOCK_NANOSLEEP = 267
	PRLIMIT64       = 340
)

// Misc.
const (
	SOCKETCALL      = 102
	UNAME           = 122
	SET_THREAD_AREA = 243
	GETRANDOM       = 355
	SOCKET          = 359
)
