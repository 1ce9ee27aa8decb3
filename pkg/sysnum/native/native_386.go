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

//go:build 386

package native

import "rlinux.dev/rlinux/pkg/sysnum/x86"

// The native table for linux/386.
const (
	RESTART_SYSCALL = x86.RESTART_SYSCALL
	EXIT            = x86.EXIT
	FORK            = x86.FORK
	WAITPID         = x86.WAITPID
	EXECVE          = x86.EXECVE
	GETPID          = x86.GETPID
	PTRACE          = x86.PTRACE
	PAUSE           = x86.PAUSE
	KILL            = x86.KILL
	GETPPID         = x86.GETPPID
	WAIT4           = x86.WAIT4
	CLONE           = x86.CLONE
	PRCTL           = x86.PRCTL
	VFORK           = x86.VFORK
	GETTID          = x86.GETTID
	TKILL           = x86.TKILL
	FUTEX           = x86.FUTEX
	EXIT_GROUP      = x86.EXIT_GROUP
	SET_TID_ADDRESS = x86.SET_TID_ADDRESS
	TGKILL          = x86.TGKILL
	EXECVEAT        = x86.EXECVEAT
	RSEQ            = x86.RSEQ
	PIDFD_OPEN      = x86.PIDFD_OPEN
	CLONE3          = x86.CLONE3

	READ            = x86.READ
	WRITE           = x86.WRITE
	OPEN            = x86.OPEN
	CLOSE           = x86.CLOSE
	CREAT           = x86.CREAT
	LSEEK           = x86.LSEEK
	ACCESS          = x86.ACCESS
	SYNC            = x86.SYNC
	DUP             = x86.DUP
	PIPE            = x86.PIPE
	IOCTL           = x86.IOCTL
	FCNTL           = x86.FCNTL
	DUP2            = x86.DUP2
	FTRUNCATE       = x86.FTRUNCATE
	FSYNC           = x86.FSYNC
	FDATASYNC       = x86.FDATASYNC
	LLSEEK          = x86.LLSEEK
	GETDENTS        = x86.GETDENTS
	NEWSELECT       = x86.NEWSELECT
	FLOCK           = x86.FLOCK
	READV           = x86.READV
	WRITEV          = x86.WRITEV
	POLL            = x86.POLL
	PREAD64         = x86.PREAD64
	PWRITE64        = x86.PWRITE64
	SENDFILE        = x86.SENDFILE
	FTRUNCATE64     = x86.FTRUNCATE64
	STAT64          = x86.STAT64
	LSTAT64         = x86.LSTAT64
	FSTAT64         = x86.FSTAT64
	GETDENTS64      = x86.GETDENTS64
	FCNTL64         = x86.FCNTL64
	OPENAT          = x86.OPENAT
	MKDIRAT         = x86.MKDIRAT
	FCHOWNAT        = x86.FCHOWNAT
	FSTATAT64       = x86.FSTATAT64
	UNLINKAT        = x86.UNLINKAT
	RENAMEAT        = x86.RENAMEAT
	LINKAT          = x86.LINKAT
	SYMLINKAT       = x86.SYMLINKAT
	READLINKAT      = x86.READLINKAT
	FCHMODAT        = x86.FCHMODAT
	FACCESSAT       = x86.FACCESSAT
	PPOLL           = x86.PPOLL
	SPLICE          = x86.SPLICE
	SYNC_FILE_RANGE = x86.SYNC_FILE_RANGE
	TEE             = x86.TEE
	DUP3            = x86.DUP3
	PIPE2           = x86.PIPE2
	PREADV          = x86.PREADV
	PWRITEV         = x86.PWRITEV
	MEMFD_CREATE    = x86.MEMFD_CREATE
	COPY_FILE_RANGE = x86.COPY_FILE_RANGE
	PREADV2         = x86.PREADV2
	PWRITEV2        = x86.PWRITEV2
	STATX           = x86.STATX
	CLOSE_RANGE     = x86.CLOSE_RANGE
	OPENAT2         = x86.OPENAT2
	FACCESSAT2      = x86.FACCESSAT2

	LINK     = x86.LINK
	UNLINK   = x86.UNLINK
	CHDIR    = x86.CHDIR
	MKNOD    = x86.MKNOD
	CHMOD    = x86.CHMOD
	MOUNT    = x86.MOUNT
	RENAME   = x86.RENAME
	MKDIR    = x86.MKDIR
	RMDIR    = x86.RMDIR
	UMASK    = x86.UMASK
	CHROOT   = x86.CHROOT
	SYMLINK  = x86.SYMLINK
	READLINK = x86.READLINK
	TRUNCATE = x86.TRUNCATE
	FCHMOD   = x86.FCHMOD
	FCHOWN   = x86.FCHOWN
	STATFS   = x86.STATFS
	FSTATFS  = x86.FSTATFS
	FCHDIR   = x86.FCHDIR
	CHOWN    = x86.CHOWN
	GETCWD   = x86.GETCWD

	BRK      = x86.BRK
	MMAP     = x86.MMAP
	MUNMAP   = x86.MUNMAP
	MPROTECT = x86.MPROTECT
	MSYNC    = x86.MSYNC
	MREMAP   = x86.MREMAP
	MMAP2    = x86.MMAP2
	MADVISE  = x86.MADVISE

	SETUID  = x86.SETUID
	GETUID  = x86.GETUID
	SETGID  = x86.SETGID
	GETGID  = x86.GETGID
	GETEUID = x86.GETEUID
	GETEGID = x86.GETEGID

	ALARM          = x86.ALARM
	RT_SIGRETURN   = x86.RT_SIGRETURN
	RT_SIGACTION   = x86.RT_SIGACTION
	RT_SIGPROCMASK = x86.RT_SIGPROCMASK

	TIME            = x86.TIME
	TIMES           = x86.TIMES
	GETRUSAGE       = x86.GETRUSAGE
	GETTIMEOFDAY    = x86.GETTIMEOFDAY
	SCHED_YIELD     = x86.SCHED_YIELD
	NANOSLEEP       = x86.NANOSLEEP
	CLOCK_GETTIME   = x86.CLOCK_GETTIME
	CLOCK_NANOSLEEP = x86.CLOCK_NANOSLEEP
	PRLIMIT64       = x86.PRLIMIT64

	SOCKETCALL = x86.SOCKETCALL
	UNAME      = x86.UNAME
	GETRANDOM  = x86.GETRANDOM
	SOCKET     = x86.SOCKET
)
