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

//go:build amd64

package native

import "rlinux.dev/rlinux/pkg/sysnum/amd64"

// The native table for linux/amd64.
const (
	CLONE           = amd64.CLONE
	FORK            = amd64.FORK
	VFORK           = amd64.VFORK
	EXECVE          = amd64.EXECVE
	EXIT            = amd64.EXIT
	WAIT4           = amd64.WAIT4
	KILL            = amd64.KILL
	GETPID          = amd64.GETPID
	GETPPID         = amd64.GETPPID
	PTRACE          = amd64.PTRACE
	PRCTL           = amd64.PRCTL
	GETTID          = amd64.GETTID
	TKILL           = amd64.TKILL
	FUTEX           = amd64.FUTEX
	SET_TID_ADDRESS = amd64.SET_TID_ADDRESS
	RESTART_SYSCALL = amd64.RESTART_SYSCALL
	EXIT_GROUP      = amd64.EXIT_GROUP
	TGKILL          = amd64.TGKILL
	EXECVEAT        = amd64.EXECVEAT
	RSEQ            = amd64.RSEQ
	PIDFD_OPEN      = amd64.PIDFD_OPEN
	CLONE3          = amd64.CLONE3

	READ            = amd64.READ
	WRITE           = amd64.WRITE
	OPEN            = amd64.OPEN
	CLOSE           = amd64.CLOSE
	STAT            = amd64.STAT
	FSTAT           = amd64.FSTAT
	LSTAT           = amd64.LSTAT
	POLL            = amd64.POLL
	LSEEK           = amd64.LSEEK
	IOCTL           = amd64.IOCTL
	PREAD64         = amd64.PREAD64
	PWRITE64        = amd64.PWRITE64
	READV           = amd64.READV
	WRITEV          = amd64.WRITEV
	ACCESS          = amd64.ACCESS
	PIPE            = amd64.PIPE
	SELECT          = amd64.SELECT
	DUP             = amd64.DUP
	DUP2            = amd64.DUP2
	SENDFILE        = amd64.SENDFILE
	FCNTL           = amd64.FCNTL
	FLOCK           = amd64.FLOCK
	FSYNC           = amd64.FSYNC
	FDATASYNC       = amd64.FDATASYNC
	FTRUNCATE       = amd64.FTRUNCATE
	GETDENTS        = amd64.GETDENTS
	CREAT           = amd64.CREAT
	GETDENTS64      = amd64.GETDENTS64
	OPENAT          = amd64.OPENAT
	MKDIRAT         = amd64.MKDIRAT
	FCHOWNAT        = amd64.FCHOWNAT
	NEWFSTATAT      = amd64.NEWFSTATAT
	UNLINKAT        = amd64.UNLINKAT
	RENAMEAT        = amd64.RENAMEAT
	LINKAT          = amd64.LINKAT
	SYMLINKAT       = amd64.SYMLINKAT
	READLINKAT      = amd64.READLINKAT
	FCHMODAT        = amd64.FCHMODAT
	FACCESSAT       = amd64.FACCESSAT
	PPOLL           = amd64.PPOLL
	SPLICE          = amd64.SPLICE
	TEE             = amd64.TEE
	SYNC_FILE_RANGE = amd64.SYNC_FILE_RANGE
	DUP3            = amd64.DUP3
	PIPE2           = amd64.PIPE2
	PREADV          = amd64.PREADV
	PWRITEV         = amd64.PWRITEV
	MEMFD_CREATE    = amd64.MEMFD_CREATE
	COPY_FILE_RANGE = amd64.COPY_FILE_RANGE
	PREADV2         = amd64.PREADV2
	PWRITEV2        = amd64.PWRITEV2
	STATX           = amd64.STATX
	CLOSE_RANGE     = amd64.CLOSE_RANGE
	OPENAT2         = amd64.OPENAT2
	FACCESSAT2      = amd64.FACCESSAT2

	TRUNCATE = amd64.TRUNCATE
	GETCWD   = amd64.GETCWD
	CHDIR    = amd64.CHDIR
	FCHDIR   = amd64.FCHDIR
	RENAME   = amd64.RENAME
	MKDIR    = amd64.MKDIR
	RMDIR    = amd64.RMDIR
	LINK     = amd64.LINK
	UNLINK   = amd64.UNLINK
	SYMLINK  = amd64.SYMLINK
	READLINK = amd64.READLINK
	CHMOD    = amd64.CHMOD
	FCHMOD   = amd64.FCHMOD
	CHOWN    = amd64.CHOWN
	FCHOWN   = amd64.FCHOWN
	UMASK    = amd64.UMASK
	STATFS   = amd64.STATFS
	FSTATFS  = amd64.FSTATFS
	CHROOT   = amd64.CHROOT
	MOUNT    = amd64.MOUNT
	MKNOD    = amd64.MKNOD

	MMAP     = amd64.MMAP
	MPROTECT = amd64.MPROTECT
	MUNMAP   = amd64.MUNMAP
	BRK      = amd64.BRK
	MREMAP   = amd64.MREMAP
	MSYNC    = amd64.MSYNC
	MADVISE  = amd64.MADVISE

	GETUID  = amd64.GETUID
	GETGID  = amd64.GETGID
	SETUID  = amd64.SETUID
	SETGID  = amd64.SETGID
	GETEUID = amd64.GETEUID
	GETEGID = amd64.GETEGID

	RT_SIGACTION   = amd64.RT_SIGACTION
	RT_SIGPROCMASK = amd64.RT_SIGPROCMASK
	RT_SIGRETURN   = amd64.RT_SIGRETURN
	PAUSE          = amd64.PAUSE
	ALARM          = amd64.ALARM

	SCHED_YIELD     = amd64.SCHED_YIELD
	NANOSLEEP       = amd64.NANOSLEEP
	GETTIMEOFDAY    = amd64.GETTIMEOFDAY
	GETRUSAGE       = amd64.GETRUSAGE
	TIMES           = amd64.TIMES
	TIME            = amd64.TIME
	CLOCK_GETTIME   = amd64.CLOCK_GETTIME
	CLOCK_NANOSLEEP = amd64.CLOCK_NANOSLEEP
	PRLIMIT64       = amd64.PRLIMIT64

	UNAME     = amd64.UNAME
	SOCKET    = amd64.SOCKET
	GETRANDOM = amd64.GETRANDOM
)
