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

package sys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sys/unix"
)

func TestGetpidFamily(t *testing.T) {
	if got, want := Getpid(), os.Getpid(); got != want {
		t.Errorf("Getpid() = %d, want %d", got, want)
	}
	if got, want := Getppid(), os.Getppid(); got != want {
		t.Errorf("Getppid() = %d, want %d", got, want)
	}
	if got := Gettid(); got <= 0 {
		t.Errorf("Gettid() = %d, want > 0", got)
	}
}

func TestPipeRoundTrip(t *testing.T) {
	rfd, wfd, err := Pipe2(unix.O_CLOEXEC)
	if err != nil {
		t.Fatalf("Pipe2 failed: %v", err)
	}
	defer Close(rfd)
	defer Close(wfd)

	payload := []byte("abc123")
	if n, err := Write(wfd, payload); err != nil || n != len(payload) {
		t.Fatalf("Write = (%d, %v), want (%d, nil)", n, err, len(payload))
	}
	buf := make([]byte, 64)
	n, err := Read(rfd, buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if diff := cmp.Diff(payload, buf[:n]); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyReadWrite(t *testing.T) {
	rfd, wfd, err := Pipe2(0)
	if err != nil {
		t.Fatalf("Pipe2 failed: %v", err)
	}
	defer Close(rfd)
	defer Close(wfd)

	if n, err := Write(wfd, nil); err != nil || n != 0 {
		t.Errorf("Write(nil) = (%d, %v), want (0, nil)", n, err)
	}
	if n, err := Read(rfd, nil); err != nil || n != 0 {
		t.Errorf("Read(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestOpenatUnlinkat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	fd, err := Openat(unix.AT_FDCWD, path, unix.O_CREAT|unix.O_RDWR, 0o600)
	if err != nil {
		t.Fatalf("Openat failed: %v", err)
	}
	if n, err := Write(fd, []byte("x")); err != nil || n != 1 {
		t.Fatalf("Write = (%d, %v), want (1, nil)", n, err)
	}
	if err := Close(fd); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := Unlinkat(unix.AT_FDCWD, path, 0); err != nil {
		t.Fatalf("Unlinkat failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still present after Unlinkat: %v", err)
	}
}

func TestPreadPwriteFtruncate(t *testing.T) {
	fd, err := MemfdCreate("sys-test", 0)
	if err != nil {
		t.Fatalf("MemfdCreate failed: %v", err)
	}
	defer Close(fd)

	const off = int64(1 << 20)
	payload := []byte("offset")
	if n, err := Pwrite(fd, payload, off); err != nil || n != len(payload) {
		t.Fatalf("Pwrite = (%d, %v), want (%d, nil)", n, err, len(payload))
	}
	got := make([]byte, len(payload))
	if n, err := Pread(fd, got, off); err != nil || n != len(payload) {
		t.Fatalf("Pread = (%d, %v), want (%d, nil)", n, err, len(payload))
	}
	if diff := cmp.Diff(payload, got); diff != "" {
		t.Errorf("Pread mismatch (-want +got):\n%s", diff)
	}

	if err := Ftruncate(fd, 4); err != nil {
		t.Fatalf("Ftruncate failed: %v", err)
	}
	if n, err := Pread(fd, got, 4); err != nil || n != 0 {
		t.Errorf("Pread past truncated end = (%d, %v), want (0, nil)", n, err)
	}
}

func TestDup(t *testing.T) {
	rfd, wfd, err := Pipe2(0)
	if err != nil {
		t.Fatalf("Pipe2 failed: %v", err)
	}
	defer Close(rfd)
	defer Close(wfd)

	d, err := Dup(wfd)
	if err != nil {
		t.Fatalf("Dup failed: %v", err)
	}
	// Replace the plain dup with a close-on-exec one; Dup3 reuses the slot
	// atomically.
	if nd, err := Dup3(wfd, d, unix.O_CLOEXEC); err != nil || nd != d {
		t.Fatalf("Dup3 = (%d, %v), want (%d, nil)", nd, err, d)
	}
	if n, err := Write(d, []byte("y")); err != nil || n != 1 {
		t.Fatalf("Write through dup = (%d, %v), want (1, nil)", n, err)
	}
	if err := Close(d); err != nil {
		t.Fatalf("Close dup failed: %v", err)
	}
	buf := make([]byte, 1)
	if n, err := Read(rfd, buf); err != nil || n != 1 || buf[0] != 'y' {
		t.Fatalf("Read = (%d, %v, %q)", n, err, buf[:n])
	}
}

func TestCopyFileRangeDescriptorOffsets(t *testing.T) {
	src, err := MemfdCreate("sys-test-src", 0)
	if err != nil {
		t.Fatalf("MemfdCreate failed: %v", err)
	}
	defer Close(src)
	dst, err := MemfdCreate("sys-test-dst", 0)
	if err != nil {
		t.Fatalf("MemfdCreate failed: %v", err)
	}
	defer Close(dst)

	payload := []byte("copy_file_range payload")
	// Pwrite leaves both descriptor offsets at zero, which is what the nil
	// offset arguments then consume.
	if n, err := Pwrite(src, payload, 0); err != nil || n != len(payload) {
		t.Fatalf("Pwrite = (%d, %v), want (%d, nil)", n, err, len(payload))
	}
	n, err := CopyFileRange(src, nil, dst, nil, len(payload), 0)
	if err != nil {
		t.Fatalf("CopyFileRange failed: %v", err)
	}
	if n != len(payload) {
		t.Fatalf("CopyFileRange copied %d bytes, want %d", n, len(payload))
	}
	got := make([]byte, len(payload))
	if n, err := Pread(dst, got, 0); err != nil || n != len(payload) {
		t.Fatalf("Pread = (%d, %v), want (%d, nil)", n, err, len(payload))
	}
	if diff := cmp.Diff(payload, got); diff != "" {
		t.Errorf("copied bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestGetrandom(t *testing.T) {
	buf := make([]byte, 32)
	n, err := Getrandom(buf, 0)
	if err != nil {
		t.Fatalf("Getrandom failed: %v", err)
	}
	if n != len(buf) {
		t.Errorf("Getrandom returned %d bytes, want %d", n, len(buf))
	}
}

func TestSchedYield(t *testing.T) {
	if err := SchedYield(); err != nil {
		t.Errorf("SchedYield failed: %v", err)
	}
}

// With no interrupted call to resume, the kernel reports EINTR. The error
// comes back as data, exactly like any other kernel error.
func TestRestartSyscallIdle(t *testing.T) {
	if _, err := RestartSyscall(); err != unix.EINTR {
		t.Errorf("RestartSyscall = %v, want EINTR", err)
	}
}
