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

package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"

	"github.com/google/subcommands"
	"rlinux.dev/rlinux/pkg/rawsyscall"
)

// invokeCmd implements subcommands.Command for the "invoke" command.
type invokeCmd struct{}

// Name implements subcommands.Command.Name.
func (*invokeCmd) Name() string {
	return "invoke"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*invokeCmd) Synopsis() string {
	return "issues an arbitrary system call with integer arguments"
}

// Usage implements subcommands.Command.Usage.
func (*invokeCmd) Usage() string {
	return `invoke <nr> [arg ...] - issue system call nr with up to six arguments.

Numbers take the usual 0x/0o/0b prefixes. The call is issued exactly as
given: nothing validates the number or the arguments, and pointer-taking
calls cannot be expressed here. The result prints as either the success
value or the decoded errno.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (*invokeCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*invokeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 7 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	words := make([]uintptr, f.NArg())
	for i := range words {
		w, err := strconv.ParseUint(f.Arg(i), 0, strconv.IntSize)
		if err != nil {
			fatalf("bad argument %q: %v", f.Arg(i), err)
		}
		words[i] = uintptr(w)
	}

	nr, a := words[0], words[1:]
	var r rawsyscall.Retval
	switch len(a) {
	case 0:
		r = rawsyscall.Syscall0(nr)
	case 1:
		r = rawsyscall.Syscall1(nr, a[0])
	case 2:
		r = rawsyscall.Syscall2(nr, a[0], a[1])
	case 3:
		r = rawsyscall.Syscall3(nr, a[0], a[1], a[2])
	case 4:
		r = rawsyscall.Syscall4(nr, a[0], a[1], a[2], a[3])
	case 5:
		r = rawsyscall.Syscall5(nr, a[0], a[1], a[2], a[3], a[4])
	case 6:
		r = rawsyscall.Syscall6(nr, a[0], a[1], a[2], a[3], a[4], a[5])
	}

	v, errno := r.Result()
	if errno != 0 {
		fmt.Printf("errno %d (%v)\n", int(errno), errno)
		return subcommands.ExitFailure
	}
	fmt.Printf("%d\n", v)
	return subcommands.ExitSuccess
}
