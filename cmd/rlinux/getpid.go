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

	"github.com/google/subcommands"
	"rlinux.dev/rlinux/pkg/rawsyscall"
	"rlinux.dev/rlinux/pkg/sysnum/native"
)

// getpidCmd implements subcommands.Command for the "getpid" command.
type getpidCmd struct{}

// Name implements subcommands.Command.Name.
func (*getpidCmd) Name() string {
	return "getpid"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*getpidCmd) Synopsis() string {
	return "issues the zero-argument getpid system call and prints the result"
}

// Usage implements subcommands.Command.Usage.
func (*getpidCmd) Usage() string {
	return "getpid\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (*getpidCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*getpidCmd) Execute(context.Context, *flag.FlagSet, ...any) subcommands.ExitStatus {
	// getpid cannot fail, so the checked accessor is enough.
	fmt.Println(rawsyscall.Syscall0(native.GETPID).Value())
	return subcommands.ExitSuccess
}
