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
	"rlinux.dev/rlinux/pkg/sys"
)

// pipeCmd implements subcommands.Command for the "pipe" command.
type pipeCmd struct{}

// Name implements subcommands.Command.Name.
func (*pipeCmd) Name() string {
	return "pipe"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*pipeCmd) Synopsis() string {
	return "round-trips text through a pipe using raw read/write calls"
}

// Usage implements subcommands.Command.Usage.
func (*pipeCmd) Usage() string {
	return "pipe <text>\n"
}

// SetFlags implements subcommands.Command.SetFlags.
func (*pipeCmd) SetFlags(*flag.FlagSet) {}

// Execute implements subcommands.Command.Execute.
func (*pipeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	text := []byte(f.Arg(0))

	rfd, wfd, err := sys.Pipe2(0)
	if err != nil {
		fatalf("pipe2: %v", err)
	}
	defer sys.Close(rfd)
	defer sys.Close(wfd)

	n, err := sys.Write(wfd, text)
	if err != nil {
		fatalf("write: %v", err)
	}
	buf := make([]byte, len(text))
	m, err := sys.Read(rfd, buf)
	if err != nil {
		fatalf("read: %v", err)
	}
	fmt.Printf("wrote %d bytes, read %d bytes: %q\n", n, m, buf[:m])
	return subcommands.ExitSuccess
}
