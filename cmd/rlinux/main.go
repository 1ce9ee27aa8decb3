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

// Binary rlinux demonstrates raw system call invocation. Every subcommand
// goes through the seven pkg/rawsyscall entry points and the Retval contract;
// none of them touches the runtime's own syscall plumbing.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(new(getpidCmd), "")
	subcommands.Register(new(invokeCmd), "")
	subcommands.Register(new(pipeCmd), "")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
