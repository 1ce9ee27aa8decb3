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

//go:build !linux || !(386 || amd64)

package rawsyscall

// Invoking a system call requires architecture-specific assembly. Rather than
// letting dependents hit opaque linker errors, fail right here with a message
// naming the problem.
var _ int = "rawsyscall: target GOOS/GOARCH is not supported; supported targets are linux/386 and linux/amd64"
