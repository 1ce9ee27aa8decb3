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

// Package native aliases the system call numbers of the architecture this
// build targets, so callers written once against these names resolve to the
// correct table without a runtime branch. The binding is a per-GOARCH file
// chosen at compile time; an unsupported target fails the build.
//
// A constant only exists here if the native architecture has the call, so
// code using arch-specific entries (say x86.MMAP2) becomes
// architecture-dependent exactly where it reads an arch package directly.
package native
