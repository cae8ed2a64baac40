// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer_test

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"

	. "fillmore-labs.com/docraise/analyzer"
)

func TestRegisterFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "Unset",
			args: nil,
			want: "",
		},
		{
			name: "Disable",
			args: []string{"--dr002=false"},
			want: "dr002=false",
		},
		{
			name: "Enable",
			args: []string{"--generated"},
			want: "generated=true",
		},
		{
			name: "Reraise",
			args: []string{"--reraise", "all", "--dr001=off"},
			want: "dr001=false reraise=all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			options := RegisterFlags(fs)

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			var got []string
			for _, opt := range options() {
				got = append(got, opt.LogAttr().String())
			}

			if got := strings.Join(got, " "); got != tt.want {
				t.Errorf("Options = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRegisterFlagsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "Bool", args: []string{"--dr001=maybe"}},
		{name: "Reraise", args: []string{"--reraise=first"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.SetOutput(&strings.Builder{})
			_ = RegisterFlags(fs)

			if err := fs.Parse(tt.args); err == nil {
				t.Error("Expected parse error")
			}
		})
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	_ = RegisterFlags(fs)

	usage := fs.FlagUsages()

	for _, want := range []string{"--dr001", "--dr002", "--generated", "--reraise last|all"} {
		if !strings.Contains(usage, want) {
			t.Errorf("FlagUsages() = %q, want to contain %q", usage, want)
		}
	}
}
