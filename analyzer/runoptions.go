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

package analyzer

import (
	"fmt"

	"fillmore-labs.com/docraise/internal/run"
)

// fingerprintVersion changes whenever the analysis results for unchanged
// sources and options may change.
const fingerprintVersion = 1

// makeRunOptions returns a [run.Options] struct with overriding [Options] applied.
func makeRunOptions(opts Options) *run.Options {
	r := run.DefaultOptions()
	opts.apply(r)

	return r
}

// Fingerprint identifies the result-relevant configuration of the analyzer.
// Two analyzers with equal fingerprints report the same findings for the same source.
func (a *Analyzer) Fingerprint() string {
	return fmt.Sprintf("v%d;checks=%d;behavior=%d;reraise=%s",
		fingerprintVersion, a.r.Checks.Bits(), a.r.Behavior.Bits(), a.r.Reraise)
}
