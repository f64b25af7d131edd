/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package topology

import (
	"fmt"

	"go.uber.org/multierr"
)

// Kind classifies a Diagnostic the way spec §7 groups parse/validation
// failures, so a caller can report counts per kind if it wants to.
type Kind string

const (
	KindSyntactic Kind = "syntactic"
	KindStructural Kind = "structural"
	KindSemantic   Kind = "semantic"
)

// Diagnostic is a single accumulated parse or validation failure. Line
// is 1-indexed and zero when the failure isn't tied to a single line
// (e.g. a missing singleton record, or a cross-entity validation error).
type Diagnostic struct {
	Kind    Kind
	Message string
	Line    int
}

func (d Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

// Diagnostics accumulates every failure detected in a phase (parsing or
// validation) so the caller can report them together instead of
// aborting on the first one, per spec §7's "accumulate and report all
// errors in a given phase before aborting" policy. It composes on top
// of multierr the same way the teacher's Results/Requirements types
// fold independent per-item errors into one reportable error.
type Diagnostics struct {
	err error
}

// Add appends a failure. A nil Diagnostics value is not usable; always
// start from an empty Diagnostics{}.
func (d *Diagnostics) Add(kind Kind, line int, format string, args ...interface{}) {
	d.err = multierr.Append(d.err, Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line})
}

// HasErrors reports whether any diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	return d.err != nil
}

// Err returns the accumulated diagnostics as a single error, or nil if
// none were recorded. Use multierr.Errors to recover the individual
// Diagnostic values.
func (d *Diagnostics) Err() error {
	return d.err
}

// Errors returns the individual diagnostics recorded, in the order they
// were added.
func (d *Diagnostics) Errors() []Diagnostic {
	out := make([]Diagnostic, 0, len(multierr.Errors(d.err)))
	for _, e := range multierr.Errors(d.err) {
		if diag, ok := e.(Diagnostic); ok {
			out = append(out, diag)
		}
	}
	return out
}
