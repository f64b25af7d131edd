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

// Package render emits the canonical machine-checkable text stream
// described by spec §4.6/§6. It is the only consumer of Timeline that
// this module implements itself; the graphical and terminal-dashboard
// renderers are external collaborators (spec §1).
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hubrelay/hubrelay/pkg/scheduling"
	"github.com/hubrelay/hubrelay/pkg/timeline"
	"github.com/hubrelay/hubrelay/pkg/topology"
)

// Text writes one line per turn, from turn 1 through the timeline's
// last turn, each line a space-separated list of "<drone>-<hub>"
// tokens for drones whose location changed since their previous
// location. A turn with no transitions emits a blank line.
func Text(w io.Writer, network *topology.Network, paths map[string]scheduling.Path, tl timeline.Timeline) error {
	maxTurn := 0
	for t := range tl {
		if t > maxTurn {
			maxTurn = t
		}
	}

	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	last := make(map[string]string, len(ids))
	for _, id := range ids {
		last[id] = network.StartHub.Name
	}

	hubNames := map[string]bool{}
	for name := range network.HubByName() {
		hubNames[name] = true
	}

	for t := 1; t <= maxTurn; t++ {
		var tokens []string
		keys := make([]string, 0, len(tl[t]))
		for k := range tl[t] {
			// Mid-edge occupancy keys (canonical "A-B" labels) never
			// represent a location the drone has arrived at; only hub
			// keys can trigger a transition token (spec §4.6).
			if hubNames[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)

		for _, key := range keys {
			for _, id := range tl[t][key] {
				if last[id] == key {
					continue
				}
				tokens = append(tokens, fmt.Sprintf("%s-%s", id, key))
				last[id] = key
			}
		}
		if _, err := fmt.Fprintln(w, strings.Join(tokens, " ")); err != nil {
			return err
		}
	}
	return nil
}
