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

// Package timeline projects the per-drone path map produced by the
// scheduler into a per-turn map of occupancy, suitable for step-by-step
// replay by an external renderer (spec §4.5).
package timeline

import (
	"sort"

	"github.com/hubrelay/hubrelay/pkg/scheduling"
	"github.com/hubrelay/hubrelay/pkg/topology"
)

// Occupancy maps a reservation-table-style key (hub name, or canonical
// edge label) to the drone ids present there at a given turn.
type Occupancy map[string][]string

// Timeline maps turn -> Occupancy, covering every turn from 0 through
// the largest turn appearing in any drone's path.
type Timeline map[int]Occupancy

// Project builds the Timeline from the scheduler's accepted paths.
// Every drone is present at the start hub at turn 0 regardless of
// whether its first stamp is a wait or a move — spec §4.5's
// initial-condition override.
func Project(network *topology.Network, paths map[string]scheduling.Path) Timeline {
	maxTurn := 0
	for _, p := range paths {
		for _, st := range p {
			if st.Turn > maxTurn {
				maxTurn = st.Turn
			}
		}
	}

	tl := make(Timeline, maxTurn+1)
	for t := 0; t <= maxTurn; t++ {
		tl[t] = Occupancy{}
	}

	// Stable iteration order over drone ids keeps the timeline
	// deterministic (spec §8 property 8), independent of Go's
	// randomized map order.
	ids := make([]string, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		path := paths[id]
		prevHub := network.StartHub.Name
		prevTurn := 0
		for _, st := range path {
			tl[st.Turn][st.Hub] = append(tl[st.Turn][st.Hub], id)
			if st.Hub != prevHub {
				diff := st.Turn - prevTurn
				if diff > 1 {
					_, _, label := topology.Connection{ZoneOne: prevHub, ZoneTwo: st.Hub}.Canonical()
					for k := 1; k < diff; k++ {
						tl[prevTurn+k][label] = append(tl[prevTurn+k][label], id)
					}
				}
			}
			prevHub, prevTurn = st.Hub, st.Turn
		}
	}

	for _, id := range ids {
		tl[0][network.StartHub.Name] = append(tl[0][network.StartHub.Name], id)
	}

	return tl
}
