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

package timeline_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/hubrelay/hubrelay/pkg/scheduling"
	"github.com/hubrelay/hubrelay/pkg/test"
	"github.com/hubrelay/hubrelay/pkg/timeline"
	"github.com/hubrelay/hubrelay/pkg/topology"
)

func TestTimeline(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Timeline")
}

var _ = Describe("Project", func() {
	It("places every drone at the start hub at turn 0", func() {
		n := test.Network(test.NetworkOptions{
			NBDrones: 2,
			StartHub: topology.Hub{Name: "S", X: 0, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			EndHub:   topology.Hub{Name: "E", X: 1, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
		})
		paths := map[string]scheduling.Path{
			"D1": {{Hub: "E", Turn: 1}},
			"D2": {{Hub: "S", Turn: 1}, {Hub: "E", Turn: 2}},
		}
		tl := timeline.Project(n, paths)
		Expect(tl[0]["S"]).To(ConsistOf("D1", "D2"))
	})

	It("materializes intermediate turns for a multi-turn edge traversal", func() {
		// A restricted-zone hop costs two turns; a drone that departs S
		// at turn 0 and lands on restricted hub R at turn 2 must show
		// occupancy on the canonical R-S edge at turn 1 (spec §4.5).
		n := test.Network(test.NetworkOptions{
			NBDrones: 1,
			StartHub: topology.Hub{Name: "S", X: 0, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			EndHub:   topology.Hub{Name: "E", X: 2, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			Hubs: []topology.Hub{
				{Name: "R", X: 1, Y: 0, Zone: topology.ZoneRestricted, MaxDrones: 10},
			},
			Connections: []topology.Connection{
				test.Connection("S", "R", 10),
				test.Connection("R", "E", 10),
			},
		})
		paths := map[string]scheduling.Path{
			"D1": {{Hub: "R", Turn: 2}, {Hub: "E", Turn: 3}},
		}
		tl := timeline.Project(n, paths)
		Expect(tl[1]["R-S"]).To(ConsistOf("D1"))
		Expect(tl[2]["R"]).To(ConsistOf("D1"))
	})

	It("projects a direct first hop out of the start hub at its arrival turn", func() {
		// See SPEC_FULL.md Open Question 4: the implicit (start, 0)
		// anchor is walked just like every other stamp.
		n := test.Network(test.NetworkOptions{
			NBDrones: 1,
			StartHub: topology.Hub{Name: "S", X: 0, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			EndHub:   topology.Hub{Name: "E", X: 1, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			Connections: []topology.Connection{
				test.Connection("S", "E", 1),
			},
		})
		paths := map[string]scheduling.Path{
			"D1": {{Hub: "E", Turn: 1}},
		}
		tl := timeline.Project(n, paths)
		Expect(tl[1]["E"]).To(ConsistOf("D1"))
	})

	It("covers every turn from 0 through the latest stamp across all drones", func() {
		n := test.Network(test.NetworkOptions{
			NBDrones: 2,
			StartHub: topology.Hub{Name: "S", X: 0, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			EndHub:   topology.Hub{Name: "E", X: 1, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			Connections: []topology.Connection{
				test.Connection("S", "E", 10),
			},
		})
		paths := map[string]scheduling.Path{
			"D1": {{Hub: "E", Turn: 1}},
			"D2": {{Hub: "S", Turn: 1}, {Hub: "S", Turn: 2}, {Hub: "E", Turn: 3}},
		}
		tl := timeline.Project(n, paths)
		for t := 0; t <= 3; t++ {
			Expect(tl).To(HaveKey(t))
		}
	})

	It("produces the same timeline given the same paths twice (idempotence)", func() {
		n := test.Network(test.NetworkOptions{
			NBDrones: 1,
			StartHub: topology.Hub{Name: "S", X: 0, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			EndHub:   topology.Hub{Name: "E", X: 1, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
			Connections: []topology.Connection{
				test.Connection("S", "E", 10),
			},
		})
		paths := map[string]scheduling.Path{"D1": {{Hub: "E", Turn: 1}}}
		Expect(timeline.Project(n, paths)).To(Equal(timeline.Project(n, paths)))
	})
})
