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

package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hubrelay/hubrelay/pkg/render"
	"github.com/hubrelay/hubrelay/pkg/scheduling"
	"github.com/hubrelay/hubrelay/pkg/test"
	"github.com/hubrelay/hubrelay/pkg/timeline"
	"github.com/hubrelay/hubrelay/pkg/topology"
)

func TestTextEmitsOneLinePerTurn(t *testing.T) {
	n := test.Network(test.NetworkOptions{
		NBDrones: 1,
		StartHub: topology.Hub{Name: "S", X: 0, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
		EndHub:   topology.Hub{Name: "E", X: 1, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
		Connections: []topology.Connection{
			test.Connection("S", "E", 10),
		},
	})
	paths := map[string]scheduling.Path{"D1": {{Hub: "E", Turn: 1}}}
	tl := timeline.Project(n, paths)

	var buf bytes.Buffer
	if err := render.Text(&buf, n, paths, tl); err != nil {
		t.Fatalf("Text: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (one turn elapsed)", len(lines))
	}
	if lines[0] != "D1-E" {
		t.Errorf("line = %q, want %q", lines[0], "D1-E")
	}
}

func TestTextOmitsMidEdgeOccupancyTokens(t *testing.T) {
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
	paths := map[string]scheduling.Path{"D1": {{Hub: "R", Turn: 2}, {Hub: "E", Turn: 3}}}
	tl := timeline.Project(n, paths)

	var buf bytes.Buffer
	if err := render.Text(&buf, n, paths, tl); err != nil {
		t.Fatalf("Text: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != "" {
		t.Errorf("turn 1 (mid-edge) line = %q, want blank", lines[0])
	}
	if lines[1] != "D1-R" {
		t.Errorf("turn 2 line = %q, want %q", lines[1], "D1-R")
	}
	if lines[2] != "D1-E" {
		t.Errorf("turn 3 line = %q, want %q", lines[2], "D1-E")
	}
}

func TestTextEmitsBlankLineForWaitTurn(t *testing.T) {
	n := test.Network(test.NetworkOptions{
		NBDrones: 1,
		StartHub: topology.Hub{Name: "S", X: 0, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
		EndHub:   topology.Hub{Name: "E", X: 1, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 10},
		Connections: []topology.Connection{
			test.Connection("S", "E", 10),
		},
	})
	paths := map[string]scheduling.Path{"D1": {{Hub: "S", Turn: 1}, {Hub: "E", Turn: 2}}}
	tl := timeline.Project(n, paths)

	var buf bytes.Buffer
	if err := render.Text(&buf, n, paths, tl); err != nil {
		t.Fatalf("Text: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "" {
		t.Errorf("wait-turn line = %q, want blank", lines[0])
	}
	if lines[1] != "D1-E" {
		t.Errorf("arrival line = %q, want %q", lines[1], "D1-E")
	}
}
