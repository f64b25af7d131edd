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
	"io"

	"github.com/samber/lo"
)

// Build converts a Parsed dictionary into a validated Network,
// accumulating every cross-entity failure from spec §3/§4.2 rather than
// stopping at the first one. A non-nil Network is only ever returned
// alongside an empty Diagnostics.
func Build(p *Parsed) (*Network, *Diagnostics) {
	diags := &Diagnostics{}

	if p.StartHub == nil || p.EndHub == nil {
		diags.Add(KindStructural, 0, "cannot build network without both start_hub and end_hub")
		return nil, diags
	}

	start := hubFromRaw(*p.StartHub, diags)
	end := hubFromRaw(*p.EndHub, diags)
	hubs := make([]Hub, 0, len(p.Hubs))
	for _, rh := range p.Hubs {
		hubs = append(hubs, hubFromRaw(rh, diags))
	}

	// Name uniqueness across start, end, and interior.
	seenNames := map[string]bool{}
	for _, h := range append([]Hub{start, end}, hubs...) {
		if seenNames[h.Name] {
			diags.Add(KindSemantic, 0, "duplicate hub name: %q", h.Name)
		}
		seenNames[h.Name] = true
	}

	// Coordinate uniqueness across start, end, and interior.
	seenCoords := map[[2]int]string{}
	for _, h := range append([]Hub{start, end}, hubs...) {
		coord := [2]int{h.X, h.Y}
		if other, dup := seenCoords[coord]; dup {
			diags.Add(KindSemantic, 0, "hubs %q and %q share coordinates (%d,%d)", other, h.Name, h.X, h.Y)
			continue
		}
		seenCoords[coord] = h.Name
	}

	if start.Name == end.Name {
		diags.Add(KindSemantic, 0, "start_hub and end_hub must have distinct names")
	}
	if start.X == end.X && start.Y == end.Y {
		diags.Add(KindSemantic, 0, "start_hub and end_hub must have distinct coordinates")
	}

	connections := make([]Connection, 0, len(p.Connections))
	canonicalSeen := map[string]bool{}
	for _, rc := range p.Connections {
		if rc.zoneOne == rc.zoneTwo {
			diags.Add(KindSemantic, rc.line, "connection %s-%s is a self-loop", rc.zoneOne, rc.zoneTwo)
			continue
		}
		if !seenNames[rc.zoneOne] {
			diags.Add(KindSemantic, rc.line, "connection endpoint %q is not a known hub", rc.zoneOne)
			continue
		}
		if !seenNames[rc.zoneTwo] {
			diags.Add(KindSemantic, rc.line, "connection endpoint %q is not a known hub", rc.zoneTwo)
			continue
		}
		conn := Connection{ZoneOne: rc.zoneOne, ZoneTwo: rc.zoneTwo, MaxLinkCapacity: rc.maxLinkCapacity}
		_, _, label := conn.Canonical()
		if canonicalSeen[label] {
			diags.Add(KindSemantic, rc.line, "duplicate connection: %s", label)
			continue
		}
		canonicalSeen[label] = true
		connections = append(connections, conn)
	}

	if p.NBDrones < 1 {
		diags.Add(KindSemantic, 0, "nb_drones must be at least 1, got %d", p.NBDrones)
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return &Network{
		NBDrones:    p.NBDrones,
		StartHub:    start,
		EndHub:      end,
		Hubs:        hubs,
		Connections: connections,
	}, diags
}

// hubFromRaw resolves a rawHub's metadata into a Hub, validating the
// zone classification and silently downgrading an unrecognized color
// per spec §4.2.
func hubFromRaw(rh rawHub, diags *Diagnostics) Hub {
	zone := Zone(rh.zone)
	if !validZones[zone] {
		diags.Add(KindSemantic, rh.line, "hub %q has invalid zone classification: %q", rh.name, rh.zone)
	}
	return Hub{
		Name:      rh.name,
		X:         rh.x,
		Y:         rh.y,
		Zone:      zone,
		Color:     resolveColor(rh.color),
		MaxDrones: rh.maxDrones,
	}
}

// ParseAndBuild is a convenience wrapper combining Parse and Build, used
// by tests that only care about the final Network. The driver calls
// Parse and Build separately.
func ParseAndBuild(r io.Reader) (*Network, error) {
	parsed, diags := Parse(r)
	if diags.HasErrors() {
		return nil, diags.Err()
	}
	network, diags := Build(parsed)
	if diags.HasErrors() {
		return nil, diags.Err()
	}
	return network, nil
}

// HubNames is a small lo-based helper returning every hub name in a
// deterministic order: start, end, then interior hubs as declared.
func HubNames(n *Network) []string {
	names := lo.Map(append([]Hub{n.StartHub, n.EndHub}, n.Hubs...), func(h Hub, _ int) string {
		return h.Name
	})
	return names
}
