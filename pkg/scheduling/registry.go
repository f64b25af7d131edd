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

// Package scheduling implements the time-expanded, reservation-based
// drone router: an adjacency registry built once per network, a
// reservation table mutated once per drone, and the per-drone
// priority-queue search that couples the two.
package scheduling

import "github.com/hubrelay/hubrelay/pkg/topology"

// Move is one outgoing edge from a hub in the adjacency registry,
// carrying everything the search needs to cost and book it without
// going back to the Network.
type Move struct {
	Target         string
	TargetZone     topology.Zone
	Cost           int
	TargetCapacity int
	EdgeCapacity   int
}

// Registry is the adjacency list keyed by hub name, built once from the
// Network before any drone is scheduled (spec §4.3).
type Registry struct {
	network *topology.Network
	hubs    map[string]topology.Hub
	moves   map[string][]Move
}

// NewRegistry builds the adjacency registry. Connections touching a
// blocked hub on either end are omitted in both directions: a blocked
// hub is unreachable even as a transit point.
func NewRegistry(n *topology.Network) *Registry {
	hubs := n.HubByName()
	moves := make(map[string][]Move, len(hubs))
	for name := range hubs {
		moves[name] = nil
	}

	for _, c := range n.Connections {
		u, v := hubs[c.ZoneOne], hubs[c.ZoneTwo]
		if u.Zone == topology.ZoneBlocked || v.Zone == topology.ZoneBlocked {
			continue
		}
		moves[u.Name] = append(moves[u.Name], Move{
			Target:         v.Name,
			TargetZone:     v.Zone,
			Cost:           v.Zone.TraversalCost(),
			TargetCapacity: v.MaxDrones,
			EdgeCapacity:   c.MaxLinkCapacity,
		})
		moves[v.Name] = append(moves[v.Name], Move{
			Target:         u.Name,
			TargetZone:     u.Zone,
			Cost:           u.Zone.TraversalCost(),
			TargetCapacity: u.MaxDrones,
			EdgeCapacity:   c.MaxLinkCapacity,
		})
	}

	return &Registry{network: n, hubs: hubs, moves: moves}
}

// MovesFrom returns the outgoing moves registered for a hub. A hub with
// no non-blocked neighbors returns an empty (non-nil-checked) slice.
func (r *Registry) MovesFrom(hub string) []Move {
	return r.moves[hub]
}

// IsEndpoint reports whether hub is the network's start or end hub,
// which are exempt from node-capacity checks (spec §3's "endpoints are
// a sink for parked drones").
func (r *Registry) IsEndpoint(hub string) bool {
	return hub == r.network.StartHub.Name || hub == r.network.EndHub.Name
}

// HubCapacity returns a hub's max_drones, looked up by name.
func (r *Registry) HubCapacity(hub string) int {
	return r.hubs[hub].MaxDrones
}
