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

// Package topology parses and validates the drone hub network described
// by a map file, producing the Network aggregate the scheduler and
// projector consume. Parsing and validation both accumulate every
// failure they find rather than stopping at the first one.
package topology

import (
	"fmt"
	"sort"

	"github.com/hubrelay/hubrelay/pkg/palette"
)

// Zone classifies a Hub's traversal behavior and search preference.
type Zone string

const (
	ZoneNormal     Zone = "normal"
	ZoneBlocked    Zone = "blocked"
	ZoneRestricted Zone = "restricted"
	ZonePriority   Zone = "priority"
)

var validZones = map[Zone]bool{
	ZoneNormal:     true,
	ZoneBlocked:    true,
	ZoneRestricted: true,
	ZonePriority:   true,
}

// TraversalCost returns the number of turns a move into a hub of this
// zone costs, per spec §4.3. A blocked zone falls through to the default
// of 1; that value is never used, because blocked hubs are pruned from
// the adjacency registry before any move is ever costed.
func (z Zone) TraversalCost() int {
	switch z {
	case ZoneRestricted:
		return 2
	default:
		return 1
	}
}

// Hub is a node in the network: the start hub, the end hub, or one of
// the interior hubs.
type Hub struct {
	Name      string
	X, Y      int
	Zone      Zone
	Color     string // resolved palette key, or "" if unset/unknown
	MaxDrones int
}

// Connection is an undirected edge between two hubs, identified by hub
// name. ZoneOne and ZoneTwo preserve the order they were declared in;
// Canonical() returns the order-independent pair used for dedup and for
// reservation-table edge labels.
type Connection struct {
	ZoneOne, ZoneTwo string
	MaxLinkCapacity  int
}

// Canonical returns (lo, hi) with lo <= hi lexicographically, and the
// "lo-hi" edge label used as a reservation-table key (spec §3).
func (c Connection) Canonical() (lo, hi, label string) {
	lo, hi = c.ZoneOne, c.ZoneTwo
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, lo + "-" + hi
}

// Network is the validated aggregate: every cross-entity invariant in
// spec §3 has already been checked by the time a Network exists.
type Network struct {
	NBDrones    int
	StartHub    Hub
	EndHub      Hub
	Hubs        []Hub
	Connections []Connection
}

// HubByName returns every hub in the network (start, end, interior)
// indexed by name.
func (n *Network) HubByName() map[string]Hub {
	out := make(map[string]Hub, len(n.Hubs)+2)
	out[n.StartHub.Name] = n.StartHub
	out[n.EndHub.Name] = n.EndHub
	for _, h := range n.Hubs {
		out[h.Name] = h
	}
	return out
}

// resolveColor applies spec §4.2's "a hub's color that is not a key of
// the palette is silently downgraded to no color" rule. This is the
// only field validation tolerates invalid data for, because color is
// purely cosmetic.
func resolveColor(name string) string {
	if name == "" {
		return ""
	}
	if _, ok := palette.Lookup(name); ok {
		return name
	}
	return ""
}

// sortedConnectionLabels returns a deterministic view of a Network's
// edges: their canonical labels, sorted.
func (n *Network) sortedConnectionLabels() []string {
	labels := make([]string, 0, len(n.Connections))
	for _, c := range n.Connections {
		_, _, label := c.Canonical()
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// String renders a compact, stable summary useful in log lines and
// error messages; never used for the stdout render contract.
func (n *Network) String() string {
	return fmt.Sprintf("Network{drones=%d, start=%s, end=%s, hubs=%d, connections=%d}",
		n.NBDrones, n.StartHub.Name, n.EndHub.Name, len(n.Hubs), len(n.Connections))
}
