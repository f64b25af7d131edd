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

// Package test holds builders for topology fixtures, the same role the
// teacher's pkg/test package plays for its CRD objects: give every
// other package's test suite a terse way to build a valid starting
// point and mutate only the field under test.
package test

import (
	"fmt"

	"github.com/Pallinder/go-randomdata"

	"github.com/hubrelay/hubrelay/pkg/topology"
)

// HubOptions overrides the defaults RandomHub otherwise fills in.
type HubOptions struct {
	Name      string
	X, Y      int
	Zone      topology.Zone
	Color     string
	MaxDrones int
}

// RandomHub returns a Hub with a randomized name (so fixtures built in
// a loop don't collide) and sensible defaults, overridden by opts if
// given.
func RandomHub(opts ...HubOptions) topology.Hub {
	o := HubOptions{Zone: topology.ZoneNormal, MaxDrones: 1}
	if len(opts) > 0 {
		o = mergeHubOptions(o, opts[0])
	}
	if o.Name == "" {
		o.Name = randomdata.SillyName()
	}
	return topology.Hub{
		Name:      o.Name,
		X:         o.X,
		Y:         o.Y,
		Zone:      o.Zone,
		Color:     o.Color,
		MaxDrones: o.MaxDrones,
	}
}

func mergeHubOptions(base, override HubOptions) HubOptions {
	if override.Name != "" {
		base.Name = override.Name
	}
	base.X, base.Y = override.X, override.Y
	if override.Zone != "" {
		base.Zone = override.Zone
	}
	base.Color = override.Color
	if override.MaxDrones != 0 {
		base.MaxDrones = override.MaxDrones
	}
	return base
}

// Connection returns a Connection between the two named hubs.
func Connection(a, b string, capacity int) topology.Connection {
	return topology.Connection{ZoneOne: a, ZoneTwo: b, MaxLinkCapacity: capacity}
}

// NetworkOptions lets a test override the pieces of a generated
// Network it actually cares about.
type NetworkOptions struct {
	NBDrones    int
	StartHub    topology.Hub
	EndHub      topology.Hub
	Hubs        []topology.Hub
	Connections []topology.Connection
}

// Network returns a minimally valid Network: a start and end hub with
// coordinates (0,0) and (1,0), one drone, and no interior hubs or
// connections, with every field overridable.
func Network(opts NetworkOptions) *topology.Network {
	n := topology.Network{
		NBDrones: 1,
		StartHub: topology.Hub{Name: "S", X: 0, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 1},
		EndHub:   topology.Hub{Name: "E", X: 1, Y: 0, Zone: topology.ZoneNormal, MaxDrones: 1},
	}
	if opts.NBDrones != 0 {
		n.NBDrones = opts.NBDrones
	}
	if opts.StartHub.Name != "" {
		n.StartHub = opts.StartHub
	}
	if opts.EndHub.Name != "" {
		n.EndHub = opts.EndHub
	}
	n.Hubs = opts.Hubs
	n.Connections = opts.Connections
	return &n
}

// MapFile renders a Network back into the line-oriented text format
// spec §6 describes, letting parser/validator tests round-trip through
// the real text format instead of constructing a Network by hand.
func MapFile(n *topology.Network) string {
	out := fmt.Sprintf("nb_drones: %d\n", n.NBDrones)
	out += hubLine("start_hub", n.StartHub)
	out += hubLine("end_hub", n.EndHub)
	for _, h := range n.Hubs {
		out += hubLine("hub", h)
	}
	for _, c := range n.Connections {
		out += fmt.Sprintf("connection: %s-%s [max_link_capacity=%d]\n", c.ZoneOne, c.ZoneTwo, c.MaxLinkCapacity)
	}
	return out
}

func hubLine(kind string, h topology.Hub) string {
	meta := fmt.Sprintf("zone=%s max_drones=%d", h.Zone, h.MaxDrones)
	if h.Color != "" {
		meta += " color=" + h.Color
	}
	return fmt.Sprintf("%s: %s %d %d [%s]\n", kind, h.Name, h.X, h.Y, meta)
}
