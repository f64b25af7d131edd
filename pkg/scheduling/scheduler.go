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

package scheduling

import (
	"container/heap"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/hubrelay/hubrelay/pkg/topology"
)

// Stamp is one (hub, turn) entry in a drone's path (spec §3).
type Stamp struct {
	Hub  string
	Turn int
}

// Path is a drone's full ordered stamp sequence, from the turn it
// leaves the start hub to the turn it arrives at the end hub.
type Path []Stamp

// state is one frontier entry: the 4-tuple from spec §4.4. Path is
// stored in full on every state, matching the teacher's straightforward
// "reference implementation" posture (spec §9 design notes discuss a
// parent-index arena as the performance-oriented alternative; see
// DESIGN.md for why this port keeps the simpler form).
type state struct {
	turn     int
	priority int
	hub      string
	path     Path
	seq      int // monotonic tiebreaker, preserves insertion order
}

// frontier is a min-heap ordered by (turn, priority), ties broken by
// insertion order, per spec §4.4.
type frontier []state

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].turn != f[j].turn {
		return f[i].turn < f[j].turn
	}
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(state)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// visitedKey is a (hub, turn) pair, the unit the search dedupes on.
type visitedKey struct {
	hub  string
	turn int
}

// Scheduler runs the per-drone time-expanded search against a shared
// reservation table (spec §4.4), committing each accepted path before
// moving on to the next drone (spec §5: drones are solved strictly
// sequentially).
type Scheduler struct {
	network  *topology.Network
	registry *Registry
	table    *ReservationTable
	log      logr.Logger
	horizon  int

	// Explored counts frontier pops per drone index (1-based), surfaced
	// through pkg/metrics by the driver. Read-only bookkeeping; never
	// consulted by the search itself.
	Explored []int
}

// NewScheduler builds the adjacency registry and an empty reservation
// table for network.
func NewScheduler(network *topology.Network, log logr.Logger) *Scheduler {
	registry := NewRegistry(network)
	return &Scheduler{
		network:  network,
		registry: registry,
		table:    NewReservationTable(registry),
		log:      log,
		horizon:  searchHorizon(network),
	}
}

// searchHorizon bounds how many turns findPath will ever wait out before
// giving up on an unreachable end hub (spec §4.4 Termination). Capacity
// contention alone can never strand a drone forever — it can always
// wait at the uncapped start endpoint until a contested edge or hub
// frees up — so the only genuinely unplaceable case is a disconnected
// end hub, and any turn beyond "every hub has had a chance to clear
// every other drone's bookings, at the most expensive traversal cost"
// is wasted search, not a missed solution. The margin below is
// deliberately generous rather than tight.
func searchHorizon(n *topology.Network) int {
	hubs := len(n.Hubs) + 2
	return hubs * topology.ZoneRestricted.TraversalCost() * (n.NBDrones + 1)
}

// Solve schedules every drone in order D1..D_nb_drones and returns the
// map of drone id to accepted path. A drone whose search exhausts the
// frontier without reaching the end hub is omitted from the result —
// not an error (spec §4.4, §7).
func (s *Scheduler) Solve() map[string]Path {
	paths := make(map[string]Path, s.network.NBDrones)
	s.Explored = make([]int, s.network.NBDrones+1)

	for i := 1; i <= s.network.NBDrones; i++ {
		id := fmt.Sprintf("D%d", i)
		path, explored := s.findPath(s.network.StartHub.Name, s.network.EndHub.Name)
		s.Explored[i] = explored
		if path == nil {
			s.log.Info("drone unplaceable in current reservation state", "drone", id)
			continue
		}
		paths[id] = path
		s.commit(id, path)
	}
	return paths
}

// findPath runs the priority-ordered frontier search described in spec
// §4.4 and returns the accepted path for the first (end, t) popped, or
// nil if the frontier empties first. The second return value is the
// number of states popped, for observability only.
func (s *Scheduler) findPath(start, end string) (Path, int) {
	visited := map[visitedKey]bool{}
	f := &frontier{}
	heap.Init(f)

	seq := 0
	heap.Push(f, state{turn: 0, priority: 0, hub: start, path: nil, seq: seq})
	seq++

	popped := 0
	for f.Len() > 0 {
		cur := heap.Pop(f).(state)
		popped++

		vk := visitedKey{cur.hub, cur.turn}
		if visited[vk] {
			continue
		}
		visited[vk] = true

		if cur.hub == end {
			return cur.path, popped
		}

		for _, mv := range s.registry.MovesFrom(cur.hub) {
			tArr := cur.turn + mv.Cost
			if tArr > s.horizon {
				continue
			}
			endpoint := mv.Target == start || mv.Target == end
			if !s.table.Available(mv.Target, tArr, mv.TargetCapacity, endpoint) {
				continue
			}
			_, _, edgeLabel := topology.Connection{ZoneOne: cur.hub, ZoneTwo: mv.Target}.Canonical()
			if !s.table.Available(edgeLabel, cur.turn, mv.EdgeCapacity, false) {
				continue
			}
			priority := cur.priority
			if mv.TargetZone == topology.ZonePriority {
				priority--
			}
			newPath := append(append(Path{}, cur.path...), Stamp{Hub: mv.Target, Turn: tArr})
			heap.Push(f, state{turn: tArr, priority: priority, hub: mv.Target, path: newPath, seq: seq})
			seq++
		}

		// Wait-in-place: dwell a turn to resolve contention. Bounded by
		// the same horizon, so a drone that can never reach end (the
		// only case an endpoint's unconditional availability would
		// otherwise let wait forever) still terminates the search.
		if cur.turn+1 > s.horizon {
			continue
		}
		waitEndpoint := s.registry.IsEndpoint(cur.hub)
		if s.table.Available(cur.hub, cur.turn+1, s.registry.HubCapacity(cur.hub), waitEndpoint) {
			newPath := append(append(Path{}, cur.path...), Stamp{Hub: cur.hub, Turn: cur.turn + 1})
			heap.Push(f, state{turn: cur.turn + 1, priority: cur.priority, hub: cur.hub, path: newPath, seq: seq})
			seq++
		}
	}
	return nil, popped
}

// commit books every stamp transition in an accepted path into the
// reservation table: the node at each stamp's turn, and — for a move,
// not a wait — the edge at the turn the drone entered it (spec §4.4).
func (s *Scheduler) commit(id string, path Path) {
	prevHub := s.network.StartHub.Name
	prevTurn := 0
	for _, stamp := range path {
		if stamp.Hub != prevHub {
			_, _, edgeLabel := topology.Connection{ZoneOne: prevHub, ZoneTwo: stamp.Hub}.Canonical()
			s.table.Book(id, edgeLabel, prevTurn)
		}
		s.table.Book(id, stamp.Hub, stamp.Turn)
		prevHub, prevTurn = stamp.Hub, stamp.Turn
	}
}

// Table exposes the reservation table for tests asserting the
// reservation-bound invariants (spec §8, properties 1-2).
func (s *Scheduler) Table() *ReservationTable { return s.table }
