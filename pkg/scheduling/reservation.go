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

// resourceKey is the mixed key space spec §3 describes: either a hub
// name or a canonical edge label "A-B". Both are plain strings here —
// see DESIGN.md for why the tagged-union alternative from spec §9's
// design notes wasn't adopted.
type resourceKey struct {
	key  string
	turn int
}

// ReservationTable is the scheduler's only mutable shared structure. It
// is built once, read during every drone's search, and mutated only at
// commit time after that drone's path is fully found (spec §5).
type ReservationTable struct {
	registry *Registry
	booked   map[resourceKey][]string
}

// NewReservationTable returns an empty table for the given registry.
func NewReservationTable(r *Registry) *ReservationTable {
	return &ReservationTable{registry: r, booked: map[resourceKey][]string{}}
}

// Available reports whether one more drone can be booked at key/turn
// given capacity: true if the booked count is under capacity, or if the
// location is an endpoint (endpoints are uncapped). A non-endpoint with
// capacity 0 is never available, even when nothing is booked there.
func (t *ReservationTable) Available(key string, turn, capacity int, endpoint bool) bool {
	if endpoint {
		return true
	}
	return len(t.booked[resourceKey{key, turn}]) < capacity
}

// Book reserves key/turn for droneID. Called only at commit time, after
// a drone's full path has already been found.
func (t *ReservationTable) Book(droneID, key string, turn int) {
	rk := resourceKey{key, turn}
	t.booked[rk] = append(t.booked[rk], droneID)
}

// Count returns how many drones are booked at key/turn; used by tests
// verifying the reservation-bound invariants in spec §8.
func (t *ReservationTable) Count(key string, turn int) int {
	return len(t.booked[resourceKey{key, turn}])
}

// Occupants returns the drone ids booked at key/turn, in booking order.
func (t *ReservationTable) Occupants(key string, turn int) []string {
	return t.booked[resourceKey{key, turn}]
}

// Size returns the number of distinct (key, turn) entries booked.
func (t *ReservationTable) Size() int {
	return len(t.booked)
}
