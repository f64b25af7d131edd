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

// Package metrics registers the Prometheus collectors the driver
// updates as it schedules a fleet: how many drones placed versus
// omitted, how long the whole fleet's solve took, how many frontier
// states each drone's search popped, and how large the
// reservation table grew. These are pure observability — nothing in
// pkg/scheduling reads them back.
package metrics

import "github.com/prometheus/client_golang/prometheus"

const Namespace = "hubrelay"

var (
	// DronesScheduled counts drones that received an accepted path.
	DronesScheduled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "scheduler",
		Name:      "drones_scheduled_total",
		Help:      "Number of drones assigned a path by the scheduler.",
	})

	// DronesUnplaceable counts drones whose search exhausted the
	// frontier without reaching the end hub (spec §4.4) — not an
	// error, just a count.
	DronesUnplaceable = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: "scheduler",
		Name:      "drones_unplaceable_total",
		Help:      "Number of drones omitted from the solution because no feasible path was found.",
	})

	// SearchDuration observes how long a full fleet solve took.
	SearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "scheduler",
		Name:      "search_duration_seconds",
		Help:      "Time spent scheduling an entire fleet of drones.",
		Buckets:   prometheus.DefBuckets,
	})

	// FrontierStatesExplored observes how many frontier states a
	// single drone's search popped before terminating.
	FrontierStatesExplored = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: Namespace,
		Subsystem: "scheduler",
		Name:      "frontier_states_explored",
		Help:      "Number of frontier states popped during a single drone's search.",
		Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})

	// ReservationTableSize observes the reservation table's entry
	// count immediately after the fleet finishes scheduling.
	ReservationTableSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: Namespace,
		Subsystem: "scheduler",
		Name:      "reservation_table_size",
		Help:      "Number of (key, turn) entries booked in the reservation table after a solve.",
	})
)

// Registry is a dedicated Prometheus registry rather than the global
// default, so repeated driver runs in a single test process don't
// collide on duplicate registration.
var Registry = prometheus.NewRegistry()

// MustRegister registers every collector above against Registry. Safe
// to call once per process; the driver calls it during startup.
func MustRegister() {
	Registry.MustRegister(DronesScheduled, DronesUnplaceable, SearchDuration, FrontierStatesExplored, ReservationTableSize)
}
