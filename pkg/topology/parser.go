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
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	reNBDrones   = regexp.MustCompile(`^nb_drones\s*:\s*(\d+)\s*$`)
	reHub        = regexp.MustCompile(`^(start_hub|end_hub|hub)\s*:\s*([^\s-]+)\s+(\d+)\s+(\d+)\s*(?:\[\s*(.*?)\s*\])?\s*$`)
	reConnection = regexp.MustCompile(`^connection\s*:\s*([^\s-]+)\s*-\s*([^\s-]+)\s*(?:\[\s*(.*?)\s*\])?\s*$`)
)

// rawHub is the parser's intermediate representation of a hub line,
// before metadata defaults are resolved and palette lookups applied.
type rawHub struct {
	kind      string // "start_hub", "end_hub", or "hub"
	name      string
	x, y      int
	zone      string
	color     string
	maxDrones int
	line      int
}

// rawConnection mirrors rawHub for connection lines.
type rawConnection struct {
	zoneOne, zoneTwo string
	maxLinkCapacity  int
	line             int
}

// Parsed is the parser's output dictionary (spec §4.2: "the parser's
// dictionary"), fed into Build to construct a validated Network.
type Parsed struct {
	NBDrones    int
	StartHub    *rawHub
	EndHub      *rawHub
	Hubs        []rawHub
	Connections []rawConnection
}

// Parse reads a UTF-8 topology file and returns its intermediate
// representation, or a Diagnostics value describing every syntactic and
// structural failure found. No partial Parsed is ever populated
// alongside a non-empty Diagnostics (spec §4.1: "parsing fails
// atomically").
func Parse(r io.Reader) (*Parsed, *Diagnostics) {
	diags := &Diagnostics{}

	type rawLine struct {
		line int
		text string
	}
	var lines []rawLine

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, rawLine{line: lineNo, text: text})
	}
	if err := scanner.Err(); err != nil {
		diags.Add(KindSyntactic, 0, "error reading input: %v", err)
		return nil, diags
	}

	if len(lines) == 0 {
		diags.Add(KindStructural, 0, "input file is empty")
		return nil, diags
	}
	if !strings.HasPrefix(lines[0].text, "nb_drones") {
		diags.Add(KindStructural, lines[0].line, "first line must define 'nb_drones'")
	}

	parsed := &Parsed{}
	nbDronesSeen := 0
	startHubSeen := 0
	endHubSeen := 0

	for _, ln := range lines {
		switch {
		case reNBDrones.MatchString(ln.text):
			m := reNBDrones.FindStringSubmatch(ln.text)
			n, err := strconv.Atoi(m[1])
			if err != nil {
				diags.Add(KindSyntactic, ln.line, "invalid nb_drones value: %q", m[1])
				continue
			}
			nbDronesSeen++
			parsed.NBDrones = n

		case reHub.MatchString(ln.text):
			m := reHub.FindStringSubmatch(ln.text)
			hub, ok := parseHubMatch(m, ln.line, diags)
			if !ok {
				continue
			}
			switch hub.kind {
			case "start_hub":
				startHubSeen++
				h := hub
				parsed.StartHub = &h
			case "end_hub":
				endHubSeen++
				h := hub
				parsed.EndHub = &h
			default:
				parsed.Hubs = append(parsed.Hubs, hub)
			}

		case reConnection.MatchString(ln.text):
			m := reConnection.FindStringSubmatch(ln.text)
			conn, ok := parseConnectionMatch(m, ln.line, diags)
			if !ok {
				continue
			}
			parsed.Connections = append(parsed.Connections, conn)

		default:
			diags.Add(KindSyntactic, ln.line, "unrecognized line: %q", ln.text)
		}
	}

	if nbDronesSeen != 1 {
		diags.Add(KindStructural, 0, "'nb_drones' must appear exactly once (found %d)", nbDronesSeen)
	}
	if startHubSeen != 1 {
		diags.Add(KindStructural, 0, "'start_hub' must appear exactly once (found %d)", startHubSeen)
	}
	if endHubSeen != 1 {
		diags.Add(KindStructural, 0, "'end_hub' must appear exactly once (found %d)", endHubSeen)
	}

	if diags.HasErrors() {
		return nil, diags
	}
	return parsed, diags
}

// parseHubMatch converts one regex match into a rawHub, resolving
// metadata defaults and reporting any malformed or unknown key.
func parseHubMatch(m []string, line int, diags *Diagnostics) (rawHub, bool) {
	hub := rawHub{
		kind:      m[1],
		name:      m[2],
		zone:      "normal",
		maxDrones: 1,
		line:      line,
	}
	x, errX := strconv.Atoi(m[3])
	y, errY := strconv.Atoi(m[4])
	if errX != nil || errY != nil {
		diags.Add(KindSyntactic, line, "hub %q has non-integer coordinates", hub.name)
		return rawHub{}, false
	}
	hub.x, hub.y = x, y

	meta, ok := parseMetadata(m[5], line, diags)
	if !ok {
		return rawHub{}, false
	}
	for k, v := range meta {
		switch k {
		case "zone":
			hub.zone = v
		case "color":
			hub.color = v
		case "max_drones":
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				diags.Add(KindSyntactic, line, "hub %q has invalid max_drones: %q", hub.name, v)
				return rawHub{}, false
			}
			hub.maxDrones = n
		default:
			diags.Add(KindSyntactic, line, "hub %q has unknown metadata key: %q", hub.name, k)
			return rawHub{}, false
		}
	}
	return hub, true
}

// parseConnectionMatch is parseHubMatch's counterpart for connection
// lines; the only recognized key is max_link_capacity, default 1.
func parseConnectionMatch(m []string, line int, diags *Diagnostics) (rawConnection, bool) {
	conn := rawConnection{
		zoneOne:         m[1],
		zoneTwo:         m[2],
		maxLinkCapacity: 1,
		line:            line,
	}
	meta, ok := parseMetadata(m[3], line, diags)
	if !ok {
		return rawConnection{}, false
	}
	for k, v := range meta {
		switch k {
		case "max_link_capacity":
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				diags.Add(KindSyntactic, line, "connection %s-%s has invalid max_link_capacity: %q", conn.zoneOne, conn.zoneTwo, v)
				return rawConnection{}, false
			}
			conn.maxLinkCapacity = n
		default:
			diags.Add(KindSyntactic, line, "connection %s-%s has unknown metadata key: %q", conn.zoneOne, conn.zoneTwo, k)
			return rawConnection{}, false
		}
	}
	return conn, true
}

// parseMetadata splits a bracketed "key=value key=value" blob into a
// map, rejecting malformed pairs and duplicate keys. An empty blob
// (including an absent bracket) yields an empty, valid map.
func parseMetadata(blob string, line int, diags *Diagnostics) (map[string]string, bool) {
	out := map[string]string{}
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return out, true
	}
	ok := true
	for _, field := range strings.Fields(blob) {
		kv := strings.SplitN(field, "=", 2)
		if len(kv) != 2 || kv[0] == "" || kv[1] == "" {
			diags.Add(KindSyntactic, line, "malformed metadata pair: %q", field)
			ok = false
			continue
		}
		key := kv[0]
		if _, dup := out[key]; dup {
			diags.Add(KindSyntactic, line, "duplicate metadata key: %q", key)
			ok = false
			continue
		}
		out[key] = kv[1]
	}
	return out, ok
}
