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
	"strings"
	"testing"
)

const minimalMap = `nb_drones: 1
start_hub: S 0 0
end_hub: E 1 0
connection: S-E
`

func TestParseMinimal(t *testing.T) {
	parsed, diags := Parse(strings.NewReader(minimalMap))
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	if parsed.NBDrones != 1 {
		t.Errorf("NBDrones = %d, want 1", parsed.NBDrones)
	}
	if parsed.StartHub == nil || parsed.StartHub.name != "S" {
		t.Errorf("StartHub = %+v, want name S", parsed.StartHub)
	}
	if len(parsed.Connections) != 1 {
		t.Fatalf("Connections = %d, want 1", len(parsed.Connections))
	}
	if parsed.Connections[0].maxLinkCapacity != 1 {
		t.Errorf("default max_link_capacity = %d, want 1", parsed.Connections[0].maxLinkCapacity)
	}
}

func TestParseIgnoresBlankAndCommentLines(t *testing.T) {
	input := "nb_drones: 1\n\n# a comment\nstart_hub: S 0 0\nend_hub: E 1 0\n"
	_, diags := Parse(strings.NewReader(input))
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
}

func TestParseHubWithMetadata(t *testing.T) {
	input := "nb_drones: 1\nstart_hub: S 0 0\nend_hub: E 1 0\nhub: M 1 1 [zone=restricted max_drones=3 color=red]\n"
	parsed, diags := Parse(strings.NewReader(input))
	if diags.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", diags.Err())
	}
	if len(parsed.Hubs) != 1 {
		t.Fatalf("Hubs = %d, want 1", len(parsed.Hubs))
	}
	h := parsed.Hubs[0]
	if h.zone != "restricted" || h.maxDrones != 3 || h.color != "red" {
		t.Errorf("hub metadata = %+v, want zone=restricted max_drones=3 color=red", h)
	}
}

func TestParseAccumulatesMultipleErrors(t *testing.T) {
	input := "nb_drones: 1\nstart_hub: S 0 0\nend_hub: E 1 0\nhub: M 1 1 [bogus=1]\ngarbage line\n"
	_, diags := Parse(strings.NewReader(input))
	if !diags.HasErrors() {
		t.Fatal("expected diagnostics, got none")
	}
	if got := len(diags.Errors()); got < 2 {
		t.Errorf("Errors() = %d, want at least 2 (accumulated, not fail-fast)", got)
	}
}

func TestParseRejectsDuplicateSingletons(t *testing.T) {
	input := "nb_drones: 1\nnb_drones: 2\nstart_hub: S 0 0\nend_hub: E 1 0\n"
	_, diags := Parse(strings.NewReader(input))
	if !diags.HasErrors() {
		t.Fatal("expected an error for duplicate nb_drones")
	}
}

func TestParseRejectsMissingNBDronesFirstLine(t *testing.T) {
	input := "start_hub: S 0 0\nend_hub: E 1 0\n"
	_, diags := Parse(strings.NewReader(input))
	if !diags.HasErrors() {
		t.Fatal("expected an error when nb_drones is not the first line")
	}
}

func TestParseRejectsMalformedMetadataPair(t *testing.T) {
	input := "nb_drones: 1\nstart_hub: S 0 0 [zone]\nend_hub: E 1 0\n"
	_, diags := Parse(strings.NewReader(input))
	if !diags.HasErrors() {
		t.Fatal("expected an error for malformed metadata pair")
	}
}

func TestParseRejectsDuplicateMetadataKey(t *testing.T) {
	input := "nb_drones: 1\nstart_hub: S 0 0 [zone=normal zone=priority]\nend_hub: E 1 0\n"
	_, diags := Parse(strings.NewReader(input))
	if !diags.HasErrors() {
		t.Fatal("expected an error for duplicate metadata key")
	}
}

func TestParseEmptyInput(t *testing.T) {
	_, diags := Parse(strings.NewReader(""))
	if !diags.HasErrors() {
		t.Fatal("expected an error for empty input")
	}
}
