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

// Package config resolves the driver's small runtime configuration.
// Rich CLI argument handling (subcommands, shell completion, the
// interactive "press ENTER" visualizer prompt) is an external
// collaborator per spec §1/§6; this package only resolves the input
// path and log level the core driver needs.
package config

import (
	"fmt"
	"os"
)

// Config is the driver's resolved runtime configuration.
type Config struct {
	InputPath string
	LogLevel  string // debug | info | warn | error
}

// envLogLevel is checked when no -loglevel flag is given, mirroring the
// teacher's environment-resolved settings pattern without the
// surrounding CRD/webhook machinery (not applicable: there is no
// Kubernetes control plane here).
const envLogLevel = "HUBRELAY_LOGLEVEL"

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Parse resolves a Config from a driver's positional/flag argument
// list. args does not include the program name.
func Parse(args []string) (Config, error) {
	cfg := Config{LogLevel: "info"}
	if v, ok := os.LookupEnv(envLogLevel); ok && validLevels[v] {
		cfg.LogLevel = v
	}

	var positional []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-loglevel":
			if i+1 >= len(args) {
				return Config{}, fmt.Errorf("-loglevel requires a value")
			}
			i++
			if !validLevels[args[i]] {
				return Config{}, fmt.Errorf("invalid -loglevel: %q", args[i])
			}
			cfg.LogLevel = args[i]
		default:
			positional = append(positional, args[i])
		}
	}

	if len(positional) != 1 {
		return Config{}, fmt.Errorf("usage: hubrelay [-loglevel debug|info|warn|error] <topology-file>")
	}
	cfg.InputPath = positional[0]
	return cfg, nil
}
