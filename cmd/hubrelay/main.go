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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hubrelay/hubrelay/pkg/config"
	"github.com/hubrelay/hubrelay/pkg/driver"
	"github.com/hubrelay/hubrelay/pkg/log"
	"github.com/hubrelay/hubrelay/pkg/metrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Parse(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, err := log.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	metrics.MustRegister()

	f, err := os.Open(cfg.InputPath)
	if err != nil {
		fmt.Fprintf(stderr, "opening %s: %v\n", cfg.InputPath, err)
		return 1
	}
	defer f.Close()

	d := driver.New(logger)
	if _, err := d.Run(f, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
