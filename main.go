// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Binary region-golang-s3 resolves S3-compatible region identifiers into
// transport scheme, host authority, and default endpoint. Identifiers are
// taken from the argument list, from stdin when it is not a terminal, or
// from the AWS region environment variables as a last resort. One record is
// printed per identifier; records are separated by a blank line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/mattn/go-isatty"

	"github.com/crashlytics/region-golang-s3/resolver"
)

const (
	version = "1.0.0"
)

var (
	showVersion = flag.Bool("version", false, "Print version and exit")
	listRegions = flag.Bool("list", false, "Print the known regions and exit")
	useSDK      = flag.Bool("sdk", false, "Resolve unknown names through the AWS SDK endpoint data before treating them as custom endpoints")
)

// regionEnvVars are consulted, in order, when there are no operands and
// stdin is a terminal. They are the variables the AWS SDK itself honors.
var regionEnvVars = []string{"AWS_REGION", "AWS_DEFAULT_REGION"}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("region-golang-s3 %s (Go version: %s)\n", version, runtime.Version())
		os.Exit(0)
	}

	r := resolver.New(log.New(os.Stdout, "", 0))
	r.UseSDK(*useSDK)

	if *listRegions {
		r.List()
		return
	}

	if args := flag.Args(); len(args) > 0 {
		r.ResolveAll(args)
		return
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) {
		r.Run(os.Stdin)
		return
	}

	for _, name := range regionEnvVars {
		if value := os.Getenv(name); value != "" {
			r.ResolveAll([]string{value})
			return
		}
	}

	fmt.Fprintf(os.Stderr, "usage: %s [-version] [-list] [-sdk] [region ...]\n", os.Args[0])
	os.Exit(2)
}
