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

// Package resolver implements the driver that turns region identifiers into
// resolution records. Inputs arrive as an argument list or as a line-oriented
// stream; one record is emitted per input, in input order.
package resolver

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/crashlytics/region-golang-s3/awsconfig"
	"github.com/crashlytics/region-golang-s3/record"
	"github.com/crashlytics/region-golang-s3/region"
)

const (
	fieldNameInput    = "Input"
	fieldNameRegion   = "Region"
	fieldNameScheme   = "Scheme"
	fieldNameHost     = "Host"
	fieldNameEndpoint = "Endpoint"
)

// A Resolver implements the logic to process incoming region identifiers and
// respond with resolution records.
type Resolver struct {
	useSDK bool
	stdout *log.Logger
}

// New returns a new Resolver that writes records to the given logger.
func New(stdout *log.Logger) *Resolver {
	return &Resolver{stdout: stdout}
}

// UseSDK controls whether identifiers outside the known-region table are
// looked up in the AWS SDK's endpoint data before degrading to a custom
// region. Off by default.
func (r *Resolver) UseSDK(enabled bool) {
	r.useSDK = enabled
}

// Resolve resolves a single identifier into a record. Resolution is total:
// an SDK lookup miss falls back to a custom region, never to an error.
func (r *Resolver) Resolve(input string) *record.Record {
	reg := region.Parse(input)
	if r.useSDK && !reg.IsKnown() {
		if looked, err := awsconfig.Lookup(input); err == nil {
			reg = looked
		}
	}
	return &record.Record{Fields: []*record.Field{
		field(fieldNameInput, input),
		field(fieldNameRegion, reg.String()),
		field(fieldNameScheme, reg.Scheme()),
		field(fieldNameHost, reg.Host()),
		field(fieldNameEndpoint, reg.Endpoint()),
	}}
}

// ResolveAll resolves each input in order and emits one record per input.
func (r *Resolver) ResolveAll(inputs []string) {
	for _, input := range inputs {
		r.outputRecord(r.Resolve(input))
	}
}

// Run reads identifiers from the provided io.Reader, one per line, and emits
// a record for each. Blank lines are skipped. It stops reading when the
// io.Reader is empty. Processing is sequential so that output order matches
// input order.
func (r *Resolver) Run(input io.Reader) {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		r.outputRecord(r.Resolve(line))
	}
}

// List emits one record per known region, sorted by name. List records have
// no Input field; the Region field carries the canonical name.
func (r *Resolver) List() {
	for _, reg := range region.Known() {
		r.outputRecord(&record.Record{Fields: []*record.Field{
			field(fieldNameRegion, reg.String()),
			field(fieldNameScheme, reg.Scheme()),
			field(fieldNameHost, reg.Host()),
			field(fieldNameEndpoint, reg.Endpoint()),
		}})
	}
}

// outputRecord prints the record followed by the blank line that separates
// records in a stream.
func (r *Resolver) outputRecord(rec *record.Record) {
	r.stdout.Println(rec.String())
}

func field(name string, value string) *record.Field {
	return &record.Field{Name: name, Value: value}
}
