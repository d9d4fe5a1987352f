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

// Package record implements functions to model/manipulate the resolution
// records emitted by the region-golang-s3 command. A record is a list of
// "Name: value" lines; records in a stream are separated by a blank line.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

var errFieldMissingColon = errors.New("record field missing colon separator")

// Field models a single line of a Record.
type Field struct {
	Name  string
	Value string
}

// Record models one resolution result as an ordered list of Fields.
type Record struct {
	Fields []*Field
}

// unmarshalText parses rendered record text. Blank lines are skipped; every
// other line must contain a colon.
func (r *Record) unmarshalText(text []byte) error {
	for _, line := range strings.Split(string(text), "\n") {
		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		field, err := parseField(line)
		if err != nil {
			return err
		}
		r.Fields = append(r.Fields, field)
	}
	return nil
}

// FromBytes takes a byte representation of a Record and unmarshals it into a
// Record.
func FromBytes(b []byte) (*Record, error) {
	r := &Record{}
	err := r.unmarshalText(b)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Value returns the Value property of the first Field with the given name,
// and whether any such field was present.
func (r *Record) Value(name string) (string, bool) {
	for _, field := range r.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}

// String returns a string representation of a Record, one field per line.
func (r *Record) String() string {
	buffer := &bytes.Buffer{}
	for _, field := range r.Fields {
		buffer.WriteString(field.String())
		buffer.WriteString("\n")
	}
	return buffer.String()
}

// String returns a string representation of a Field.
func (f *Field) String() string {
	return fmt.Sprintf("%s: %s", f.Name, f.Value)
}

// parseField splits a string field at the first colon and constructs a Field
// from the name and value. Only the first colon separates; the value may
// itself contain colons or a scheme separator.
//
// Lines might look like the following:
//
// Endpoint: http://minio.local:9000
// Host:nyc3.digitaloceanspaces.com
func parseField(fieldLine string) (*Field, error) {
	name, value, found := strings.Cut(fieldLine, ":")
	if !found {
		return nil, fmt.Errorf("%w: %q", errFieldMissingColon, fieldLine)
	}
	return &Field{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)}, nil
}
