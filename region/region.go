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

// Package region maps S3-compatible region identifiers to the addressing
// data a client needs to reach them: transport scheme, host authority, and
// default endpoint. Identifiers outside the known-region table are treated
// as custom endpoints rather than rejected. For more information about S3
// region endpoints see, https://docs.aws.amazon.com/general/latest/gr/s3.html.
package region

import (
	"net/url"
	"slices"
	"strings"
)

// A Region identifies a location that stores S3-compatible objects. Known
// regions are the typed constants below. Any other value is a custom region
// whose string is the endpoint itself, either a bare host
// ("minio.local:9000") or a full origin ("http://minio.local:9000").
type Region string

const (
	// USEast1 (N. Virginia)
	USEast1 Region = "us-east-1"
	// USEast2 (Ohio)
	USEast2 Region = "us-east-2"
	// USWest1 (N. California)
	USWest1 Region = "us-west-1"
	// USWest2 (Oregon)
	USWest2 Region = "us-west-2"
	// CACentral1 (Central)
	CACentral1 Region = "ca-central-1"
	// APSouth1 (Mumbai)
	APSouth1 Region = "ap-south-1"
	// APNortheast1 (Tokyo)
	APNortheast1 Region = "ap-northeast-1"
	// APNortheast2 (Seoul)
	APNortheast2 Region = "ap-northeast-2"
	// APSoutheast1 (Singapore)
	APSoutheast1 Region = "ap-southeast-1"
	// APSoutheast2 (Sydney)
	APSoutheast2 Region = "ap-southeast-2"
	// EUCentral1 (Frankfurt)
	EUCentral1 Region = "eu-central-1"
	// EUWest1 (Ireland)
	EUWest1 Region = "eu-west-1"
	// EUWest2 (London)
	EUWest2 Region = "eu-west-2"
	// EUWest3 (Paris)
	EUWest3 Region = "eu-west-3"
	// SAEast1 (São Paulo)
	SAEast1 Region = "sa-east-1"
	// DONyc3 (DigitalOcean Spaces, New York)
	DONyc3 Region = "nyc3"
	// DOAms3 (DigitalOcean Spaces, Amsterdam)
	DOAms3 Region = "ams3"
	// DOSgp1 (DigitalOcean Spaces, Singapore)
	DOSgp1 Region = "sgp1"
)

// DefaultRegion is the region assumed when a caller has nothing better to go
// on, matching the AWS SDK's classic default.
const DefaultRegion = USEast1

const (
	customName      = "custom"
	defaultScheme   = "https"
	schemeSeparator = "://"
)

// defaultHosts maps every known region to its default host authority.
var defaultHosts = map[Region]string{
	// us-east-1 has no s3-us-east-1.amazonaws.com DNS record.
	USEast1:      "s3.amazonaws.com",
	USEast2:      "s3-us-east-2.amazonaws.com",
	USWest1:      "s3-us-west-1.amazonaws.com",
	USWest2:      "s3-us-west-2.amazonaws.com",
	CACentral1:   "s3-ca-central-1.amazonaws.com",
	APSouth1:     "s3-ap-south-1.amazonaws.com",
	APNortheast1: "s3-ap-northeast-1.amazonaws.com",
	APNortheast2: "s3-ap-northeast-2.amazonaws.com",
	APSoutheast1: "s3-ap-southeast-1.amazonaws.com",
	APSoutheast2: "s3-ap-southeast-2.amazonaws.com",
	EUCentral1:   "s3-eu-central-1.amazonaws.com",
	EUWest1:      "s3-eu-west-1.amazonaws.com",
	EUWest2:      "s3-eu-west-2.amazonaws.com",
	EUWest3:      "s3-eu-west-3.amazonaws.com",
	SAEast1:      "s3-sa-east-1.amazonaws.com",
	DONyc3:       "nyc3.digitaloceanspaces.com",
	DOAms3:       "ams3.digitaloceanspaces.com",
	DOSgp1:       "sgp1.digitaloceanspaces.com",
}

// Parse returns the Region named by s. Parsing never fails: names from the
// known-region table, matched case-sensitively, yield the corresponding
// constant, and every other string (misspellings included) is retained
// verbatim as a custom region. It is up to the caller to pass a reachable
// endpoint in that case.
func Parse(s string) Region {
	return Region(s)
}

// IsKnown reports whether r is one of the known regions, as opposed to a
// custom endpoint.
func (r Region) IsKnown() bool {
	_, ok := defaultHosts[r]
	return ok
}

// String returns the canonical name of a known region and the literal
// "custom" for custom regions; it never echoes a custom payload. String
// implements fmt.Stringer so that regions label log lines safely.
func (r Region) String() string {
	if r.IsKnown() {
		return string(r)
	}
	return customName
}

// Endpoint returns the default host authority of a known region. For a
// custom region it returns the stored value verbatim, scheme prefix and all;
// use Host for the bare authority.
func (r Region) Endpoint() string {
	if host, ok := defaultHosts[r]; ok {
		return host
	}
	return string(r)
}

// Scheme returns the transport scheme for request URLs. Known regions are
// https only. A custom region contributes whatever precedes the first "://"
// in its payload, unvalidated, and defaults to https when no separator is
// present.
func (r Region) Scheme() string {
	if r.IsKnown() {
		return defaultScheme
	}
	if scheme, _, ok := strings.Cut(string(r), schemeSeparator); ok {
		return scheme
	}
	return defaultScheme
}

// Host returns the host authority with any scheme prefix removed: the
// default host of a known region, or the custom payload with everything
// through the first "://" stripped.
func (r Region) Host() string {
	if host, ok := defaultHosts[r]; ok {
		return host
	}
	if _, host, ok := strings.Cut(string(r), schemeSeparator); ok {
		return host
	}
	return string(r)
}

// URL returns the base request URL for the region: Scheme and Host, no path.
// Bucket and key components are the caller's business.
func (r Region) URL() *url.URL {
	return &url.URL{Scheme: r.Scheme(), Host: r.Host()}
}

// Known returns the known regions sorted by name. The slice is freshly
// allocated; callers may modify it.
func Known() []Region {
	regions := make([]Region, 0, len(defaultHosts))
	for r := range defaultHosts {
		regions = append(regions, r)
	}
	slices.Sort(regions)
	return regions
}
