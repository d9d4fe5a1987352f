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

// Package awsconfig bridges resolved regions to the AWS SDK: it builds
// addressing-only client configurations and resolves region names that
// postdate the fixed table through the SDK's compiled-in endpoint data.
// No sessions, credentials, or network I/O.
package awsconfig

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/endpoints"

	"github.com/crashlytics/region-golang-s3/region"
)

// Config returns an aws.Config that addresses r. Only the addressing fields
// are populated; credentials are the caller's business. Custom regions fall
// back to the SDK's classic default region identifier, since their display
// label is not a region name, and get path-style bucket addressing because
// virtual-host addressing assumes the stock S3 DNS layout.
func Config(r region.Region) *aws.Config {
	name := endpoints.UsEast1RegionID
	if r.IsKnown() {
		name = r.String()
	}
	return &aws.Config{
		Region:           aws.String(name),
		Endpoint:         aws.String(r.URL().String()),
		DisableSSL:       aws.Bool(r.Scheme() == "http"),
		S3ForcePathStyle: aws.Bool(!r.IsKnown()),
	}
}

// Lookup resolves an S3 region name through the AWS SDK's endpoint data.
// Names from the known-region table return their constant unchanged. Other
// names that the SDK recognizes yield a custom region carrying the resolved
// host, so that names which postdate the fixed table still resolve. Names
// the SDK does not recognize return an error; callers that need total
// resolution should fall back to region.Parse.
func Lookup(name string) (region.Region, error) {
	r := region.Parse(name)
	if r.IsKnown() {
		return r, nil
	}

	resolver := endpoints.DefaultResolver()
	endpoint, err := resolver.EndpointFor(endpoints.S3ServiceID, name, endpoints.StrictMatchingOption)
	if err != nil {
		return region.DefaultRegion, fmt.Errorf("resolving S3 endpoint for region %s: %w", name, err)
	}

	// SDK endpoints are https; keep the bare host and let the custom-region
	// scheme default supply the rest.
	if _, host, found := strings.Cut(endpoint.URL, "://"); found {
		return region.Parse(host), nil
	}
	return region.Parse(endpoint.URL), nil
}
