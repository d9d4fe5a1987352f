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

package awsconfig

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/google/go-cmp/cmp"

	"github.com/crashlytics/region-golang-s3/region"
)

func TestLookup(t *testing.T) {
	specs := map[string]struct {
		expectedRegion region.Region
		expectError    bool
	}{
		// Known-table names come back as their constants.
		"us-east-1": {
			region.USEast1,
			false,
		},
		"nyc3": {
			region.DONyc3,
			false,
		},
		// Names resolved through the SDK come back as custom regions
		// carrying the bare resolved host.
		"us-west-2": {
			region.Region("s3.us-west-2.amazonaws.com"),
			false,
		},
		"us-gov-east-1": {
			region.Region("s3.us-gov-east-1.amazonaws.com"),
			false,
		},
		"cn-north-1": {
			region.Region("s3.cn-north-1.amazonaws.com.cn"),
			false,
		},
		"outer-space-0": {
			region.DefaultRegion,
			true,
		},
	}

	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			r, err := Lookup(name)
			if err != nil && !spec.expectError {
				t.Errorf("expected Lookup(%#v) not to return an error but got %#v", name, err)
			} else if err == nil && spec.expectError {
				t.Errorf("expected Lookup(%#v) to return an error but got none", name)
			}

			if diff := cmp.Diff(spec.expectedRegion, r); diff != "" {
				t.Errorf("Lookup(%#v) mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestConfigKnownRegion(t *testing.T) {
	config := Config(region.EUWest1)

	if actual := aws.StringValue(config.Region); actual != "eu-west-1" {
		t.Errorf("config.Region = %s; expected eu-west-1", actual)
	}
	if actual := aws.StringValue(config.Endpoint); actual != "https://s3-eu-west-1.amazonaws.com" {
		t.Errorf("config.Endpoint = %s; expected https://s3-eu-west-1.amazonaws.com", actual)
	}
	if aws.BoolValue(config.DisableSSL) {
		t.Errorf("config.DisableSSL = true; expected false")
	}
	if aws.BoolValue(config.S3ForcePathStyle) {
		t.Errorf("config.S3ForcePathStyle = true; expected false")
	}
}

func TestConfigSpacesRegion(t *testing.T) {
	config := Config(region.DOSgp1)

	if actual := aws.StringValue(config.Region); actual != "sgp1" {
		t.Errorf("config.Region = %s; expected sgp1", actual)
	}
	if actual := aws.StringValue(config.Endpoint); actual != "https://sgp1.digitaloceanspaces.com" {
		t.Errorf("config.Endpoint = %s; expected https://sgp1.digitaloceanspaces.com", actual)
	}
}

// Custom regions fall back to the classic default region identifier and use
// path-style addressing; an http payload disables SSL.
func TestConfigCustomRegion(t *testing.T) {
	config := Config(region.Parse("http://minio.local:9000"))

	if actual := aws.StringValue(config.Region); actual != "us-east-1" {
		t.Errorf("config.Region = %s; expected us-east-1", actual)
	}
	if actual := aws.StringValue(config.Endpoint); actual != "http://minio.local:9000" {
		t.Errorf("config.Endpoint = %s; expected http://minio.local:9000", actual)
	}
	if !aws.BoolValue(config.DisableSSL) {
		t.Errorf("config.DisableSSL = false; expected true")
	}
	if !aws.BoolValue(config.S3ForcePathStyle) {
		t.Errorf("config.S3ForcePathStyle = false; expected true")
	}
}

func TestConfigBareCustomRegion(t *testing.T) {
	config := Config(region.Parse("storage.example.com"))

	if actual := aws.StringValue(config.Endpoint); actual != "https://storage.example.com" {
		t.Errorf("config.Endpoint = %s; expected https://storage.example.com", actual)
	}
	if aws.BoolValue(config.DisableSSL) {
		t.Errorf("config.DisableSSL = true; expected false")
	}
}
