package s3

import "sort"

// Region is a supported AWS region together with its S3 endpoint host.
type Region struct {
	// ID is the region identifier, e.g. "eu-west-1".
	ID string

	// Endpoint is the regional S3 endpoint host.
	Endpoint string
}

// DefaultRegionID is the region used when none is configured.
const DefaultRegionID = "us-east-1"

// regionTable is the fixed set of supported regions. The table is immutable;
// an identifier outside it is a fatal configuration error.
var regionTable = map[string]Region{
	"us-east-1":      {ID: "us-east-1", Endpoint: "s3.amazonaws.com"},
	"us-east-2":      {ID: "us-east-2", Endpoint: "s3.us-east-2.amazonaws.com"},
	"us-west-1":      {ID: "us-west-1", Endpoint: "s3.us-west-1.amazonaws.com"},
	"us-west-2":      {ID: "us-west-2", Endpoint: "s3.us-west-2.amazonaws.com"},
	"ca-central-1":   {ID: "ca-central-1", Endpoint: "s3.ca-central-1.amazonaws.com"},
	"eu-west-1":      {ID: "eu-west-1", Endpoint: "s3.eu-west-1.amazonaws.com"},
	"eu-west-2":      {ID: "eu-west-2", Endpoint: "s3.eu-west-2.amazonaws.com"},
	"eu-west-3":      {ID: "eu-west-3", Endpoint: "s3.eu-west-3.amazonaws.com"},
	"eu-central-1":   {ID: "eu-central-1", Endpoint: "s3.eu-central-1.amazonaws.com"},
	"eu-north-1":     {ID: "eu-north-1", Endpoint: "s3.eu-north-1.amazonaws.com"},
	"ap-south-1":     {ID: "ap-south-1", Endpoint: "s3.ap-south-1.amazonaws.com"},
	"ap-southeast-1": {ID: "ap-southeast-1", Endpoint: "s3.ap-southeast-1.amazonaws.com"},
	"ap-southeast-2": {ID: "ap-southeast-2", Endpoint: "s3.ap-southeast-2.amazonaws.com"},
	"ap-northeast-1": {ID: "ap-northeast-1", Endpoint: "s3.ap-northeast-1.amazonaws.com"},
	"ap-northeast-2": {ID: "ap-northeast-2", Endpoint: "s3.ap-northeast-2.amazonaws.com"},
	"sa-east-1":      {ID: "sa-east-1", Endpoint: "s3.sa-east-1.amazonaws.com"},
}

// ResolveRegion maps a region identifier to its Region entry.
//
// An empty identifier resolves to DefaultRegionID. An identifier not in the
// supported set returns a ConfigError; region support is deliberately a
// closed enumeration rather than a pass-through, so typos fail at
// construction instead of at the first request.
func ResolveRegion(id string) (Region, error) {
	if id == "" {
		id = DefaultRegionID
	}
	r, ok := regionTable[id]
	if !ok {
		return Region{}, &ConfigError{Field: "Region", Message: "unsupported region " + id}
	}
	return r, nil
}

// SupportedRegions returns the supported region identifiers in sorted order.
func SupportedRegions() []string {
	ids := make([]string, 0, len(regionTable))
	for id := range regionTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
