package parser

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ResourceType is the set of resource kinds a clause may address.
type ResourceType uint8

const (
	ResourceUnknown ResourceType = iota
	ResourceDeployment
	ResourcePod
	ResourceService
)

func (r ResourceType) String() string {
	switch r {
	case ResourceDeployment:
		return "deployment"
	case ResourcePod:
		return "pod"
	case ResourceService:
		return "service"
	}
	return "unknown"
}

// ParseResourceType maps a clause kind to a ResourceType, case-insensitively.
func ParseResourceType(kind string) (ResourceType, error) {
	for _, r := range []ResourceType{ResourceDeployment, ResourcePod, ResourceService} {
		if strings.EqualFold(kind, r.String()) {
			return r, nil
		}
	}
	return ResourceUnknown, errors.Errorf("unexpected resource type: %s", kind)
}
