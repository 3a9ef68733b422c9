package gprn

import (
	"fmt"
	"strings"

	"github.com/genomics-forge/gprn/pkg/aid"
)

// ResourceKind tells which grammar a resolved resource-id followed.
type ResourceKind int

const (
	// ResourceNone means the GPRN carries no resource segment.
	ResourceNone ResourceKind = iota

	// ResourceArtifact means the resource-id is an ArtifactDB ID.
	ResourceArtifact

	// ResourceProject means the resource-id is "project_id[@version]".
	ResourceProject

	// ResourceOpaque means the resource-id has no structured grammar for
	// this type-id and is kept as-is.
	ResourceOpaque
)

// String returns a short name for the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case ResourceNone:
		return "none"
	case ResourceArtifact:
		return "artifact"
	case ResourceProject:
		return "project"
	case ResourceOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("ResourceKind(%d)", int(k))
	}
}

// Resource is the resolved resource-id of a GPRN: a small tagged union
// over the grammars a resource-id can follow. Exactly one interpretation
// is populated, selected by Kind.
type Resource struct {
	kind      ResourceKind
	raw       string
	artifact  aid.ArtifactID
	projectID string
	version   string
}

// Kind returns which interpretation this resource carries.
func (r Resource) Kind() ResourceKind {
	return r.kind
}

// IsZero returns true when no resource segment was present.
func (r Resource) IsZero() bool {
	return r.kind == ResourceNone
}

// Raw returns the resource-id segment exactly as it appeared.
func (r Resource) Raw() string {
	return r.raw
}

// Artifact returns the embedded ArtifactDB ID. Zero unless Kind is
// ResourceArtifact.
func (r Resource) Artifact() aid.ArtifactID {
	return r.artifact
}

// ProjectID returns the referenced project. Set for ResourceProject and
// ResourceArtifact kinds.
func (r Resource) ProjectID() string {
	return r.projectID
}

// Version returns the referenced project version, or "" when the
// reference is unversioned.
func (r Resource) Version() string {
	return r.version
}

// Resource resolves the resource-id segment against the type-id's
// grammar. This is a lazy secondary parse: Parse never inspects the
// resource-id beyond the pairing invariant, since many resource types
// are opaque.
//
// Returns the zero Resource when no resource segment is present, and
// ErrMalformedID when an artifact resource-id is not a parseable
// ArtifactDB ID.
func (g GPRN) Resource() (Resource, error) {
	if g.resourceID == "" {
		return Resource{}, nil
	}

	switch g.typeID {
	case TypeArtifact:
		artifact, err := aid.Parse(g.resourceID)
		if err != nil {
			return Resource{}, fmt.Errorf(
				"%w: artifact resource-id %q: %v", ErrMalformedID, g.resourceID, err)
		}
		return Resource{
			kind:      ResourceArtifact,
			raw:       g.resourceID,
			artifact:  artifact,
			projectID: artifact.ProjectID(),
			version:   artifact.Version(),
		}, nil

	case TypeProject, TypeChangelog:
		res := Resource{kind: ResourceProject, raw: g.resourceID}
		if at := strings.LastIndex(g.resourceID, "@"); at >= 0 {
			res.projectID = g.resourceID[:at]
			res.version = g.resourceID[at+1:]
		} else {
			res.projectID = g.resourceID
		}
		return res, nil

	default:
		return Resource{kind: ResourceOpaque, raw: g.resourceID}, nil
	}
}
