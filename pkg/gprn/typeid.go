package gprn

// TypeID identifies the kind of resource a GPRN points at and selects
// the grammar of the resource-id segment.
type TypeID string

const (
	// TypeArtifact marks a resource-id that embeds an ArtifactDB ID.
	TypeArtifact TypeID = "artifact"

	// TypeProject marks a resource-id of the form "project_id[@version]".
	TypeProject TypeID = "project"

	// TypeDoc marks an opaque documentation resource.
	TypeDoc TypeID = "doc"

	// TypeChangelog marks a changelog resource, addressed like a project.
	TypeChangelog TypeID = "changelog"

	// TypeBackup marks an opaque backup resource.
	TypeBackup TypeID = "backup"
)

// ValidTypeIDs returns the platform's resource type catalog.
func ValidTypeIDs() []TypeID {
	return []TypeID{TypeArtifact, TypeProject, TypeDoc, TypeChangelog, TypeBackup}
}

// IsValid returns true if this is a recognized resource type.
func (t TypeID) IsValid() bool {
	switch t {
	case TypeArtifact, TypeProject, TypeDoc, TypeChangelog, TypeBackup:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type-id.
func (t TypeID) String() string {
	return string(t)
}
