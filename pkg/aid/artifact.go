package aid

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by this package. Callers match them with
// errors.Is.
var (
	// ErrMalformedID reports an identifier string that does not follow
	// the <project_id>:<path>@<version> grammar.
	ErrMalformedID = errors.New("malformed artifactdb id")

	// ErrInvalidID reports an ArtifactID whose field values cannot be
	// serialized without producing a string that re-parses differently.
	ErrInvalidID = errors.New("invalid artifactdb id")
)

// gprnPrefix marks a project ID that is itself an embedded GPRN. Such a
// project component spans the prefix plus five colon-delimited segments.
const gprnPrefix = "gprn:"

// gprnSegments is the fixed number of colon-separated parts in an
// embedded GPRN project component ("gprn" plus five segments).
const gprnSegments = 6

// ArtifactID identifies one artifact file within a storage instance.
//
// The three components are opaque tokens:
//   - ProjectID: owning project (may itself be an embedded GPRN)
//   - Path: file path within the project, slashes allowed
//   - Version: project version the artifact belongs to; empty means
//     "unversioned" and the formatted form carries no "@" suffix
//
// ArtifactIDs are immutable once created.
type ArtifactID struct {
	projectID string
	path      string
	version   string
}

// New creates an ArtifactID from its components. Returns ErrInvalidID
// when the components could not be formatted back into an unambiguous
// identifier string.
func New(projectID, path, version string) (ArtifactID, error) {
	id := ArtifactID{projectID: projectID, path: path, version: version}
	if err := id.validate(); err != nil {
		return ArtifactID{}, err
	}
	return id, nil
}

// MustNew is New for test fixtures and constants known to be valid.
// It panics on error.
func MustNew(projectID, path, version string) ArtifactID {
	id, err := New(projectID, path, version)
	if err != nil {
		panic(fmt.Sprintf("invalid artifact ID (%s, %s, %s): %v",
			projectID, path, version, err))
	}
	return id
}

// Parse parses an ArtifactDB ID string.
//
// The version is whatever follows the last "@" (an AID without "@" has an
// empty version). The project ID is whatever precedes the first ":" —
// unless the string starts with "gprn:", in which case the project ID is
// the embedded GPRN spanning the prefix plus five colon segments.
func Parse(s string) (ArtifactID, error) {
	if s == "" {
		return ArtifactID{}, fmt.Errorf("%w: empty string", ErrMalformedID)
	}

	remainder := s
	version := ""
	if at := strings.LastIndex(s, "@"); at >= 0 {
		remainder, version = s[:at], s[at+1:]
		if version == "" {
			return ArtifactID{}, fmt.Errorf(
				"%w: empty version after '@' in %q", ErrMalformedID, s)
		}
	}

	var projectID, path string
	if strings.HasPrefix(remainder, gprnPrefix) {
		// Embedded GPRN project: a fixed number of colons separates the
		// project component from the path.
		parts := strings.Split(remainder, ":")
		if len(parts) <= gprnSegments {
			return ArtifactID{}, fmt.Errorf(
				"%w: embedded GPRN leaves no path component in %q",
				ErrMalformedID, s)
		}
		projectID = strings.Join(parts[:gprnSegments], ":")
		path = strings.Join(parts[gprnSegments:], ":")
	} else {
		colon := strings.Index(remainder, ":")
		if colon < 0 {
			return ArtifactID{}, fmt.Errorf(
				"%w: missing ':' between project and path in %q",
				ErrMalformedID, s)
		}
		projectID, path = remainder[:colon], remainder[colon+1:]
	}

	if projectID == "" {
		return ArtifactID{}, fmt.Errorf("%w: empty project ID in %q",
			ErrMalformedID, s)
	}
	if path == "" {
		return ArtifactID{}, fmt.Errorf("%w: empty path in %q",
			ErrMalformedID, s)
	}

	return ArtifactID{projectID: projectID, path: path, version: version}, nil
}

// MustParse parses an ArtifactDB ID string, panicking on error.
func MustParse(s string) ArtifactID {
	id, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("invalid artifact ID %q: %v", s, err))
	}
	return id
}

// ProjectID returns the owning project identifier.
func (a ArtifactID) ProjectID() string {
	return a.projectID
}

// Path returns the artifact file path within the project.
func (a ArtifactID) Path() string {
	return a.path
}

// Version returns the project version, or "" for an unversioned AID.
func (a ArtifactID) Version() string {
	return a.version
}

// HasVersion returns true if a version component is present.
func (a ArtifactID) HasVersion() bool {
	return a.version != ""
}

// IsZero returns true for the zero ArtifactID.
func (a ArtifactID) IsZero() bool {
	return a == ArtifactID{}
}

// Equal returns true if two ArtifactIDs have the same components.
func (a ArtifactID) Equal(other ArtifactID) bool {
	return a == other
}

// IsProjectGPRN returns true when the project component is an embedded
// GPRN rather than a plain project identifier.
func (a ArtifactID) IsProjectGPRN() bool {
	return strings.HasPrefix(a.projectID, gprnPrefix)
}

// validate checks that the components survive a format/parse round trip.
func (a ArtifactID) validate() error {
	if a.projectID == "" {
		return fmt.Errorf("%w: project ID cannot be empty", ErrInvalidID)
	}
	if a.path == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidID)
	}
	if strings.HasPrefix(a.projectID, gprnPrefix) {
		// An embedded GPRN project must carry exactly the fixed segment
		// count, otherwise the parser cannot find the path boundary.
		if strings.Count(a.projectID, ":") != gprnSegments-1 {
			return fmt.Errorf(
				"%w: embedded GPRN project %q must have exactly %d segments",
				ErrInvalidID, a.projectID, gprnSegments)
		}
	} else if strings.Contains(a.projectID, ":") {
		return fmt.Errorf("%w: project ID %q contains ':'",
			ErrInvalidID, a.projectID)
	}
	if strings.Contains(a.version, "@") {
		return fmt.Errorf("%w: version %q contains '@'",
			ErrInvalidID, a.version)
	}
	if a.version == "" {
		// Without a version suffix, a trailing "@" anywhere would be
		// picked up as the version separator on re-parse.
		if strings.Contains(a.projectID, "@") || strings.Contains(a.path, "@") {
			return fmt.Errorf(
				"%w: '@' in project or path requires a version", ErrInvalidID)
		}
	}
	return nil
}

// Format returns the canonical identifier string:
// "project:path" or "project:path@version".
// Returns ErrInvalidID when the components cannot be serialized
// unambiguously.
func (a ArtifactID) Format() (string, error) {
	if err := a.validate(); err != nil {
		return "", err
	}
	if a.version == "" {
		return fmt.Sprintf("%s:%s", a.projectID, a.path), nil
	}
	return fmt.Sprintf("%s:%s@%s", a.projectID, a.path, a.version), nil
}

// String returns the canonical identifier string, or "" when the
// ArtifactID is zero or invalid.
func (a ArtifactID) String() string {
	s, err := a.Format()
	if err != nil {
		return ""
	}
	return s
}

// MarshalJSON implements json.Marshaler.
// ArtifactIDs serialize as strings: "PROJ1:report.html@3".
func (a ArtifactID) MarshalJSON() ([]byte, error) {
	if a.IsZero() {
		return []byte("null"), nil
	}
	s, err := a.Format()
	if err != nil {
		return nil, err
	}
	return json.Marshal(s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *ArtifactID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("artifact ID must be a string: %w", err)
	}
	if s == "" {
		*a = ArtifactID{}
		return nil
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Scan implements sql.Scanner for database reading.
// Supports string and []byte input from the database.
func (a *ArtifactID) Scan(value interface{}) error {
	if value == nil {
		*a = ArtifactID{}
		return nil
	}
	switch v := value.(type) {
	case string:
		if v == "" {
			*a = ArtifactID{}
			return nil
		}
		parsed, err := Parse(v)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	case []byte:
		return a.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into ArtifactID", value)
	}
}

// Value implements driver.Valuer for database writing.
func (a ArtifactID) Value() (driver.Value, error) {
	if a.IsZero() {
		return nil, nil
	}
	return a.Format()
}
