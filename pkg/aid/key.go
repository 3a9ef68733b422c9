package aid

import (
	"fmt"
	"strings"
)

// ParseKey converts an object-store key pointing at an artifact file into
// an ArtifactID. Keys follow the layout "project_id/version/path", where
// path may contain further slashes. A leading "/" is tolerated.
func ParseKey(key string) (ArtifactID, error) {
	trimmed := strings.TrimPrefix(key, "/")
	parts := strings.SplitN(trimmed, "/", 3)
	if len(parts) != 3 {
		return ArtifactID{}, fmt.Errorf(
			"%w: storage key %q needs project/version/path", ErrMalformedID, key)
	}
	projectID, version, path := parts[0], parts[1], parts[2]
	if projectID == "" {
		return ArtifactID{}, fmt.Errorf(
			"%w: empty project ID in storage key %q", ErrMalformedID, key)
	}
	if version == "" {
		return ArtifactID{}, fmt.Errorf(
			"%w: empty version in storage key %q", ErrMalformedID, key)
	}
	if path == "" {
		return ArtifactID{}, fmt.Errorf(
			"%w: empty path in storage key %q", ErrMalformedID, key)
	}
	return ArtifactID{projectID: projectID, path: path, version: version}, nil
}

// Key returns the object-store key for this artifact:
// "project_id/version/path". Unversioned AIDs have no storage location,
// so an empty version is ErrInvalidID.
func (a ArtifactID) Key() (string, error) {
	if err := a.validate(); err != nil {
		return "", err
	}
	if a.version == "" {
		return "", fmt.Errorf(
			"%w: storage key requires a version", ErrInvalidID)
	}
	return fmt.Sprintf("%s/%s/%s",
		strings.Trim(a.projectID, "/"),
		strings.Trim(a.version, "/"),
		strings.Trim(a.path, "/")), nil
}

// ParseARN extracts the ArtifactID and bucket name from an S3 object ARN,
// e.g. "arn:aws:s3:::my-bucket/PROJ1/3/report.html".
func ParseARN(arn string) (ArtifactID, string, error) {
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) != 6 {
		return ArtifactID{}, "", fmt.Errorf(
			"%w: ARN %q has too few ':' separators", ErrMalformedID, arn)
	}
	resource := parts[5]
	bucket, key, found := strings.Cut(resource, "/")
	if !found || bucket == "" {
		return ArtifactID{}, "", fmt.Errorf(
			"%w: ARN resource %q needs bucket/key", ErrMalformedID, resource)
	}
	id, err := ParseKey(key)
	if err != nil {
		return ArtifactID{}, "", err
	}
	return id, bucket, nil
}
