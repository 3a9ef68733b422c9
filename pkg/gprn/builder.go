package gprn

import (
	"fmt"

	"github.com/genomics-forge/gprn/pkg/aid"
)

// Build assembles a GPRN for a resource of the configured service.
//
// The resource level follows from which arguments are set:
//   - path (with projectID and version): an artifact GPRN whose
//     resource-id is the ArtifactDB ID
//   - version (with projectID): a project-version GPRN
//     ("project_id@version")
//   - projectID alone: a project GPRN
//   - none: the service-level GPRN
//
// A production environment in the config is stored as the empty segment,
// so built GPRNs round-trip through Parse unchanged.
func Build(cfg Config, projectID, version, path string) (GPRN, error) {
	if err := cfg.Validate(); err != nil {
		return GPRN{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}

	env := cfg.Environment
	if env == EnvProduction {
		env = ""
	}

	switch {
	case path != "":
		if projectID == "" || version == "" {
			return GPRN{}, fmt.Errorf(
				"%w: artifact GPRN needs project ID and version", ErrInvalidID)
		}
		artifact, err := aid.New(projectID, path, version)
		if err != nil {
			return GPRN{}, fmt.Errorf("%w: %v", ErrInvalidID, err)
		}
		return New(env, cfg.Service,
			WithResource(TypeArtifact, artifact.String()))

	case version != "":
		if projectID == "" {
			return GPRN{}, fmt.Errorf(
				"%w: project-version GPRN needs a project ID", ErrInvalidID)
		}
		return New(env, cfg.Service,
			WithResource(TypeProject, fmt.Sprintf("%s@%s", projectID, version)))

	case projectID != "":
		return New(env, cfg.Service, WithResource(TypeProject, projectID))

	default:
		return New(env, cfg.Service)
	}
}
