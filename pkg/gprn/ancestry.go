package gprn

import (
	"fmt"
)

// AncestorKind labels a level in a GPRN's hierarchy.
type AncestorKind string

const (
	// KindArtifact is an artifact-level GPRN (a single file at a
	// project version).
	KindArtifact AncestorKind = "artifact"

	// KindVersion is a project-version-level GPRN
	// (resource "project_id@version").
	KindVersion AncestorKind = "version"

	// KindProject is a project-level GPRN (resource "project_id").
	KindProject AncestorKind = "project"

	// KindResource is a resource-level GPRN of an opaque type
	// (doc, backup).
	KindResource AncestorKind = "resource"

	// KindService is a service-level GPRN (no resource segment).
	KindService AncestorKind = "service"

	// KindEnvironment is the bare "gprn:<environment>" prefix. Not a
	// complete GPRN (it has no service), only a hierarchy marker.
	KindEnvironment AncestorKind = "environment"

	// KindRoot is the bare "gprn" prefix covering the whole platform.
	KindRoot AncestorKind = "root"
)

// Ancestor is one level of a GPRN's hierarchy: its kind and its name.
// Service level and below carry canonical GPRN strings; environment and
// root levels carry the bare prefix, which is a hierarchy marker rather
// than a parseable GPRN.
type Ancestor struct {
	Kind AncestorKind
	GPRN string
}

// kind labels the level the GPRN itself sits at.
func (g GPRN) kind() AncestorKind {
	if g.resourceID == "" {
		return KindService
	}
	switch g.typeID {
	case TypeArtifact:
		return KindArtifact
	case TypeProject, TypeChangelog:
		res, err := g.Resource()
		if err == nil && res.Version() != "" {
			return KindVersion
		}
		return KindProject
	default:
		return KindResource
	}
}

// withResource derives a sibling GPRN at a different resource level,
// keeping environment, service, and placeholder.
func (g GPRN) withResource(typeID TypeID, resourceID string) GPRN {
	return GPRN{
		environment: g.environment,
		service:     g.service,
		placeholder: g.placeholder,
		typeID:      typeID,
		resourceID:  resourceID,
	}
}

// Ancestors returns the GPRNs above this one in the hierarchy, nearest
// first. An artifact's ancestors are the project version it belongs to,
// the project, and the service; a versioned project reference walks up
// to the unversioned project; deep extends the walk past the service
// level to the environment and root markers.
//
//	gprn:dev:resultsdb::artifact:GPA2:/file/one@3
//	  -> gprn:dev:resultsdb::project:GPA2@3   (version)
//	  -> gprn:dev:resultsdb::project:GPA2    (project)
//	  -> gprn:dev:resultsdb:::               (service)
//	  -> gprn:dev                            (environment, deep only)
//	  -> gprn                                (root, deep only)
//
// Returns ErrMalformedID when an artifact resource-id cannot be parsed.
func (g GPRN) Ancestors(deep bool) ([]Ancestor, error) {
	res, err := g.Resource()
	if err != nil {
		return nil, err
	}

	var out []Ancestor
	switch res.Kind() {
	case ResourceArtifact:
		artifact := res.Artifact()
		if artifact.Version() != "" {
			version := g.withResource(TypeProject,
				fmt.Sprintf("%s@%s", artifact.ProjectID(), artifact.Version()))
			out = append(out, Ancestor{Kind: KindVersion, GPRN: version.String()})
		}
		project := g.withResource(TypeProject, artifact.ProjectID())
		out = append(out, Ancestor{Kind: KindProject, GPRN: project.String()})

	case ResourceProject:
		if res.Version() != "" {
			project := g.withResource(g.typeID, res.ProjectID())
			out = append(out, Ancestor{Kind: KindProject, GPRN: project.String()})
		}
	}

	if g.resourceID != "" {
		service := GPRN{environment: g.environment, service: g.service}
		out = append(out, Ancestor{Kind: KindService, GPRN: service.String()})
	}

	if deep {
		if g.environment != "" {
			out = append(out, Ancestor{
				Kind: KindEnvironment,
				GPRN: Prefix + ":" + g.environment,
			})
		}
		out = append(out, Ancestor{Kind: KindRoot, GPRN: Prefix})
	}
	return out, nil
}

// Lineage is Ancestors with the GPRN itself prepended.
func (g GPRN) Lineage(deep bool) ([]Ancestor, error) {
	ancestors, err := g.Ancestors(deep)
	if err != nil {
		return nil, err
	}
	lineage := make([]Ancestor, 0, len(ancestors)+1)
	lineage = append(lineage, Ancestor{Kind: g.kind(), GPRN: g.String()})
	return append(lineage, ancestors...), nil
}

// LCA returns the least common ancestor of a set of GPRN strings: the
// deepest hierarchy level shared by all of their deep lineages. The root
// prefix is a common ancestor of everything, so two valid GPRNs always
// have an LCA.
func LCA(gprns []string) (string, error) {
	if len(gprns) == 0 {
		return "", fmt.Errorf("%w: no GPRNs given", ErrMalformedID)
	}

	seen := make(map[string]struct{}, len(gprns))
	uniq := gprns[:0:0]
	for _, s := range gprns {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		uniq = append(uniq, s)
	}
	if len(uniq) == 1 {
		return uniq[0], nil
	}

	// Lineages ordered root-first so the walk below descends the tree.
	chains := make([][]string, 0, len(uniq))
	for _, s := range uniq {
		g, err := Parse(s)
		if err != nil {
			return "", err
		}
		lineage, err := g.Lineage(true)
		if err != nil {
			return "", err
		}
		chain := make([]string, 0, len(lineage))
		for i := len(lineage) - 1; i >= 0; i-- {
			chain = append(chain, lineage[i].GPRN)
		}
		chains = append(chains, chain)
	}

	members := make([]map[string]struct{}, len(chains))
	for i, chain := range chains {
		members[i] = make(map[string]struct{}, len(chain))
		for _, level := range chain {
			members[i][level] = struct{}{}
		}
	}

	lca := Prefix
	for _, level := range chains[0] {
		shared := true
		for _, m := range members[1:] {
			if _, ok := m[level]; !ok {
				shared = false
				break
			}
		}
		if shared {
			lca = level
		}
	}
	return lca, nil
}
