package gprn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAncestors(t *testing.T) {
	t.Run("artifact walks up to the service", func(t *testing.T) {
		g := MustParse("gprn:dev:resultsdb::artifact:GPA2:/file/one@3")
		ancestors, err := g.Ancestors(false)
		require.NoError(t, err)

		require.Len(t, ancestors, 3)
		assert.Equal(t, Ancestor{KindVersion, "gprn:dev:resultsdb::project:GPA2@3"}, ancestors[0])
		assert.Equal(t, Ancestor{KindProject, "gprn:dev:resultsdb::project:GPA2"}, ancestors[1])
		assert.Equal(t, Ancestor{KindService, "gprn:dev:resultsdb:::"}, ancestors[2])
	})

	t.Run("deep walk reaches the root", func(t *testing.T) {
		g := MustParse("gprn:dev:resultsdb::artifact:GPA2:/file/one@3")
		ancestors, err := g.Ancestors(true)
		require.NoError(t, err)

		require.Len(t, ancestors, 5)
		assert.Equal(t, Ancestor{KindEnvironment, "gprn:dev"}, ancestors[3])
		assert.Equal(t, Ancestor{KindRoot, "gprn"}, ancestors[4])
	})

	t.Run("production environment has no environment level", func(t *testing.T) {
		g := MustParse("gprn::myapi::project:GPA2")
		ancestors, err := g.Ancestors(true)
		require.NoError(t, err)

		require.Len(t, ancestors, 2)
		assert.Equal(t, Ancestor{KindService, "gprn::myapi:::"}, ancestors[0])
		assert.Equal(t, Ancestor{KindRoot, "gprn"}, ancestors[1])
	})

	t.Run("versioned project walks to the project", func(t *testing.T) {
		g := MustParse("gprn:dev:resultsdb::project:GPA2@3")
		ancestors, err := g.Ancestors(false)
		require.NoError(t, err)

		require.Len(t, ancestors, 2)
		assert.Equal(t, Ancestor{KindProject, "gprn:dev:resultsdb::project:GPA2"}, ancestors[0])
		assert.Equal(t, Ancestor{KindService, "gprn:dev:resultsdb:::"}, ancestors[1])
	})

	t.Run("service level has no shallow ancestors", func(t *testing.T) {
		g := MustParse("gprn:dev:resultsdb")
		ancestors, err := g.Ancestors(false)
		require.NoError(t, err)
		assert.Empty(t, ancestors)

		deep, err := g.Ancestors(true)
		require.NoError(t, err)
		require.Len(t, deep, 2)
		assert.Equal(t, Ancestor{KindEnvironment, "gprn:dev"}, deep[0])
		assert.Equal(t, Ancestor{KindRoot, "gprn"}, deep[1])
	})

	t.Run("unversioned artifact skips the version level", func(t *testing.T) {
		g := MustParse("gprn:dev:resultsdb::artifact:GPA2:report.html")
		ancestors, err := g.Ancestors(false)
		require.NoError(t, err)

		require.Len(t, ancestors, 2)
		assert.Equal(t, KindProject, ancestors[0].Kind)
	})

	t.Run("unparseable artifact resource", func(t *testing.T) {
		g := MustParse("gprn:dev:resultsdb::artifact:noproject")
		_, err := g.Ancestors(false)
		assert.ErrorIs(t, err, ErrMalformedID)
	})
}

func TestLineage(t *testing.T) {
	t.Run("starts with the GPRN itself", func(t *testing.T) {
		g := MustParse("gprn:dev:resultsdb::artifact:GPA2:/file/one@3")
		lineage, err := g.Lineage(false)
		require.NoError(t, err)

		require.Len(t, lineage, 4)
		assert.Equal(t, Ancestor{KindArtifact, g.String()}, lineage[0])
	})

	t.Run("kind tracks the resource level", func(t *testing.T) {
		cases := map[string]AncestorKind{
			"gprn:dev:resultsdb:::":                KindService,
			"gprn:dev:resultsdb::project:GPA2":     KindProject,
			"gprn:dev:resultsdb::project:GPA2@3":   KindVersion,
			"gprn:dev:resultsdb::changelog:GPA2@3": KindVersion,
			"gprn:dev:resultsdb::doc:welcome":      KindResource,
		}
		for input, kind := range cases {
			lineage, err := MustParse(input).Lineage(false)
			require.NoError(t, err)
			assert.Equal(t, kind, lineage[0].Kind, input)
		}
	})
}

func TestLCA(t *testing.T) {
	t.Run("identical GPRNs", func(t *testing.T) {
		lca, err := LCA([]string{
			"gprn:dev:resultsdb::project:GPA2",
			"gprn:dev:resultsdb::project:GPA2",
		})
		require.NoError(t, err)
		assert.Equal(t, "gprn:dev:resultsdb::project:GPA2", lca)
	})

	t.Run("artifacts at the same version", func(t *testing.T) {
		lca, err := LCA([]string{
			"gprn:dev:resultsdb::artifact:GPA2:/file/one@3",
			"gprn:dev:resultsdb::artifact:GPA2:/file/two@3",
		})
		require.NoError(t, err)
		assert.Equal(t, "gprn:dev:resultsdb::project:GPA2@3", lca)
	})

	t.Run("artifacts at different versions", func(t *testing.T) {
		lca, err := LCA([]string{
			"gprn:dev:resultsdb::artifact:GPA2:/file/one@3",
			"gprn:dev:resultsdb::artifact:GPA2:/file/one@4",
		})
		require.NoError(t, err)
		assert.Equal(t, "gprn:dev:resultsdb::project:GPA2", lca)
	})

	t.Run("different projects share the service", func(t *testing.T) {
		lca, err := LCA([]string{
			"gprn:dev:resultsdb::project:GPA2@3",
			"gprn:dev:resultsdb::project:GPX9",
		})
		require.NoError(t, err)
		assert.Equal(t, "gprn:dev:resultsdb:::", lca)
	})

	t.Run("different services share the environment", func(t *testing.T) {
		lca, err := LCA([]string{
			"gprn:dev:resultsdb::project:GPA2",
			"gprn:dev:poseidon::project:GPA2",
		})
		require.NoError(t, err)
		assert.Equal(t, "gprn:dev", lca)
	})

	t.Run("different environments share the root", func(t *testing.T) {
		lca, err := LCA([]string{
			"gprn:dev:resultsdb::project:GPA2",
			"gprn:tst:resultsdb::project:GPA2",
		})
		require.NoError(t, err)
		assert.Equal(t, "gprn", lca)
	})

	t.Run("ancestor and descendant", func(t *testing.T) {
		lca, err := LCA([]string{
			"gprn:dev:resultsdb::artifact:GPA2:/file/one@3",
			"gprn:dev:resultsdb::project:GPA2",
		})
		require.NoError(t, err)
		assert.Equal(t, "gprn:dev:resultsdb::project:GPA2", lca)
	})

	t.Run("no input", func(t *testing.T) {
		_, err := LCA(nil)
		assert.ErrorIs(t, err, ErrMalformedID)
	})

	t.Run("invalid input propagates", func(t *testing.T) {
		_, err := LCA([]string{"gprn:dev:resultsdb:::", "notgprn:x:y"})
		assert.ErrorIs(t, err, ErrInvalidPrefix)
	})
}
