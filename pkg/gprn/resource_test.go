package gprn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResource(t *testing.T) {
	t.Run("no resource segment", func(t *testing.T) {
		res, err := MustParse("gprn::myapi").Resource()
		require.NoError(t, err)

		assert.True(t, res.IsZero())
		assert.Equal(t, ResourceNone, res.Kind())
	})

	t.Run("artifact resolves through the AID codec", func(t *testing.T) {
		g := MustParse("gprn::myapi::artifact:PROJ1:report.html@3")
		res, err := g.Resource()
		require.NoError(t, err)

		assert.Equal(t, ResourceArtifact, res.Kind())
		assert.Equal(t, "PROJ1:report.html@3", res.Raw())
		assert.Equal(t, "PROJ1", res.Artifact().ProjectID())
		assert.Equal(t, "report.html", res.Artifact().Path())
		assert.Equal(t, "3", res.Artifact().Version())
		assert.Equal(t, "PROJ1", res.ProjectID())
		assert.Equal(t, "3", res.Version())
	})

	t.Run("versioned project reference", func(t *testing.T) {
		res, err := MustParse("gprn:dev:resultsdb::project:GPA2@3").Resource()
		require.NoError(t, err)

		assert.Equal(t, ResourceProject, res.Kind())
		assert.Equal(t, "GPA2", res.ProjectID())
		assert.Equal(t, "3", res.Version())
	})

	t.Run("unversioned project reference", func(t *testing.T) {
		res, err := MustParse("gprn:dev:resultsdb::project:GPA2").Resource()
		require.NoError(t, err)

		assert.Equal(t, ResourceProject, res.Kind())
		assert.Equal(t, "GPA2", res.ProjectID())
		assert.Equal(t, "", res.Version())
	})

	t.Run("changelog uses the project grammar", func(t *testing.T) {
		res, err := MustParse("gprn::myapi::changelog:GPA2@7").Resource()
		require.NoError(t, err)

		assert.Equal(t, ResourceProject, res.Kind())
		assert.Equal(t, "GPA2", res.ProjectID())
		assert.Equal(t, "7", res.Version())
	})

	t.Run("doc stays opaque", func(t *testing.T) {
		res, err := MustParse("gprn::myapi::doc:getting-started").Resource()
		require.NoError(t, err)

		assert.Equal(t, ResourceOpaque, res.Kind())
		assert.Equal(t, "getting-started", res.Raw())
		assert.True(t, res.Artifact().IsZero())
	})

	t.Run("unknown types stay opaque", func(t *testing.T) {
		res, err := MustParse("gprn::myapi::widget:W1").Resource()
		require.NoError(t, err)
		assert.Equal(t, ResourceOpaque, res.Kind())
	})

	t.Run("unparseable artifact resource", func(t *testing.T) {
		_, err := MustParse("gprn::myapi::artifact:noproject").Resource()
		assert.ErrorIs(t, err, ErrMalformedID)
	})

	t.Run("nested GPRN artifact", func(t *testing.T) {
		g := MustParse("gprn:dev:poseidon::artifact:gprn:dev:cerberus::project:DS000000267@1:experiment-1/simple.csv@4")
		res, err := g.Resource()
		require.NoError(t, err)

		assert.Equal(t, ResourceArtifact, res.Kind())
		assert.Equal(t, "gprn:dev:cerberus::project:DS000000267@1", res.Artifact().ProjectID())
		assert.True(t, res.Artifact().IsProjectGPRN())
		assert.Equal(t, "4", res.Version())
	})
}

func TestTypeID(t *testing.T) {
	t.Run("catalog", func(t *testing.T) {
		for _, typeID := range ValidTypeIDs() {
			assert.True(t, typeID.IsValid(), typeID.String())
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		assert.False(t, TypeID("widget").IsValid())
		assert.False(t, TypeID("").IsValid())
	})
}
