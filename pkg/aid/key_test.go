package aid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	t.Run("project/version/path layout", func(t *testing.T) {
		id, err := ParseKey("GPA2/3/experiment-1/coldata/simple.csv")
		require.NoError(t, err)

		assert.Equal(t, "GPA2", id.ProjectID())
		assert.Equal(t, "3", id.Version())
		assert.Equal(t, "experiment-1/coldata/simple.csv", id.Path())
	})

	t.Run("tolerates a leading slash", func(t *testing.T) {
		id, err := ParseKey("/PROJ1/2/report.html")
		require.NoError(t, err)
		assert.Equal(t, "PROJ1", id.ProjectID())
	})

	t.Run("errors", func(t *testing.T) {
		cases := map[string]string{
			"missing path":  "PROJ1/2",
			"empty project": "/2/report.html",
			"empty version": "PROJ1//report.html",
			"empty path":    "PROJ1/2/",
			"empty string":  "",
		}
		for name, key := range cases {
			t.Run(name, func(t *testing.T) {
				_, err := ParseKey(key)
				assert.ErrorIs(t, err, ErrMalformedID)
			})
		}
	})
}

func TestKey(t *testing.T) {
	t.Run("builds the storage key", func(t *testing.T) {
		key, err := MustNew("PROJ1", "results/report.html", "3").Key()
		require.NoError(t, err)
		assert.Equal(t, "PROJ1/3/results/report.html", key)
	})

	t.Run("trims stray slashes", func(t *testing.T) {
		key, err := MustNew("PROJ1", "/report.html", "3").Key()
		require.NoError(t, err)
		assert.Equal(t, "PROJ1/3/report.html", key)
	})

	t.Run("unversioned IDs have no storage key", func(t *testing.T) {
		_, err := MustNew("PROJ1", "report.html", "").Key()
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("round trip", func(t *testing.T) {
		id := MustNew("GPA2", "experiment-1/coldata/simple.csv", "12")
		key, err := id.Key()
		require.NoError(t, err)

		back, err := ParseKey(key)
		require.NoError(t, err)
		assert.True(t, id.Equal(back))
	})
}

func TestParseARN(t *testing.T) {
	t.Run("s3 object ARN", func(t *testing.T) {
		id, bucket, err := ParseARN("arn:aws:s3:::results-prd/GPA2/3/experiment-1/simple.csv")
		require.NoError(t, err)

		assert.Equal(t, "results-prd", bucket)
		assert.Equal(t, "GPA2", id.ProjectID())
		assert.Equal(t, "3", id.Version())
		assert.Equal(t, "experiment-1/simple.csv", id.Path())
	})

	t.Run("errors", func(t *testing.T) {
		cases := map[string]string{
			"too few fields": "arn:aws:s3",
			"no key":         "arn:aws:s3:::bucket-only",
			"bad key layout": "arn:aws:s3:::bucket/justone",
		}
		for name, arn := range cases {
			t.Run(name, func(t *testing.T) {
				_, _, err := ParseARN(arn)
				assert.ErrorIs(t, err, ErrMalformedID)
			})
		}
	})
}
