package integration_tests

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/blockforge/internal/testutil"
)

// TestGeneration_EmptyScript verifies that a script with no blocks yields
// exactly the placeholder message, with no header banner.
func TestGeneration_EmptyScript(t *testing.T) {
	t.Parallel()

	files := testutil.MergeFiles(testutil.BuiltinManifests(t), map[string]string{
		"script/main.hcl": "\n",
	})

	result := testutil.RunGeneration(t, files)
	require.NoError(t, result.Err)

	assert.Equal(t, "# Add blocks to build your script.", strings.TrimSpace(result.Output))
	assert.NotContains(t, result.Output, "Generated by")
}

// TestGeneration_Deterministic runs the same script twice and expects
// byte-identical output.
func TestGeneration_Deterministic(t *testing.T) {
	t.Parallel()

	scriptHCL := `
		block "load_csv" "b1" {
			params = {
				filename = "people.csv"
				store_in = "df"
			}
		}

		block "filter_rows" "b2" {
			params = {
				frame     = "df"
				condition = "age > 30"
				store_in  = "adults"
			}
		}

		block "show_frame" "b3" {
			params = {
				frame     = "adults"
				head_only = "yes"
			}
		}
	`
	files := testutil.MergeFiles(testutil.BuiltinManifests(t), map[string]string{
		"script/main.hcl": scriptHCL,
	})

	first := testutil.RunGeneration(t, files)
	require.NoError(t, first.Err)
	second := testutil.RunGeneration(t, files)
	require.NoError(t, second.Err)

	assert.Equal(t, first.Output, second.Output)

	assert.Contains(t, first.Output, "import pandas as pd")
	assert.Contains(t, first.Output, `df = pd.read_csv("people.csv")`)
	assert.Contains(t, first.Output, `adults = df.query("age > 30")`)
	assert.Contains(t, first.Output, "print(adults.head())")
}
