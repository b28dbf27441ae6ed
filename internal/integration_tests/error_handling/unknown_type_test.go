package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/blockforge/internal/testutil"
)

// TestErrorHandling_UnknownBlockTypeSkipped verifies that an instance
// pointing at a type absent from the catalog is dropped silently: no output
// line, no error, and generation continues with the next block.
func TestErrorHandling_UnknownBlockTypeSkipped(t *testing.T) {
	t.Parallel()

	scriptHCL := `
		block "teleport_user" "b1" {
			params = {
				destination = "moon"
			}
		}

		block "print_message" "b2" {
			params = {
				message = "still generated"
			}
		}
	`
	files := testutil.MergeFiles(testutil.BuiltinManifests(t), map[string]string{
		"script/main.hcl": scriptHCL,
	})

	result := testutil.RunGeneration(t, files)
	require.NoError(t, result.Err)

	assert.NotContains(t, result.Output, "teleport")
	assert.NotContains(t, result.Output, "moon")
	assert.Contains(t, result.Output, `print("still generated")`)
	assert.Contains(t, result.LogOutput, "Skipping block with unknown type.", "the skip is visible in debug logs only")
}
