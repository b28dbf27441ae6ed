package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/blockforge/internal/testutil"
)

// TestGeneration_LoopScope verifies that a loop variable is visible inside
// the loop body and nowhere else.
func TestGeneration_LoopScope(t *testing.T) {
	t.Parallel()

	scriptHCL := `
		block "loop" "b1" {
			params = {
				count         = "3"
				loop_variable = "i"
			}

			block "print_message" "b2" {
				params = {
					message = "i"
				}
			}
		}

		block "print_message" "b3" {
			params = {
				message = "i"
			}
		}
	`
	files := testutil.MergeFiles(testutil.BuiltinManifests(t), map[string]string{
		"script/main.hcl": scriptHCL,
	})

	result := testutil.RunGeneration(t, files)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "for i in range(3):")
	assert.Contains(t, result.Output, "    print(i)", "loop variable referenced bare inside the body")
	assert.Contains(t, result.Output, "\nprint(\"i\")", "after the loop the name is out of scope and quoted")
}

// TestGeneration_EmptyLoopBody verifies the pass placeholder.
func TestGeneration_EmptyLoopBody(t *testing.T) {
	t.Parallel()

	scriptHCL := `
		block "loop" "b1" {
			params = {
				count         = "3"
				loop_variable = "i"
			}
		}
	`
	files := testutil.MergeFiles(testutil.BuiltinManifests(t), map[string]string{
		"script/main.hcl": scriptHCL,
	})

	result := testutil.RunGeneration(t, files)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "for i in range(3):\n    pass")
}

// TestGeneration_NestedLoops verifies indentation across two nesting levels
// and visibility of the outer loop variable inside the inner body.
func TestGeneration_NestedLoops(t *testing.T) {
	t.Parallel()

	scriptHCL := `
		block "loop" "outer" {
			params = {
				count         = "2"
				loop_variable = "i"
			}

			block "loop" "inner" {
				params = {
					count         = "i"
					loop_variable = "j"
				}

				block "print_message" "deep" {
					params = {
						message = "j"
					}
				}
			}
		}
	`
	files := testutil.MergeFiles(testutil.BuiltinManifests(t), map[string]string{
		"script/main.hcl": scriptHCL,
	})

	result := testutil.RunGeneration(t, files)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Output, "for i in range(2):\n    for j in range(i):\n        print(j)")
}
