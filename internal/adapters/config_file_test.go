package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabnav/internal/types"
)

const sampleConfig = `
routes:
  - name: Home
    path: ""
  - name: Social
    path: social
    options:
      title: Social
    tabs:
      routes:
        - name: Chat
          path: chat
        - name: Calls
          path: calls
      initial_route: Calls
initial_route: Home
back_behavior: initialRoute
defaults:
  header: compact
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routes.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRouteTree(t *testing.T) {
	adapter := NewRouteConfigFileAdapter()
	tree, err := adapter.LoadRouteTree(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	require.Len(t, tree.Routes, 2)
	assert.Equal(t, "Home", tree.Routes[0].Name)
	require.NotNil(t, tree.Routes[0].Path)
	assert.Equal(t, "", *tree.Routes[0].Path)
	assert.Nil(t, tree.Routes[0].Tabs)

	social := tree.Routes[1]
	require.NotNil(t, social.Tabs)
	assert.Equal(t, "Calls", social.Tabs.InitialRoute)
	assert.Len(t, social.Tabs.Routes, 2)
	assert.Equal(t, "Social", social.Options["title"])

	assert.Equal(t, "Home", tree.InitialRoute)
	assert.Equal(t, types.BackBehaviorInitialRoute, tree.BackBehavior)
	assert.Equal(t, "compact", tree.Defaults["header"])
}

func TestLoadRouteTreeMissingFile(t *testing.T) {
	adapter := NewRouteConfigFileAdapter()
	_, err := adapter.LoadRouteTree(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestLoadRouteTreeRejectsMalformedYaml(t *testing.T) {
	adapter := NewRouteConfigFileAdapter()
	_, err := adapter.LoadRouteTree(writeConfig(t, "routes: {not: [valid"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestLoadRouteTreeRejectsEmptyRoutes(t *testing.T) {
	adapter := NewRouteConfigFileAdapter()
	_, err := adapter.LoadRouteTree(writeConfig(t, "initial_route: Home\n"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
