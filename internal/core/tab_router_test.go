package core

import (
	"context"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabnav/internal/types"
)

func TestBuildDefaults(t *testing.T) {
	router := mustBuild(t, leafEntries("Home", "Feed", "Settings"), Options{})

	settings := router.Settings()
	if diff := cmp.Diff([]string{"Home", "Feed", "Settings"}, settings.Order); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, settings.InitialRouteIndex)
	assert.Equal(t, types.BackBehaviorInitialRoute, settings.BackBehavior)
}

func TestBuildExplicitSettings(t *testing.T) {
	router := mustBuild(t, leafEntries("Home", "Feed", "Settings"), Options{
		Order:            []string{"Settings", "Home"},
		InitialRouteName: "Home",
		BackBehavior:     types.BackBehaviorNone,
	})

	settings := router.Settings()
	if diff := cmp.Diff([]string{"Settings", "Home"}, settings.Order); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, settings.InitialRouteIndex)
	assert.Equal(t, types.BackBehaviorNone, settings.BackBehavior)
}

func TestBuildRejectsUnknownInitialRoute(t *testing.T) {
	_, err := Build(context.Background(), leafEntries("Home"), Options{InitialRouteName: "Missing"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestBuildRejectsUnknownOrderEntry(t *testing.T) {
	_, err := Build(context.Background(), leafEntries("Home"), Options{Order: []string{"Home", "Ghost"}})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestBuildRejectsEmptyConfig(t *testing.T) {
	_, err := Build(context.Background(), nil, Options{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestBuildRejectsInvalidBackBehavior(t *testing.T) {
	_, err := Build(context.Background(), leafEntries("Home"), Options{BackBehavior: "pop"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

type failingValidator struct{}

func (failingValidator) ValidateRouteConfigs([]types.RouteConfigEntry) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("route config rejected")
}

func TestBuildDelegatesValidation(t *testing.T) {
	_, err := Build(context.Background(), leafEntries("Home"), Options{Validator: failingValidator{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "route config rejected")
}

func TestBuildPathOverrides(t *testing.T) {
	entries := []types.RouteConfigEntry{
		{RouteName: "Home", Screen: leafScreen{name: "Home"}, Path: strptr("")},
		{RouteName: "Profile", Screen: leafScreen{name: "Profile"}},
	}
	router := mustBuild(t, entries, Options{Paths: map[string]string{"Profile": "p"}})

	state := initState(t, router)
	assert.Equal(t, "", router.PathAndParamsForState(state).Path)

	state = router.StateForAction(types.Action{Type: types.ActionNavigate, RouteName: "Profile"}, state)
	require.NotNil(t, state)
	assert.Equal(t, "p", router.PathAndParamsForState(state).Path)
}

func TestSettingsCopyIsDetached(t *testing.T) {
	router := mustBuild(t, leafEntries("Home", "Feed"), Options{})
	settings := router.Settings()
	settings.Order[0] = "Hacked"
	assert.Equal(t, "Home", router.Settings().Order[0])
}
