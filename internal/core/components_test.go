package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabnav/internal/types"
)

func TestComponentForStateResolvesLeaf(t *testing.T) {
	home := leafScreen{name: "Home"}
	router := mustBuild(t, leafEntries("Home", "Feed"), Options{
		Screens: mapScreens{"Home": home, "Feed": leafScreen{name: "Feed"}},
	})
	state := initState(t, router)

	component, err := router.ComponentForState(state)
	require.NoError(t, err)
	assert.Equal(t, home, component)
}

func TestComponentForStateRecursesIntoNavigator(t *testing.T) {
	chat := leafScreen{name: "Chat"}
	child := mustBuild(t, leafEntries("Chat"), Options{Screens: mapScreens{"Chat": chat}})
	entries := []types.RouteConfigEntry{
		{RouteName: "Social", Screen: navScreen{router: child}},
	}
	router := mustBuild(t, entries, Options{})
	state := initState(t, router)

	component, err := router.ComponentForState(state)
	require.NoError(t, err)
	assert.Equal(t, chat, component)
}

func TestComponentForStateOutOfRangeIsFatal(t *testing.T) {
	router := mustBuild(t, leafEntries("Home"), Options{Screens: mapScreens{"Home": leafScreen{name: "Home"}}})
	state := initState(t, router)

	broken := *state
	broken.Index = 5
	_, err := router.ComponentForState(&broken)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInternal, errbuilder.CodeOf(err))
}

func TestComponentForRouteNameWithoutResolver(t *testing.T) {
	router := mustBuild(t, leafEntries("Home"), Options{})
	_, err := router.ComponentForRouteName("Home")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestComponentForUnknownRouteName(t *testing.T) {
	router := mustBuild(t, leafEntries("Home"), Options{Screens: mapScreens{}})
	_, err := router.ComponentForRouteName("Ghost")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

func TestScreenConfigDelegatesToOptionsGetter(t *testing.T) {
	router := mustBuild(t, leafEntries("Home", "Feed"), Options{
		OptionsGetter: mapOptions{"Feed": {"title": "Your feed"}},
	})
	state := initState(t, router)
	state = router.StateForAction(types.Action{Type: types.ActionNavigate, RouteName: "Feed"}, state)
	require.NotNil(t, state)

	options, err := router.ScreenConfig(state)
	require.NoError(t, err)
	assert.Equal(t, "Your feed", options["title"])
}

func TestScreenConfigWithoutGetter(t *testing.T) {
	router := mustBuild(t, leafEntries("Home"), Options{})
	state := initState(t, router)

	options, err := router.ScreenConfig(state)
	require.NoError(t, err)
	assert.Nil(t, options)
}
