package entities

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocatorStringForm(t *testing.T) {
	require.Equal(t, "id=submit-btn", NewLocator(ByID, "submit-btn").String())
	require.Equal(t, "css selector=.menu > li", NewLocator(ByCSS, ".menu > li").String())
	require.Equal(t, "xpath=//div[@id='x']", NewLocator(ByXPath, "//div[@id='x']").String())
}

func TestLocatorEquality(t *testing.T) {
	require.Equal(t, NewLocator(ByID, "x"), NewLocator(ByID, "x"))
	require.NotEqual(t, NewLocator(ByID, "x"), NewLocator(ByName, "x"))

	// Comparable, usable as a map key.
	seen := map[Locator]bool{NewLocator(ByID, "x"): true}
	require.True(t, seen[NewLocator(ByID, "x")])
}
