package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigation_CarriesQuery(t *testing.T) {
	links := Navigation("banjir garut")
	require.Len(t, links, 6)

	assert.Equal(t, "/?q=banjir+garut", links[0].URL)
	assert.Equal(t, "/settings?q=banjir+garut", links[5].URL)
	for _, l := range links {
		assert.Equal(t, "banjir garut", l.Query)
	}
}

func TestNavigation_EmptyQuery(t *testing.T) {
	links := Navigation("")
	assert.Equal(t, "/incidents", links[1].URL)
	assert.Empty(t, links[1].Query)
}

func TestRouteByPath(t *testing.T) {
	r, ok := RouteByPath("/reports")
	require.True(t, ok)
	assert.Equal(t, "reports", r.Name)

	_, ok = RouteByPath("/admin")
	assert.False(t, ok)
}
