package research

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuickLink(t *testing.T) {
	facts := strings.Repeat("x", 80)

	link := QuickLink("Bail App", facts)

	require.True(t, strings.HasPrefix(link, "https://indiankanoon.org/search/?formInput="))
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "Bail App "+strings.Repeat("x", 50)+" Kerala", u.Query().Get("formInput"))
}

func TestYearRangeFilter(t *testing.T) {
	assert.Equal(t, "", YearRangeFilter(0, 0))
	assert.Equal(t, "cdr:1,cd_min:1/1/2015,cd_max:12/31/2024", YearRangeFilter(2015, 2024))
	assert.Equal(t, "cdr:1,cd_min:1/1/2015", YearRangeFilter(2015, 0))
	assert.Equal(t, "cdr:1,cd_max:12/31/2024", YearRangeFilter(0, 2024))
}

func TestSearchURL(t *testing.T) {
	raw := SearchURL("anticipatory bail NDPS", "indiankanoon.org", "cdr:1,cd_min:1/1/2015")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "www.google.com", u.Host)
	assert.Equal(t, "anticipatory bail NDPS site:indiankanoon.org", u.Query().Get("q"))
	assert.Equal(t, "cdr:1,cd_min:1/1/2015", u.Query().Get("tbs"))
}

func TestSearchURLWithoutDomainOrFilter(t *testing.T) {
	u, err := url.Parse(SearchURL("rent control eviction", "", ""))

	require.NoError(t, err)
	assert.Equal(t, "rent control eviction", u.Query().Get("q"))
	assert.False(t, u.Query().Has("tbs"))
}

func TestParsePhrases(t *testing.T) {
	reply := "1. bail conditions Kerala\n- \"default bail 167 CrPC\"\n\n* bail conditions kerala\n• NDPS commercial quantity\nextra one\nsixth"

	got := ParsePhrases(reply, 4)

	assert.Equal(t, []string{
		"bail conditions Kerala",
		"default bail 167 CrPC",
		"NDPS commercial quantity",
		"extra one",
	}, got)
}

func TestBuildLinksSkipsBlanks(t *testing.T) {
	links := BuildLinks([]string{"a", " ", "b"}, "indiankanoon.org", "")

	require.Len(t, links, 2)
	assert.Equal(t, "a", links[0].Phrase)
	assert.Contains(t, links[1].URL, "site%3Aindiankanoon.org")
}
