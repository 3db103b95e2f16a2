package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"SCC reporter", "as held in (2023) 4 SCC 110, the court", true},
		{"AIR reporter", "see AIR 2020 SC 1", true},
		{"AIR year only", "AIR 2020", true},
		{"KHC reporter", "relied on 2021 KHC 55", true},
		{"Ker LJ reporter", "reported in 2019 Ker LJ 7", true},
		{"Ker. L.J. dotted", "reported in 2019 Ker. L.J. 7", true},
		{"plain petition", "PARTY A submits that PARTY B failed to pay rent since 2019.", false},
		{"year in brackets without reporter", "(2023) the petitioner moved", false},
		{"word containing AIR", "the AIRLINE 2020 schedule", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.text))
		})
	}
}

func TestFind(t *testing.T) {
	got := Find("Cf. (2023) 4 SCC 110 and AIR 2020 SC 1 and 2021 KHC 55.")

	assert.Equal(t, []string{"(2023) 4 SCC 110", "AIR 2020", "2021 KHC 55"}, got)
}

func TestGate(t *testing.T) {
	withCitation := "relying on AIR 2020 SC 1"

	v := Gate(withCitation, 0)
	assert.True(t, v.Blocked)
	assert.Equal(t, []string{"AIR 2020"}, v.Matches)

	assert.False(t, Gate(withCitation, 1).Blocked)
	assert.False(t, Gate("no case law here", 0).Blocked)
	assert.False(t, Gate("no case law here", 3).Blocked)
}
