package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegionValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Region{"chui", "talas", "naryn", "issyk-kul", "jalal-abad", "osh", "batken"} {
		assert.True(t, r.Valid(), "region %s", r)
	}

	for _, r := range []Region{"", "atlantis", "Chui", "issyk kul"} {
		assert.False(t, r.Valid(), "region %s", r)
	}
}

func TestSeasonValid(t *testing.T) {
	t.Parallel()

	for _, s := range []Season{"winter", "spring", "summer", "autumn"} {
		assert.True(t, s.Valid(), "season %s", s)
	}

	for _, s := range []Season{"", "monsoon", "Summer"} {
		assert.False(t, s.Valid(), "season %s", s)
	}
}
