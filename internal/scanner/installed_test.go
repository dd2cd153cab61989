package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ethanolivertroy/debcrates/internal/models"
)

func TestCorrelate(t *testing.T) {
	records := []models.Record{{Crate: "foo", Package: "libfoo-dev"}}

	tests := []struct {
		name    string
		listing string
		marker  string
		want    bool
	}{
		{"installed line", "ii  libfoo-dev  1.0  amd64  desc", "libfoo", true},
		{"removed line", "rc  libfoo-dev  1.0  amd64  desc", "libfoo", false},
		{"marker missing from line", "ii  libfoo-dev  1.0  amd64  desc", "librust-", false},
		{"no mention", "ii  libbar-dev  1.0  amd64  desc", "lib", false},
		{"status not at line start", " ii libfoo-dev  1.0  amd64  desc", "libfoo", false},
		{"empty listing", "", "libfoo", false},
		{
			"later non-installed line does not unmark",
			"ii  libfoo-dev  1.0  amd64  desc\nrc  libfoo-dev  0.9  amd64  desc",
			"libfoo", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Correlate(records, tt.listing, tt.marker)
			assert.Equal(t, tt.want, got.Has("libfoo-dev"))
		})
	}
}

func TestCorrelate_SubstringMatch(t *testing.T) {
	records := []models.Record{
		{Crate: "foo", Package: "librust-foo-de"},
		{Crate: "foo-derive", Package: "librust-foo-derive-dev"},
	}
	listing := "ii  librust-foo-derive-dev  1.0-1  amd64  derive macros"

	got := Correlate(records, listing, models.DefaultFamilyMarker)
	assert.True(t, got.Has("librust-foo-derive-dev"))
	assert.True(t, got.Has("librust-foo-de"), "substring of an installed package name is marked too")
	assert.Equal(t, 2, got.Len())
}
