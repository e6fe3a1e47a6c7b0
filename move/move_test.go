package move

import (
	"testing"

	"github.com/matryer/is"
)

func TestShortDescription(t *testing.T) {
	is := is.New(t)
	cases := []struct {
		m    Move
		desc string
	}{
		{New(Base, 2, 3), "base->2"},
		{New(4, 7, 3), "4->7"},
		{New(1, Removed, 2), "1->off"},
		{New(0, 0, 5), "0->0"},
	}
	for _, tc := range cases {
		is.Equal(tc.m.ShortDescription(), tc.desc)
	}
}

func TestParseLocation(t *testing.T) {
	is := is.New(t)
	for _, l := range []Location{Base, Removed, 0, 5, 10} {
		parsed, err := ParseLocation(l.String())
		is.NoErr(err)
		is.Equal(parsed, l)
	}
	_, err := ParseLocation("-4")
	is.True(err != nil)
	_, err = ParseLocation("foo")
	is.True(err != nil)
}

func TestKeyIgnoresDistance(t *testing.T) {
	is := is.New(t)
	is.Equal(New(3, 5, 2).Key(), New(3, 5, 4).Key())
	is.True(New(Base, 1, 2).Enters())
	is.True(New(2, Removed, 3).Removes())
	is.True(!Base.IsTile())
	is.True(Location(0).IsTile())
}
