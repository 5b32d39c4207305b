package grid

import (
	"testing"

	"github.com/matryer/is"
)

func TestIndex(t *testing.T) {
	is := is.New(t)
	is.Equal(Index(0, 0, 7), 0)
	is.Equal(Index(5, 0, 7), 35)
	is.Equal(Index(5, 6, 7), 41)
	is.Equal(Index(2, 3, 7), 17)
}

func TestIndexSentinels(t *testing.T) {
	is := is.New(t)
	is.Equal(Index(-1, 0, 7), -1)
	is.Equal(Index(0, -1, 7), -1)
	is.Equal(Index(0, 7, 7), -1)
	is.Equal(Index(0, 0, 0), -1)
	is.Equal(Index(0, 0, -3), -1)
}

func TestRowCol(t *testing.T) {
	is := is.New(t)
	r, c := RowCol(35, 7)
	is.Equal(r, 5)
	is.Equal(c, 0)
	r, c = RowCol(17, 7)
	is.Equal(r, 2)
	is.Equal(c, 3)
}

func TestRowColSentinels(t *testing.T) {
	is := is.New(t)
	r, c := RowCol(-1, 7)
	is.Equal(r, -1)
	is.Equal(c, -1)
	r, c = RowCol(3, 0)
	is.Equal(r, -1)
	is.Equal(c, -1)
}

func TestIsValidColumn(t *testing.T) {
	is := is.New(t)
	is.True(IsValidColumn(0, 7))
	is.True(IsValidColumn(6, 7))
	is.True(!IsValidColumn(7, 7))
	is.True(!IsValidColumn(-1, 7))
	is.True(!IsValidColumn(0, 0))
}
