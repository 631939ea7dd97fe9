package usecase

import (
	"testing"

	repo "storeapi/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateDecimal(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"0", true},
		{"0.01", true},
		{"999999.99", true},
		{"100.5", true},
		{"1000000", false},
		{"0.001", false},
		{"12345678.9", false},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			fe := FieldErrors{}
			ok := validateDecimal(fe, "price", decimal.RequireFromString(tc.in), 8, 2)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.ok, fe.Empty())
		})
	}
}

func TestValidateText_TrimsAndCountsRunes(t *testing.T) {
	fe := FieldErrors{}
	v := "  ねこ  "
	assert.Equal(t, "ねこ", validateText(fe, "name", &v, 2, false))
	assert.True(t, fe.Empty())

	long := "ねこねこ"
	validateText(fe, "name", &long, 3, false)
	assert.Equal(t, []string{"Ensure this field has no more than 3 characters."}, fe["name"])
}

func TestValidateText_PartialSkipsMissing(t *testing.T) {
	fe := FieldErrors{}
	validateText(fe, "name", nil, 10, true)
	assert.True(t, fe.Empty())
}

func TestSplitTerms(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitTerms(" a,b\tc ,"))
	assert.Empty(t, splitTerms("  , "))
}

func TestParseOrdering(t *testing.T) {
	got := parseOrdering("-date, name,,id,-price")
	assert.Equal(t, []repo.OrderOrdering{
		{Column: "date", Desc: true},
		{Column: "name", Desc: false},
	}, got)
	assert.Empty(t, parseOrdering(""))
}

func TestLastPage(t *testing.T) {
	assert.Equal(t, 1, lastPage(0, 10))
	assert.Equal(t, 1, lastPage(10, 10))
	assert.Equal(t, 2, lastPage(11, 10))
	assert.Equal(t, 21, lastPage(201, 10))
}

func TestAsUsecaseError(t *testing.T) {
	assert.NoError(t, asUsecaseError(nil))

	he := NewHTTPError(404, msgNotFound)
	assert.Same(t, he, asUsecaseError(he))

	wrapped, ok := AsHTTPError(asUsecaseError(assert.AnError))
	assert.True(t, ok)
	assert.Equal(t, 500, wrapped.Status)
	assert.ErrorIs(t, wrapped, assert.AnError)
}
