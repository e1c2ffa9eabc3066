package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateDayFirst(t *testing.T) {
	// 04/05/2024 is the 4th of May, not April 5th.
	d, err := ParseDate("04/05/2024")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 5, int(d.Month()))
	assert.Equal(t, 4, d.Day())
}

func TestParseDateFormats(t *testing.T) {
	for _, s := range []string{"01-04-2024", "2024-04-01", "01 Apr 2024"} {
		d, err := ParseDate(s)
		require.NoError(t, err, s)
		assert.Equal(t, 2024, d.Year(), s)
		assert.Equal(t, 4, int(d.Month()), s)
	}
}

func TestIsReverseChrono(t *testing.T) {
	forward := ledgerOf(
		[]string{"Txn Date", "Particulars", "Balance"},
		[]string{"01-04-2024", "first", "100.00"},
		[]string{"15-04-2024", "last", "200.00"},
	)
	assert.False(t, IsReverseChrono(forward))

	reverse := ledgerOf(
		[]string{"Txn Date", "Particulars", "Balance"},
		[]string{"15-04-2024", "newest", "200.00"},
		[]string{"01-04-2024", "oldest", "100.00"},
	)
	assert.True(t, IsReverseChrono(reverse))
}

func TestIsReverseChronoSkipsValueDate(t *testing.T) {
	// The Value Date column must not be mistaken for the txn date.
	l := ledgerOf(
		[]string{"Value Date", "Txn Date", "Balance"},
		[]string{"20-04-2024", "01-04-2024", "100.00"},
		[]string{"02-04-2024", "15-04-2024", "200.00"},
	)
	assert.False(t, IsReverseChrono(l))
}

func TestIsReverseChronoUnparseable(t *testing.T) {
	l := ledgerOf(
		[]string{"Date", "Particulars"},
		[]string{"n/a", "one"},
		[]string{"n/a", "two"},
	)
	assert.False(t, IsReverseChrono(l))
}

func TestNormalizeDates(t *testing.T) {
	l := ledgerOf(
		[]string{"Txn Date", "Particulars", "Balance"},
		[]string{"15/04/2024", "UPI/pay", "100.00"},
		[]string{"not a date", "NEFT", "200.00"},
	)

	NormalizeDates(l)

	assert.Equal(t, "2024-04-15", l.Cell(0, 0))
	assert.Equal(t, "not a date", l.Cell(1, 0), "unparseable cells untouched")
	assert.Equal(t, "UPI/pay", l.Cell(0, 1), "non-date columns untouched")
}
