package httpdate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVectors(t *testing.T) {
	var buf [FormattedLen]byte
	for _, v := range loadDateVectors(t).Vectors {
		require.NoError(t, Format(v.Timestamp, &buf), "%v should format", v.Timestamp)
		assert.Equal(t, v.IMF, string(buf[:]), "%v formats as %q", v.Timestamp, v.IMF)
	}
}

func TestFormatEpoch(t *testing.T) {
	var buf [FormattedLen]byte
	require.NoError(t, Format(0, &buf))
	assert.Equal(t, "Thu, 01 Jan 1970 00:00:00 GMT", string(buf[:]))
}

func TestFormatYear10000Boundary(t *testing.T) {
	var buf [FormattedLen]byte

	// The last second of 9999 still fits.
	require.NoError(t, Format(253402300799, &buf))
	assert.Equal(t, "Fri, 31 Dec 9999 23:59:59 GMT", string(buf[:]))

	// The first second of 10000 does not.
	assert.ErrorIs(t, Format(253402300800, &buf), ErrDateTooFar)
	assert.ErrorIs(t, Format(^uint64(0), &buf), ErrDateTooFar)
}

// A successful Format must stamp every byte of the buffer, so garbage
// from an earlier use can never survive.
func TestFormatOverwritesWholeBuffer(t *testing.T) {
	var buf [FormattedLen]byte
	for i := range buf {
		buf[i] = 0xff
	}

	require.NoError(t, Format(784111777, &buf))
	assert.Equal(t, "Sun, 06 Nov 1994 08:49:37 GMT", string(buf[:]))
	for i, b := range buf {
		assert.Less(t, b, byte(0x80), "byte %d is ASCII", i)
	}
}

// Every rendering has the shape "Www, dd Mon yyyy HH:MM:SS GMT" with
// the separators at their fixed offsets and names from the closed
// weekday/month enumerations.
func TestFormatShape(t *testing.T) {
	var buf [FormattedLen]byte
	for secs := uint64(0); secs < year10000; secs += 1234567891 {
		require.NoError(t, Format(secs, &buf))

		assert.Equal(t, byte(','), buf[3])
		assert.Equal(t, byte(' '), buf[4])
		assert.Equal(t, byte(' '), buf[7])
		assert.Equal(t, byte(' '), buf[11])
		assert.Equal(t, byte(' '), buf[16])
		assert.Equal(t, byte(':'), buf[19])
		assert.Equal(t, byte(':'), buf[22])
		assert.Equal(t, " GMT", string(buf[25:]))

		_, ok := lookupWeekday(buf[:3])
		assert.True(t, ok, "%q carries a known weekday", buf[:])
		_, ok = lookupMonth(buf[8:11])
		assert.True(t, ok, "%q carries a known month", buf[:])

		for _, i := range []int{5, 6, 12, 13, 14, 15, 17, 18, 20, 21, 23, 24} {
			assert.True(t, buf[i] >= '0' && buf[i] <= '9', "byte %d of %q is a digit", i, buf[:])
		}
	}
}

func BenchmarkFormat(b *testing.B) {
	var buf [FormattedLen]byte
	for i := 0; i < b.N; i++ {
		if err := Format(1691891847, &buf); err != nil {
			b.Fatal(err)
		}
	}
}
