package httpdate

// FormattedLen is the byte width of an IMF-fixdate rendering,
// e.g. "Fri, 15 May 2015 15:34:21 GMT".
const FormattedLen = 29

var (
	// weekdayNames is indexed by the 0-based weekday, Sunday first.
	weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	// monthNames is indexed by month-1.
	monthNames = [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	}
)

// Format writes the IMF-fixdate rendering of a Unix timestamp into buf,
// hard-coding GMT as the time zone. IMF-fixdate is fixed-width, so on
// success the entire buffer is overwritten; stale bytes from a previous
// call can never leak through a reused buffer. Timestamps at or past
// year 10000 do not fit the four-digit year field and fail with
// ErrDateTooFar, leaving the buffer contents unspecified.
func Format(secs uint64, buf *[FormattedLen]byte) error {
	if secs >= year10000 {
		return ErrDateTooFar
	}

	d := civilFromUnix(secs)

	copy(buf[:], "   , 00     0000 00:00:00 GMT")

	wday := weekdayNames[d.weekday]
	buf[0] = wday[0]
	buf[1] = wday[1]
	buf[2] = wday[2]
	buf[5] = '0' + d.day/10
	buf[6] = '0' + d.day%10

	mon := monthNames[d.mon-1]
	buf[8] = mon[0]
	buf[9] = mon[1]
	buf[10] = mon[2]

	buf[12] = '0' + byte(d.year/1000)
	buf[13] = '0' + byte(d.year/100%10)
	buf[14] = '0' + byte(d.year/10%10)
	buf[15] = '0' + byte(d.year%10)
	buf[17] = '0' + d.hour/10
	buf[18] = '0' + d.hour%10
	buf[20] = '0' + d.min/10
	buf[21] = '0' + d.min%10
	buf[23] = '0' + d.sec/10
	buf[24] = '0' + d.sec%10

	return nil
}
