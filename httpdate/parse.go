package httpdate

// longWeekdayNames is indexed by the 0-based weekday, Sunday first.
var longWeekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday",
	"Thursday", "Friday", "Saturday",
}

// Parse converts an HTTP date header value to a Unix timestamp.
// It accepts the three formats permitted by RFC 9110 section 5.6.7:
// IMF-fixdate ("Sun, 06 Nov 1994 08:49:37 GMT"), the obsolete RFC 850
// form ("Sunday, 06-Nov-94 08:49:37 GMT"), and the obsolete asctime
// form ("Sun Nov  6 08:49:37 1994"). Dates before 1970 or after 9999
// are rejected, as is any date whose weekday label does not match the
// date itself. All failures report the same ErrInvalidDate.
func Parse(header []byte) (uint64, error) {
	d, err := parseIMFFixdate(header)
	if err != nil {
		d, err = parseRFC850(header)
	}
	if err != nil {
		d, err = parseAsctime(header)
	}
	if err != nil {
		return 0, ErrInvalidDate
	}

	valid := d.sec < 60 && d.min < 60 && d.hour < 24 &&
		d.day >= 1 && d.day <= 31 &&
		d.mon >= 1 && d.mon <= 12 &&
		d.year >= 1970 && d.year <= 9999
	if !valid {
		return 0, ErrInvalidDate
	}

	secs := unixFromCivil(d)

	// The epoch was a Thursday. A date carrying the wrong weekday label
	// is rejected even when every field is individually in range.
	if uint8((secs/86400+4)%7) != d.weekday {
		return 0, ErrInvalidDate
	}

	return secs, nil
}

// lookupWeekday matches a 3-byte abbreviated weekday name.
func lookupWeekday(s []byte) (uint8, bool) {
	for i, name := range weekdayNames {
		if string(s) == name {
			return uint8(i), true
		}
	}
	return 0, false
}

// lookupMonth matches a 3-byte abbreviated month name, returning the
// 1-based month number.
func lookupMonth(s []byte) (uint8, bool) {
	for i, name := range monthNames {
		if string(s) == name {
			return uint8(i) + 1, true
		}
	}
	return 0, false
}

// Example: `Sun, 06 Nov 1994 08:49:37 GMT`
func parseIMFFixdate(s []byte) (civilDate, error) {
	if len(s) != 29 ||
		s[3] != ',' || s[4] != ' ' || s[7] != ' ' || s[11] != ' ' ||
		s[16] != ' ' || s[19] != ':' || s[22] != ':' ||
		string(s[25:]) != " GMT" {
		return civilDate{}, ErrInvalidDate
	}

	weekday, ok := lookupWeekday(s[:3])
	if !ok {
		return civilDate{}, ErrInvalidDate
	}
	mon, ok := lookupMonth(s[8:11])
	if !ok {
		return civilDate{}, ErrInvalidDate
	}

	d := civilDate{weekday: weekday, mon: mon}

	var err error
	if d.day, err = toint2(s[5:7]); err != nil {
		return civilDate{}, err
	}
	if d.year, err = toint4(s[12:16]); err != nil {
		return civilDate{}, err
	}
	if d.hour, err = toint2(s[17:19]); err != nil {
		return civilDate{}, err
	}
	if d.min, err = toint2(s[20:22]); err != nil {
		return civilDate{}, err
	}
	if d.sec, err = toint2(s[23:25]); err != nil {
		return civilDate{}, err
	}

	return d, nil
}

// Example: `Sunday, 06-Nov-94 08:49:37 GMT`
func parseRFC850(s []byte) (civilDate, error) {
	if len(s) < 23 {
		return civilDate{}, ErrInvalidDate
	}

	// Only the weekday name varies in width; everything after it is a
	// fixed 22-byte suffix.
	weekday := uint8(7)
	for i, name := range longWeekdayNames {
		n := len(name)
		if len(s) > n+1 && string(s[:n]) == name && s[n] == ',' && s[n+1] == ' ' {
			weekday = uint8(i)
			s = s[n+2:]
			break
		}
	}
	if weekday == 7 {
		return civilDate{}, ErrInvalidDate
	}

	if len(s) != 22 ||
		s[2] != '-' || s[6] != '-' || s[9] != ' ' ||
		s[12] != ':' || s[15] != ':' ||
		string(s[18:]) != " GMT" {
		return civilDate{}, ErrInvalidDate
	}

	mon, ok := lookupMonth(s[3:6])
	if !ok {
		return civilDate{}, ErrInvalidDate
	}

	d := civilDate{weekday: weekday, mon: mon}

	var err error
	if d.day, err = toint2(s[0:2]); err != nil {
		return civilDate{}, err
	}
	yy, err := toint2(s[7:9])
	if err != nil {
		return civilDate{}, err
	}
	if d.hour, err = toint2(s[10:12]); err != nil {
		return civilDate{}, err
	}
	if d.min, err = toint2(s[13:15]); err != nil {
		return civilDate{}, err
	}
	if d.sec, err = toint2(s[16:18]); err != nil {
		return civilDate{}, err
	}

	// Two-digit years are windowed per RFC 9110: 00-69 land in the
	// 2000s, 70-99 in the 1900s.
	if yy < 70 {
		d.year = 2000 + uint16(yy)
	} else {
		d.year = 1900 + uint16(yy)
	}

	return d, nil
}

// Example: `Sun Nov  6 08:49:37 1994`
func parseAsctime(s []byte) (civilDate, error) {
	if len(s) != 24 ||
		s[3] != ' ' || s[7] != ' ' || s[10] != ' ' ||
		s[13] != ':' || s[16] != ':' || s[19] != ' ' {
		return civilDate{}, ErrInvalidDate
	}

	weekday, ok := lookupWeekday(s[:3])
	if !ok {
		return civilDate{}, ErrInvalidDate
	}
	mon, ok := lookupMonth(s[4:7])
	if !ok {
		return civilDate{}, ErrInvalidDate
	}

	d := civilDate{weekday: weekday, mon: mon}

	var err error
	if s[8] == ' ' {
		// Days below 10 are space-padded, not zero-padded.
		d.day, err = toint1(s[9])
	} else {
		d.day, err = toint2(s[8:10])
	}
	if err != nil {
		return civilDate{}, err
	}
	if d.hour, err = toint2(s[11:13]); err != nil {
		return civilDate{}, err
	}
	if d.min, err = toint2(s[14:16]); err != nil {
		return civilDate{}, err
	}
	if d.sec, err = toint2(s[17:19]); err != nil {
		return civilDate{}, err
	}
	if d.year, err = toint4(s[20:24]); err != nil {
		return civilDate{}, err
	}

	return d, nil
}

// The toint helpers decode fixed-width ASCII digit runs. Subtracting
// '0' wraps bytes below '0' around to large values, so a single < 10
// comparison rejects every non-digit byte.

func toint1(x byte) (uint8, error) {
	x -= '0'
	if x >= 10 {
		return 0, ErrInvalidDate
	}
	return x, nil
}

func toint2(s []byte) (uint8, error) {
	hi := s[0] - '0'
	lo := s[1] - '0'
	if hi >= 10 || lo >= 10 {
		return 0, ErrInvalidDate
	}
	return hi*10 + lo, nil
}

func toint4(s []byte) (uint16, error) {
	a := s[0] - '0'
	b := s[1] - '0'
	c := s[2] - '0'
	d := s[3] - '0'
	if a >= 10 || b >= 10 || c >= 10 || d >= 10 {
		return 0, ErrInvalidDate
	}
	return uint16(a)*1000 + uint16(b)*100 + uint16(c)*10 + uint16(d), nil
}
