package httpdate

// The calendar arithmetic below is done from first principles rather
// than through the time package, so the package stays allocation-free
// and usable where a full timezone database is unwelcome.

const (
	// Unix timestamp of the first second of year 10000.
	year10000 = 253402300800

	// Days from the epoch to 2000-03-01, the day after a leap day in a
	// year divisible by 400. Re-basing the day count there pushes
	// February's leap adjustment to the very end of the cycle math.
	leapoch = 11017

	daysPer400Y = 365*400 + 97
	daysPer100Y = 365*100 + 24
	daysPer4Y   = 365*4 + 1
)

// civilDate holds the broken-down fields of an instant in UTC.
type civilDate struct {
	sec     uint8  // 0-59
	min     uint8  // 0-59
	hour    uint8  // 0-23
	day     uint8  // 1-31
	mon     uint8  // 1-12
	year    uint16 // 1970-9999
	weekday uint8  // 0-6, Sunday is 0
}

// monthLengths is ordered from March so the leap day sits in the
// trailing February slot, already paid for by the cycle corrections.
var monthLengths = [12]int64{31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 29}

// civilFromUnix breaks a timestamp below the year-10000 bound into its
// calendar fields. It performs no validation of its own; callers must
// stay inside the supported range.
func civilFromUnix(secs uint64) civilDate {
	days := int64(secs/86400) - leapoch
	secsOfDay := secs % 86400

	qcCycles := days / daysPer400Y
	remDays := days % daysPer400Y
	if remDays < 0 {
		remDays += daysPer400Y
		qcCycles--
	}

	cCycles := remDays / daysPer100Y
	if cCycles == 4 {
		cCycles--
	}
	remDays -= cCycles * daysPer100Y

	qCycles := remDays / daysPer4Y
	if qCycles == 25 {
		qCycles--
	}
	remDays -= qCycles * daysPer4Y

	remYears := remDays / 365
	if remYears == 4 {
		remYears--
	}
	remDays -= remYears * 365

	year := 2000 + remYears + 4*qCycles + 100*cCycles + 400*qcCycles

	var mon int64
	for _, monLen := range monthLengths {
		mon++
		if remDays < monLen {
			break
		}
		remDays -= monLen
	}
	mday := remDays + 1

	if mon+2 > 12 {
		// Ran past December in the March-based table: the civil year
		// is the next one and the month wraps around to Jan/Feb.
		year++
		mon -= 10
	} else {
		mon += 2
	}

	// Day 0 of the re-based count, 2000-03-01, was a Wednesday.
	wday := (3 + days) % 7
	if wday <= 0 {
		wday += 7
	}

	return civilDate{
		sec:     uint8(secsOfDay % 60),
		min:     uint8(secsOfDay % 3600 / 60),
		hour:    uint8(secsOfDay / 3600),
		day:     uint8(mday),
		mon:     uint8(mon),
		year:    uint16(year),
		weekday: uint8(wday % 7),
	}
}

// yearDays holds the days preceding each month in a non-leap year,
// indexed by month number (slot 0 unused).
var yearDays = [13]uint64{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

// unixFromCivil converts already range-checked calendar fields back to
// a timestamp. The weekday field is ignored.
func unixFromCivil(d civilDate) uint64 {
	y := uint64(d.year)

	// Leap years strictly before the target year, counted by
	// inclusion-exclusion. The offsets keep every term positive for
	// years 1970 and later.
	leapYears := (y-1-1968)/4 - (y-1-1900)/100 + (y-1-1600)/400

	ydays := yearDays[d.mon] + uint64(d.day) - 1
	if isLeapYear(d.year) && d.mon > 2 {
		ydays++
	}

	days := (y-1970)*365 + leapYears + ydays
	return days*86400 + uint64(d.hour)*3600 + uint64(d.min)*60 + uint64(d.sec)
}

func isLeapYear(year uint16) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
