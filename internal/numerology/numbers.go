package numerology

// Numbers holds the driver and conductor derived from a date of birth. Both
// are nil when the date is invalid.
type Numbers struct {
	Driver    *int `json:"driver"`
	Conductor *int `json:"conductor"`
}

// Present reports whether both numbers were derived.
func (n Numbers) Present() bool {
	return n.Driver != nil && n.Conductor != nil
}

// DriverOr returns the driver, or fallback when it is absent.
func (n Numbers) DriverOr(fallback int) int {
	if n.Driver == nil {
		return fallback
	}
	return *n.Driver
}

// CalculateNumbers derives the driver (digit root of the day) and the
// conductor (digit root of the digit sum of YYYYMMDD) from dob.
func CalculateNumbers(dob string) Numbers {
	return NumbersFor(ParseBirthDate(dob))
}

func NumbersFor(date BirthDate) Numbers {
	if !date.Valid() {
		return Numbers{}
	}

	driver := DigitRoot(date.Day)
	conductor := DigitRoot(DigitSumString(date.Digits()))

	return Numbers{Driver: &driver, Conductor: &conductor}
}
