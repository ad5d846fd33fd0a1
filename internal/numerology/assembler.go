package numerology

import (
	"errors"
	"fmt"
	"strings"
	"time"

	. "github.com/amitsingh771/Numerology/internal/models"
)

const (
	RegistrationPrefix = "NMR"
	ReportDateLayout   = "02/01/2006"
)

var ErrMissingField = errors.New("missing required fields")

// MissingFieldError names the request fields that were absent or empty.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return ErrMissingField.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// FortuneLookup finds the combination fortune for a driver/conductor pair.
type FortuneLookup interface {
	Lookup(driver, conductor int) (FortuneRecord, bool)
}

type Assembler struct {
	fortunes FortuneLookup
}

// NewAssembler builds an Assembler over fortunes. A nil lookup misses every
// combination.
func NewAssembler(fortunes FortuneLookup) *Assembler {
	return &Assembler{fortunes: fortunes}
}

// Assemble builds the report for req as of now. The only error it returns is
// a *MissingFieldError; a bad date of birth still produces a report with
// absent numbers.
func (a *Assembler) Assemble(req ReportRequest, now time.Time) (Report, error) {
	if err := ValidateRequest(req); err != nil {
		return Report{}, err
	}

	numbers := CalculateNumbers(req.Dob)

	report := Report{
		FullName:       req.FullName,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Dob:            req.Dob,
		LongDob:        FormatLongDate(req.Dob),
		Driver:         numbers.Driver,
		Conductor:      numbers.Conductor,
		Profile:        ResolveProfile(numbers.DriverOr(0)),
		RegistrationNo: RegistrationNumber(now),
		ReportDate:     now.Format(ReportDateLayout),
		GeneratedAt:    now,
	}

	if numbers.Present() {
		report.Fortune = a.lookup(*numbers.Driver, *numbers.Conductor)
	}

	return report, nil
}

// Preview derives what can be shown for a date of birth on its own.
func Preview(dob string) NumbersPreview {
	date := ParseBirthDate(dob)
	numbers := NumbersFor(date)

	return NumbersPreview{
		Dob:       dob,
		Valid:     date.Valid(),
		LongDob:   FormatLongDate(dob),
		Driver:    numbers.Driver,
		Conductor: numbers.Conductor,
		Profile:   ResolveProfile(numbers.DriverOr(0)),
	}
}

// ValidateRequest checks that every field of req is non-empty.
func ValidateRequest(req ReportRequest) error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"fullName", req.FullName},
		{"email", req.Email},
		{"mobile", req.Mobile},
		{"dob", req.Dob},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldError{Fields: missing}
	}
	return nil
}

// RegistrationNumber formats NMR-YYYYMMDD-NNNNNN from now, where the suffix is
// the last six digits of the epoch millisecond timestamp. It is a display
// label, not a unique key.
func RegistrationNumber(now time.Time) string {
	return fmt.Sprintf("%s-%s-%06d", RegistrationPrefix, now.Format("20060102"), now.UnixMilli()%1_000_000)
}

func (a *Assembler) lookup(driver, conductor int) *FortuneRecord {
	if a == nil || a.fortunes == nil {
		return nil
	}

	record, ok := a.fortunes.Lookup(driver, conductor)
	if !ok {
		return nil
	}
	return &record
}
