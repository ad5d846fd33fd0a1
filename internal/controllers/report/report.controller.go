package reportController

import (
	"context"
	"errors"
	"time"

	"github.com/amitsingh771/Numerology/internal/logger"
	. "github.com/amitsingh771/Numerology/internal/models"
	"github.com/amitsingh771/Numerology/internal/numerology"
	"github.com/amitsingh771/Numerology/internal/repositories"
)

type ReportController struct {
	fortunes  repositories.FortuneRepository
	assembler *numerology.Assembler
	now       func() time.Time
	log       logger.Logger
}

func New(fortunes repositories.FortuneRepository) *ReportController {
	return NewWithClock(fortunes, time.Now)
}

// NewWithClock lets callers pin the time used for registration numbers and
// report dates.
func NewWithClock(fortunes repositories.FortuneRepository, now func() time.Time) *ReportController {
	return &ReportController{
		fortunes:  fortunes,
		assembler: numerology.NewAssembler(fortunes),
		now:       now,
		log:       logger.New("ReportController"),
	}
}

func (rc *ReportController) Generate(ctx context.Context, request ReportRequest) (Report, error) {
	log := rc.log.Function("Generate")

	if err := ctx.Err(); err != nil {
		return Report{}, log.Err("request cancelled before report generation", err)
	}

	report, err := rc.assembler.Assemble(request, rc.now())
	if err != nil {
		var missing *numerology.MissingFieldError
		if errors.As(err, &missing) {
			log.Info("Rejected report request", "missing", missing.Fields)
		}
		return Report{}, err
	}

	if report.Driver == nil {
		log.Info("Date of birth did not yield numbers", "dob", request.Dob)
	} else if report.Fortune == nil {
		log.Debug("No combination fortune", "driver", *report.Driver, "conductor", *report.Conductor)
	}

	log.Debug("Generated report", "registrationNo", report.RegistrationNo)
	return report, nil
}

func (rc *ReportController) Preview(dob string) NumbersPreview {
	return numerology.Preview(dob)
}

func (rc *ReportController) Profile(driver int) AttributeProfile {
	return numerology.ResolveProfile(driver)
}

func (rc *ReportController) Fortune(driver, conductor int) (FortuneRecord, bool) {
	if rc.fortunes == nil {
		return FortuneRecord{}, false
	}
	return rc.fortunes.Lookup(driver, conductor)
}

// Fortunes lists the combination table in lookup order.
func (rc *ReportController) Fortunes() []FortuneRecord {
	if rc.fortunes == nil {
		return []FortuneRecord{}
	}
	return rc.fortunes.All()
}

// FortuneCount reports how many combination records were loaded.
func (rc *ReportController) FortuneCount() int {
	if rc.fortunes == nil {
		return 0
	}
	return rc.fortunes.Len()
}
