package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/logger"
	"farmledger/internal/metrics"
	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// vaccinationService handles vaccination records and their schedule.
type vaccinationService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewVaccinationService creates a new VaccinationServicer.
func NewVaccinationService(db *gorm.DB) VaccinationServicer {
	return &vaccinationService{db: db, now: time.Now}
}

// AssignVaccination records a dose. A dose is refused while the previous
// dose of the same vaccine is still protecting the animal; otherwise the
// previous dose is closed as done.
func (s *vaccinationService) AssignVaccination(target models.AnimalRef, vaccineID string, vaccinationDate time.Time, cost decimal.Decimal) (*models.VaccinationRecord, error) {
	if cost.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cost cannot be negative")
	}
	now := s.now()
	if vaccinationDate.IsZero() {
		vaccinationDate = now
	}

	var record *models.VaccinationRecord
	err := s.db.Transaction(func(tx *gorm.DB) error {
		a, err := findActiveTarget(tx, target)
		if err != nil {
			return err
		}
		vaccine, err := findVaccine(tx, vaccineID)
		if err != nil {
			return err
		}
		ref := models.NewAnimalRef(a.Kind, a.ID)

		var latest models.VaccinationRecord
		err = forUpdate(tx).
			Where(ref.Column()+" = ? AND vaccine_id = ?", a.ID, vaccineID).
			Order("vaccination_date DESC, created_at DESC").
			First(&latest).Error
		switch {
		case err == nil:
			if latest.NextVaccinationDate != nil && time.Time(*latest.NextVaccinationDate).After(time.Time(models.DateOf(now))) {
				return apperrors.WithMessage(apperrors.ErrVaccinationNotDue,
					a.Name+" is vaccinated with "+vaccine.Name+" until "+models.DateKey(*latest.NextVaccinationDate))
			}
			if err := tx.Model(&latest).Update("status", models.VaccinationStatusDone).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		record = &models.VaccinationRecord{
			AnimalRef:       ref,
			VaccineID:       vaccine.ID,
			VaccinationDate: models.DateOf(vaccinationDate),
			Cost:            cost,
		}
		record.Schedule(vaccine.DurationDays, now)
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		record.Vaccine = vaccine
		return nil
	})
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (s *vaccinationService) GetVaccinations(page pagination.PageRequest, filter RecordFilter, status *models.VaccinationStatus) (*pagination.PageResponse[models.VaccinationRecord], error) {
	query := applyRecordFilter(s.db.Model(&models.VaccinationRecord{}), filter, "vaccination_date")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	result, err := pagination.Fetch[models.VaccinationRecord](query.Preload("Vaccine"), page, "vaccination_date DESC, created_at DESC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *vaccinationService) GetVaccinationByID(recordID string) (*models.VaccinationRecord, error) {
	var record models.VaccinationRecord
	if err := s.db.Preload("Vaccine").Where("id = ?", recordID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrVaccinationRecordNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &record, nil
}

// UpdateVaccination changes the date or cost; the next date is re-derived.
func (s *vaccinationService) UpdateVaccination(recordID string, vaccinationDate *time.Time, cost *decimal.Decimal) (*models.VaccinationRecord, error) {
	record, err := s.GetVaccinationByID(recordID)
	if err != nil {
		return nil, err
	}

	if vaccinationDate != nil && !vaccinationDate.IsZero() {
		record.VaccinationDate = models.DateOf(*vaccinationDate)
	}
	if cost != nil {
		if cost.IsNegative() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "cost cannot be negative")
		}
		record.Cost = *cost
	}
	record.Schedule(record.Vaccine.DurationDays, s.now())

	if err := s.db.Model(record).
		Select("vaccination_date", "next_vaccination_date", "cost", "status").
		Updates(record).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return record, nil
}

func (s *vaccinationService) DeleteVaccination(recordID string) error {
	result := s.db.Where("id = ?", recordID).Delete(&models.VaccinationRecord{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrVaccinationRecordNotFound
	}
	return nil
}

// MarkOverdue flips every current dose whose next date has passed to overdue.
func (s *vaccinationService) MarkOverdue(now time.Time) (int64, error) {
	result := s.db.Model(&models.VaccinationRecord{}).
		Where("status = ? AND next_vaccination_date < ?", models.VaccinationStatusVaccinated, time.Time(models.DateOf(now))).
		Update("status", models.VaccinationStatusOverdue)
	if result.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}

	if result.RowsAffected > 0 {
		metrics.OverdueVaccinations.Add(float64(result.RowsAffected))
		logger.Get().Infow("vaccinations marked overdue", "count", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
