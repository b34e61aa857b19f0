package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigmaquiz/apierror"
	"sigmaquiz/models"
)

// ErrSchoolNotFound is returned whenever a school lookup by id comes up empty.
var ErrSchoolNotFound = apierror.NotFound("School with this id does not exist")

type SchoolService struct {
	db *gorm.DB
}

func NewSchoolService(db *gorm.DB) *SchoolService {
	return &SchoolService{db: db}
}

type CreateSchoolRequest struct {
	Name    string  `json:"name" binding:"required"`
	State   string  `json:"state" binding:"required"`
	Address *string `json:"address"`
}

// SchoolFilter narrows the school listing by per-field substring match.
type SchoolFilter struct {
	Name    string
	State   string
	Address string
}

func (s *SchoolService) ListSchools(filter SchoolFilter) ([]models.School, error) {
	query := s.db.Order("created_at")
	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Name+"%")
	}
	if filter.State != "" {
		query = query.Where("LOWER(state) LIKE LOWER(?)", "%"+filter.State+"%")
	}
	if filter.Address != "" {
		query = query.Where("LOWER(address) LIKE LOWER(?)", "%"+filter.Address+"%")
	}

	var schools []models.School
	err := query.Find(&schools).Error
	return schools, err
}

func (s *SchoolService) CreateSchool(req *CreateSchoolRequest) (*models.School, error) {
	school := models.School{
		Name:    req.Name,
		State:   req.State,
		Address: req.Address,
	}
	if err := s.db.Create(&school).Error; err != nil {
		return nil, err
	}
	return &school, nil
}

func (s *SchoolService) GetSchool(id string) (*models.School, error) {
	schoolID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrSchoolNotFound
	}

	var school models.School
	if err := s.db.First(&school, "id = ?", schoolID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}
	return &school, nil
}

func (s *SchoolService) UpdateSchool(id string, req *CreateSchoolRequest) (*models.School, error) {
	school, err := s.GetSchool(id)
	if err != nil {
		return nil, err
	}

	school.Name = req.Name
	school.State = req.State
	school.Address = req.Address
	if err := s.db.Save(school).Error; err != nil {
		return nil, err
	}
	return school, nil
}

// DeleteSchool removes the school and cascades its registrations and any
// participations hanging off them.
func (s *SchoolService) DeleteSchool(id string) error {
	school, err := s.GetSchool(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var regIDs []uuid.UUID
		if err := tx.Model(&models.SchoolRegistration{}).
			Where("school_id = ?", school.ID).Pluck("id", &regIDs).Error; err != nil {
			return err
		}
		if len(regIDs) > 0 {
			if err := tx.Where("school_registration_id IN ?", regIDs).
				Delete(&models.RoundParticipation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("school_id = ?", school.ID).
				Delete(&models.SchoolRegistration{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(school).Error
	})
}
