package services

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigmaquiz/apierror"
	"sigmaquiz/models"
)

type RegistrationService struct {
	db *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

type RegisterSchoolRequest struct {
	SchoolID string `json:"school_id" binding:"required,uuid"`
}

func (s *RegistrationService) ListRegistrations(quizID string) ([]models.SchoolRegistration, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}

	var regs []models.SchoolRegistration
	err = s.db.Where("quiz_id = ?", quiz.ID).
		Preload("Quiz.Rounds").
		Preload("School").
		Order("created_at").
		Find(&regs).Error
	return regs, err
}

// RegisterSchool enrolls a school in a quiz. A (quiz, school) pair may
// register only once.
func (s *RegistrationService) RegisterSchool(quizID string, req *RegisterSchoolRequest) (*models.SchoolRegistration, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}
	school, err := s.findSchool(req.SchoolID)
	if err != nil {
		return nil, err
	}

	var existing models.SchoolRegistration
	err = s.db.Where("quiz_id = ? AND school_id = ?", quiz.ID, school.ID).
		First(&existing).Error
	if err == nil {
		return nil, apierror.Conflict("School already registered for Quiz")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	reg := models.SchoolRegistration{QuizID: quiz.ID, SchoolID: school.ID}
	if err := s.db.Create(&reg).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("Quiz.Rounds").Preload("School").
		First(&reg, "id = ?", reg.ID).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

// UnregisterSchool removes a school's registration and returns the quiz's
// remaining registrations. Existing round participations are deliberately
// left alone; the registration precondition applies at participation
// creation only.
func (s *RegistrationService) UnregisterSchool(quizID, schoolID string) ([]models.SchoolRegistration, error) {
	quiz, err := s.findQuiz(quizID)
	if err != nil {
		return nil, err
	}
	school, err := s.findSchool(schoolID)
	if err != nil {
		return nil, err
	}

	var reg models.SchoolRegistration
	err = s.db.Where("quiz_id = ? AND school_id = ?", quiz.ID, school.ID).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("School is not registered for this Quiz")
		}
		return nil, err
	}

	if err := s.db.Delete(&reg).Error; err != nil {
		return nil, err
	}

	return s.ListRegistrations(quizID)
}

func (s *RegistrationService) findQuiz(id string) (*models.Quiz, error) {
	quizID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrQuizNotFound
	}
	var quiz models.Quiz
	if err := s.db.First(&quiz, "id = ?", quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

func (s *RegistrationService) findSchool(id string) (*models.School, error) {
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
