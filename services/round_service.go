package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigmaquiz/apierror"
	"sigmaquiz/models"
)

// ErrRoundNotFound is returned whenever a round lookup by id comes up empty.
var ErrRoundNotFound = apierror.NotFound("Quiz Round with this id does not exist")

type RoundService struct {
	db *gorm.DB
}

func NewRoundService(db *gorm.DB) *RoundService {
	return &RoundService{db: db}
}

// Numeric fields are pointers so a client sending an explicit 0 (a round
// with no bonus marks, say) passes the required check.
type CreateRoundRequest struct {
	QuizID                string `json:"quizId" binding:"required,uuid"`
	Name                  string `json:"name" binding:"required"`
	RoundNumber           *int   `json:"round_number" binding:"required"`
	NoOfQuestions         *int   `json:"no_of_questions" binding:"required"`
	NoOfSchools           *int   `json:"no_of_schools" binding:"required"`
	MarksPerQuestion      *int   `json:"marks_per_question" binding:"required"`
	MarksPerBonusQuestion *int   `json:"marks_per_bonus_question" binding:"required"`
}

type UpdateRoundRequest struct {
	Name                  string `json:"name" binding:"required"`
	RoundNumber           *int   `json:"round_number" binding:"required"`
	NoOfQuestions         *int   `json:"no_of_questions" binding:"required"`
	NoOfSchools           *int   `json:"no_of_schools" binding:"required"`
	MarksPerQuestion      *int   `json:"marks_per_question" binding:"required"`
	MarksPerBonusQuestion *int   `json:"marks_per_bonus_question" binding:"required"`
}

type AddSchoolToRoundRequest struct {
	SchoolID string `json:"school_id" binding:"required,uuid"`
}

// CreateRound creates a round under an existing quiz. The (quiz,
// round_number) pair must be free.
func (s *RoundService) CreateRound(req *CreateRoundRequest) (*models.Round, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, "id = ?", req.QuizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	if err := s.checkRoundNumberFree(quiz.ID, *req.RoundNumber, uuid.Nil); err != nil {
		return nil, err
	}

	round := models.Round{
		QuizID:                quiz.ID,
		Name:                  req.Name,
		RoundNumber:           *req.RoundNumber,
		NoOfQuestions:         *req.NoOfQuestions,
		NoOfSchools:           *req.NoOfSchools,
		MarksPerQuestion:      *req.MarksPerQuestion,
		MarksPerBonusQuestion: *req.MarksPerBonusQuestion,
	}
	if err := s.db.Create(&round).Error; err != nil {
		return nil, err
	}
	round.Quiz = quiz
	return &round, nil
}

func (s *RoundService) GetRound(id string) (*models.Round, error) {
	roundID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrRoundNotFound
	}

	var round models.Round
	err = s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("question_number")
	}).
		Preload("Participations").
		First(&round, "id = ?", roundID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	return &round, nil
}

// UpdateRound rewrites a round's fields. Moving the round to a number held
// by a sibling conflicts; keeping its own number does not.
func (s *RoundService) UpdateRound(id string, req *UpdateRoundRequest) (*models.Round, error) {
	round, err := s.GetRound(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkRoundNumberFree(round.QuizID, *req.RoundNumber, round.ID); err != nil {
		return nil, err
	}

	round.Name = req.Name
	round.RoundNumber = *req.RoundNumber
	round.NoOfQuestions = *req.NoOfQuestions
	round.NoOfSchools = *req.NoOfSchools
	round.MarksPerQuestion = *req.MarksPerQuestion
	round.MarksPerBonusQuestion = *req.MarksPerBonusQuestion
	if err := s.db.Save(round).Error; err != nil {
		return nil, err
	}
	return round, nil
}

// DeleteRound removes the round with its questions and participations.
func (s *RoundService) DeleteRound(id string) error {
	round, err := s.GetRound(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("round_id = ?", round.ID).
			Delete(&models.RoundParticipation{}).Error; err != nil {
			return err
		}
		if err := tx.Where("round_id = ?", round.ID).
			Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(round).Error
	})
}

func (s *RoundService) ListRoundsForQuiz(quizID string) ([]models.Round, error) {
	id, err := uuid.Parse(quizID)
	if err != nil {
		return nil, ErrQuizNotFound
	}

	var rounds []models.Round
	err = s.db.Where("quiz_id = ?", id).Order("round_number").Find(&rounds).Error
	return rounds, err
}

func (s *RoundService) ListParticipations(roundID string) ([]models.RoundParticipation, error) {
	round, err := s.GetRound(roundID)
	if err != nil {
		return nil, err
	}

	var parts []models.RoundParticipation
	err = s.db.Where("round_id = ?", round.ID).
		Preload("SchoolRegistration.Quiz").
		Preload("SchoolRegistration.School").
		Order("created_at").
		Find(&parts).Error
	return parts, err
}

// AddSchoolToRound enrolls a school in a round. The school must already
// hold a registration for the round's own quiz; the participation records
// which registration satisfied the check.
func (s *RoundService) AddSchoolToRound(roundID string, req *AddSchoolToRoundRequest) (*models.RoundParticipation, error) {
	round, err := s.GetRound(roundID)
	if err != nil {
		return nil, err
	}

	var reg models.SchoolRegistration
	err = s.db.Where("quiz_id = ? AND school_id = ?", round.QuizID, req.SchoolID).
		First(&reg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.BadRequest("School Not Registered for Quiz")
		}
		return nil, err
	}

	part := models.RoundParticipation{
		RoundID:              round.ID,
		SchoolRegistrationID: reg.ID,
	}
	if err := s.db.Create(&part).Error; err != nil {
		return nil, err
	}

	if err := s.db.Preload("SchoolRegistration.Quiz").
		Preload("SchoolRegistration.School").
		First(&part, "id = ?", part.ID).Error; err != nil {
		return nil, err
	}
	return &part, nil
}

// RemoveSchoolFromRound deletes a school's participation and returns the
// round's remaining participations.
func (s *RoundService) RemoveSchoolFromRound(roundID, schoolID string) ([]models.RoundParticipation, error) {
	round, err := s.GetRound(roundID)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(schoolID); err != nil {
		return nil, ErrSchoolNotFound
	}

	var part models.RoundParticipation
	err = s.db.
		Joins("JOIN school_registrations ON school_registrations.id = round_participations.school_registration_id").
		Where("round_participations.round_id = ? AND school_registrations.school_id = ?", round.ID, schoolID).
		First(&part).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("School is not participating in this Round")
		}
		return nil, err
	}

	if err := s.db.Delete(&part).Error; err != nil {
		return nil, err
	}

	return s.ListParticipations(roundID)
}

func (s *RoundService) checkRoundNumberFree(quizID uuid.UUID, roundNumber int, excludeID uuid.UUID) error {
	query := s.db.Model(&models.Round{}).
		Where("quiz_id = ? AND round_number = ?", quizID, roundNumber)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apierror.Conflict(fmt.Sprintf(
			`Key ("quizId", round_number)=(%s, %d) already exists.`, quizID, roundNumber,
		))
	}
	return nil
}
