package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"sigmaquiz/apierror"
	"sigmaquiz/models"
)

// ErrQuizNotFound is returned whenever a quiz lookup by id comes up empty.
var ErrQuizNotFound = apierror.NotFound("Sigma Quiz with this id does not exist")

const dateLayout = "2006-01-02"

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"`
}

type UpdateQuizRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"`
}

func (s *QuizService) ListQuizzes() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Order("date").Find(&quizzes).Error
	return quizzes, err
}

// CreateQuiz validates the calendar date and the one-quiz-per-date rule
// before persisting. The unique index on date remains the final authority
// under concurrent requests.
func (s *QuizService) CreateQuiz(req *CreateQuizRequest) (*models.Quiz, error) {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, apierror.BadRequest("date must be a valid ISO 8601 date string")
	}
	if err := s.checkDateFree(req.Date, uuid.Nil); err != nil {
		return nil, err
	}

	quiz := models.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}
	if err := s.db.Create(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) GetQuiz(id string) (*models.Quiz, error) {
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

func (s *QuizService) UpdateQuiz(id string, req *UpdateQuizRequest) (*models.Quiz, error) {
	quiz, err := s.GetQuiz(id)
	if err != nil {
		return nil, err
	}

	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return nil, apierror.BadRequest("date must be a valid ISO 8601 date string")
	}
	if err := s.checkDateFree(req.Date, quiz.ID); err != nil {
		return nil, err
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.Date = req.Date
	if err := s.db.Save(quiz).Error; err != nil {
		return nil, err
	}
	return quiz, nil
}

// DeleteQuiz removes the quiz and everything it owns: rounds with their
// questions and participations, and the quiz's school registrations.
func (s *QuizService) DeleteQuiz(id string) error {
	quiz, err := s.GetQuiz(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var roundIDs []uuid.UUID
		if err := tx.Model(&models.Round{}).Where("quiz_id = ?", quiz.ID).
			Pluck("id", &roundIDs).Error; err != nil {
			return err
		}
		if len(roundIDs) > 0 {
			if err := tx.Where("round_id IN ?", roundIDs).
				Delete(&models.RoundParticipation{}).Error; err != nil {
				return err
			}
			if err := tx.Where("round_id IN ?", roundIDs).
				Delete(&models.Question{}).Error; err != nil {
				return err
			}
			if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.Round{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).
			Delete(&models.SchoolRegistration{}).Error; err != nil {
			return err
		}
		return tx.Delete(quiz).Error
	})
}

func (s *QuizService) checkDateFree(date string, excludeID uuid.UUID) error {
	query := s.db.Model(&models.Quiz{}).Where("date = ?", date)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apierror.Conflict(fmt.Sprintf("Key (date)=(%s) already exists.", date))
	}
	return nil
}
