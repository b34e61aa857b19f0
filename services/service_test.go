package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sigmaquiz/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.School{},
		&models.SchoolRegistration{},
		&models.Round{},
		&models.Question{},
		&models.RoundParticipation{},
	))
	return db
}

func createTestQuiz(t *testing.T, db *gorm.DB, date string) *models.Quiz {
	t.Helper()
	quiz, err := NewQuizService(db).CreateQuiz(&CreateQuizRequest{Title: "Sigma Quiz", Date: date})
	require.NoError(t, err)
	return quiz
}

func createTestSchool(t *testing.T, db *gorm.DB, name string) *models.School {
	t.Helper()
	school, err := NewSchoolService(db).CreateSchool(&CreateSchoolRequest{Name: name, State: "Lagos"})
	require.NoError(t, err)
	return school
}

func intp(n int) *int {
	return &n
}

func createTestRound(t *testing.T, db *gorm.DB, quizID string, number int) *models.Round {
	t.Helper()
	round, err := NewRoundService(db).CreateRound(&CreateRoundRequest{
		QuizID:                quizID,
		Name:                  fmt.Sprintf("Round %d", number),
		RoundNumber:           intp(number),
		NoOfQuestions:         intp(10),
		NoOfSchools:           intp(4),
		MarksPerQuestion:      intp(2),
		MarksPerBonusQuestion: intp(1),
	})
	require.NoError(t, err)
	return round
}

func registerTestSchool(t *testing.T, db *gorm.DB, quizID, schoolID string) *models.SchoolRegistration {
	t.Helper()
	reg, err := NewRegistrationService(db).RegisterSchool(quizID, &RegisterSchoolRequest{SchoolID: schoolID})
	require.NoError(t, err)
	return reg
}
