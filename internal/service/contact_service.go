package service

import (
	"errors"
	"strings"

	"github.com/devmart/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrSubmissionInvalid  = errors.New("name, email and message are required")
	ErrSubmissionNotFound = errors.New("contact submission not found")
)

// ContactService stores contact form submissions for the admin inbox.
type ContactService struct {
	db *gorm.DB
}

// NewContactService returns a new ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// ContactInput represents an incoming contact form payload.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SubmissionListResult aggregates paginated inbox data.
type SubmissionListResult struct {
	Submissions []db.ContactSubmission
	Total       int64
	UnreadCount int64
	TotalPages  int
	Page        int
	PerPage     int
}

// Submit persists a submission and returns it with its reference code.
func (s *ContactService) Submit(input ContactInput) (*db.ContactSubmission, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)
	if name == "" || email == "" || message == "" || !strings.Contains(email, "@") {
		return nil, ErrSubmissionInvalid
	}

	submission := db.ContactSubmission{
		Reference: uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   strings.TrimSpace(input.Subject),
		Message:   message,
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

// List returns inbox entries newest first.
func (s *ContactService) List(page, perPage int, unreadOnly bool) (SubmissionListResult, error) {
	result := SubmissionListResult{Page: page, PerPage: perPage}
	if result.Page < 1 {
		result.Page = 1
	}
	if result.PerPage < 1 {
		result.PerPage = 20
	}

	query := s.db.Model(&db.ContactSubmission{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Count(&result.Total).Error; err != nil {
		return result, err
	}
	s.db.Model(&db.ContactSubmission{}).Where("is_read = ?", false).Count(&result.UnreadCount)

	offset := (result.Page - 1) * result.PerPage
	if err := query.Order("created_at desc").Limit(result.PerPage).Offset(offset).Find(&result.Submissions).Error; err != nil {
		return result, err
	}

	result.TotalPages = int((result.Total + int64(result.PerPage) - 1) / int64(result.PerPage))
	return result, nil
}

// MarkRead flips the read flag on one submission.
func (s *ContactService) MarkRead(id uint, read bool) error {
	var submission db.ContactSubmission
	if err := s.db.First(&submission, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubmissionNotFound
		}
		return err
	}

	submission.IsRead = read
	return s.db.Save(&submission).Error
}
