package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/devmart/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContactTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:contact-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(&db.ContactSubmission{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return gdb
}

func TestContactService_SubmitAssignsReference(t *testing.T) {
	svc := NewContactService(setupContactTestDB(t))

	submission, err := svc.Submit(ContactInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Subject: "Project",
		Message: "We need a new site.",
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submission.Reference == "" {
		t.Fatal("submission must carry a reference code")
	}
	if submission.IsRead {
		t.Fatal("new submissions start unread")
	}
}

func TestContactService_SubmitValidation(t *testing.T) {
	svc := NewContactService(setupContactTestDB(t))

	cases := []ContactInput{
		{Name: "", Email: "a@b.c", Message: "hi"},
		{Name: "Jane", Email: "", Message: "hi"},
		{Name: "Jane", Email: "not-an-email", Message: "hi"},
		{Name: "Jane", Email: "a@b.c", Message: "   "},
	}
	for i, input := range cases {
		if _, err := svc.Submit(input); !errors.Is(err, ErrSubmissionInvalid) {
			t.Errorf("case %d: got %v, want ErrSubmissionInvalid", i, err)
		}
	}
}

func TestContactService_ListAndMarkRead(t *testing.T) {
	svc := NewContactService(setupContactTestDB(t))

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(ContactInput{
			Name:    fmt.Sprintf("Visitor %d", i),
			Email:   "visitor@example.com",
			Message: "hello",
		}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	result, err := svc.List(1, 10, false)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Total != 3 || result.UnreadCount != 3 {
		t.Fatalf("total/unread = %d/%d, want 3/3", result.Total, result.UnreadCount)
	}

	if err := svc.MarkRead(result.Submissions[0].ID, true); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	unread, err := svc.List(1, 10, true)
	if err != nil {
		t.Fatalf("list unread: %v", err)
	}
	if unread.Total != 2 || unread.UnreadCount != 2 {
		t.Fatalf("after mark read total/unread = %d/%d, want 2/2", unread.Total, unread.UnreadCount)
	}

	if err := svc.MarkRead(9999, true); !errors.Is(err, ErrSubmissionNotFound) {
		t.Fatalf("missing id: got %v, want ErrSubmissionNotFound", err)
	}
}
