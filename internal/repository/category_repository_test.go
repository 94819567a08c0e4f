package repository

import (
	"errors"
	"testing"

	"hod-management-backend/internal/dbtest"
	"hod-management-backend/internal/model"

	"github.com/go-sql-driver/mysql"
)

func TestCategoryCreateDuplicate(t *testing.T) {
	db, script := dbtest.New(t,
		dbtest.Exec("INSERT INTO `categories`").Fails(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'Health'"}),
	)
	repo := NewCategoryRepository(db)

	err := repo.Create(&model.Category{Name: "Health", Status: model.StatusActive})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("err = %v, want ErrDuplicateName", err)
	}
	if script.Rollbacks() != 1 {
		t.Fatalf("rollbacks = %d, want 1", script.Rollbacks())
	}
}

func TestCategoryDeactivateIsSoftDelete(t *testing.T) {
	db, script := dbtest.New(t,
		dbtest.Exec("UPDATE `categories` SET `status`=\\?,`updated_at`=\\? WHERE id = \\?"),
	)
	repo := NewCategoryRepository(db)

	if err := repo.Deactivate(6); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if err := script.ExpectationsMet(); err != nil {
		t.Fatal(err)
	}
}
