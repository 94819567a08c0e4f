package repository

import (
	"errors"
	"testing"
	"time"

	"hod-management-backend/internal/dbtest"
	"hod-management-backend/internal/model"
)

var registrationDay = time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)

func staffRegistration(hod *uint) *Registration {
	return &Registration{
		User: model.User{
			Username: "kiran",
			Email:    "kiran@dept.gov.in",
			Password: "$2a$10$hash",
			Name:     "Kiran",
			Role:     model.RoleStaff,
		},
		HODID: hod,
		Today: registrationDay,
	}
}

func TestRegisterStaffWithUnknownHODRollsBack(t *testing.T) {
	db, script := dbtest.New(t,
		dbtest.Query("SELECT \\* FROM `hods` WHERE `hods`.`id` = \\?").Returns([]string{"id", "name"}),
	)
	repo := NewUserRepository(db)

	err := repo.Register(staffRegistration(hodID(999)))
	if !errors.Is(err, ErrInvalidHOD) {
		t.Fatalf("err = %v, want ErrInvalidHOD", err)
	}
	if err := script.ExpectationsMet(); err != nil {
		t.Fatal(err)
	}
	if script.Begins() != 1 || script.Rollbacks() != 1 || script.Commits() != 0 {
		t.Fatalf("begin/commit/rollback = %d/%d/%d, want 1/0/1", script.Begins(), script.Commits(), script.Rollbacks())
	}
}

func TestRegisterStaffWithoutHODInsertsNothing(t *testing.T) {
	// Any statement reaching the driver fails the script.
	db, script := dbtest.New(t)
	repo := NewUserRepository(db)

	err := repo.Register(staffRegistration(nil))
	if !errors.Is(err, ErrInvalidHOD) {
		t.Fatalf("err = %v, want ErrInvalidHOD", err)
	}
	if script.Commits() != 0 || script.Rollbacks() != 1 {
		t.Fatalf("commit/rollback = %d/%d, want 0/1", script.Commits(), script.Rollbacks())
	}
}

func TestRegisterRollsBackStaffWhenUserInsertFails(t *testing.T) {
	dup := errors.New("Duplicate entry 'kiran' for key 'users.username'")
	db, script := dbtest.New(t,
		dbtest.Query("SELECT \\* FROM `hods` WHERE `hods`.`id` = \\?").
			Returns([]string{"id", "name", "department", "category_id", "status"},
				dbtest.Row(int64(4), "Dr. Rao", "Health", int64(2), "active")),
		dbtest.Exec("INSERT INTO `staff`").Inserted(31),
		dbtest.Exec("INSERT INTO `users`").Fails(dup),
	)
	repo := NewUserRepository(db)

	err := repo.Register(staffRegistration(hodID(4)))
	if !errors.Is(err, dup) {
		t.Fatalf("err = %v, want %v", err, dup)
	}
	if err := script.ExpectationsMet(); err != nil {
		t.Fatal(err)
	}
	if script.Commits() != 0 || script.Rollbacks() != 1 {
		t.Fatalf("commit/rollback = %d/%d, want 0/1", script.Commits(), script.Rollbacks())
	}
}

func TestRegisterHODCreatesHODFromCategory(t *testing.T) {
	db, script := dbtest.New(t,
		dbtest.Query("SELECT \\* FROM `categories` WHERE `categories`.`id` = \\?").
			Returns([]string{"id", "name", "status"}, dbtest.Row(int64(3), "Agriculture", "active")),
		dbtest.Exec("INSERT INTO `hods`").Inserted(11),
		dbtest.Exec("INSERT INTO `users`").Inserted(21),
	)
	repo := NewUserRepository(db)

	cat := uint(3)
	reg := &Registration{
		User: model.User{
			Username: "meena",
			Email:    "meena@dept.gov.in",
			Password: "$2a$10$hash",
			Name:     "Meena",
			Role:     model.RoleHOD,
		},
		CategoryID: &cat,
		Today:      registrationDay,
	}
	if err := repo.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := script.ExpectationsMet(); err != nil {
		t.Fatal(err)
	}
	if script.Commits() != 1 || script.Rollbacks() != 0 {
		t.Fatalf("commit/rollback = %d/%d, want 1/0", script.Commits(), script.Rollbacks())
	}
	if reg.User.ID != 21 || reg.User.HODID == nil || *reg.User.HODID != 11 {
		t.Fatalf("user = %+v", reg.User)
	}
}

func TestFindActiveByLoginEmail(t *testing.T) {
	db, _ := dbtest.New(t,
		dbtest.Query("FROM `users` WHERE status = \\? AND LOWER\\(email\\) = \\?").
			Returns([]string{"id", "username", "email", "role"},
				dbtest.Row(int64(1), "admin", "admin@dept.gov.in", "admin")),
	)
	repo := NewUserRepository(db)

	user, err := repo.FindActiveByLogin("  Admin@Dept.gov.in ")
	if err != nil {
		t.Fatalf("FindActiveByLogin: %v", err)
	}
	if user.Username != "admin" {
		t.Fatalf("user = %+v", user)
	}
}
