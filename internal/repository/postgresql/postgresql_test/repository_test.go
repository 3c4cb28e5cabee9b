package postgresql_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/biotrack-id/attendance-backend-go/internal/domain/employee"
	"github.com/biotrack-id/attendance-backend-go/internal/domain/punch"
	"github.com/biotrack-id/attendance-backend-go/internal/pkg/database"
	"github.com/biotrack-id/attendance-backend-go/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *database.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		// No database available, every test skips itself.
		os.Exit(m.Run())
	}

	var err error
	testDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		panic("Failed to connect to test database: " + err.Error())
	}

	if err := database.Migrate(context.Background(), testDB); err != nil {
		panic("Failed to migrate test database: " + err.Error())
	}

	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
}

func cleanupTestData(t *testing.T) {
	ctx := context.Background()

	_, err := testDB.Exec(ctx, "TRUNCATE TABLE attendance")
	require.NoError(t, err)

	_, err = testDB.Exec(ctx, "TRUNCATE TABLE employees")
	require.NoError(t, err)
}

func createTestEmployee(t *testing.T, ctx context.Context, employeeID string, fingerID int) {
	_, err := testDB.Exec(ctx, `
		INSERT INTO employees (employee_id, name, email, finger_id)
		VALUES ($1, $2, $3, $4)
	`, employeeID, "Test "+employeeID, employeeID+"@example.com", fingerID)
	require.NoError(t, err)
}

// ===== EMPLOYEE REPOSITORY =====

func TestEmployeeRepository_SaveIsUpsert(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(testDB)

	emp := employee.Employee{
		EmployeeID: "EMP-001",
		Name:       "Ayu Lestari",
		Email:      "ayu@example.com",
		FingerID:   3,
	}
	require.NoError(t, repo.Save(ctx, emp))

	emp.Name = "Ayu L. Wijaya"
	emp.FingerID = 7
	require.NoError(t, repo.Save(ctx, emp))

	got, err := repo.GetByID(ctx, "EMP-001")
	require.NoError(t, err)
	assert.Equal(t, "Ayu L. Wijaya", got.Name)
	assert.Equal(t, 7, got.FingerID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmployeeRepository_ListOrderedByID(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(testDB)

	for _, id := range []string{"EMP-003", "EMP-001", "EMP-002"} {
		require.NoError(t, repo.Save(ctx, employee.Employee{
			EmployeeID: id,
			Name:       "Test " + id,
			Email:      id + "@example.com",
		}))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "EMP-001", all[0].EmployeeID)
	assert.Equal(t, "EMP-002", all[1].EmployeeID)
	assert.Equal(t, "EMP-003", all[2].EmployeeID)
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	repo := postgresql.NewEmployeeRepository(testDB)

	_, err := repo.GetByID(context.Background(), "EMP-404")
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))
}

func TestEmployeeRepository_DeleteKeepsPunches(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	empRepo := postgresql.NewEmployeeRepository(testDB)
	punchRepo := postgresql.NewPunchRepository(testDB)

	createTestEmployee(t, ctx, "EMP-001", 1)
	_, err := punchRepo.Save(ctx, punch.PunchEvent{
		EmployeeID: "EMP-001", FingerID: 1, Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, empRepo.Delete(ctx, "EMP-001"))

	_, err = empRepo.GetByID(ctx, "EMP-001")
	assert.True(t, errors.Is(err, employee.ErrEmployeeNotFound))

	// Punch history survives the roster delete.
	punches, err := punchRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, punches, 1)

	assert.True(t, errors.Is(empRepo.Delete(ctx, "EMP-001"), employee.ErrEmployeeNotFound))
}

// ===== PUNCH REPOSITORY =====

func TestPunchRepository_SaveReturnsStoredRow(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewPunchRepository(testDB)

	saved, err := repo.Save(ctx, punch.PunchEvent{
		EmployeeID: "EMP-001", FingerID: 1, Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestPunchRepository_SaveAllowsDuplicates(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewPunchRepository(testDB)

	event := punch.PunchEvent{EmployeeID: "EMP-001", Date: "2024-06-10", Time: "09:00"}
	_, err := repo.Save(ctx, event)
	require.NoError(t, err)
	_, err = repo.Save(ctx, event)
	require.NoError(t, err)

	punches, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, punches, 2)
}

func TestPunchRepository_ListOrderedNewestFirst(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewPunchRepository(testDB)

	for _, e := range []punch.PunchEvent{
		{EmployeeID: "EMP-001", Date: "2024-06-09", Time: "17:00"},
		{EmployeeID: "EMP-001", Date: "2024-06-10", Time: "09:00"},
		{EmployeeID: "EMP-001", Date: "2024-06-10", Time: "17:30"},
	} {
		_, err := repo.Save(ctx, e)
		require.NoError(t, err)
	}

	punches, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, punches, 3)
	assert.Equal(t, "2024-06-10", punches[0].Date)
	assert.Equal(t, "17:30", punches[0].Time)
	assert.Equal(t, "09:00", punches[1].Time)
	assert.Equal(t, "2024-06-09", punches[2].Date)
}

func TestPunchRepository_ListByDate(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewPunchRepository(testDB)

	for _, e := range []punch.PunchEvent{
		{EmployeeID: "EMP-001", Date: "2024-06-10", Time: "09:00"},
		{EmployeeID: "EMP-002", Date: "2024-06-10", Time: "09:05"},
		{EmployeeID: "EMP-001", Date: "2024-06-11", Time: "09:00"},
	} {
		_, err := repo.Save(ctx, e)
		require.NoError(t, err)
	}

	punches, err := repo.ListByDate(ctx, "2024-06-10")
	require.NoError(t, err)
	assert.Len(t, punches, 2)
}

func TestPunchRepository_SaveBulkDeduplicates(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewPunchRepository(testDB)

	batch := []punch.PunchEvent{
		{EmployeeID: "EMP-001", FingerID: 1, Date: "2024-06-10", Time: "09:00"},
		{EmployeeID: "EMP-001", FingerID: 1, Date: "2024-06-10", Time: "17:30"},
		{EmployeeID: "EMP-002", FingerID: 2, Date: "2024-06-10", Time: "09:05"},
	}

	inserted, err := repo.SaveBulk(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	// Replaying the same batch inserts nothing.
	inserted, err = repo.SaveBulk(ctx, batch)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)

	punches, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, punches, 3)
}

func TestPunchRepository_SaveBulkPartialOverlap(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewPunchRepository(testDB)

	_, err := repo.SaveBulk(ctx, []punch.PunchEvent{
		{EmployeeID: "EMP-001", Date: "2024-06-10", Time: "09:00"},
	})
	require.NoError(t, err)

	inserted, err := repo.SaveBulk(ctx, []punch.PunchEvent{
		{EmployeeID: "EMP-001", Date: "2024-06-10", Time: "09:00"},
		{EmployeeID: "EMP-001", Date: "2024-06-10", Time: "17:30"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestPunchRepository_Delete(t *testing.T) {
	requireDB(t)
	cleanupTestData(t)
	defer cleanupTestData(t)

	ctx := context.Background()
	repo := postgresql.NewPunchRepository(testDB)

	saved, err := repo.Save(ctx, punch.PunchEvent{
		EmployeeID: "EMP-001", Date: "2024-06-10", Time: "09:00",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))
	assert.True(t, errors.Is(repo.Delete(ctx, saved.ID), punch.ErrPunchNotFound))
}
