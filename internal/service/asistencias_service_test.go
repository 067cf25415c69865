package service

import (
	"context"
	"testing"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAsistenciasFixture() (*AsistenciasService, *EmployeeService, *fakeAttendanceRepo) {
	hubs := NewHubService(newFakeHubRepo())
	empRepo := newFakeEmployeeRepo()
	attRepo := newFakeAttendanceRepo()
	employees := NewEmployeeService(hubs, empRepo)
	return NewAsistenciasService(hubs, employees, attRepo, empRepo), employees, attRepo
}

func TestMonthGridTotals(t *testing.T) {
	svc, employees, _ := newAsistenciasFixture()
	ctx := context.Background()

	emp, err := employees.Create(ctx, "Caceres", "Ana Lopez")
	require.NoError(t, err)

	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-03", "1"))
	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-04", "F"))
	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-05", "D"))
	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-06", "V"))
	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-07", "E"))

	grid, err := svc.MonthGrid(ctx, "Hub Caceres", 2025, 3, "admin@demo.com")
	require.NoError(t, err)

	assert.Equal(t, "Hub Caceres", grid.Hub)
	assert.Equal(t, 31, grid.DaysInMonth)
	assert.Equal(t, "admin@demo.com", grid.Meta.User)
	require.Len(t, grid.Rows, 1)

	row := grid.Rows[0]
	assert.Equal(t, "Ana Lopez", row.Employee.Name)
	assert.Len(t, row.Days, 31)
	assert.Equal(t, "1", row.Days["3"])
	assert.Equal(t, "F", row.Days["4"])
	assert.Equal(t, "", row.Days["8"])

	// "F" counts as both a worked day and a festivo.
	assert.Equal(t, 2, row.Totals.Trabajo)
	assert.Equal(t, 1, row.Totals.Festivos)
	assert.Equal(t, 1, row.Totals.Descanso)
	assert.Equal(t, 1, row.Totals.Vacaciones)
	assert.Equal(t, 1, row.Totals.Enfermedad)
}

func TestMonthGridLeapFebruary(t *testing.T) {
	svc, employees, _ := newAsistenciasFixture()
	ctx := context.Background()

	_, err := employees.Create(ctx, "Caceres", "Ana Lopez")
	require.NoError(t, err)

	grid, err := svc.MonthGrid(ctx, "Caceres", 2024, 2, "admin@demo.com")
	require.NoError(t, err)
	assert.Equal(t, 29, grid.DaysInMonth)
	require.Len(t, grid.Rows, 1)
	assert.Len(t, grid.Rows[0].Days, 29)
}

func TestMonthGridExtraHoursKeysHaveNoLeadingZero(t *testing.T) {
	svc, employees, _ := newAsistenciasFixture()
	ctx := context.Background()

	emp, err := employees.Create(ctx, "Caceres", "Ana Lopez")
	require.NoError(t, err)
	require.NoError(t, svc.SetExtraHours(ctx, "Caceres", emp.ID, "2025-03-05", "0,5"))

	grid, err := svc.MonthGrid(ctx, "Caceres", 2025, 3, "admin@demo.com")
	require.NoError(t, err)
	require.Len(t, grid.Rows, 1)
	assert.Equal(t, map[string]string{"5": "0,5"}, grid.Rows[0].ExtraHours)
}

func TestMonthGridRejectsInvalidYearMonth(t *testing.T) {
	svc, _, _ := newAsistenciasFixture()
	ctx := context.Background()

	_, err := svc.MonthGrid(ctx, "Caceres", 2025, 13, "admin@demo.com")
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))

	_, err = svc.MonthGrid(ctx, "Caceres", 2025, 0, "admin@demo.com")
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestSaveCommentsRejectsInvalidMonth(t *testing.T) {
	svc, _, attRepo := newAsistenciasFixture()

	err := svc.SaveComments(context.Background(), "Caceres", 2025, 13, "inicio", "fin")
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Empty(t, attRepo.comments)
}

func TestSetDayRejectsUnknownCode(t *testing.T) {
	svc, employees, attRepo := newAsistenciasFixture()
	ctx := context.Background()

	emp, err := employees.Create(ctx, "Caceres", "Ana Lopez")
	require.NoError(t, err)

	err = svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-03", "Z")
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Empty(t, attRepo.rows)
}

func TestSetDayRejectsBadDate(t *testing.T) {
	svc, employees, _ := newAsistenciasFixture()
	ctx := context.Background()

	emp, err := employees.Create(ctx, "Caceres", "Ana Lopez")
	require.NoError(t, err)

	err = svc.SetDay(ctx, "Caceres", emp.ID, "03/03/2025", "1")
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}

func TestSetDayEmptyCodeClearsCell(t *testing.T) {
	svc, employees, attRepo := newAsistenciasFixture()
	ctx := context.Background()

	emp, err := employees.Create(ctx, "Caceres", "Ana Lopez")
	require.NoError(t, err)

	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-03", "1"))
	require.Len(t, attRepo.rows, 1)

	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-03", ""))
	assert.Empty(t, attRepo.rows)

	// Clearing an already empty cell stores nothing.
	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-03", ""))
	assert.Empty(t, attRepo.rows)
}

func TestSetDayUpsertsExistingCell(t *testing.T) {
	svc, employees, _ := newAsistenciasFixture()
	ctx := context.Background()

	emp, err := employees.Create(ctx, "Caceres", "Ana Lopez")
	require.NoError(t, err)

	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-03", "1"))
	require.NoError(t, svc.SetDay(ctx, "Caceres", emp.ID, "2025-03-03", "V"))

	grid, err := svc.MonthGrid(ctx, "Caceres", 2025, 3, "admin@demo.com")
	require.NoError(t, err)
	assert.Equal(t, "V", grid.Rows[0].Days["3"])
	assert.Equal(t, 0, grid.Rows[0].Totals.Trabajo)
}

func TestSetDayUnknownEmployee(t *testing.T) {
	svc, _, _ := newAsistenciasFixture()

	err := svc.SetDay(context.Background(), "Caceres", 99, "2025-03-03", "1")
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestSetExtraHoursValidation(t *testing.T) {
	svc, employees, attRepo := newAsistenciasFixture()
	ctx := context.Background()

	emp, err := employees.Create(ctx, "Caceres", "Ana Lopez")
	require.NoError(t, err)

	require.NoError(t, svc.SetExtraHours(ctx, "Caceres", emp.ID, "2025-03-05", "1.5"))
	require.NoError(t, svc.SetExtraHours(ctx, "Caceres", emp.ID, "2025-03-06", "2"))

	err = svc.SetExtraHours(ctx, "Caceres", emp.ID, "2025-03-07", "dos")
	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
	assert.Len(t, attRepo.hours, 2)

	require.NoError(t, svc.SetExtraHours(ctx, "Caceres", emp.ID, "2025-03-05", ""))
	assert.Len(t, attRepo.hours, 1)
}

func TestSaveCommentsUpserts(t *testing.T) {
	svc, _, attRepo := newAsistenciasFixture()
	ctx := context.Background()

	require.NoError(t, svc.SaveComments(ctx, "Caceres", 2025, 3, "inicio", "fin"))
	require.Len(t, attRepo.comments, 1)

	require.NoError(t, svc.SaveComments(ctx, "Hub Caceres", 2025, 3, "otro inicio", ""))
	require.Len(t, attRepo.comments, 1)

	grid, err := svc.MonthGrid(ctx, "Caceres", 2025, 3, "admin@demo.com")
	require.NoError(t, err)
	assert.Equal(t, "otro inicio", grid.Comments.Start)
	assert.Equal(t, "", grid.Comments.End)
}
