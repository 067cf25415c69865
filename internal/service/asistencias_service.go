package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/apierror"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/dto"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/repository"
)

// Attendance cell codes. "1" worked, "F" festivo trabajado, "D" descanso,
// "V" vacaciones, "E" enfermedad, "L" libre, "O" otros, "M" mañana,
// "C" completo. Empty clears the cell.
var allowedCodes = map[string]bool{
	"": true, "1": true, "F": true, "D": true, "V": true,
	"E": true, "L": true, "O": true, "M": true, "C": true,
}

type AsistenciasService struct {
	hubs       *HubService
	employees  *EmployeeService
	attendance repository.AttendanceRepository
	empRepo    repository.EmployeeRepository
}

func NewAsistenciasService(hubs *HubService, employees *EmployeeService, attendance repository.AttendanceRepository, empRepo repository.EmployeeRepository) *AsistenciasService {
	return &AsistenciasService{hubs: hubs, employees: employees, attendance: attendance, empRepo: empRepo}
}

// MonthGrid assembles the attendance sheet of a hub for one month: one row
// per active employee with a fully populated day map and per-code totals.
func (s *AsistenciasService) MonthGrid(ctx context.Context, hubName string, year, month int, userEmail string) (*dto.AsistenciasMonthResponse, error) {
	if err := ValidateYearMonth(year, month); err != nil {
		return nil, err
	}
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return nil, err
	}

	key := MonthKey(year, month)
	dim := DaysInMonth(year, month)

	employees, err := s.empRepo.ListActiveByHub(ctx, hub.ID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(employees))
	for i, e := range employees {
		ids[i] = e.ID
	}

	attRows, err := s.attendance.ListByEmployeesAndMonth(ctx, ids, key)
	if err != nil {
		return nil, err
	}
	heRows, err := s.attendance.ListExtraHoursByEmployeesAndMonth(ctx, ids, key)
	if err != nil {
		return nil, err
	}

	attByEmp := make(map[uint]map[int]string)
	for _, a := range attRows {
		if attByEmp[a.EmployeeID] == nil {
			attByEmp[a.EmployeeID] = make(map[int]string)
		}
		if d := dayOfMonth(a.Day); d > 0 {
			attByEmp[a.EmployeeID][d] = a.Code
		}
	}
	heByEmp := make(map[uint]map[string]string)
	for _, h := range heRows {
		if h.Hours == "" {
			continue
		}
		if heByEmp[h.EmployeeID] == nil {
			heByEmp[h.EmployeeID] = make(map[string]string)
		}
		if d := dayOfMonth(h.Day); d > 0 {
			heByEmp[h.EmployeeID][strconv.Itoa(d)] = h.Hours
		}
	}

	rows := make([]dto.AsistenciasRow, 0, len(employees))
	for _, emp := range employees {
		attMap := attByEmp[emp.ID]
		days := make(map[string]string, dim)
		var totals dto.AsistenciasTotals
		for d := 1; d <= dim; d++ {
			code := attMap[d]
			days[strconv.Itoa(d)] = code
			switch code {
			case "1":
				totals.Trabajo++
			case "F":
				totals.Trabajo++
				totals.Festivos++
			case "D":
				totals.Descanso++
			case "V":
				totals.Vacaciones++
			case "E":
				totals.Enfermedad++
			}
		}

		he := heByEmp[emp.ID]
		if he == nil {
			he = map[string]string{}
		}

		rows = append(rows, dto.AsistenciasRow{
			Employee:   dto.EmployeeDTO{ID: strconv.FormatUint(uint64(emp.ID), 10), Name: emp.Name},
			Days:       days,
			ExtraHours: he,
			Totals:     totals,
		})
	}

	comments := dto.AsistenciasComments{}
	cm, err := s.attendance.FindComment(ctx, hub.ID, key)
	if err != nil {
		return nil, err
	}
	if cm != nil {
		comments.Start = cm.CommentStart
		comments.End = cm.CommentEnd
	}

	return &dto.AsistenciasMonthResponse{
		Hub:         hubName,
		Year:        year,
		Month:       month,
		DaysInMonth: dim,
		Rows:        rows,
		Comments:    comments,
		Meta:        dto.AsistenciasMeta{User: userEmail},
	}, nil
}

// SetDay writes one attendance cell. An empty code deletes the row (a cleared
// cell stores nothing); an invalid code is rejected with no state change.
func (s *AsistenciasService) SetDay(ctx context.Context, hubName string, employeeID uint, day, code string) error {
	day = strings.TrimSpace(day)
	code = strings.TrimSpace(code)

	if !allowedCodes[code] {
		return apierror.Validation(fmt.Sprintf("Codigo no permitido: %s", code))
	}
	if _, _, _, ok := ParseYMD(day); !ok {
		return apierror.Validation("Fecha invalida, usa YYYY-MM-DD")
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}
	if _, err := s.employees.activeInHub(ctx, hub.ID, employeeID); err != nil {
		return err
	}

	row, err := s.attendance.FindByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return err
	}

	if code == "" {
		if row != nil {
			return s.attendance.Delete(ctx, row)
		}
		return nil
	}

	if row == nil {
		return s.attendance.Create(ctx, &model.Attendance{EmployeeID: employeeID, Day: day, Code: code})
	}
	row.Code = code
	return s.attendance.Save(ctx, row)
}

// SetExtraHours writes one overtime cell, mirroring SetDay's clear-on-empty
// behavior. Hours must parse as a number once the Spanish comma is swapped.
func (s *AsistenciasService) SetExtraHours(ctx context.Context, hubName string, employeeID uint, day, hours string) error {
	day = strings.TrimSpace(day)
	hours = strings.TrimSpace(hours)

	if _, _, _, ok := ParseYMD(day); !ok {
		return apierror.Validation("Fecha invalida, usa YYYY-MM-DD")
	}
	if hours != "" {
		if _, err := strconv.ParseFloat(strings.ReplaceAll(hours, ",", "."), 64); err != nil {
			return apierror.Validation("Horas invalidas. Usa numero, ejemplo: 0,5 o 1")
		}
	}

	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}
	if _, err := s.employees.activeInHub(ctx, hub.ID, employeeID); err != nil {
		return err
	}

	row, err := s.attendance.FindExtraHoursByEmployeeAndDay(ctx, employeeID, day)
	if err != nil {
		return err
	}

	if hours == "" {
		if row != nil {
			return s.attendance.DeleteExtraHours(ctx, row)
		}
		return nil
	}

	if row == nil {
		return s.attendance.CreateExtraHours(ctx, &model.ExtraHours{EmployeeID: employeeID, Day: day, Hours: hours})
	}
	row.Hours = hours
	return s.attendance.SaveExtraHours(ctx, row)
}

// SaveComments upserts the month's start/end comments for a hub.
func (s *AsistenciasService) SaveComments(ctx context.Context, hubName string, year, month int, start, end string) error {
	if err := ValidateYearMonth(year, month); err != nil {
		return err
	}
	hub, err := s.hubs.GetOrCreate(ctx, hubName)
	if err != nil {
		return err
	}
	key := MonthKey(year, month)

	row, err := s.attendance.FindComment(ctx, hub.ID, key)
	if err != nil {
		return err
	}
	if row == nil {
		return s.attendance.CreateComment(ctx, &model.AsistenciasComment{
			HubID:        hub.ID,
			MonthKey:     key,
			CommentStart: strings.TrimSpace(start),
			CommentEnd:   strings.TrimSpace(end),
		})
	}
	row.CommentStart = strings.TrimSpace(start)
	row.CommentEnd = strings.TrimSpace(end)
	return s.attendance.SaveComment(ctx, row)
}

// dayOfMonth extracts the numeric day from a "YYYY-MM-DD" string, 0 on junk.
func dayOfMonth(day string) int {
	if len(day) != 10 {
		return 0
	}
	d, err := strconv.Atoi(day[8:10])
	if err != nil {
		return 0
	}
	return d
}
