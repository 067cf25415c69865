package dto

// SetDayRequest updates one attendance cell. An empty code clears the cell.
type SetDayRequest struct {
	Date string `json:"date" validate:"required"`
	Code string `json:"code"`
}

// SetExtraHoursRequest updates one overtime cell. Hours keeps the raw string
// ("0,5") so Spanish comma decimals round-trip untouched; empty clears.
type SetExtraHoursRequest struct {
	Date  string `json:"date" validate:"required"`
	Hours string `json:"hours"`
}

// SaveCommentsRequest stores the month's sheet comments.
type SaveCommentsRequest struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type EmployeeDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type AsistenciasTotals struct {
	Trabajo    int `json:"trabajo"`
	Descanso   int `json:"descanso"`
	Vacaciones int `json:"vacaciones"`
	Enfermedad int `json:"enfermedad"`
	Festivos   int `json:"festivos"`
}

// AsistenciasRow is one employee's month line. Days maps "1".."31" to a code
// (always fully populated); ExtraHours only carries days with a value.
type AsistenciasRow struct {
	Employee   EmployeeDTO       `json:"employee"`
	Days       map[string]string `json:"days"`
	ExtraHours map[string]string `json:"extra_hours"`
	Totals     AsistenciasTotals `json:"totals"`
}

type AsistenciasComments struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AsistenciasMeta struct {
	User string `json:"user"`
}

type AsistenciasMonthResponse struct {
	Hub         string              `json:"hub"`
	Year        int                 `json:"year"`
	Month       int                 `json:"month"`
	DaysInMonth int                 `json:"days_in_month"`
	Rows        []AsistenciasRow    `json:"rows"`
	Comments    AsistenciasComments `json:"comments"`
	Meta        AsistenciasMeta     `json:"meta"`
}
