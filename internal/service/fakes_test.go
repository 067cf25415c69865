package service

import (
	"context"
	"sort"
	"strings"

	"github.com/Gabriel-DAloia/Proyecto-Areatrans-Heineken/internal/model"
)

// In-memory repository fakes. They mimic only the behavior the services rely
// on: sequential ids, case-insensitive name lookups, and the active filters.

type fakeHubRepo struct {
	seq  uint
	hubs map[uint]*model.Hub
	// createErr lets a test inject a duplicate-key race on Create.
	createErr error
}

func newFakeHubRepo() *fakeHubRepo {
	return &fakeHubRepo{hubs: map[uint]*model.Hub{}}
}

func (r *fakeHubRepo) FindByID(_ context.Context, id uint) (*model.Hub, error) {
	if h, ok := r.hubs[id]; ok {
		c := *h
		return &c, nil
	}
	return nil, nil
}

func (r *fakeHubRepo) FindByNameFold(_ context.Context, name string) (*model.Hub, error) {
	for _, h := range r.hubs {
		if strings.EqualFold(h.Name, name) {
			c := *h
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeHubRepo) Create(_ context.Context, hub *model.Hub) error {
	if r.createErr != nil {
		err := r.createErr
		r.createErr = nil
		return err
	}
	r.seq++
	hub.ID = r.seq
	c := *hub
	r.hubs[hub.ID] = &c
	return nil
}

func (r *fakeHubRepo) List(_ context.Context) ([]model.Hub, error) {
	out := make([]model.Hub, 0, len(r.hubs))
	for _, h := range r.hubs {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeEmployeeRepo struct {
	seq       uint
	employees map[uint]*model.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[uint]*model.Employee{}}
}

func (r *fakeEmployeeRepo) ListActiveByHub(_ context.Context, hubID uint) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range r.employees {
		if e.HubID == hubID && e.Active {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeEmployeeRepo) FindByID(_ context.Context, id uint) (*model.Employee, error) {
	if e, ok := r.employees[id]; ok {
		c := *e
		return &c, nil
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) FindByHubAndNameFold(_ context.Context, hubID uint, name string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.HubID == hubID && strings.EqualFold(e.Name, name) {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	r.seq++
	e.ID = r.seq
	c := *e
	r.employees[e.ID] = &c
	return nil
}

func (r *fakeEmployeeRepo) Save(_ context.Context, e *model.Employee) error {
	c := *e
	r.employees[e.ID] = &c
	return nil
}

type fakeAttendanceRepo struct {
	seq      uint
	rows     map[uint]*model.Attendance
	heSeq    uint
	hours    map[uint]*model.ExtraHours
	cmSeq    uint
	comments map[uint]*model.AsistenciasComment
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{
		rows:     map[uint]*model.Attendance{},
		hours:    map[uint]*model.ExtraHours{},
		comments: map[uint]*model.AsistenciasComment{},
	}
}

func (r *fakeAttendanceRepo) ListByEmployeesAndMonth(_ context.Context, ids []uint, prefix string) ([]model.Attendance, error) {
	idSet := map[uint]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	var out []model.Attendance
	for _, a := range r.rows {
		if idSet[a.EmployeeID] && strings.HasPrefix(a.Day, prefix) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) FindByEmployeeAndDay(_ context.Context, employeeID uint, day string) (*model.Attendance, error) {
	for _, a := range r.rows {
		if a.EmployeeID == employeeID && a.Day == day {
			c := *a
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) Create(_ context.Context, a *model.Attendance) error {
	r.seq++
	a.ID = r.seq
	c := *a
	r.rows[a.ID] = &c
	return nil
}

func (r *fakeAttendanceRepo) Save(_ context.Context, a *model.Attendance) error {
	c := *a
	r.rows[a.ID] = &c
	return nil
}

func (r *fakeAttendanceRepo) Delete(_ context.Context, a *model.Attendance) error {
	delete(r.rows, a.ID)
	return nil
}

func (r *fakeAttendanceRepo) ListExtraHoursByEmployeesAndMonth(_ context.Context, ids []uint, prefix string) ([]model.ExtraHours, error) {
	idSet := map[uint]bool{}
	for _, id := range ids {
		idSet[id] = true
	}
	var out []model.ExtraHours
	for _, h := range r.hours {
		if idSet[h.EmployeeID] && strings.HasPrefix(h.Day, prefix) {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (r *fakeAttendanceRepo) FindExtraHoursByEmployeeAndDay(_ context.Context, employeeID uint, day string) (*model.ExtraHours, error) {
	for _, h := range r.hours {
		if h.EmployeeID == employeeID && h.Day == day {
			c := *h
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) CreateExtraHours(_ context.Context, h *model.ExtraHours) error {
	r.heSeq++
	h.ID = r.heSeq
	c := *h
	r.hours[h.ID] = &c
	return nil
}

func (r *fakeAttendanceRepo) SaveExtraHours(_ context.Context, h *model.ExtraHours) error {
	c := *h
	r.hours[h.ID] = &c
	return nil
}

func (r *fakeAttendanceRepo) DeleteExtraHours(_ context.Context, h *model.ExtraHours) error {
	delete(r.hours, h.ID)
	return nil
}

func (r *fakeAttendanceRepo) FindComment(_ context.Context, hubID uint, monthKey string) (*model.AsistenciasComment, error) {
	for _, cm := range r.comments {
		if cm.HubID == hubID && cm.MonthKey == monthKey {
			c := *cm
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeAttendanceRepo) CreateComment(_ context.Context, cm *model.AsistenciasComment) error {
	r.cmSeq++
	cm.ID = r.cmSeq
	c := *cm
	r.comments[cm.ID] = &c
	return nil
}

func (r *fakeAttendanceRepo) SaveComment(_ context.Context, cm *model.AsistenciasComment) error {
	c := *cm
	r.comments[cm.ID] = &c
	return nil
}

type fakeLiquidacionRepo struct {
	rutaSeq  uint
	rutas    map[uint]*model.LiquidacionRuta
	entrySeq uint
	entries  map[uint]*model.LiquidacionEntry
}

func newFakeLiquidacionRepo() *fakeLiquidacionRepo {
	return &fakeLiquidacionRepo{
		rutas:   map[uint]*model.LiquidacionRuta{},
		entries: map[uint]*model.LiquidacionEntry{},
	}
}

func (r *fakeLiquidacionRepo) ListRutasByHub(_ context.Context, hubID uint) ([]model.LiquidacionRuta, error) {
	var out []model.LiquidacionRuta
	for _, ruta := range r.rutas {
		if ruta.HubID == hubID && ruta.Active {
			out = append(out, *ruta)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (r *fakeLiquidacionRepo) FindRutaByID(_ context.Context, id uint) (*model.LiquidacionRuta, error) {
	if ruta, ok := r.rutas[id]; ok {
		c := *ruta
		return &c, nil
	}
	return nil, nil
}

func (r *fakeLiquidacionRepo) FindRutaByHubAndCodeFold(_ context.Context, hubID uint, code string) (*model.LiquidacionRuta, error) {
	for _, ruta := range r.rutas {
		if ruta.HubID == hubID && strings.EqualFold(ruta.Code, code) {
			c := *ruta
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeLiquidacionRepo) CreateRuta(_ context.Context, ruta *model.LiquidacionRuta) error {
	r.rutaSeq++
	ruta.ID = r.rutaSeq
	c := *ruta
	r.rutas[ruta.ID] = &c
	return nil
}

func (r *fakeLiquidacionRepo) SaveRuta(_ context.Context, ruta *model.LiquidacionRuta) error {
	c := *ruta
	r.rutas[ruta.ID] = &c
	return nil
}

func (r *fakeLiquidacionRepo) ListEntriesByRouteAndMonth(_ context.Context, routeID uint, prefix string) ([]model.LiquidacionEntry, error) {
	var out []model.LiquidacionEntry
	for _, e := range r.entries {
		if e.RouteID == routeID && strings.HasPrefix(e.Day, prefix) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (r *fakeLiquidacionRepo) FindEntryByRouteAndDay(_ context.Context, routeID uint, day string) (*model.LiquidacionEntry, error) {
	for _, e := range r.entries {
		if e.RouteID == routeID && e.Day == day {
			c := *e
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeLiquidacionRepo) CreateEntry(_ context.Context, e *model.LiquidacionEntry) error {
	r.entrySeq++
	e.ID = r.entrySeq
	c := *e
	r.entries[e.ID] = &c
	return nil
}

func (r *fakeLiquidacionRepo) SaveEntry(_ context.Context, e *model.LiquidacionEntry) error {
	c := *e
	r.entries[e.ID] = &c
	return nil
}

func (r *fakeLiquidacionRepo) DeleteEntry(_ context.Context, e *model.LiquidacionEntry) error {
	delete(r.entries, e.ID)
	return nil
}

type fakeFlotaRepo struct {
	vehSeq    uint
	vehiculos map[uint]*model.FlotaVehiculo
	incSeq    uint
	incidents map[uint]*model.FlotaIncidencia
}

func newFakeFlotaRepo() *fakeFlotaRepo {
	return &fakeFlotaRepo{
		vehiculos: map[uint]*model.FlotaVehiculo{},
		incidents: map[uint]*model.FlotaIncidencia{},
	}
}

func (r *fakeFlotaRepo) ListActiveVehiculosByHub(_ context.Context, hubID uint) ([]model.FlotaVehiculo, error) {
	var out []model.FlotaVehiculo
	for _, v := range r.vehiculos {
		if v.HubID == hubID && v.Active {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Matricula < out[j].Matricula })
	return out, nil
}

func (r *fakeFlotaRepo) FindVehiculoByID(_ context.Context, id uint) (*model.FlotaVehiculo, error) {
	if v, ok := r.vehiculos[id]; ok {
		c := *v
		return &c, nil
	}
	return nil, nil
}

func (r *fakeFlotaRepo) FindVehiculoByHubAndMatricula(_ context.Context, hubID uint, matricula string) (*model.FlotaVehiculo, error) {
	for _, v := range r.vehiculos {
		if v.HubID == hubID && v.Matricula == matricula {
			c := *v
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeFlotaRepo) CreateVehiculo(_ context.Context, v *model.FlotaVehiculo) error {
	r.vehSeq++
	v.ID = r.vehSeq
	c := *v
	r.vehiculos[v.ID] = &c
	return nil
}

func (r *fakeFlotaRepo) SaveVehiculo(_ context.Context, v *model.FlotaVehiculo) error {
	c := *v
	r.vehiculos[v.ID] = &c
	return nil
}

func (r *fakeFlotaRepo) ListIncidenciasByVehiculo(_ context.Context, vehiculoID uint) ([]model.FlotaIncidencia, error) {
	var out []model.FlotaIncidencia
	for _, inc := range r.incidents {
		if inc.VehiculoID == vehiculoID {
			out = append(out, *inc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *fakeFlotaRepo) FindIncidenciaByID(_ context.Context, id uint) (*model.FlotaIncidencia, error) {
	if inc, ok := r.incidents[id]; ok {
		c := *inc
		return &c, nil
	}
	return nil, nil
}

func (r *fakeFlotaRepo) CreateIncidencia(_ context.Context, inc *model.FlotaIncidencia) error {
	r.incSeq++
	inc.ID = r.incSeq
	c := *inc
	r.incidents[inc.ID] = &c
	return nil
}

func (r *fakeFlotaRepo) SaveIncidencia(_ context.Context, inc *model.FlotaIncidencia) error {
	c := *inc
	r.incidents[inc.ID] = &c
	return nil
}

func (r *fakeFlotaRepo) DeleteIncidencia(_ context.Context, inc *model.FlotaIncidencia) error {
	delete(r.incidents, inc.ID)
	return nil
}

type fakeKilosLitrosRepo struct {
	seq  uint
	rows map[uint]*model.KilosLitros
}

func newFakeKilosLitrosRepo() *fakeKilosLitrosRepo {
	return &fakeKilosLitrosRepo{rows: map[uint]*model.KilosLitros{}}
}

func (r *fakeKilosLitrosRepo) ListActiveByHub(_ context.Context, hubID uint) ([]model.KilosLitros, error) {
	var out []model.KilosLitros
	for _, kl := range r.rows {
		if kl.HubID == hubID && kl.Active {
			out = append(out, *kl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (r *fakeKilosLitrosRepo) ListActiveByHubAndMonth(_ context.Context, hubID uint, year, month int) ([]model.KilosLitros, error) {
	var out []model.KilosLitros
	for _, kl := range r.rows {
		if kl.HubID == hubID && kl.Active && kl.Year == year && kl.Month == month {
			out = append(out, *kl)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

func (r *fakeKilosLitrosRepo) FindByID(_ context.Context, id uint) (*model.KilosLitros, error) {
	if kl, ok := r.rows[id]; ok {
		c := *kl
		return &c, nil
	}
	return nil, nil
}

func (r *fakeKilosLitrosRepo) FindActiveByHubDayRuta(_ context.Context, hubID uint, day string, rutaNumero int) (*model.KilosLitros, error) {
	for _, kl := range r.rows {
		if kl.HubID == hubID && kl.Day == day && kl.RutaNumero == rutaNumero && kl.Active {
			c := *kl
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeKilosLitrosRepo) Create(_ context.Context, kl *model.KilosLitros) error {
	r.seq++
	kl.ID = r.seq
	c := *kl
	r.rows[kl.ID] = &c
	return nil
}

func (r *fakeKilosLitrosRepo) Save(_ context.Context, kl *model.KilosLitros) error {
	c := *kl
	r.rows[kl.ID] = &c
	return nil
}

func (r *fakeKilosLitrosRepo) Delete(_ context.Context, kl *model.KilosLitros) error {
	delete(r.rows, kl.ID)
	return nil
}

type fakeCompraRepo struct {
	seq  uint
	rows map[uint]*model.HubCompra
}

func newFakeCompraRepo() *fakeCompraRepo {
	return &fakeCompraRepo{rows: map[uint]*model.HubCompra{}}
}

func (r *fakeCompraRepo) ListActiveByHub(_ context.Context, hubID uint) ([]model.HubCompra, error) {
	var out []model.HubCompra
	for _, c := range r.rows {
		if c.HubID == hubID && c.Active {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeCompraRepo) FindByID(_ context.Context, id uint) (*model.HubCompra, error) {
	if c, ok := r.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCompraRepo) Create(_ context.Context, c *model.HubCompra) error {
	r.seq++
	c.ID = r.seq
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeCompraRepo) Save(_ context.Context, c *model.HubCompra) error {
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeCompraRepo) Delete(_ context.Context, c *model.HubCompra) error {
	delete(r.rows, c.ID)
	return nil
}

type fakeContactoRepo struct {
	seq  uint
	rows map[uint]*model.Contacto
}

func newFakeContactoRepo() *fakeContactoRepo {
	return &fakeContactoRepo{rows: map[uint]*model.Contacto{}}
}

func (r *fakeContactoRepo) ListActiveByHub(_ context.Context, hubID uint) ([]model.Contacto, error) {
	var out []model.Contacto
	for _, c := range r.rows {
		if c.HubID == hubID && c.Active {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *fakeContactoRepo) FindByID(_ context.Context, id uint) (*model.Contacto, error) {
	if c, ok := r.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeContactoRepo) FindByHubAndTelefono(_ context.Context, hubID uint, telefono string) (*model.Contacto, error) {
	for _, c := range r.rows {
		if c.HubID == hubID && c.Telefono == telefono {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContactoRepo) FindActiveByHubAndTelefono(_ context.Context, hubID uint, telefono string) (*model.Contacto, error) {
	for _, c := range r.rows {
		if c.HubID == hubID && c.Telefono == telefono && c.Active {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeContactoRepo) Create(_ context.Context, c *model.Contacto) error {
	r.seq++
	c.ID = r.seq
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeContactoRepo) Save(_ context.Context, c *model.Contacto) error {
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

type fakeRepartoRepo struct {
	seq  uint
	rows map[uint]*model.RepartoCliente
}

func newFakeRepartoRepo() *fakeRepartoRepo {
	return &fakeRepartoRepo{rows: map[uint]*model.RepartoCliente{}}
}

func (r *fakeRepartoRepo) ListActiveByHubAndRoute(_ context.Context, hubID, routeID uint) ([]model.RepartoCliente, error) {
	var out []model.RepartoCliente
	for _, c := range r.rows {
		if c.HubID == hubID && c.RouteID == routeID && c.Activo {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *fakeRepartoRepo) FindByID(_ context.Context, id uint) (*model.RepartoCliente, error) {
	if c, ok := r.rows[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeRepartoRepo) FindByHubRouteAndCodigo(_ context.Context, hubID, routeID uint, codigo string) (*model.RepartoCliente, error) {
	for _, c := range r.rows {
		if c.HubID == hubID && c.RouteID == routeID && c.ClienteCodigo == codigo {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeRepartoRepo) Create(_ context.Context, c *model.RepartoCliente) error {
	r.seq++
	c.ID = r.seq
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *fakeRepartoRepo) Save(_ context.Context, c *model.RepartoCliente) error {
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := r.users[email]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	c := *u
	r.users[u.Email] = &c
	return nil
}

func (r *fakeUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

// fakeGeocoder returns fixed coordinates or a no-match error.
type fakeGeocoder struct {
	lat, lng float64
	err      error
	calls    int
}

func (g *fakeGeocoder) Resolve(_ context.Context, _ string) (float64, float64, error) {
	g.calls++
	if g.err != nil {
		return 0, 0, g.err
	}
	return g.lat, g.lng, nil
}
