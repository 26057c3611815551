// Package reports derives read-only business views from the salon's
// collections. Nothing here is stored; every figure is computed on read.
package reports

import (
	"sort"

	"salondesk/cmd/internal/domain/entity"
	"salondesk/cmd/internal/schedule"
)

type StatusCounts struct {
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
	Total     int `json:"total"`
}

type DayRevenue struct {
	Date         string `json:"date"`
	Appointments int    `json:"appointments"`
	Revenue      int    `json:"revenue"`
}

type ServiceUsage struct {
	ServiceID int    `json:"serviceId"`
	Name      string `json:"name"`
	Bookings  int    `json:"bookings"`
}

type StaffLoad struct {
	StaffID       int    `json:"staffId"`
	Name          string `json:"name"`
	Appointments  int    `json:"appointments"`
	BookedMinutes int    `json:"bookedMinutes"`
}

type Summary struct {
	From         string         `json:"from"`
	To           string         `json:"to"`
	Counts       StatusCounts   `json:"counts"`
	Revenue      int            `json:"revenue"`
	RevenueByDay []DayRevenue   `json:"revenueByDay"`
	TopServices  []ServiceUsage `json:"topServices"`
	Staff        []StaffLoad    `json:"staff"`
}

// Summarize aggregates appts, which the caller has already narrowed to the
// from..to range. Cancelled appointments are counted but earn no revenue and
// book no time.
func Summarize(from, to string, appts []entity.Appointment, services []entity.Service, staff []entity.Staff) Summary {
	sum := Summary{From: from, To: to, RevenueByDay: []DayRevenue{}, TopServices: []ServiceUsage{}, Staff: []StaffLoad{}}

	serviceNames := make(map[int]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}
	staffNames := make(map[int]string, len(staff))
	for _, s := range staff {
		staffNames[s.ID] = s.Name
	}

	days := map[string]*DayRevenue{}
	usage := map[int]*ServiceUsage{}
	load := map[int]*StaffLoad{}

	for _, a := range appts {
		sum.Counts.Total++
		switch a.Status {
		case entity.StatusConfirmed:
			sum.Counts.Confirmed++
		case entity.StatusPending:
			sum.Counts.Pending++
		case entity.StatusCompleted:
			sum.Counts.Completed++
		case entity.StatusCancelled:
			sum.Counts.Cancelled++
		}
		if !a.Blocks() {
			continue
		}

		sum.Revenue += a.TotalPrice

		d := days[a.Date]
		if d == nil {
			d = &DayRevenue{Date: a.Date}
			days[a.Date] = d
		}
		d.Appointments++
		d.Revenue += a.TotalPrice

		for _, id := range a.ServiceIDs {
			u := usage[id]
			if u == nil {
				u = &ServiceUsage{ServiceID: id, Name: serviceNames[id]}
				usage[id] = u
			}
			u.Bookings++
		}

		l := load[a.StaffID]
		if l == nil {
			l = &StaffLoad{StaffID: a.StaffID, Name: staffNames[a.StaffID]}
			load[a.StaffID] = l
		}
		l.Appointments++
		l.BookedMinutes += minutes(a)
	}

	for _, d := range days {
		sum.RevenueByDay = append(sum.RevenueByDay, *d)
	}
	sort.Slice(sum.RevenueByDay, func(i, j int) bool { return sum.RevenueByDay[i].Date < sum.RevenueByDay[j].Date })

	for _, u := range usage {
		sum.TopServices = append(sum.TopServices, *u)
	}
	sort.Slice(sum.TopServices, func(i, j int) bool {
		if sum.TopServices[i].Bookings != sum.TopServices[j].Bookings {
			return sum.TopServices[i].Bookings > sum.TopServices[j].Bookings
		}
		return sum.TopServices[i].ServiceID < sum.TopServices[j].ServiceID
	})

	for _, l := range load {
		sum.Staff = append(sum.Staff, *l)
	}
	sort.Slice(sum.Staff, func(i, j int) bool { return sum.Staff[i].StaffID < sum.Staff[j].StaffID })

	return sum
}

func minutes(a entity.Appointment) int {
	start, err := schedule.ParseClock(a.StartTime)
	if err != nil {
		return 0
	}
	end, err := schedule.ParseClock(a.EndTime)
	if err != nil || end < start {
		return 0
	}
	return end - start
}

// SpendLine compares a customer's cached totalSpent with the sum of their
// non-cancelled appointment prices. The two drift apart once appointments
// are deleted or repriced, since only creation touches the cache.
type SpendLine struct {
	CustomerID int    `json:"customerId"`
	Name       string `json:"name"`
	Recorded   int    `json:"recorded"`
	Computed   int    `json:"computed"`
	Difference int    `json:"difference"`
}

func Reconcile(customers []entity.Customer, appts []entity.Appointment) []SpendLine {
	computed := map[int]int{}
	for _, a := range appts {
		if a.Blocks() {
			computed[a.CustomerID] += a.TotalPrice
		}
	}

	lines := make([]SpendLine, len(customers))
	for i, c := range customers {
		lines[i] = SpendLine{
			CustomerID: c.ID,
			Name:       c.Name,
			Recorded:   c.TotalSpent,
			Computed:   computed[c.ID],
			Difference: c.TotalSpent - computed[c.ID],
		}
	}
	return lines
}
