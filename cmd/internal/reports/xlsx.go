package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary = "Summary"
	sheetDays    = "Revenue by day"
	sheetStaff   = "Staff"
	sheetSpend   = "Customer spend"
)

// WriteXLSX renders a summary and a spend reconciliation as a workbook with
// one sheet per view.
func WriteXLSX(w io.Writer, sum Summary, spend []SpendLine) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetSummary); err != nil {
		return err
	}
	for _, name := range []string{sheetDays, sheetStaff, sheetSpend} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	summary := [][]any{
		{"From", sum.From},
		{"To", sum.To},
		{"Appointments", sum.Counts.Total},
		{"Confirmed", sum.Counts.Confirmed},
		{"Pending", sum.Counts.Pending},
		{"Completed", sum.Counts.Completed},
		{"Cancelled", sum.Counts.Cancelled},
		{"Revenue", sum.Revenue},
		{},
		{"Service", "Bookings"},
	}
	for _, s := range sum.TopServices {
		summary = append(summary, []any{serviceLabel(s), s.Bookings})
	}
	if err := writeRows(f, sheetSummary, summary); err != nil {
		return err
	}

	days := [][]any{{"Date", "Appointments", "Revenue"}}
	for _, d := range sum.RevenueByDay {
		days = append(days, []any{d.Date, d.Appointments, d.Revenue})
	}
	if err := writeRows(f, sheetDays, days); err != nil {
		return err
	}

	staff := [][]any{{"Staff", "Appointments", "Booked minutes"}}
	for _, s := range sum.Staff {
		staff = append(staff, []any{s.Name, s.Appointments, s.BookedMinutes})
	}
	if err := writeRows(f, sheetStaff, staff); err != nil {
		return err
	}

	lines := [][]any{{"Customer", "Recorded", "Computed", "Difference"}}
	for _, l := range spend {
		lines = append(lines, []any{l.Name, l.Recorded, l.Computed, l.Difference})
	}
	if err := writeRows(f, sheetSpend, lines); err != nil {
		return err
	}

	_, err := f.WriteTo(w)
	return err
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func serviceLabel(s ServiceUsage) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("#%d", s.ServiceID)
}
