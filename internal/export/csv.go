// Package export renders report rows as CSV downloads.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/avolkovx/coursehub/internal/domain"
)

// utf8BOM is prepended so spreadsheet applications detect the encoding
// and render non-latin names correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ContentType is the MIME type for generated CSV files.
const ContentType = "text/csv; charset=utf-8"

// CSV renders a header row plus data rows as a UTF-8 CSV document with
// a leading BOM. Fields are quoted only when they need to be. An empty
// row set returns ErrNothingToExport: reports with no data produce no
// file.
func CSV(header []string, rows [][]string) ([]byte, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNothingToExport
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// PathVisitsCSV renders the by-page report.
func PathVisitsCSV(report []domain.PathVisits) ([]byte, error) {
	rows := make([][]string, 0, len(report))
	for _, r := range report {
		rows = append(rows, []string{r.Path, fmt.Sprintf("%d", r.Visits)})
	}
	return CSV([]string{"Страница", "Количество посещений"}, rows)
}

// UserVisitsCSV renders the by-user report. Anonymous traffic is
// attributed to a fixed placeholder.
func UserVisitsCSV(report []domain.UserVisits) ([]byte, error) {
	rows := make([][]string, 0, len(report))
	for _, r := range report {
		name := r.FullName
		if name == "" {
			name = "Неаутентифицированный пользователь"
		}
		rows = append(rows, []string{name, fmt.Sprintf("%d", r.Visits)})
	}
	return CSV([]string{"Пользователь", "Количество посещений"}, rows)
}
