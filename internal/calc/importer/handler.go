package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/erlynorbel/chemical-process-simulator/internal/calc/process"
	"github.com/xuri/excelize/v2"
)

const MaxUploadSize = 5 << 20

type Handler struct{}

type ImportResult struct {
	Count   int              `json:"count"`
	Skipped int              `json:"skipped"`
	Results []process.Result `json:"results"`
}

func (h *Handler) Feeds(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	feeds, skipped, err := ParseFeeds(file)
	if err != nil {
		log.Printf("import: %v", err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	out := ImportResult{Skipped: skipped, Results: make([]process.Result, 0, len(feeds))}
	for _, feed := range feeds {
		res, err := process.Calculate(process.Input{ReactorFeed: feed})
		if err != nil {
			out.Skipped++
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// ParseFeeds reads reactor feeds from the first column of the first sheet.
// The first row is a header. Rows that do not hold a number are skipped
// and counted.
func ParseFeeds(r io.Reader) ([]float64, int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("empty sheet")
	}

	var feeds []float64
	skipped := 0
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		feed, err := toFloat(row[0])
		if err != nil {
			skipped++
			continue
		}
		feeds = append(feeds, feed)
	}
	return feeds, skipped, nil
}

// toFloat parses a whole cell as a number, accepting a decimal comma.
func toFloat(s string) (float64, error) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}
