package export

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/erlynorbel/chemical-process-simulator/internal/calc/process"
	"github.com/erlynorbel/chemical-process-simulator/internal/calc/sweep"
)

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct{}

func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	var input process.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := process.Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	f, err := Workbook(res)
	if err != nil {
		log.Printf("export workbook: %v", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"material-balance.xlsx\"")
	if err := f.Write(w); err != nil {
		log.Printf("export write: %v", err)
	}
}

func (h *Handler) Sweep(w http.ResponseWriter, r *http.Request) {
	var input sweep.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := sweep.Calculate(input, nil)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	f, err := SweepWorkbook(res)
	if err != nil {
		log.Printf("export sweep: %v", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxType)
	w.Header().Set("Content-Disposition", "attachment; filename=\"feed-sweep.xlsx\"")
	if err := f.Write(w); err != nil {
		log.Printf("export write: %v", err)
	}
}
