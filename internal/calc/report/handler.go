package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/erlynorbel/chemical-process-simulator/internal/calc/process"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	ReactorFeed float64 `json:"reactor_feed_kmol_hr"`
	Project     string  `json:"project"`
	Author      string  `json:"author"`
	Title       string  `json:"title"`
	Notes       string  `json:"notes"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := process.Calculate(process.Input{ReactorFeed: input.ReactorFeed})
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := render(&buf, input, res, time.Now()); err != nil {
		log.Printf("report: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"material-balance.pdf\"")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("report write: %v", err)
	}
}

var render = Render

// Render writes the material balance of res as a PDF.
func Render(w io.Writer, input Input, res process.Result, date time.Time) error {
	if input.Title == "" {
		input.Title = "IPA Dehydrogenation Material Balance"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(input.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", input.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Author: %s", input.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total reactor feed: %.2f kmol/hr (IPA %.2f, water %.2f)",
		res.ReactorFeed, res.FeedComposition.IPA, res.FeedComposition.Water))
	pdf.Ln(10)

	section(pdf, "Acetone production")
	row(pdf, "Acetone column distillate", res.AcetoneProduced.AcetoneColumnDistillate)
	row(pdf, "IPA column distillate", res.AcetoneProduced.IPAColumnDistillate)
	row(pdf, "Total", res.AcetoneProduced.Total)
	pdf.Ln(4)

	units := []struct {
		title   string
		streams []string
		flows   []process.Vector
	}{
		{"Feed drum", []string{"Output", "Losses"}, []process.Vector{res.FeedDrum.Output, res.FeedDrum.Losses}},
		{"Reactor", []string{"Input", "Output"}, []process.Vector{res.Reactor.Input, res.Reactor.Output}},
		{"Flash unit", []string{"Input", "Vapor", "Liquid", "Losses"},
			[]process.Vector{res.Flash.Input, res.Flash.Vapor, res.Flash.Liquid, res.Flash.Losses}},
		{"Scrubber", []string{"Input", "Offgas", "Liquid", "Losses"},
			[]process.Vector{res.Scrubber.Input, res.Scrubber.Offgas, res.Scrubber.Liquid, res.Scrubber.Losses}},
		{"Acetone column", []string{"Input", "Distillate", "Bottoms", "Losses"},
			[]process.Vector{res.AcetoneColumn.Input, res.AcetoneColumn.Distillate, res.AcetoneColumn.Bottoms, res.AcetoneColumn.Losses}},
		{"IPA column", []string{"Input", "Distillate", "Bottoms", "Losses"},
			[]process.Vector{res.IPAColumn.Input, res.IPAColumn.Distillate, res.IPAColumn.Bottoms, res.IPAColumn.Losses}},
	}
	for _, u := range units {
		section(pdf, u.title)
		for i, flow := range u.flows {
			if err := streamTable(pdf, u.streams[i], flow); err != nil {
				return fmt.Errorf("%s %s: %w", u.title, u.streams[i], err)
			}
		}
	}

	section(pdf, "Heat balance (design case)")
	pdf.SetFont("Helvetica", "B", 9)
	for _, h := range []string{"Equipment", "dH in, kJ/hr", "H out, kJ/hr", "Q, kJ/hr"} {
		pdf.CellFormat(45, 6, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, s := range res.HeatBalance.Stages {
		pdf.CellFormat(45, 6, s.Equipment, "1", 0, "L", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", s.DeltaHIn), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", s.HOut), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", s.QRel), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.CellFormat(135, 6, "Total Q", "1", 0, "L", false, 0, "")
	pdf.CellFormat(45, 6, fmt.Sprintf("%.2f", res.HeatBalance.TotalQ), "1", 0, "R", false, 0, "")
	pdf.Ln(8)

	if input.Notes != "" {
		section(pdf, "Notes")
		pdf.MultiCell(0, 6, tr(input.Notes), "", "L", false)
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func row(pdf *gofpdf.Fpdf, label string, kmol float64) {
	pdf.CellFormat(90, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f kmol/hr", kmol), "", 0, "R", false, 0, "")
	pdf.Ln(-1)
}

func streamTable(pdf *gofpdf.Fpdf, name string, flow process.Vector) error {
	mass, err := process.ToMass(flow)
	if err != nil {
		return err
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(30, 6, name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, "Component", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "kmol/hr", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, "kg/hr", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for i, e := range flow {
		pdf.CellFormat(30, 6, "", "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, e.Component.String(), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", e.Value), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", mass[i].Value), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(90, 6, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", flow.Total()), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f", mass.Total()), "1", 0, "R", false, 0, "")
	pdf.Ln(8)
	return pdf.Error()
}
