package trips

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"travelstar/history"
	"travelstar/models"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// Display-time fallbacks for slots the model left sparse. Storage never
// contains these; they exist only on the printed page.
const (
	defaultCost     = "Free"
	defaultDuration = "2-3 hours"
)

// GET /api/trips/history/:entryid/print
//
// Renders a saved itinerary as a PDF with a QR code pointing at the shared
// trip page.
func (h *Handler) PrintTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := requestUserID(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entry, err := history.Entry(r.Context(), userID, ps.ByName("entryid"))
	if err != nil {
		http.Error(w, "Trip not found", http.StatusNotFound)
		return
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	shareURL := fmt.Sprintf("%s/trips/%s", baseURL, entry.EntryID)

	qrPNG, err := qrcode.Encode(shareURL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	title := entry.Itinerary.Title
	if title == "" {
		title = "Your Travel Plan"
	}
	pdf.MultiCell(0, 10, title, "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Destination: %s", entry.Destination))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Planned on: %s", entry.Date))
	pdf.Ln(7)
	if entry.Itinerary.TotalBudget != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Total Budget: %s", entry.Itinerary.TotalBudget))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	if len(entry.Itinerary.BudgetBreakdown) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Budget Breakdown")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for _, category := range sortedKeys(entry.Itinerary.BudgetBreakdown) {
			pdf.Cell(0, 6, fmt.Sprintf("  %s: %s", titleCase(category), entry.Itinerary.BudgetBreakdown[category]))
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	if len(entry.Itinerary.DailyItinerary) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Daily Itinerary")
		pdf.Ln(8)
		for _, day := range sortedDayLabels(entry.Itinerary.DailyItinerary) {
			plan := entry.Itinerary.DailyItinerary[day]
			pdf.SetFont("Arial", "B", 11)
			heading := day
			if plan.Theme != "" {
				heading += ": " + plan.Theme
			}
			pdf.MultiCell(0, 6, heading, "", "L", false)
			pdf.SetFont("Arial", "", 11)
			writeSlot(pdf, "Morning", plan.Morning)
			writeSlot(pdf, "Afternoon", plan.Afternoon)
			writeSlot(pdf, "Evening", plan.Evening)
			pdf.Ln(2)
		}
	}

	if len(entry.Itinerary.TravelTips) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Travel Tips")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 11)
		for i, tip := range entry.Itinerary.TravelTips {
			pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s", i+1, tip), "", "L", false)
		}
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=trip-"+entry.EntryID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func writeSlot(pdf *gofpdf.Fpdf, label string, activity *models.Activity) {
	if activity == nil {
		return
	}
	cost := activity.Cost
	if cost == "" {
		cost = defaultCost
	}
	duration := activity.Duration
	if duration == "" {
		duration = defaultDuration
	}
	pdf.MultiCell(0, 6, fmt.Sprintf("  %s: %s (%s, %s)", label, activity.Activity, duration, cost), "", "L", false)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sortedDayLabels orders "Day 1".."Day N" numerically, falling back to
// lexicographic order for labels with no trailing number.
func sortedDayLabels(days map[string]models.DayPlan) []string {
	labels := make([]string, 0, len(days))
	for label := range days {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ni, iok := trailingNumber(labels[i])
		nj, jok := trailingNumber(labels[j])
		if iok && jok && ni != nj {
			return ni < nj
		}
		return labels[i] < labels[j]
	})
	return labels
}

func trailingNumber(s string) (int, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func titleCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
