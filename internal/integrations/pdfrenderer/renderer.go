package pdfrenderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/phpdave11/gofpdf"
)

// OnQuoteLabel подпись вместо цены для бронирований без цены
const OnQuoteLabel = "On quote"

// Renderer собирает PDF подтверждения бронирования
type Renderer struct {
	companyName string
}

// New создает новый экземпляр Renderer
func New(companyName string) *Renderer {
	return &Renderer{companyName: companyName}
}

// Render возвращает PDF документ в байтах
func (r *Renderer) Render(doc *ReservationDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle("Reservation "+doc.ReservationID, true)
	pdf.SetAuthor(r.companyName, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr(r.companyName))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr("Reservation "+doc.ReservationID))
	pdf.Ln(8)
	if !doc.CreatedAt.IsZero() {
		pdf.Cell(0, 6, "Created: "+doc.CreatedAt.Format("2006-01-02 15:04"))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, tr("Status: "+doc.Status))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
	}
	row := func(label, value string) {
		if value == "" {
			value = "-"
		}
		pdf.CellFormat(55, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 6, tr(value), "", "L", false)
	}

	section("Client")
	row("Name", doc.ClientName)
	row("E-mail", doc.ClientEmail)
	row("Phone", doc.ClientPhone)
	pdf.Ln(4)

	section("Transfer")
	row("Service", doc.ServiceName)
	row("Vehicle", doc.VehicleTypeName)
	row("Date", doc.Date)
	row("Time", doc.Time)
	row("Pickup", doc.Pickup)
	row("Destination", doc.Destination)
	row("Passengers", strconv.Itoa(doc.Passengers))
	row("Baby seats", strconv.Itoa(doc.BabySeats))
	row("Booster seats", strconv.Itoa(doc.BoosterSeats))
	row("Meet & greet", yesNo(doc.MeetAndGreet))
	pdf.Ln(4)

	if len(doc.Details) > 0 {
		section("Details")
		for _, l := range doc.Details {
			row(l.Label, l.Value)
		}
		pdf.Ln(4)
	}

	if doc.Notes != "" {
		section("Notes")
		pdf.MultiCell(0, 6, tr(doc.Notes), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 10, tr("Total: "+FormatPrice(doc.TotalPrice, doc.Currency)))
	pdf.Ln(10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

// FormatPrice форматирует цену; nil превращается в "On quote"
func FormatPrice(price *float64, currency string) string {
	if price == nil {
		return OnQuoteLabel
	}
	s := strconv.FormatFloat(*price, 'f', 2, 64)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
