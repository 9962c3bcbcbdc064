package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "travel-backend/internal/config"
	"travel-backend/internal/domain/models"
	"travel-backend/internal/repositories"
	"travel-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService menghasilkan PDF bukti booking & invoice hotel.
type DocsService struct {
	DB        *sql.DB
	RequestID string
	// Loaders override the DB lookup in tests.
	BookingLoader func(bookingID, customerID int64) (models.Booking, error)
	HotelLoader   func(bookingID, customerID int64) (models.HotelBooking, error)
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

// GenerateBookingReceipt renders a PDF receipt for a package or vehicle
// booking owned by the customer.
func (s DocsService) GenerateBookingReceipt(bookingID, customerID int64) ([]byte, string, error) {
	var b models.Booking
	var err error
	if s.BookingLoader != nil {
		b, err = s.BookingLoader(bookingID, customerID)
	} else {
		b, err = repositories.BookingRepo{DB: s.db()}.GetOwnedDetail(bookingID, customerID)
	}
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_receipt", fmt.Sprintf("booking_id=%d", bookingID))
	return buildBookingReceiptPDF(b)
}

// GenerateHotelInvoice renders a PDF invoice for a hotel booking owned by
// the customer.
func (s DocsService) GenerateHotelInvoice(bookingID, customerID int64) ([]byte, string, error) {
	var b models.HotelBooking
	var err error
	if s.HotelLoader != nil {
		b, err = s.HotelLoader(bookingID, customerID)
	} else {
		b, err = repositories.HotelBookingRepo{DB: s.db()}.GetOwnedDetail(bookingID, customerID)
	}
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_hotel_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildHotelInvoicePDF(b)
}

func buildBookingReceiptPDF(b models.Booking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bukti Booking", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUKTI BOOKING")
	pdf.Ln(12)

	item := safe(b.PackageTitle, "")
	route := safe(b.PackageDestination, "")
	if item == "" {
		item = "Bus " + safe(b.BusNumber, "-")
		route = safe(b.Source, "-") + " -> " + safe(b.VehicleDestination, "-")
	}

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Kode Booking   : #%d", b.BookingID),
		fmt.Sprintf("Nama Pemesan   : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Item           : %s", safe(item, "-")),
		fmt.Sprintf("Tujuan         : %s", safe(route, "-")),
		fmt.Sprintf("Tanggal        : %s", safe(dateOnly(b.TravelDate), "-")),
		fmt.Sprintf("Jumlah Kursi   : %d", b.SeatsBooked),
		fmt.Sprintf("Status         : %s", safe(b.Status, "-")),
		fmt.Sprintf("Total          : %s", formatRupiah(int64(b.TotalAmount))),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Catatan: simpan bukti booking ini dan tunjukkan saat keberangkatan.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOOKING_%d_%s.pdf", b.BookingID, safeFilenamePart(b.CustomerName))
	return buf.Bytes(), filename, nil
}

func buildHotelInvoicePDF(b models.HotelBooking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice Hotel", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE HOTEL")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-HTL-%d", b.BookingID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "No Invoice  : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Tanggal     : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Rincian:")
	pdf.Ln(8)

	desc := fmt.Sprintf("%s, %s (%s s/d %s) %d kamar x %d malam",
		safe(b.HotelName, "-"), safe(b.Location, "-"),
		safe(dateOnly(b.CheckInDate), "-"), safe(dateOnly(b.CheckOutDate), "-"),
		b.NumberOfRooms, b.Nights,
	)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, "1) "+desc, "", "", false)
	pdf.Ln(2)

	pdf.Cell(0, 6, "Status pembayaran: "+safe(b.PaymentStatus, "-"))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total: "+formatRupiah(int64(b.TotalAmount)))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Tunjukkan invoice ini saat check-in.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_HOTEL_%d.pdf", b.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func dateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

func formatRupiah(v int64) string {
	if v <= 0 {
		return "Rp 0"
	}
	s := fmt.Sprintf("%d", v)
	var out []byte
	n := len(s)
	for i := 0; i < n; i++ {
		out = append(out, s[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, '.')
		}
	}
	return "Rp " + string(out)
}
