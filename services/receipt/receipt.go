package receipt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"stayhub/database"
	bookingRepo "stayhub/database/repository/booking"
	"stayhub/models"
	"stayhub/services"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
)

const msgNotFound = "Booking not found"

// ReceiptService renders downloadable booking receipts.
type ReceiptService interface {
	Render(ctx context.Context, viewer *models.User, bookingID string) (*Receipt, error)
}

// Receipt is a fully rendered PDF.
type Receipt struct {
	Filename string
	Content  []byte
}

type DefaultReceiptService struct {
	Bookings bookingRepo.BookingRepository
	LogoPath string
	Location *time.Location
	Logger   *zap.Logger
}

// Render loads the booking with its references and renders it. Only the
// guest and the hotel's owner may see a receipt; everyone else gets the same
// not-found answer as for a missing booking.
func (s *DefaultReceiptService) Render(ctx context.Context, viewer *models.User, bookingID string) (*Receipt, error) {
	details, err := s.Bookings.GetDetails(ctx, bookingID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, services.NotFound(msgNotFound)
		}
		return nil, fmt.Errorf("load receipt booking: %w", err)
	}
	if !canView(viewer, details) {
		s.Logger.Warn("receipt access denied",
			zap.String("booking", bookingID),
			zap.String("user", viewer.ID),
		)
		return nil, services.NotFound(msgNotFound)
	}

	content, err := s.renderPDF(details)
	if err != nil {
		return nil, fmt.Errorf("render receipt %s: %w", bookingID, err)
	}
	return &Receipt{
		Filename: fmt.Sprintf("receipt-%s.pdf", details.ID),
		Content:  content,
	}, nil
}

func canView(viewer *models.User, d *models.BookingDetails) bool {
	if viewer == nil {
		return false
	}
	if d.UserID == viewer.ID {
		return true
	}
	return d.Hotel != nil && d.Hotel.OwnerID == viewer.ID
}

func (s *DefaultReceiptService) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s *DefaultReceiptService) renderPDF(d *models.BookingDetails) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	if s.LogoPath != "" {
		if _, err := os.Stat(s.LogoPath); err == nil {
			pdf.ImageOptions(s.LogoPath, 20, 15, 30, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
			pdf.SetY(50)
		}
	}

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Booking Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	var name, email, packageName, hotelName, hotelAddress string
	if d.Guest != nil {
		name, email = d.Guest.Username, d.Guest.Email
	}
	if d.Room != nil {
		packageName = d.Room.PackageName
	}
	if d.Hotel != nil {
		hotelName, hotelAddress = d.Hotel.Name, d.Hotel.Address
	}

	paymentState := "Payment Pending"
	if d.IsPaid {
		paymentState = "Paid"
	}

	rows := [][2]string{
		{"Booking ID", d.ID},
		{"Name", name},
		{"Email", email},
		{"Package", packageName},
		{"Hotel", hotelName},
		{"Address", hotelAddress},
		{"Check-In", d.CheckInDate.In(s.loc()).Format("Mon Jan 2 2006")},
		{"Check-Out", d.CheckOutDate.In(s.loc()).Format("Mon Jan 2 2006")},
		{"Guests", fmt.Sprintf("%d", d.Guests)},
		{"Total Price", fmt.Sprintf("%.2f", d.TotalPrice)},
		{"Status", string(d.Status)},
		{"Payment Method", string(d.PaymentMethod)},
		{"Payment", paymentState},
	}

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(45, 9, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 9, tr(row[1]), "", "L", false)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "Thank you for booking with us.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
