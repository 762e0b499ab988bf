package booking

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"chefreel/models"
	"chefreel/utils"
)

const ConfettiDuration = 3 * time.Second

var refPattern = regexp.MustCompile(`^#CHF[0-9A-Z]{6}$`)

type NextStep struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Action struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

var nextSteps = []NextStep{
	{"Chef Confirmation", "Your chef will confirm availability within 2-4 hours"},
	{"Menu Planning", "Discuss menu preferences and dietary requirements"},
	{"Enjoy Your Experience", "Relax and enjoy your personalized culinary experience"},
}

// SuccessView is the confirmation screen. The reference is random and is
// not linked to any stored booking.
type SuccessView struct {
	Chef       models.ChefSummary `json:"chef"`
	Message    string             `json:"message"`
	Reference  string             `json:"reference"`
	ConfettiMs int64              `json:"confettiMs"`
	NextSteps  []NextStep         `json:"nextSteps"`
	Actions    []Action           `json:"actions"`
	QRCode     string             `json:"qrCode"`
	Receipt    string             `json:"receipt"`
}

// GET /booking-success?chef=<id>
func (h *Handler) GetSuccessPage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	chefID := r.URL.Query().Get("chef")
	if chefID == "" {
		utils.RespondWithError(w, http.StatusNotFound, "Chef not found")
		return
	}
	chef, ok := h.loadChef(w, r, chefID)
	if !ok {
		return
	}

	ref := utils.GenerateReference()
	q := url.Values{"ref": {ref}}
	utils.RespondWithJSON(w, http.StatusOK, SuccessView{
		Chef:       chef.Summary(),
		Message:    "Your chef booking has been successfully submitted. You'll receive a confirmation email shortly.",
		Reference:  ref,
		ConfettiMs: ConfettiDuration.Milliseconds(),
		NextSteps:  nextSteps,
		Actions: []Action{
			{Label: "View My Bookings", Href: "/bookings"},
			{Label: "Back to Feed", Href: "/"},
		},
		QRCode:  "/booking-success/qr?" + q.Encode(),
		Receipt: "/booking-success/receipt?" + url.Values{"chef": {chef.ID}, "ref": {ref}}.Encode(),
	})
}

// GET /booking-success/qr?ref=
func (h *Handler) GetReferenceQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ref := r.URL.Query().Get("ref")
	if !refPattern.MatchString(ref) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking reference")
		return
	}
	png, err := qrcode.Encode(ref, qrcode.Medium, 256)
	if err != nil {
		h.logger.Error("encode qr", zap.Error(err))
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// GET /booking-success/receipt?chef=&ref=
func (h *Handler) GetReceipt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ref := r.URL.Query().Get("ref")
	if !refPattern.MatchString(ref) {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid booking reference")
		return
	}
	chef, ok := h.loadChef(w, r, r.URL.Query().Get("chef"))
	if !ok {
		return
	}

	pdf, err := renderReceipt(chef, ref)
	if err != nil {
		h.logger.Error("render receipt", zap.String("ref", ref), zap.Error(err))
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+ref[1:]+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

func renderReceipt(chef models.Chef, ref string) ([]byte, error) {
	qrPNG, err := qrcode.Encode(ref, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("qr: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmed")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Reference: %s", ref))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Chef: %s (%s)", chef.Name, chef.Cuisine))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Location: %s", chef.Location))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, "What's Next?")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for i, step := range nextSteps {
		pdf.Cell(0, 8, fmt.Sprintf("%d. %s: %s", i+1, step.Title, step.Description))
		pdf.Ln(7)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 20, 40, 40, false, imageOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
