package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/signintech/gopdf"

	"medconnect/internal/diagnosis"
	"medconnect/internal/platform/logger"
)

// Service renders a prediction result as a downloadable PDF summary.
type Service struct {
	log *logger.Logger
}

func NewService(log *logger.Logger) *Service {
	return &Service{log: log.With("service", "report")}
}

// fontPaths are the usual DejaVuSans locations (Alpine and Debian
// images).
var fontPaths = []string{
	"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

// Render builds the PDF for one patient's prediction.
func (s *Service) Render(patient string, p diagnosis.Prediction) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF, is ttf-dejavu installed? last error: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "MedConnect Diagnosis Report")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Patient: %s", patient))
	pdf.Br(25)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Most likely conditions:")
	pdf.Br(18)

	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	for i, r := range p.Results {
		line := fmt.Sprintf("%d. %s: %.2f%% (see: %s)", i+1, r.Disease, r.Probability, r.Doctor)
		lines, _ := pdf.SplitText(line, 500)
		for _, l := range lines {
			pdf.Cell(nil, l)
			pdf.Br(14)
		}
	}
	pdf.Br(10)
	pdf.Cell(nil, fmt.Sprintf("Model accuracy at training time: %.2f%%", p.Accuracy))

	pdf.SetY(800)
	if err := pdf.SetFont("DejaVu", "", 9); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "This is an automated screening aid, not a medical diagnosis. Consult the referred doctor.")

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	s.log.Info("report rendered", "patient", patient, "bytes", buf.Len())
	return buf.Bytes(), nil
}
