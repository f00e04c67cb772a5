package service

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"printer-agent/internal/core/logger"
	"printer-agent/internal/features/labels/domain"

	"go.uber.org/zap"
)

// placeholder replaces absent optional text fields on the label.
const placeholder = "-"

// RenderService maps an order to a finished label document on disk. It is
// deterministic for a given order apart from the timestamped filename, and
// never fails because of a missing asset or a code-generation error: those
// degrade to absent images.
type RenderService struct {
	outputDir string
	assets    *AssetLoader
	tmpl      *template.Template
	logger    *zap.Logger
}

// NewRenderService creates a RenderService writing artifacts to outputDir
// and loading label images from assetDir.
func NewRenderService(outputDir, assetDir string) (*RenderService, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	tmpl, err := template.New("label").Parse(labelTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing label template: %w", err)
	}

	return &RenderService{
		outputDir: outputDir,
		assets:    NewAssetLoader(assetDir),
		tmpl:      tmpl,
		logger:    logger.Named("renderer"),
	}, nil
}

// Render produces the artifact for one order and persists it under the
// output directory with an id+timestamp filename, unique across reprints.
func (s *RenderService) Render(order domain.Order) (*domain.Artifact, error) {
	data := s.buildLabelData(order)

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering label for order %d: %w", order.ID, err)
	}

	now := time.Now()
	filename := fmt.Sprintf("order-%d-%d.html", order.ID, now.UnixMilli())
	path := filepath.Join(s.outputDir, filename)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing label for order %d: %w", order.ID, err)
	}

	s.logger.Info("Label rendered",
		zap.Int("order_id", order.ID),
		zap.String("file", filename),
	)

	return &domain.Artifact{
		OrderID:   order.ID,
		Filename:  filename,
		Path:      path,
		HTML:      buf.String(),
		CreatedAt: now,
	}, nil
}

// buildLabelData assembles the template input. Visual-code failures are
// logged and leave the image slot empty; the rest of the label still renders.
func (s *RenderService) buildLabelData(order domain.Order) labelData {
	checked, unchecked, err := checkboxGlyphs()
	if err != nil {
		s.logger.Warn("Checkbox glyphs unavailable", zap.Int("order_id", order.ID), zap.Error(err))
	}

	data := labelData{
		Name:          orDash(order.Name),
		Phone:         orDash(order.Phone),
		Address:       orDash(order.Address),
		Area:          orDash(order.Area),
		Postcode:      orDash(order.Postcode),
		Date:          orDash(order.Date),
		TimeLabel:     orDash(order.TimeLabel),
		Note:          order.Note,
		HasNote:       strings.TrimSpace(order.Note) != "",
		AmountText:    order.FormattedAmount(),
		PackageNumber: orDash(order.PackageNumber),
		CodeText:      order.CodePayload(),
		Logo:          s.assets.Image(AssetLogo),
	}

	// One glyph pair for every boolean field on the label.
	box := func(on bool) (u template.URL) {
		if on {
			return checked
		}
		return unchecked
	}

	data.PaidBox = box(order.Payment.IsPaid())
	data.UnpaidBox = box(order.Payment.IsUnpaid())

	pickup := order.DeliveryMethodOrDefault() == domain.DeliveryMethodPickup
	data.PickupBox = box(pickup)
	data.DeliveryBox = box(!pickup)
	if pickup {
		data.MethodIcon = s.assets.Image(AssetIconPickup)
	} else {
		data.MethodIcon = s.assets.Image(AssetIconDelivery)
	}

	data.SlotMorningBox = box(order.Slot == domain.TimeSlotMorning)
	data.SlotAfternoonBox = box(order.Slot == domain.TimeSlotAfternoon)
	data.SlotNightBox = box(order.Slot == domain.TimeSlotNight)
	if order.Slot != "" && !order.Slot.Recognized() {
		data.SlotOther = string(order.Slot)
	}

	for i, item := range order.Items {
		row := itemRow{
			Index:    i + 1,
			Name:     item.Name,
			Quantity: placeholder,
			Checked:  item.Checked,
		}
		if item.Quantity > 0 {
			row.Quantity = strconv.Itoa(item.Quantity)
		}
		if item.Checked {
			row.CheckBox = checked
		}
		data.Items = append(data.Items, row)
	}

	if qr, err := locationCode(order.MapsQuery()); err != nil {
		s.logger.Warn("Location code skipped", zap.Int("order_id", order.ID), zap.Error(err))
	} else {
		data.LocationQR = qr
	}

	if bar, err := orderCode(order.CodePayload()); err != nil {
		s.logger.Warn("Order code skipped", zap.Int("order_id", order.ID), zap.Error(err))
	} else {
		data.OrderBarcode = bar
	}

	return data
}

// orDash substitutes the placeholder dash for blank optional fields.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
