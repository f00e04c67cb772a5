package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"printer-agent/internal/core/logger"
	labeldomain "printer-agent/internal/features/labels/domain"
	"printer-agent/internal/features/printing/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PrintHandler handles manual reprint requests and serves rendered labels.
type PrintHandler struct {
	service   *service.PrintService
	outputDir string
}

// NewPrintHandler creates a PrintHandler serving artifacts from outputDir.
func NewPrintHandler(s *service.PrintService, outputDir string) *PrintHandler {
	return &PrintHandler{
		service:   s,
		outputDir: outputDir,
	}
}

// PrintLabel triggers an on-demand render and dispatch outside the poll cycle.
// @Summary Reprint a label
// @Description Renders and dispatches a label for the posted order immediately.
// @Accept json
// @Produce json
// @Param order body labeldomain.Order true "Order payload"
// @Success 200 {object} PrintResponse
// @Failure 400 {object} PrintResponse
// @Router /print-label [post]
func (h *PrintHandler) PrintLabel(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	var order labeldomain.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(http.StatusBadRequest).JSON(PrintResponse{
			Success: false,
			Error:   "invalid order payload: " + err.Error(),
			RayID:   rayID,
		})
	}

	if order.ID <= 0 {
		return c.Status(http.StatusBadRequest).JSON(PrintResponse{
			Success: false,
			Error:   "order id is required",
			RayID:   rayID,
		})
	}

	artifact, outcome, err := h.service.Process(c.UserContext(), order)
	if err != nil {
		logger.Get().Error("Manual reprint failed",
			zap.Int("order_id", order.ID),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(PrintResponse{
			Success: false,
			Error:   err.Error(),
			RayID:   rayID,
		})
	}

	msg := "label opened for manual printing"
	if outcome.AutoPrinted {
		msg = "label sent to printer"
	}

	return c.Status(http.StatusOK).JSON(PrintResponse{
		Success:  true,
		Message:  msg,
		Filename: artifact.Filename,
		Strategy: string(outcome.Strategy),
		RayID:    rayID,
	})
}

// GetLabel serves a previously rendered artifact by basename.
// @Summary Fetch a rendered label
// @Description Serves a rendered label document from the output directory.
// @Produce html
// @Param filename path string true "Label filename"
// @Success 200 {string} string "label HTML"
// @Failure 404 {object} PrintResponse
// @Router /labels/{filename} [get]
func (h *PrintHandler) GetLabel(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	name := c.Params("filename")

	// Basename-only lookup: no traversal out of the output directory.
	if name == "" || name != filepath.Base(name) || !strings.HasSuffix(name, ".html") {
		return c.Status(http.StatusNotFound).JSON(PrintResponse{
			Success: false,
			Error:   "label not found",
			RayID:   rayID,
		})
	}

	path := filepath.Join(h.outputDir, name)
	if _, err := os.Stat(path); err != nil {
		return c.Status(http.StatusNotFound).JSON(PrintResponse{
			Success: false,
			Error:   "label not found",
			RayID:   rayID,
		})
	}

	return c.SendFile(path)
}

// PrintResponse is the structured reply for reprint and label requests.
type PrintResponse struct {
	// Success reports whether the request was handled.
	Success bool `json:"success"`
	// Message describes the dispatch result on success.
	Message string `json:"message,omitempty"`
	// Error carries the failure description.
	Error string `json:"error,omitempty"`
	// Filename is the rendered artifact basename.
	Filename string `json:"filename,omitempty"`
	// Strategy is the dispatch chain leg that handled the label.
	Strategy string `json:"strategy,omitempty"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
