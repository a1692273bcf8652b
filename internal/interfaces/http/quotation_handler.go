package http

import (
	"mime"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/billing"
	"github.com/jhoicas/Cotizador-api/internal/application/dto"
	"github.com/jhoicas/Cotizador-api/internal/domain/quotation"
)

// RegisterFilename nombre del registro de cotizaciones descargado.
const RegisterFilename = "quotations.xlsx"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// QuotationHandler cotizaciones: CRUD, vista previa, validación, PDF y registro.
type QuotationHandler struct {
	uc  *billing.QuotationUseCase
	pdf *billing.PDFUseCase
}

// NewQuotationHandler construye el handler.
func NewQuotationHandler(uc *billing.QuotationUseCase, pdf *billing.PDFUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc, pdf: pdf}
}

// List godoc
// @Summary      Listar cotizaciones
// @Tags         quotations
// @Produce      json
// @Security     BearerAuth
// @Param        after_mutation  query  bool  false  "releer con reintento acotado tras una escritura"
// @Success      200  {array}   entity.Quotation
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/quotations [get]
func (h *QuotationHandler) List(c *fiber.Ctx) error {
	ctx := requestContext(c)
	var err error
	var list any
	if c.Query("after_mutation") == "true" {
		list, err = h.uc.ListAfterMutation(ctx)
	} else {
		list, err = h.uc.List(ctx)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetByID GET /api/quotations/:id
func (h *QuotationHandler) GetByID(c *fiber.Ctx) error {
	q, err := h.uc.Get(requestContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(q)
}

// Create godoc
// @Summary      Crear cotización
// @Description  Valida el borrador, resuelve el cliente y estampa los totales antes de enviarlo al store.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  quotation.Draft  true  "borrador"
// @Success      201   {object}  entity.Quotation
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quotations [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	var d quotation.Draft
	if err := c.BodyParser(&d); err != nil {
		return invalidBody(c)
	}
	q, err := h.uc.Create(requestContext(c), d)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}

// Update PUT /api/quotations/:id
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	var d quotation.Draft
	if err := c.BodyParser(&d); err != nil {
		return invalidBody(c)
	}
	q, err := h.uc.Update(requestContext(c), c.Params("id"), d)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(q)
}

// Delete DELETE /api/quotations/:id
func (h *QuotationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(requestContext(c), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Preview godoc
// @Summary      Totales en vivo del borrador
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  quotation.Draft  true  "borrador"
// @Success      200   {object}  dto.PreviewResponse
// @Router       /api/quotations/preview [post]
func (h *QuotationHandler) Preview(c *fiber.Ctx) error {
	var d quotation.Draft
	if err := c.BodyParser(&d); err != nil {
		return invalidBody(c)
	}
	return c.JSON(dto.NewPreviewResponse(h.uc.Preview(d)))
}

// Validate POST /api/quotations/validate
func (h *QuotationHandler) Validate(c *fiber.Ctx) error {
	var d quotation.Draft
	if err := c.BodyParser(&d); err != nil {
		return invalidBody(c)
	}
	errs := h.uc.Validate(d)
	return c.JSON(dto.ValidateResponse{Valid: errs.OK(), Fields: errs})
}

// EditItems POST /api/quotations/items
func (h *QuotationHandler) EditItems(c *fiber.Ctx) error {
	var in dto.ItemEditRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	d, err := h.uc.EditItems(in.Draft, in.Op, in.Index, in.Field, in.Value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ItemEditResponse{Draft: d, Preview: dto.NewPreviewResponse(h.uc.Preview(d))})
}

// PDF godoc
// @Summary      Descargar PDF de la cotización
// @Tags         quotations
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "id de la cotización"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/quotations/{id}/pdf [get]
func (h *QuotationHandler) PDF(c *fiber.Ctx) error {
	data, filename, err := h.pdf.DownloadQuotationPDF(requestContext(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, "application/pdf", filename, data)
}

// Register GET /api/quotations/register.xlsx
func (h *QuotationHandler) Register(c *fiber.Ctx) error {
	data, err := h.uc.Register(requestContext(c))
	if err != nil {
		return writeError(c, err)
	}
	return sendAttachment(c, xlsxContentType, RegisterFilename, data)
}

func sendAttachment(c *fiber.Ctx, contentType, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	return c.Send(data)
}
