package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/costanza-quotes/internal/adapters/http/dto"
	"github.com/jsamuelsen/costanza-quotes/internal/app"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// ListQuotes handles GET /getquotes/
// Returns every stored quote, or an empty array.
//
// @Summary List quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} dto.QuoteResponse
// @Router /getquotes/ [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.service.ListQuotes(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// RandomFrankQuote handles GET /frank/random/
//
// @Summary Random Frank Costanza quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /frank/random/ [get]
func (h *QuoteHandler) RandomFrankQuote(c *gin.Context) {
	q, err := h.service.RandomFrankQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// RandomGeorgeQuote handles GET /george/random/
//
// @Summary Random George Costanza quote
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /george/random/ [get]
func (h *QuoteHandler) RandomGeorgeQuote(c *gin.Context) {
	q, err := h.service.RandomGeorgeQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// RandomQuote handles GET /quote/random/
//
// @Summary Random quote from any character
// @Tags quotes
// @Produce json
// @Success 200 {object} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quote/random/ [get]
func (h *QuoteHandler) RandomQuote(c *gin.Context) {
	q, err := h.service.RandomQuote(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(q))
}

// QuotesByCharacter handles GET /quotes/{character}/
// Matches character names case-insensitively by substring.
//
// @Summary Quotes by character
// @Tags quotes
// @Produce json
// @Param character path string true "Character name fragment"
// @Success 200 {array} dto.QuoteResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quotes/{character}/ [get]
func (h *QuoteHandler) QuotesByCharacter(c *gin.Context) {
	quotes, err := h.service.QuotesByCharacter(c.Request.Context(), c.Param("character"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponses(quotes))
}

// CreateQuote handles POST /createquotes/
//
// @Summary Create a quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Quote"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /createquotes/ [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		respondBindError(c, err)
		return
	}

	q, err := h.service.CreateQuote(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(q))
}

// CreateQuotes handles POST /createquotes/bulk/
// All quotes are stored or none are.
//
// @Summary Create quotes in bulk
// @Tags quotes
// @Accept json
// @Produce json
// @Param quotes body []dto.QuoteRequest true "Quotes"
// @Success 201 {array} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /createquotes/bulk/ [post]
func (h *QuoteHandler) CreateQuotes(c *gin.Context) {
	var reqs []dto.QuoteRequest
	if err := dto.BindAndValidateEach(c, &reqs); err != nil {
		respondBindError(c, err)
		return
	}

	quotes, err := h.service.CreateQuotes(c.Request.Context(), dto.QuoteRequestsToDomain(reqs))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponses(quotes))
}

// respondBindError reports undecodable bodies as BAD_REQUEST and failed
// field rules as VALIDATION_ERROR with per-field details.
func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err).SetType(gin.ErrorTypeBind)

	if errors.Is(err, dto.ErrValidation) {
		resp := dto.NewErrorResponseWithDetails(dto.ErrorCodeValidation, "request validation failed", dto.ValidationErrors(err))
		c.AbortWithStatusJSON(http.StatusBadRequest, resp.WithTraceID(dto.GetTraceID(c)))

		return
	}

	resp := dto.NewErrorResponse(dto.ErrorCodeBadRequest, "request body must be valid JSON")
	c.AbortWithStatusJSON(http.StatusBadRequest, resp.WithTraceID(dto.GetTraceID(c)))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/getquotes/", h.ListQuotes)
	rg.GET("/frank/random/", h.RandomFrankQuote)
	rg.GET("/george/random/", h.RandomGeorgeQuote)
	rg.GET("/quote/random/", h.RandomQuote)
	rg.GET("/quotes/:character/", h.QuotesByCharacter)
	rg.POST("/createquotes/", h.CreateQuote)
	rg.POST("/createquotes/bulk/", h.CreateQuotes)
}
