// Package http provides the HTTP handler layer for the sourcing API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/travel-sourcing/sourcing-assistant/internal/adapter/http/response"
	"github.com/travel-sourcing/sourcing-assistant/internal/domain"
	"github.com/travel-sourcing/sourcing-assistant/internal/share"
	"github.com/travel-sourcing/sourcing-assistant/internal/usecase"
)

// SourcingHandler handles HTTP requests for the agent's sourcing session.
type SourcingHandler struct {
	session  *usecase.Session
	provider string
}

// NewSourcingHandler creates a new SourcingHandler around the given session.
// provider is reported by the health endpoint.
func NewSourcingHandler(session *usecase.Session, provider string) *SourcingHandler {
	return &SourcingHandler{
		session:  session,
		provider: provider,
	}
}

// Search handles POST /api/v1/searches
//
// @Summary Run a sourcing search
// @Description Asks the search collaborator for the best offers per category and replaces the current results
// @Tags searches
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search parameters"
// @Success 200 {object} SwaggerSearchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.SearchFailure "Search failed"
// @Router /api/v1/searches [post]
func (h *SourcingHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.session.Search(c.Request().Context(), ToDomainParams(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	if !result.IsSuccess() {
		return response.SearchFailed(c, result.Reason, result.Generation, result.Metadata)
	}

	return response.SearchResults(c, ToSearchResponse(result))
}

// Latest handles GET /api/v1/searches/latest
//
// @Summary Get the current search results
// @Description Returns the current results sorted and filtered for display
// @Tags searches
// @Produce json
// @Param sortBy query string false "ranking, price or none"
// @Param maxPrice query number false "Maximum net price"
// @Param maxStops query int false "Maximum number of stops"
// @Param recommendation query []string false "Recommendation types to keep" collectionFormat(multi)
// @Success 200 {object} SwaggerSnapshot
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/searches/latest [get]
func (h *SourcingHandler) Latest(c echo.Context) error {
	q, err := ParseLatestQuery(c)
	if err != nil {
		return h.handleValidationError(c, err)
	}

	sortBy, filter := ToDomainFilter(q)
	return response.OK(c, h.session.Latest(sortBy, filter))
}

// PricePreview handles POST /api/v1/pricing/preview
//
// @Summary Preview a price
// @Description Computes the final price and margin for a base price and markup
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body PricingPreviewRequest true "Base price and markup"
// @Success 200 {object} SwaggerPriceQuote
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/pricing/preview [post]
func (h *SourcingHandler) PricePreview(c echo.Context) error {
	var req PricingPreviewRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	defType, defValue := h.defaultMarkup()
	markupType, markupValue := ResolveMarkup(req.MarkupDTO, defType, defValue)
	return response.OK(c, h.session.PricePreview(req.BasePrice, markupType, markupValue))
}

// GetPackage handles GET /api/v1/package
//
// @Summary Get the quote
// @Tags package
// @Produce json
// @Success 200 {object} PackageResponseDTO
// @Router /api/v1/package [get]
func (h *SourcingHandler) GetPackage(c echo.Context) error {
	return response.OK(c, ToPackageResponse(h.session.Package()))
}

// AddPackageItem handles POST /api/v1/package/items
//
// @Summary Add an offer to the quote
// @Description Prices an offer from the current results and appends it to the quote
// @Tags package
// @Accept json
// @Produce json
// @Param request body AddItemRequest true "Offer and markup"
// @Success 201 {object} domain.PackageItem
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Offer not in current results"
// @Router /api/v1/package/items [post]
func (h *SourcingHandler) AddPackageItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	defType, defValue := h.defaultMarkup()
	item, err := h.session.AddItem(ToItemRequest(&req, defType, defValue))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, item)
}

// RemovePackageItem handles DELETE /api/v1/package/items/:id
//
// @Summary Remove a quote item
// @Description Removing an unknown id is a no-op
// @Tags package
// @Param id path string true "Item id"
// @Success 204
// @Router /api/v1/package/items/{id} [delete]
func (h *SourcingHandler) RemovePackageItem(c echo.Context) error {
	h.session.RemoveItem(c.Param("id"))
	return response.NoContent(c)
}

// SharePackage handles GET /api/v1/package/share
//
// @Summary Build the WhatsApp proposal for the quote
// @Tags share
// @Produce json
// @Success 200 {object} ShareResponseDTO
// @Router /api/v1/package/share [get]
func (h *SourcingHandler) SharePackage(c echo.Context) error {
	snap := h.session.Package()
	return response.OK(c, ToShareResponse(share.PackageProposal(snap.Items, snap.Total)))
}

// ShareOffer handles GET /api/v1/offers/:id/share
//
// @Summary Build the WhatsApp quote for a flight
// @Tags share
// @Produce json
// @Param id path string true "Offer id"
// @Param markupType query string false "percent or fixed"
// @Param markupValue query number false "Markup value"
// @Success 200 {object} ShareResponseDTO
// @Failure 400 {object} response.ErrorDetail "Offer is not a flight"
// @Failure 404 {object} response.ErrorDetail "Offer not in current results"
// @Router /api/v1/offers/{id}/share [get]
func (h *SourcingHandler) ShareOffer(c echo.Context) error {
	offer, ok := h.session.Offer(c.Param("id"))
	if !ok {
		return h.handleError(c, domain.ErrOfferNotFound)
	}
	if !offer.IsFlight() {
		return h.handleError(c, domain.ErrNotAFlight)
	}

	defType, defValue := h.defaultMarkup()
	markupType, markupValue := ResolveMarkup(ParseShareMarkup(c), defType, defValue)
	quote := h.session.PricePreview(offer.Price, markupType, markupValue)
	return response.OK(c, ToShareResponse(share.FlightQuote(offer, quote.FinalPrice)))
}

// ListOpportunities handles GET /api/v1/opportunities
//
// @Summary List saved flight opportunities
// @Tags opportunities
// @Produce json
// @Success 200 {object} OpportunitiesResponseDTO
// @Router /api/v1/opportunities [get]
func (h *SourcingHandler) ListOpportunities(c echo.Context) error {
	return response.OK(c, ToOpportunitiesResponse(h.session.Opportunities()))
}

// SaveOpportunity handles POST /api/v1/opportunities
//
// @Summary Save a flight opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Param request body OpportunityRequest true "Flight and markup"
// @Success 201 {object} domain.Opportunity
// @Failure 400 {object} response.ErrorDetail "Validation error or not a flight"
// @Failure 404 {object} response.ErrorDetail "Offer not in current results"
// @Router /api/v1/opportunities [post]
func (h *SourcingHandler) SaveOpportunity(c echo.Context) error {
	var req OpportunityRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	defType, defValue := h.defaultMarkup()
	opp, err := h.session.SaveOpportunity(ToOpportunityRequest(&req, defType, defValue))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.Created(c, opp)
}

// RemoveOpportunity handles DELETE /api/v1/opportunities/:id
//
// @Summary Remove a saved opportunity
// @Tags opportunities
// @Param id path string true "Opportunity id"
// @Success 204
// @Router /api/v1/opportunities/{id} [delete]
func (h *SourcingHandler) RemoveOpportunity(c echo.Context) error {
	h.session.RemoveOpportunity(c.Param("id"))
	return response.NoContent(c)
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *SourcingHandler) Health(c echo.Context) error {
	return response.Health(c, h.provider)
}

func (h *SourcingHandler) defaultMarkup() (domain.MarkupType, decimal.NullDecimal) {
	return h.session.DefaultMarkup()
}

// handleValidationError converts request validation errors to HTTP responses.
func (h *SourcingHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to HTTP responses.
func (h *SourcingHandler) handleError(c echo.Context, err error) error {
	var fieldErr *domain.ValidationError
	switch {
	case errors.As(err, &fieldErr):
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	case domain.IsOfferNotFound(err):
		return response.NotFound(c, response.MsgOfferNotFound)
	case errors.Is(err, domain.ErrNotAFlight):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsInvalidRequest(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	case errors.Is(err, domain.ErrProviderUnavailable):
		return response.ServiceUnavailable(c)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, domain.ErrProviderTimeout):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	default:
		return response.InternalServerError(c)
	}
}
