// Package http provides the HTTP handler layer for the sourcing API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// SearchRequest represents the request body for a sourcing search.
type SearchRequest struct {
	// Destination is the free-text destination (e.g., "Recife")
	Destination string `json:"destination" example:"Recife"`

	// Origin is the optional departure location (e.g., "GRU")
	Origin string `json:"origin,omitempty" example:"GRU"`

	// StartDate and EndDate are in YYYY-MM-DD format; an empty StartDate defaults to today+3
	StartDate string `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-06-10"`
	EndDate   string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-06-15"`

	// Passengers is the number of travellers (default: 1)
	Passengers int `json:"passengers,omitempty" validate:"gte=0,lte=99" example:"2"`

	// Categories is the set of service categories to source (default: FLIGHT, HOTEL)
	Categories []string `json:"categories,omitempty" validate:"omitempty,dive,oneof=FLIGHT HOTEL TRANSFER EXPERIENCE" example:"FLIGHT,HOTEL"`

	// TravelCategory is the service tier: ECONOMIC, STANDARD or LUXURY
	TravelCategory string `json:"travelCategory,omitempty" validate:"omitempty,oneof=ECONOMIC STANDARD LUXURY" example:"STANDARD"`
}

// MarkupDTO carries a pricing decision. Omitting both fields applies the session default.
type MarkupDTO struct {
	// MarkupType is "percent" or "fixed"; anything else is applied as fixed
	MarkupType string `json:"markupType,omitempty" example:"percent"`

	// MarkupValue is a number or numeric string; a non-numeric value means zero markup
	MarkupValue json.RawMessage `json:"markupValue,omitempty" swaggertype:"number" example:"15"`
}

// PricingPreviewRequest represents the request body for a price preview.
type PricingPreviewRequest struct {
	BasePrice decimal.Decimal `json:"basePrice" validate:"gte=0" swaggertype:"number" example:"1000"`
	MarkupDTO
}

// AddItemRequest represents the request body for adding an offer to the package.
type AddItemRequest struct {
	OfferID string `json:"offerId" validate:"required" example:"f1"`
	MarkupDTO

	InternalNotes     string `json:"internalNotes,omitempty" validate:"max=2000"`
	CustomTitle       string `json:"customTitle,omitempty" validate:"max=200"`
	CustomDescription string `json:"customDescription,omitempty" validate:"max=2000"`
}

// OpportunityRequest represents the request body for saving a flight opportunity.
type OpportunityRequest struct {
	OfferID string `json:"offerId" validate:"required" example:"f1"`
	MarkupDTO

	InternalNotes string `json:"internalNotes,omitempty" validate:"max=2000"`
}

// LatestQuery holds the display options for the latest search results.
type LatestQuery struct {
	SortBy          string   `json:"sortBy" validate:"omitempty,oneof=ranking price none"`
	MaxPrice        *float64 `json:"maxPrice" validate:"omitempty,gte=0"`
	MaxStops        *int     `json:"maxStops" validate:"omitempty,gte=0"`
	Recommendations []string `json:"recommendation" validate:"omitempty,dive,oneof=VALUE CHEAPEST FASTEST PREMIUM NONE"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Field + " " + v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// validateStruct runs the struct tags of s and collects failures per field.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := &ValidationErrors{}
	for _, fe := range fieldErrs {
		errs.Add(fieldPath(fe), validationMessage(fe))
	}
	return errs
}

// fieldPath drops the root struct name from the namespace ("SearchRequest.categories[0]").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	}
	return "is invalid"
}

// Validate validates the search request shape.
// Cross-field rules (date order, required destination) are checked by the domain.
func (r *SearchRequest) Validate() error {
	r.TravelCategory = strings.ToUpper(strings.TrimSpace(r.TravelCategory))
	for i, c := range r.Categories {
		r.Categories[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	return validateStruct(r)
}

// Validate validates the price preview request.
func (r *PricingPreviewRequest) Validate() error {
	return validateStruct(r)
}

// Validate validates the add-item request.
func (r *AddItemRequest) Validate() error {
	r.OfferID = strings.TrimSpace(r.OfferID)
	return validateStruct(r)
}

// Validate validates the opportunity request.
func (r *OpportunityRequest) Validate() error {
	r.OfferID = strings.TrimSpace(r.OfferID)
	return validateStruct(r)
}

// ParseLatestQuery reads the display options from the query string.
// Numeric parameters that do not parse are reported as validation errors.
func ParseLatestQuery(c echo.Context) (*LatestQuery, error) {
	q := &LatestQuery{SortBy: strings.ToLower(strings.TrimSpace(c.QueryParam("sortBy")))}
	errs := &ValidationErrors{}

	if raw := strings.TrimSpace(c.QueryParam("maxPrice")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs.Add("maxPrice", "must be numeric")
		} else {
			q.MaxPrice = &v
		}
	}

	if raw := strings.TrimSpace(c.QueryParam("maxStops")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			errs.Add("maxStops", "must be an integer")
		} else {
			q.MaxStops = &v
		}
	}

	for _, raw := range c.QueryParams()["recommendation"] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.ToUpper(strings.TrimSpace(part)); part != "" {
				q.Recommendations = append(q.Recommendations, part)
			}
		}
	}

	if errs.HasErrors() {
		return nil, errs
	}
	if err := validateStruct(q); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseShareMarkup reads markupType and markupValue from the query string.
// A missing markupValue leaves Value empty so the session default applies.
func ParseShareMarkup(c echo.Context) MarkupDTO {
	m := MarkupDTO{MarkupType: c.QueryParam("markupType")}
	if raw, ok := c.QueryParams()["markupValue"]; ok && len(raw) > 0 {
		// Re-encode as a JSON string so it goes through the same parser as bodies
		b, _ := json.Marshal(raw[0])
		m.MarkupValue = b
	}
	return m
}
