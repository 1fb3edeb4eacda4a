package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/haloiq/tax-api/internal/constants"
	"github.com/haloiq/tax-api/internal/interfaces"
	"github.com/haloiq/tax-api/internal/middleware"
	"github.com/haloiq/tax-api/internal/types/api/requests"
	"github.com/haloiq/tax-api/internal/types/api/responses"
	"github.com/haloiq/tax-api/internal/types/business"
	"github.com/shopspring/decimal"
)

// TaxHandler serves the payroll estimate and tax-type lookup endpoints
type TaxHandler struct {
	service interfaces.PayrollTaxService
	gateway interfaces.ProviderGateway
}

// NewTaxHandler creates a new tax handler
func NewTaxHandler(service interfaces.PayrollTaxService, gateway interfaces.ProviderGateway) *TaxHandler {
	return &TaxHandler{
		service: service,
		gateway: gateway,
	}
}

// CalculateTaxes godoc
// @Summary      Estimate per-period payroll taxes
// @Description  Annualizes the gross amount, computes federal income tax, Social Security and Medicare, and returns per-period amounts rounded to cents
// @Tags         taxes
// @Accept       json
// @Produce      json
// @Param        request  body      requests.CalculateTaxesRequest  true  "Payroll record"
// @Success      200      {object}  responses.TaxResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      413      {object}  responses.ErrorResponse
// @Failure      422      {object}  responses.ErrorResponse
// @Failure      500      {object}  responses.ErrorResponse
// @Router       /api/v1/calculate-taxes [post]
func (h *TaxHandler) CalculateTaxes(c *gin.Context) {
	var req requests.CalculateTaxesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if limit, tooLarge := middleware.IsBodyTooLarge(err); tooLarge {
			sendError(c, http.StatusRequestEntityTooLarge, middleware.BodyTooLargeMessage(limit), err)
			return
		}
		sendError(c, http.StatusBadRequest, validationMessage(err), err)
		return
	}

	if req.GrossAmount.IsNegative() {
		sendError(c, http.StatusBadRequest, "gross_amount: "+constants.NegativeAmount, nil)
		return
	}

	input := business.PayrollTaxInput{
		GrossAmount:  *req.GrossAmount,
		FilingStatus: business.FilingStatus(req.FilingStatus),
		PayPeriod:    business.PayPeriod(req.PayPeriod),
		IncludeNet:   req.IncludeNet,
	}
	if req.TaxYear != nil {
		input.TaxYear = *req.TaxYear
	}

	resp, err := h.service.CalculateTaxes(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	sendSuccess(c, http.StatusOK, resp)
}

// ListTaxYears godoc
// @Summary      List supported tax years
// @Tags         taxes
// @Produce      json
// @Success      200  {object}  responses.TaxYearsResponse
// @Router       /api/v1/tax-years [get]
func (h *TaxHandler) ListTaxYears(c *gin.Context) {
	sendSuccess(c, http.StatusOK, responses.TaxYearsResponse{
		OK:             true,
		TaxYears:       h.service.SupportedTaxYears(),
		DefaultTaxYear: h.service.DefaultTaxYear(),
	})
}

// GetTaxByCode godoc
// @Summary      Look up a tax by type code
// @Description  Queries the external tax-rate provider when configured and falls back to a flat-rate estimate. The X-Tax-Provider header reports which source answered; external bodies are returned verbatim.
// @Tags         taxes
// @Produce      json
// @Param        code             path      string  true   "Tax type code (FIT, SS, MED, state code)"
// @Param        paydate          query     string  false  "Pay date"
// @Param        payperiods       query     int     false  "Pay periods per year"
// @Param        filingstatus     query     string  false  "Provider filing status"
// @Param        earnings         query     number  true   "Earnings for the period"
// @Param        exemptions       query     int     false  "Federal exemptions"  default(0)
// @Param        stateexemptions  query     int     false  "State exemptions"    default(0)
// @Param        zip              query     string  false  "ZIP code"
// @Success      200              {object}  responses.ProviderResult
// @Failure      400              {object}  responses.ErrorResponse
// @Router       /api/tax/{code} [get]
func (h *TaxHandler) GetTaxByCode(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	if code == "" {
		sendError(c, http.StatusBadRequest, "code is required", nil)
		return
	}

	var raw requests.TaxByCodeQuery
	if err := c.ShouldBindQuery(&raw); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidQueryParameter, err)
		return
	}

	query, err := parseProviderQuery(raw)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	result := h.gateway.ResolveTax(c.Request.Context(), code, query)
	c.Header(constants.ProviderHeader, result.Provider)

	if result.Provider == constants.ProviderExternal {
		c.Data(http.StatusOK, "application/json; charset=utf-8", result.Body)
		return
	}

	sendSuccess(c, http.StatusOK, toProviderResponse(result))
}

// parseProviderQuery coerces the query strings into a ProviderQuery
func parseProviderQuery(raw requests.TaxByCodeQuery) (business.ProviderQuery, error) {
	query := business.ProviderQuery{
		PayDate:      strings.TrimSpace(raw.PayDate),
		FilingStatus: strings.TrimSpace(raw.FilingStatus),
		Zip:          strings.TrimSpace(raw.Zip),
	}

	if strings.TrimSpace(raw.Earnings) == "" {
		return query, errors.New("earnings is required")
	}
	earnings, err := decimal.NewFromString(strings.TrimSpace(raw.Earnings))
	if err != nil {
		return query, fmt.Errorf("%s: earnings must be a decimal", constants.InvalidQueryParameter)
	}
	if earnings.IsNegative() {
		return query, fmt.Errorf("earnings: %s", constants.NegativeAmount)
	}
	query.Earnings = earnings

	if query.PayPeriods, err = parseCount("payperiods", raw.PayPeriods); err != nil {
		return query, err
	}
	if query.Exemptions, err = parseCount("exemptions", raw.Exemptions); err != nil {
		return query, err
	}
	if query.StateExemptions, err = parseCount("stateexemptions", raw.StateExemptions); err != nil {
		return query, err
	}
	return query, nil
}

// parseCount parses a non-negative integer, defaulting to 0 when absent
func parseCount(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("%s: %s must be a non-negative integer", constants.InvalidQueryParameter, name)
	}
	return value, nil
}

func toProviderResponse(result *business.ProviderResult) responses.ProviderResult {
	return responses.ProviderResult{
		Provider: result.Provider,
		TaxType:  result.TaxType,
		Rate:     result.Rate.InexactFloat64(),
		Inputs: responses.ProviderInputs{
			PayDate:         result.Query.PayDate,
			PayPeriods:      result.Query.PayPeriods,
			FilingStatus:    result.Query.FilingStatus,
			Earnings:        result.Query.Earnings.InexactFloat64(),
			Exemptions:      result.Query.Exemptions,
			StateExemptions: result.Query.StateExemptions,
			Zip:             result.Query.Zip,
		},
		Gross: result.Gross.InexactFloat64(),
		Tax:   result.Tax.InexactFloat64(),
		Net:   result.Net.InexactFloat64(),
	}
}
