package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AnthonyMuncherz/barakahbot/internal/barakah/zakat"
	"github.com/AnthonyMuncherz/barakahbot/pkg/httpx"
)

type CalculateRequest struct {
	// Jurisdiction selects the published nisab thresholds to apply.
	Jurisdiction string `json:"jurisdiction" example:"Selangor"`
	// Assets maps asset labels to declared values. Values arrive as strings
	// straight from form fields; anything non-numeric or negative counts
	// as zero.
	Assets map[string]string `json:"assets"`
}

type CalculateResponse struct {
	Jurisdiction string          `json:"jurisdiction"`
	Total        float64         `json:"total"`
	Nisab        float64         `json:"nisab"`
	Payable      float64         `json:"payable"`
	Threshold    zakat.Threshold `json:"threshold"`
}

// ZakatHandler serves the jurisdiction table and the calculator.
type ZakatHandler struct{}

// HandleJurisdictions handles GET /v1/zakat/jurisdictions
//
//	@Summary		List jurisdictions
//	@Description	Returns the published nisab thresholds for every supported state and federal territory, sorted by name.
//	@Tags			Zakat
//	@Produce		json
//	@Success		200	{array}	zakat.Jurisdiction	"Jurisdictions with thresholds"
//	@Router			/v1/zakat/jurisdictions [get].
func (h *ZakatHandler) HandleJurisdictions(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, zakat.Jurisdictions())
}

// HandleCalculate handles POST /v1/zakat/calculate
//
//	@Summary		Calculate Zakat
//	@Description	Computes payable Zakat for the declared assets under the selected jurisdiction's nisab.
//	@Description	Asset values that are not valid non-negative numbers are treated as zero.
//	@Tags			Zakat
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CalculateRequest	true	"Jurisdiction and declared assets"
//	@Success		200		{object}	CalculateResponse	"Calculation result"
//	@Failure		400		{object}	map[string]string	"Malformed body"
//	@Failure		422		{object}	map[string]string	"Unknown jurisdiction"
//	@Router			/v1/zakat/calculate [post].
func (h *ZakatHandler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid_request", "malformed JSON body")
		return
	}

	jurisdiction, err := zakat.ResolveJurisdiction(req.Jurisdiction)
	if errors.Is(err, zakat.ErrUnknownJurisdiction) {
		httpx.WriteError(w, http.StatusUnprocessableEntity, "unknown_jurisdiction",
			"no published nisab for the given jurisdiction")
		return
	}

	assets := make(zakat.AssetDeclaration, len(req.Assets))
	for label, raw := range req.Assets {
		assets[label] = zakat.SanitizeAmount(raw)
	}

	result := zakat.Calculate(assets, jurisdiction.Threshold)
	httpx.WriteJSON(w, http.StatusOK, CalculateResponse{
		Jurisdiction: jurisdiction.Name,
		Total:        result.Total,
		Nisab:        result.Nisab,
		Payable:      result.Payable,
		Threshold:    jurisdiction.Threshold,
	})
}
