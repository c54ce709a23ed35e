package handlers

import (
	"encoding/json"
	"net/http"

	"pricelens/config"
	"pricelens/extractor"
	"pricelens/models"
)

// Handlers exposes the extraction engine over JSON. External scraping
// collaborators fetch pages however they like and POST raw text fragments
// here; the engine itself never touches the network beyond this surface.
type Handlers struct {
	cfg      *config.Config
	parser   *extractor.PriceTextParser
	resolver *extractor.DualPriceResolver
	locator  *extractor.FallbackPriceLocator
	titles   *extractor.TitleAttributeExtractor
}

// NewHandlers wires the engine components behind the API.
func NewHandlers(cfg *config.Config) *Handlers {
	parser := extractor.NewPriceTextParserWithCurrency(cfg.HomeCurrency)
	return &Handlers{
		cfg:      cfg,
		parser:   parser,
		resolver: extractor.NewDualPriceResolver(parser),
		locator:  extractor.NewFallbackPriceLocator(parser),
		titles:   extractor.NewTitleAttributeExtractor(),
	}
}

// ParsePrice handles POST /api/v1/prices/parse.
func (h *Handlers) ParsePrice(w http.ResponseWriter, r *http.Request) {
	var req models.ParsePriceRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, models.ParsePriceResponse{
		Price: h.parser.Parse(req.Text),
	})
}

// ResolvePrices handles POST /api/v1/prices/resolve.
func (h *Handlers) ResolvePrices(w http.ResponseWriter, r *http.Request) {
	var req models.ResolvePricesRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	result := h.resolver.Resolve(req.CurrentPriceText, req.RegularPriceText, req.PromoText)
	writeJSON(w, http.StatusOK, models.ResolvePricesResponse{
		Result: result,
		Valid:  extractor.IsValid(result),
	})
}

// LocatePrices handles POST /api/v1/prices/locate: the fallback path for
// pages where structured extraction found nothing. The located candidate
// texts re-enter the same resolver that structured extraction uses.
func (h *Handlers) LocatePrices(w http.ResponseWriter, r *http.Request) {
	var req models.LocatePricesRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if len(req.PageText) > h.cfg.MaxPageTextBytes {
		req.PageText = req.PageText[:h.cfg.MaxPageTextBytes]
	}
	if len(req.PageHTML) > h.cfg.MaxPageTextBytes {
		req.PageHTML = req.PageHTML[:h.cfg.MaxPageTextBytes]
	}

	located := h.locator.Locate(req.PageText, req.PageHTML)
	result := h.resolver.Resolve(located.CurrentPriceText, located.RegularPriceText, "")
	writeJSON(w, http.StatusOK, models.LocatePricesResponse{
		CurrentPriceText: located.CurrentPriceText,
		RegularPriceText: located.RegularPriceText,
		Result:           result,
		Valid:            extractor.IsValid(result),
	})
}

// ExtractTitle handles POST /api/v1/titles/extract.
func (h *Handlers) ExtractTitle(w http.ResponseWriter, r *http.Request) {
	var req models.ExtractTitleRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, models.ExtractTitleResponse{
		Brand: h.titles.ExtractBrand(req.Title),
		Size:  h.titles.ExtractSize(req.Title),
	})
}

// decodeJSON reads a size-capped JSON body into dst, reporting a 400 on
// malformed input.
func (h *Handlers) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.cfg.MaxPageTextBytes)*2)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
