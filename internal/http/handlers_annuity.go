package http

import (
	"net/http"

	"geldplan/internal/annuity"
)

type annuityPaymentRequest struct {
	Principal     float64 `json:"principal"`
	AnnualRatePct float64 `json:"annualRatePct"`
	TermMonths    int     `json:"termMonths"`
}

func (s *Server) handleAnnuityPayment(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req annuityPaymentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Principal < 0 || req.AnnualRatePct < 0 || req.TermMonths < 1 {
		writeError(w, http.StatusUnprocessableEntity, "principal and rate must not be negative, term must be at least 1 month")
		return
	}

	payment := annuity.MonthlyPayment(req.Principal, req.AnnualRatePct, req.TermMonths)
	writeJSON(w, http.StatusOK, map[string]float64{
		"monthlyPayment": payment,
		"totalPaid":      payment * float64(req.TermMonths),
	})
}

type annuityExtraRequest struct {
	Principal     float64 `json:"principal"`
	AnnualRatePct float64 `json:"annualRatePct"`
	TermMonths    int     `json:"termMonths"`
	ExtraPayment  float64 `json:"extraPayment"`
}

func (s *Server) handleAnnuityExtra(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req annuityExtraRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Principal < 0 || req.AnnualRatePct < 0 || req.TermMonths < 1 || req.ExtraPayment < 0 {
		writeError(w, http.StatusUnprocessableEntity, "inputs must not be negative, term must be at least 1 month")
		return
	}

	writeJSON(w, http.StatusOK, annuity.ExtraRepayment(req.Principal, req.AnnualRatePct, req.TermMonths, req.ExtraPayment))
}
