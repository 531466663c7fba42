package http

import (
	"log/slog"
	"net/http"
	"time"

	"geldplan/internal/core"
	"geldplan/internal/debt"
)

type debtsResponse struct {
	Debts     []core.DebtItem       `json:"debts"`
	Portfolio debt.PortfolioSummary `json:"portfolio"`
}

func (s *Server) handleDebts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		debts, err := s.datasets.Debts(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Debt load error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load debts")
			return
		}
		writeJSON(w, http.StatusOK, debtsResponse{Debts: debts, Portfolio: debt.Portfolio(debts)})
	case http.MethodPut:
		var req struct {
			Debts []core.DebtItem `json:"debts"`
		}
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.datasets.SaveDebts(r.Context(), req.Debts); err != nil {
			slog.WarnContext(r.Context(), "Debt save rejected", "error", err)
			writeError(w, validationStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, debtsResponse{Debts: req.Debts, Portfolio: debt.Portfolio(req.Debts)})
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type simulateRequest struct {
	// Debts overrides the stored portfolio when present.
	Debts         []core.DebtItem `json:"debts,omitempty"`
	MonthlyBudget float64         `json:"monthlyBudget"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req simulateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MonthlyBudget < 0 {
		writeError(w, http.StatusUnprocessableEntity, "monthly budget must not be negative")
		return
	}

	debts := req.Debts
	if debts == nil {
		var err error
		debts, err = s.datasets.Debts(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Debt load error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load debts")
			return
		}
	} else if err := core.ValidateDebts(debts); err != nil {
		writeError(w, validationStatus(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, debt.Simulate(debts, req.MonthlyBudget, time.Now()))
}

type settlementRequest struct {
	TotalDebt     *float64 `json:"totalDebt,omitempty"`
	MonthlyBudget float64  `json:"monthlyBudget"`
	HorizonMonths int      `json:"horizonMonths,omitempty"`
}

func (s *Server) handleSettlement(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req settlementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MonthlyBudget < 0 {
		writeError(w, http.StatusUnprocessableEntity, "monthly budget must not be negative")
		return
	}

	total := 0.0
	if req.TotalDebt != nil {
		total = *req.TotalDebt
	} else {
		debts, err := s.datasets.Debts(r.Context())
		if err != nil {
			slog.ErrorContext(r.Context(), "Debt load error", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load debts")
			return
		}
		total = debt.Portfolio(debts).TotalDebt
	}

	horizon := req.HorizonMonths
	if horizon == 0 {
		horizon = debt.DefaultSettlementHorizon
	}
	if horizon < 0 {
		writeError(w, http.StatusUnprocessableEntity, "horizon must not be negative")
		return
	}

	writeJSON(w, http.StatusOK, debt.EstimateSettlement(total, req.MonthlyBudget, horizon))
}
