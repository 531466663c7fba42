package http

import (
	"log/slog"
	"net/http"
	"time"

	"geldplan/internal/budget"
	"geldplan/internal/core"
)

func (s *Server) handleOutlook(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period := periodParam(r)
	out, err := s.planner.Outlook(r.Context(), period, time.Now())
	if err != nil {
		slog.ErrorContext(r.Context(), "Outlook error", "error", err, "period", period)
		writeError(w, validationStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type budgetResponse struct {
	Period      string             `json:"period"`
	HasOverride bool               `json:"hasOverride"`
	Groups      []core.BudgetGroup `json:"groups"`
}

func (s *Server) handleBudgetResolve(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period := periodParam(r)
	groups, err := s.datasets.ResolveBudget(period)
	if err != nil {
		writeError(w, validationStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, budgetResponse{
		Period:      period,
		HasOverride: s.datasets.HasOverride(period),
		Groups:      groups,
	})
}

type commitRequest struct {
	Period string             `json:"period"`
	Groups []core.BudgetGroup `json:"groups"`
}

func (s *Server) handleBudgetCommit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req commitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.datasets.CommitBudget(r.Context(), req.Period, req.Groups); err != nil {
		slog.WarnContext(r.Context(), "Budget commit rejected", "error", err, "period", req.Period)
		writeError(w, validationStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, budgetResponse{
		Period:      req.Period,
		HasOverride: true,
		Groups:      req.Groups,
	})
}

type templateRequest struct {
	Groups []core.BudgetGroup `json:"groups"`
}

func (s *Server) handleBudgetTemplate(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, templateRequest{Groups: s.datasets.Template()})
	case http.MethodPut:
		var req templateRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := s.datasets.EditTemplate(r.Context(), req.Groups); err != nil {
			slog.WarnContext(r.Context(), "Template edit rejected", "error", err)
			writeError(w, validationStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, templateRequest{Groups: req.Groups})
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

type totalsResponse struct {
	Period      string         `json:"period"`
	Summary     budget.Summary `json:"summary"`
	SavingsRate float64        `json:"savingsRate"`
}

func (s *Server) handleBudgetTotals(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	period := periodParam(r)
	groups, err := s.datasets.ResolveBudget(period)
	if err != nil {
		writeError(w, validationStatus(err), err.Error())
		return
	}
	summary := budget.Totals(groups)
	writeJSON(w, http.StatusOK, totalsResponse{
		Period:      period,
		Summary:     summary,
		SavingsRate: budget.SavingsRate(summary),
	})
}

type resetRequest struct {
	Period string `json:"period"`
}

func (s *Server) handleBudgetReset(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req resetRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.datasets.ResetPeriod(r.Context(), req.Period); err != nil {
		writeError(w, validationStatus(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"period": req.Period, "status": "reset"})
}
