package http

import (
	"net/http"

	"geldplan/internal/calc"
)

func (s *Server) handleCalcZZP(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req calc.SelfEmployedInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.HourlyRate < 0 || req.HoursPerYear < 0 || req.Costs < 0 {
		writeError(w, http.StatusUnprocessableEntity, "inputs must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, calc.SelfEmployedTax(req))
}

func (s *Server) handleCalcStudentLoan(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req calc.StudentLoanInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Debt < 0 || req.AnnualRatePct < 0 || req.Income < 0 || req.PartnerIncome < 0 {
		writeError(w, http.StatusUnprocessableEntity, "inputs must not be negative")
		return
	}
	if req.Scheme != calc.SchemeSF35 && req.Scheme != calc.SchemeSF15 {
		writeError(w, http.StatusUnprocessableEntity, "scheme must be sf35 or sf15")
		return
	}
	writeJSON(w, http.StatusOK, calc.StudentLoan(req))
}

type growthRequest struct {
	StartAmount         float64 `json:"startAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	Years               int     `json:"years"`
	AnnualReturnPct     float64 `json:"annualReturnPct"`
}

func (s *Server) handleCalcGrowth(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req growthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StartAmount < 0 || req.MonthlyContribution < 0 || req.Years < 0 || req.Years > 100 {
		writeError(w, http.StatusUnprocessableEntity, "amounts must not be negative, years must be between 0 and 100")
		return
	}
	writeJSON(w, http.StatusOK, calc.CompoundGrowth(req.StartAmount, req.MonthlyContribution, req.Years, req.AnnualReturnPct))
}

type compareRequest struct {
	StartAmount         float64 `json:"startAmount"`
	MonthlyContribution float64 `json:"monthlyContribution"`
	Years               int     `json:"years"`
	SavingsRatePct      float64 `json:"savingsRatePct"`
	InvestRatePct       float64 `json:"investRatePct"`
}

func (s *Server) handleCalcCompare(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req compareRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.StartAmount < 0 || req.MonthlyContribution < 0 || req.Years < 0 || req.Years > 100 {
		writeError(w, http.StatusUnprocessableEntity, "amounts must not be negative, years must be between 0 and 100")
		return
	}
	writeJSON(w, http.StatusOK, calc.CompareGrowth(req.StartAmount, req.MonthlyContribution, req.Years, req.SavingsRatePct, req.InvestRatePct))
}

func (s *Server) handleCalcPension(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req calc.PensionInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.CurrentAge < 0 || req.RetirementAge < 0 || req.CurrentCapital < 0 || req.MonthlyDeposit < 0 {
		writeError(w, http.StatusUnprocessableEntity, "inputs must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, calc.PensionGap(req))
}

type splitRequest struct {
	IncomeA     float64 `json:"incomeA"`
	IncomeB     float64 `json:"incomeB"`
	SharedCosts float64 `json:"sharedCosts"`
}

func (s *Server) handleCalcSplit(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req splitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IncomeA < 0 || req.IncomeB < 0 || req.SharedCosts < 0 {
		writeError(w, http.StatusUnprocessableEntity, "inputs must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, calc.SplitCosts(req.IncomeA, req.IncomeB, req.SharedCosts))
}

type holidayRequest struct {
	Persons           int     `json:"persons"`
	Days              int     `json:"days"`
	TransportCost     float64 `json:"transportCost"`
	AccommodationCost float64 `json:"accommodationCost"`
	DailyBudget       float64 `json:"dailyBudget"`
}

func (s *Server) handleCalcHoliday(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req holidayRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Persons < 0 || req.Days < 0 || req.TransportCost < 0 || req.AccommodationCost < 0 || req.DailyBudget < 0 {
		writeError(w, http.StatusUnprocessableEntity, "inputs must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, calc.Holiday(req.Persons, req.Days, req.TransportCost, req.AccommodationCost, req.DailyBudget))
}

func (s *Server) handleCalcBuffer(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	var req calc.BufferInput
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Children < 0 || req.HomeValue < 0 || req.CarValue < 0 {
		writeError(w, http.StatusUnprocessableEntity, "inputs must not be negative")
		return
	}
	writeJSON(w, http.StatusOK, calc.MinimumBuffer(req))
}
