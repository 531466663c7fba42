package http

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"geldplan/internal/advisor"
)

type adviceRequest struct {
	Topic    string `json:"topic"`
	Question string `json:"question"`
	Period   string `json:"period,omitempty"`
}

type adviceResponse struct {
	Topic  string `json:"topic"`
	Advice string `json:"advice"`
	Cached bool   `json:"cached"`
}

func (s *Server) handleAdvice(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}
	if s.adv == nil {
		writeError(w, http.StatusServiceUnavailable, "advice is not configured")
		return
	}

	var req adviceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Question = strings.TrimSpace(req.Question)
	if req.Question == "" {
		writeError(w, http.StatusUnprocessableEntity, "question cannot be empty")
		return
	}

	if req.Topic != "budget" && req.Topic != "debts" && req.Topic != "repayment" {
		writeError(w, http.StatusUnprocessableEntity, "topic must be one of budget, debts, repayment")
		return
	}

	financialContext, err := s.adviceContext(r, req)
	if err != nil {
		writeError(w, validationStatus(err), err.Error())
		return
	}

	key := adviceCacheKey(financialContext, req.Question)
	if cached, ok := s.adviceCache.Get(key); ok {
		writeJSON(w, http.StatusOK, adviceResponse{Topic: req.Topic, Advice: cached, Cached: true})
		return
	}

	answer, err := s.adv.Advise(r.Context(), financialContext, req.Question)
	if err != nil {
		slog.ErrorContext(r.Context(), "Advice request failed", "error", err, "topic", req.Topic)
		writeError(w, http.StatusBadGateway, "advice service unavailable")
		return
	}

	s.adviceCache.Set(key, answer)
	writeJSON(w, http.StatusOK, adviceResponse{Topic: req.Topic, Advice: answer, Cached: false})
}

// adviceContext builds the financial snapshot for the requested topic from
// the current dataset.
func (s *Server) adviceContext(r *http.Request, req adviceRequest) (string, error) {
	period := req.Period
	if period == "" {
		period = periodParam(r)
	}

	switch req.Topic {
	case "budget":
		groups, err := s.datasets.ResolveBudget(period)
		if err != nil {
			return "", err
		}
		return advisor.BudgetContext(period, groups), nil
	case "debts":
		debts, err := s.datasets.Debts(r.Context())
		if err != nil {
			return "", err
		}
		return advisor.DebtContext(debts), nil
	case "repayment":
		out, err := s.planner.Outlook(r.Context(), period, time.Now())
		if err != nil {
			return "", err
		}
		debts, err := s.datasets.Debts(r.Context())
		if err != nil {
			return "", err
		}
		return advisor.DebtContext(debts) + "\n" + advisor.RepaymentContext(out.FreeBudget, out.Repayment), nil
	default:
		return "", fmt.Errorf("unknown advice topic %q", req.Topic)
	}
}

func adviceCacheKey(financialContext, question string) string {
	h := sha256.New()
	h.Write([]byte(financialContext))
	h.Write([]byte{0})
	h.Write([]byte(question))
	return hex.EncodeToString(h.Sum(nil))
}
