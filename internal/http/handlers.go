package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"finhealth/internal/core"
)

type initRequest struct {
	Admin string `json:"admin"`
}

func (s *Server) handleInit(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req initRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Admin == "" {
		writeError(w, http.StatusBadRequest, "admin is required")
		return
	}

	if err := s.engine.Init(r.Context(), c, req.Admin); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"admin": req.Admin})
}

func (s *Server) handleConfigureAddresses(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var addrs core.ContractAddresses
	if err := decodeBody(r, &addrs); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := addrs.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.engine.ConfigureAddresses(r.Context(), c, addrs); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addrs)
}

func (s *Server) handleGetAddresses(w http.ResponseWriter, r *http.Request) {
	addrs, err := s.engine.Addresses(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, addrs)
}

func (s *Server) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	admin, err := s.engine.Admin(r.Context())
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"admin": admin})
}

func (s *Server) handleRemittanceSummary(w http.ResponseWriter, r *http.Request) {
	owner, err := queryString(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	totalAmount, err := queryInt64(r, "total_amount")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	periodStart, periodEnd, err := queryPeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary, err := s.engine.RemittanceSummary(r.Context(), owner, totalAmount, periodStart, periodEnd)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleSavingsReport(w http.ResponseWriter, r *http.Request) {
	owner, err := queryString(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	periodStart, periodEnd, err := queryPeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.engine.SavingsReport(r.Context(), owner, periodStart, periodEnd)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleBillCompliance(w http.ResponseWriter, r *http.Request) {
	owner, err := queryString(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	periodStart, periodEnd, err := queryPeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.engine.BillCompliance(r.Context(), owner, periodStart, periodEnd)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleInsuranceReport(w http.ResponseWriter, r *http.Request) {
	owner, err := queryString(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	periodStart, periodEnd, err := queryPeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.engine.InsuranceReport(r.Context(), owner, periodStart, periodEnd)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealthScore(w http.ResponseWriter, r *http.Request) {
	owner, err := queryString(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	score, err := s.engine.HealthScore(r.Context(), owner)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}

func (s *Server) handleFinancialHealthReport(w http.ResponseWriter, r *http.Request) {
	owner, err := queryString(r, "owner")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	totalAmount, err := queryInt64(r, "total_amount")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	periodStart, periodEnd, err := queryPeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.engine.FinancialHealthReport(r.Context(), owner, totalAmount, periodStart, periodEnd)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleTrendAnalysis(w http.ResponseWriter, r *http.Request) {
	current, err := queryInt64(r, "current")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	previous, err := queryInt64(r, "previous")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	trend, err := s.engine.TrendAnalysis(current, previous)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, trend)
}

func (s *Server) handleStoreReport(w http.ResponseWriter, r *http.Request) {
	c, err := caller(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vars := mux.Vars(r)
	owner := vars["owner"]
	periodKey, err := strconv.ParseUint(vars["periodKey"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period key")
		return
	}

	var report core.FinancialHealthReport
	if err := decodeBody(r, &report); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.engine.StoreReport(r.Context(), c, owner, periodKey, report); err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"owner": owner, "period_key": periodKey})
}

func (s *Server) handleGetStoredReport(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	owner := vars["owner"]
	periodKey, err := strconv.ParseUint(vars["periodKey"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period key")
		return
	}

	report, err := s.engine.StoredReport(r.Context(), owner, periodKey)
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
