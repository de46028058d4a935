package submissions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/learnhub-grader.net/internal/core/ports/primary"
	"gitlab.com/learnhub-grader.net/internal/core/services/history"
	"gitlab.com/learnhub-grader.net/internal/core/services/submission"
	"gitlab.com/learnhub-grader.net/internal/domain"
	"gitlab.com/learnhub-grader.net/internal/handlers"
	"gitlab.com/learnhub-grader.net/internal/handlers/response"
	"gitlab.com/learnhub-grader.net/internal/static/errs"
)

const maxBodyBytes = 1 << 20

var _ submission.ISubmissionService = &submission.SubmissionService{}

// SubmissionHandler handles submission API requests
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	historyService    history.IHistoryService
	logger            primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(submissionService submission.ISubmissionService, historyService history.IHistoryService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		historyService:    historyService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler. router is expected
// to be the /api subrouter.
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/submissions", h.Submit).Methods("POST")
	router.HandleFunc("/submissions/batch", h.SubmitBatch).Methods("POST")
	router.HandleFunc("/submissions/{submissionId}", h.GetSubmission).Methods("GET")
	router.HandleFunc("/languages", h.GetLanguages).Methods("GET")
	router.HandleFunc("/attempts", h.GetAttempts).Methods("GET")
}

// Submit grades one submission synchronously
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := decode(w, r, &req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteJSON(w, http.StatusBadRequest, invalidBody())
		return
	}

	sub := req.ToSubmission(handlers.UserIDFromContext(r.Context()))
	resp := h.submissionService.HandleSubmission(r.Context(), sub)
	h.historyService.Record(r.Context(), sub, resp)

	response.WriteJSON(w, response.StatusCode(resp.Reason), resp)
}

// SubmitBatch grades several submissions, answering in request order
func (h *SubmissionHandler) SubmitBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchSubmitRequest
	if err := decode(w, r, &req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		response.WriteJSON(w, http.StatusBadRequest, invalidBody())
		return
	}

	userID := handlers.UserIDFromContext(r.Context())
	subs := make([]*domain.Submission, len(req.Submissions))
	for i, item := range req.Submissions {
		subs[i] = item.ToSubmission(userID)
	}

	results, err := h.submissionService.HandleBatch(r.Context(), subs)
	if err != nil {
		h.logger.Info("Rejected batch", "size", len(subs), "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: response.StatusCode(err),
		})
		return
	}

	for i, resp := range results {
		h.historyService.Record(r.Context(), subs[i], resp)
	}

	response.WriteSuccess(w, BatchSubmitResponse{Results: results})
}

// GetSubmission returns a previously graded response
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	submissionID := vars["submissionId"]

	resp, err := h.historyService.GetResult(r.Context(), submissionID)
	if err != nil {
		if !errors.Is(err, errs.ErrResultNotFound) && !errors.Is(err, errs.ErrInvalidRequest) {
			h.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		}
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: response.StatusCode(err),
		})
		return
	}

	response.WriteSuccess(w, resp)
}

// GetLanguages lists the supported languages
func (h *SubmissionHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, LanguagesResponse{Languages: domain.SupportedLanguages()})
}

// GetAttempts lists the caller's attempts. Without authentication the user is
// taken from the userId query parameter.
func (h *SubmissionHandler) GetAttempts(w http.ResponseWriter, r *http.Request) {
	userID := handlers.UserIDFromContext(r.Context())
	if userID == "" {
		userID = r.URL.Query().Get("userId")
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.WriteError(w, response.ErrorMessage{
				Message:    "invalid limit",
				StatusCode: http.StatusBadRequest,
			})
			return
		}
		limit = parsed
	}

	attempts, err := h.historyService.GetAttempts(r.Context(), userID, limit)
	if err != nil {
		h.logger.Error("Failed to get attempts", "userId", userID, "error", err)
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: response.StatusCode(err),
		})
		return
	}

	views := make([]AttemptView, 0, len(attempts))
	for _, a := range attempts {
		views = append(views, AttemptView{
			ID:           a.ID.String(),
			SubmissionID: a.SubmissionID.String(),
			AssessmentID: a.AssessmentID,
			Language:     a.Language,
			Score:        a.Score,
			Status:       a.Status,
			PassedCases:  a.PassedCases,
			TotalCases:   a.TotalCases,
			CreatedAt:    a.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	response.WriteSuccess(w, AttemptsResponse{Attempts: views})
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

func invalidBody() *domain.SubmissionResponse {
	return &domain.SubmissionResponse{
		Success: false,
		Error:   "invalid request: malformed body",
	}
}
