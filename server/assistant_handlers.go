package server

import (
	"net/http"

	"github.com/jrsteele09/notebridge/assistant"
)

type PageSummaryResponse struct {
	PageSummary string `json:"pagesummary"`
}

type ReviewQuestionsResponse struct {
	Questions any `json:"questions"`
}

type AnalyzeAnswersResponse struct {
	OverallSuggestions string `json:"overall_suggestions"`
}

type DialogueResponse struct {
	Replay string `json:"replay"`
}

func (s *Server) PageSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req PageRequest
		if err := s.decodeRequest(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		summary, err := s.assistant.Summarize(r.Context(), session.AccessToken, req.PageID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, PageSummaryResponse{PageSummary: summary})
	}
}

// AppendPageHandler merges new material into the page and returns the notebook API update result.
func (s *Server) AppendPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req AppendPageRequest
		if err := s.decodeRequest(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		result, err := s.assistant.Append(r.Context(), session.AccessToken, req.PageID, req.PageContent)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) ReviewQuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		req := ReviewQuestionsRequest{QuestionNum: assistant.DefaultQuestionNum}
		if err := s.decodeRequest(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		questions, err := s.assistant.GenerateQuiz(r.Context(), session.AccessToken, req.PageID, req.QuestionNum)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ReviewQuestionsResponse{Questions: questions})
	}
}

func (s *Server) AnalyzeAnswersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req AnalyzeAnswersRequest
		if err := s.decodeRequest(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		suggestions, err := s.assistant.AnalyzeAnswers(r.Context(), session.AccessToken, req.PageID, req.QuestionAAnswer)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AnalyzeAnswersResponse{OverallSuggestions: suggestions})
	}
}

func (s *Server) DialogueHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req DialogueRequest
		if err := s.decodeRequest(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		replay, err := s.assistant.Dialogue(r.Context(), session.AccessToken, req.PageID, req.UserPrint)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, DialogueResponse{Replay: replay})
	}
}
