package server

import (
	"net/http"
)

func (s *Server) ListNotebooksHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		notebooks, err := s.notebook.ListNotebooks(r.Context(), session.AccessToken)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, notebooks)
	}
}

func (s *Server) ListSectionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		sections, err := s.notebook.ListSections(r.Context(), session.AccessToken, r.PathValue("notebook_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sections)
	}
}

func (s *Server) ListPagesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		pages, err := s.notebook.ListPages(r.Context(), session.AccessToken, r.PathValue("section_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, pages)
	}
}

func (s *Server) CreateSectionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req CreateSectionRequest
		if err := s.decodeRequest(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		section, err := s.notebook.CreateSection(r.Context(), session.AccessToken, req.NotebookID, req.DisplayName)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, section)
	}
}

// CreatePageHandler has the model lay out the material as a page before creating it.
func (s *Server) CreatePageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, session, err := sessionFromContext(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		var req CreatePageRequest
		if err := s.decodeRequest(r, &req); err != nil {
			writeError(w, r, err)
			return
		}

		page, err := s.assistant.CreatePage(r.Context(), session.AccessToken, req.SectionID, req.Title, req.Content)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}
