package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jrsteele09/notebridge/internal/errors"
)

// maxRequestBody bounds request bodies; page material is pasted text, not uploads.
const maxRequestBody = 1 << 20

type CreateSectionRequest struct {
	DisplayName string `json:"displayName" validate:"required"`
	NotebookID  string `json:"notebook_id" validate:"required"`
}

type CreatePageRequest struct {
	SectionID string `json:"section_id" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
}

type PageRequest struct {
	PageID string `json:"page_id" validate:"required"`
}

type AppendPageRequest struct {
	PageID      string `json:"page_id" validate:"required"`
	PageContent string `json:"pageContent" validate:"required"`
}

type ReviewQuestionsRequest struct {
	PageID      string `json:"page_id" validate:"required"`
	QuestionNum int    `json:"question_num" validate:"omitempty,min=1,max=50"`
}

type AnalyzeAnswersRequest struct {
	PageID          string `json:"page_id" validate:"required"`
	QuestionAAnswer string `json:"question_a_answer" validate:"required"`
}

type DialogueRequest struct {
	PageID    string `json:"page_id" validate:"required"`
	UserPrint string `json:"user_print" validate:"required"`
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeRequest reads a JSON body into dst and validates it. Every failure is an ErrValidation.
func (s *Server) decodeRequest(r *http.Request, dst any) error {
	if r.Body == nil {
		return fmt.Errorf("%w: request body is required", errors.ErrValidation)
	}
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBody))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", errors.ErrValidation, err)
	}

	if err := s.validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %s", errors.ErrValidation, describeFieldErrors(fieldErrs))
		}
		return fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	return nil
}

func describeFieldErrors(fieldErrs validator.ValidationErrors) string {
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, fe.Field()+" is required")
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return strings.Join(msgs, ", ")
}
