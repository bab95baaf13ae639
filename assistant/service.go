// Package assistant chains notebook pages through the prompt engine: page content is
// normalized, rendered into a task prompt, completed and shaped back into page markup or data.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jrsteele09/notebridge/content"
	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/jrsteele09/notebridge/notebook"
	"github.com/jrsteele09/notebridge/prompt"
	"github.com/rs/zerolog/log"
)

const DefaultQuestionNum = 5

// Notebook is the part of the notebook API the pipeline reads and writes.
type Notebook interface {
	PageContent(ctx context.Context, token, pageID string) (string, error)
	CreatePage(ctx context.Context, token, sectionID, xhtml string) (notebook.Entity, error)
	UpdatePage(ctx context.Context, token, pageID string, action notebook.Action, html string) (any, error)
}

// Runner runs a named prompt task.
type Runner interface {
	Run(ctx context.Context, taskID string, params map[string]any) (string, error)
}

type Service struct {
	notebook Notebook
	prompts  Runner
}

func NewService(nb Notebook, prompts Runner) *Service {
	return &Service{notebook: nb, prompts: prompts}
}

// CreatePage writes a generated page for the given material into a section.
func (s *Service) CreatePage(ctx context.Context, token, sectionID, title, material string) (notebook.Entity, error) {
	reply, err := s.prompts.Run(ctx, prompt.TaskGeneratePage, map[string]any{
		"page_title":   title,
		"page_content": material,
	})
	if err != nil {
		return nil, err
	}

	doc := s.document(prompt.TaskGeneratePage, reply)
	return s.notebook.CreatePage(ctx, token, sectionID, doc)
}

// Summarize returns an HTML summary of a page.
func (s *Service) Summarize(ctx context.Context, token, pageID string) (string, error) {
	text, err := s.pageText(ctx, token, pageID)
	if err != nil {
		return "", err
	}
	return s.prompts.Run(ctx, prompt.TaskPageAbstract, map[string]any{"page_content": text})
}

// Append merges new material into a page and replaces the page body with the result.
func (s *Service) Append(ctx context.Context, token, pageID, newContent string) (any, error) {
	oldNote, err := s.pageText(ctx, token, pageID)
	if err != nil {
		return nil, err
	}

	reply, err := s.prompts.Run(ctx, prompt.TaskAppendPage, map[string]any{
		"old_note":    oldNote,
		"new_content": newContent,
	})
	if err != nil {
		return nil, err
	}

	doc := s.document(prompt.TaskAppendPage, reply)
	return s.notebook.UpdatePage(ctx, token, pageID, notebook.ActionReplace, doc)
}

// GenerateQuiz returns review questions about a page as decoded JSON.
func (s *Service) GenerateQuiz(ctx context.Context, token, pageID string, questionNum int) (any, error) {
	if questionNum <= 0 {
		questionNum = DefaultQuestionNum
	}

	text, err := s.pageText(ctx, token, pageID)
	if err != nil {
		return nil, err
	}

	reply, err := s.prompts.Run(ctx, prompt.TaskQuestionGenerate, map[string]any{
		"question_num": questionNum,
		"page_content": text,
	})
	if err != nil {
		return nil, err
	}
	return content.ExtractJSON(reply)
}

// AnalyzeAnswers comments on a learner's answers. answersJSON must be a JSON document.
func (s *Service) AnalyzeAnswers(ctx context.Context, token, pageID, answersJSON string) (string, error) {
	if strings.TrimSpace(answersJSON) == "" {
		return "", fmt.Errorf("%w: missing question_a_answer data", errors.ErrValidation)
	}
	var answers any
	if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
		return "", fmt.Errorf("%w: invalid JSON format: %v", errors.ErrValidation, err)
	}
	compact, err := json.Marshal(answers)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInternal, "[assistant AnalyzeAnswers] marshal answers: %v", err)
	}

	text, err := s.pageText(ctx, token, pageID)
	if err != nil {
		return "", err
	}

	return s.prompts.Run(ctx, prompt.TaskAnswerAnalysis, map[string]any{
		"user_answers": string(compact),
		"page_content": text,
	})
}

// Dialogue answers a free-form question using the page as context.
func (s *Service) Dialogue(ctx context.Context, token, pageID, userPrint string) (string, error) {
	if strings.TrimSpace(userPrint) == "" {
		return "", fmt.Errorf("%w: missing user_print data", errors.ErrValidation)
	}

	text, err := s.pageText(ctx, token, pageID)
	if err != nil {
		return "", err
	}

	return s.prompts.Run(ctx, prompt.TaskDialogue, map[string]any{
		"user_print":   userPrint,
		"page_content": text,
	})
}

func (s *Service) pageText(ctx context.Context, token, pageID string) (string, error) {
	raw, err := s.notebook.PageContent(ctx, token, pageID)
	if err != nil {
		return "", err
	}
	return content.Normalize(raw), nil
}

// document keeps the extracted HTML document, or the whole reply when the model returned none.
func (s *Service) document(task, reply string) string {
	doc := content.ExtractDocument(reply)
	if !doc.Found {
		log.Warn().Str("task", task).Int("reply_length", len(reply)).Msg("No HTML document in model reply, using raw text")
	}
	return doc.HTML
}
