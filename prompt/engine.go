package prompt

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/jrsteele09/notebridge/internal/metrics"
)

// Completer sends one rendered prompt to a language model and returns its reply.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Engine renders named prompt templates and runs them through a Completer.
type Engine struct {
	templates map[string]*template.Template
	completer Completer
}

// NewEngine parses the given templates keyed by task id.
func NewEngine(templates map[string]string, completer Completer) (*Engine, error) {
	parsed := make(map[string]*template.Template, len(templates))
	for task, text := range templates {
		tmpl, err := template.New(task).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("[prompt NewEngine] parse template %q: %w", task, err)
		}
		parsed[task] = tmpl
	}
	return &Engine{templates: parsed, completer: completer}, nil
}

// Render substitutes params into the task's template.
func (e *Engine) Render(taskID string, params map[string]any) (string, error) {
	tmpl, ok := e.templates[taskID]
	if !ok {
		return "", fmt.Errorf("%w: %q", errors.ErrUnknownTask, taskID)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, params); err != nil {
		return "", fmt.Errorf("%w: task %q: %v", errors.ErrTemplateParamMissing, taskID, err)
	}
	return sb.String(), nil
}

// Run renders the task's prompt and returns the model's raw reply.
func (e *Engine) Run(ctx context.Context, taskID string, params map[string]any) (string, error) {
	prompt, err := e.Render(taskID, params)
	if err != nil {
		return "", err
	}

	start := time.Now()
	text, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		metrics.RecordLLMRequest(taskID, metrics.StatusError, time.Since(start))
		return "", fmt.Errorf("%w: %v", errors.ErrLLMRequestFailed, err)
	}
	metrics.RecordLLMRequest(taskID, metrics.StatusOK, time.Since(start))
	return text, nil
}
