package assistant_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrsteele09/notebridge/assistant"
	"github.com/jrsteele09/notebridge/internal/errors"
	"github.com/jrsteele09/notebridge/notebook"
	"github.com/jrsteele09/notebridge/prompt"
	"github.com/stretchr/testify/require"
)

const (
	testToken = "tok-1"
	pageHTML  = `<html><head><style>p{color:red}</style></head><body><h1>Cells</h1>  <p>Mitochondria   make ATP</p></body></html>`
	pageText  = "Cells Mitochondria make ATP"
)

type update struct {
	pageID string
	action notebook.Action
	html   string
}

type fakeNotebook struct {
	pages      map[string]string
	contentErr error
	created    map[string]string
	updates    []update
}

func newFakeNotebook() *fakeNotebook {
	return &fakeNotebook{
		pages:   map[string]string{"p1": pageHTML},
		created: map[string]string{},
	}
}

func (f *fakeNotebook) PageContent(_ context.Context, token, pageID string) (string, error) {
	if token != testToken {
		return "", &errors.UpstreamAPIError{StatusCode: http.StatusUnauthorized}
	}
	if f.contentErr != nil {
		return "", f.contentErr
	}
	html, ok := f.pages[pageID]
	if !ok {
		return "", &errors.UpstreamAPIError{StatusCode: http.StatusNotFound, Body: "page not found"}
	}
	return html, nil
}

func (f *fakeNotebook) CreatePage(_ context.Context, _, sectionID, xhtml string) (notebook.Entity, error) {
	f.created[sectionID] = xhtml
	return notebook.Entity{"id": "new-page"}, nil
}

func (f *fakeNotebook) UpdatePage(_ context.Context, _, pageID string, action notebook.Action, html string) (any, error) {
	f.updates = append(f.updates, update{pageID: pageID, action: action, html: html})
	return notebook.UpdateStatus{Status: "success", Message: "Page updated successfully"}, nil
}

type call struct {
	task   string
	params map[string]any
}

// fakeRunner answers every task with the same reply and records calls
type fakeRunner struct {
	reply string
	err   error
	calls []call
}

func (f *fakeRunner) Run(_ context.Context, taskID string, params map[string]any) (string, error) {
	f.calls = append(f.calls, call{task: taskID, params: params})
	return f.reply, f.err
}

func TestService_CreatePage(t *testing.T) {
	t.Run("extracts the document", func(t *testing.T) {
		nb := newFakeNotebook()
		runner := &fakeRunner{reply: "Sure!\n```html\n<!DOCTYPE html>\n<html><body><p>notes</p></body></html>\n```"}
		svc := assistant.NewService(nb, runner)

		page, err := svc.CreatePage(context.Background(), testToken, "s1", "Cells", "raw material")
		require.NoError(t, err)
		require.Equal(t, "new-page", page["id"])
		require.Equal(t, "<!DOCTYPE html>\n<html><body><p>notes</p></body></html>", nb.created["s1"])

		require.Len(t, runner.calls, 1)
		require.Equal(t, prompt.TaskGeneratePage, runner.calls[0].task)
		require.Equal(t, "Cells", runner.calls[0].params["page_title"])
		require.Equal(t, "raw material", runner.calls[0].params["page_content"])
	})

	t.Run("falls back to the raw reply", func(t *testing.T) {
		nb := newFakeNotebook()
		svc := assistant.NewService(nb, &fakeRunner{reply: "just prose"})

		_, err := svc.CreatePage(context.Background(), testToken, "s1", "Cells", "raw")
		require.NoError(t, err)
		require.Equal(t, "just prose", nb.created["s1"])
	})

	t.Run("llm failure creates nothing", func(t *testing.T) {
		nb := newFakeNotebook()
		svc := assistant.NewService(nb, &fakeRunner{err: errors.ErrLLMRequestFailed})

		_, err := svc.CreatePage(context.Background(), testToken, "s1", "Cells", "raw")
		require.ErrorIs(t, err, errors.ErrLLMRequestFailed)
		require.Empty(t, nb.created)
	})
}

func TestService_Summarize(t *testing.T) {
	runner := &fakeRunner{reply: "<p>summary</p>"}
	svc := assistant.NewService(newFakeNotebook(), runner)

	out, err := svc.Summarize(context.Background(), testToken, "p1")
	require.NoError(t, err)
	require.Equal(t, "<p>summary</p>", out)
	require.Equal(t, prompt.TaskPageAbstract, runner.calls[0].task)
	require.Equal(t, pageText, runner.calls[0].params["page_content"])
}

func TestService_Append(t *testing.T) {
	nb := newFakeNotebook()
	runner := &fakeRunner{reply: "<html><body><p>merged</p></body></html> done"}
	svc := assistant.NewService(nb, runner)

	out, err := svc.Append(context.Background(), testToken, "p1", "new facts")
	require.NoError(t, err)
	require.Equal(t, notebook.UpdateStatus{Status: "success", Message: "Page updated successfully"}, out)

	require.Equal(t, prompt.TaskAppendPage, runner.calls[0].task)
	require.Equal(t, pageText, runner.calls[0].params["old_note"])
	require.Equal(t, "new facts", runner.calls[0].params["new_content"])
	require.Equal(t, []update{{pageID: "p1", action: notebook.ActionReplace, html: "<html><body><p>merged</p></body></html>"}}, nb.updates)
}

func TestService_GenerateQuiz(t *testing.T) {
	t.Run("parses fenced json", func(t *testing.T) {
		runner := &fakeRunner{reply: "Here you go\n```json\n[{\"question\":\"What makes ATP?\",\"answer\":\"Mitochondria\",},]\n```"}
		svc := assistant.NewService(newFakeNotebook(), runner)

		out, err := svc.GenerateQuiz(context.Background(), testToken, "p1", 3)
		require.NoError(t, err)
		require.Equal(t, []any{map[string]any{"question": "What makes ATP?", "answer": "Mitochondria"}}, out)
		require.Equal(t, 3, runner.calls[0].params["question_num"])
	})

	t.Run("defaults the question count", func(t *testing.T) {
		runner := &fakeRunner{reply: "[]"}
		svc := assistant.NewService(newFakeNotebook(), runner)

		_, err := svc.GenerateQuiz(context.Background(), testToken, "p1", 0)
		require.NoError(t, err)
		require.Equal(t, assistant.DefaultQuestionNum, runner.calls[0].params["question_num"])
	})

	t.Run("empty reply", func(t *testing.T) {
		svc := assistant.NewService(newFakeNotebook(), &fakeRunner{reply: ""})

		_, err := svc.GenerateQuiz(context.Background(), testToken, "p1", 5)
		require.ErrorIs(t, err, errors.ErrJSONParse)
	})
}

func TestService_AnalyzeAnswers(t *testing.T) {
	t.Run("valid answers", func(t *testing.T) {
		runner := &fakeRunner{reply: "<p>review mitochondria</p>"}
		svc := assistant.NewService(newFakeNotebook(), runner)

		out, err := svc.AnalyzeAnswers(context.Background(), testToken, "p1", `[ {"q": 1, "a": "B"} ]`)
		require.NoError(t, err)
		require.Equal(t, "<p>review mitochondria</p>", out)
		require.Equal(t, prompt.TaskAnswerAnalysis, runner.calls[0].task)
		require.Equal(t, `[{"a":"B","q":1}]`, runner.calls[0].params["user_answers"])
	})

	t.Run("invalid json is a validation error", func(t *testing.T) {
		runner := &fakeRunner{}
		svc := assistant.NewService(newFakeNotebook(), runner)

		_, err := svc.AnalyzeAnswers(context.Background(), testToken, "p1", "{not json")
		require.ErrorIs(t, err, errors.ErrValidation)
		require.Equal(t, http.StatusBadRequest, errors.StatusCode(err))
		require.Empty(t, runner.calls)
	})

	t.Run("missing answers", func(t *testing.T) {
		svc := assistant.NewService(newFakeNotebook(), &fakeRunner{})
		_, err := svc.AnalyzeAnswers(context.Background(), testToken, "p1", "  ")
		require.ErrorIs(t, err, errors.ErrValidation)
	})
}

func TestService_Dialogue(t *testing.T) {
	t.Run("answers from the page", func(t *testing.T) {
		runner := &fakeRunner{reply: "ATP is made in mitochondria."}
		svc := assistant.NewService(newFakeNotebook(), runner)

		out, err := svc.Dialogue(context.Background(), testToken, "p1", "where is ATP made?")
		require.NoError(t, err)
		require.Equal(t, "ATP is made in mitochondria.", out)
		require.Equal(t, "where is ATP made?", runner.calls[0].params["user_print"])
	})

	t.Run("missing question", func(t *testing.T) {
		svc := assistant.NewService(newFakeNotebook(), &fakeRunner{})
		_, err := svc.Dialogue(context.Background(), testToken, "p1", "")
		require.ErrorIs(t, err, errors.ErrValidation)
	})

	t.Run("upstream errors propagate", func(t *testing.T) {
		runner := &fakeRunner{}
		svc := assistant.NewService(newFakeNotebook(), runner)

		_, err := svc.Dialogue(context.Background(), testToken, "missing", "hi")
		var upstream *errors.UpstreamAPIError
		require.True(t, errors.As(err, &upstream))
		require.Equal(t, http.StatusNotFound, upstream.StatusCode)
		require.Empty(t, runner.calls)
	})
}

func TestService_WithPromptEngine(t *testing.T) {
	completer := completerFunc(func(_ context.Context, p string) (string, error) {
		require.Contains(t, p, "Mitochondria make ATP")
		return "<p>short summary</p>", nil
	})
	engine, err := prompt.NewEngine(prompt.DefaultTemplates, completer)
	require.NoError(t, err)

	svc := assistant.NewService(newFakeNotebook(), engine)
	out, err := svc.Summarize(context.Background(), testToken, "p1")
	require.NoError(t, err)
	require.Equal(t, "<p>short summary</p>", out)
}

type completerFunc func(ctx context.Context, p string) (string, error)

func (f completerFunc) Complete(ctx context.Context, p string) (string, error) {
	return f(ctx, p)
}
