package prompt

// Task identifiers understood by the engine.
const (
	TaskGeneratePage     = "generate_page"
	TaskPageAbstract     = "page_abstract"
	TaskAppendPage       = "append_page"
	TaskQuestionGenerate = "question_generate"
	TaskAnswerAnalysis   = "answer_analysis"
	TaskDialogue         = "dialogue"
)

// DefaultTemplates are the built-in prompts. Placeholders use text/template syntax and
// every placeholder must be supplied by the caller.
var DefaultTemplates = map[string]string{
	TaskGeneratePage: `You are a note-taking assistant. Turn the material below into a well organised OneNote page.

Return a single complete XHTML document and nothing else, in exactly this shape:
<!DOCTYPE html>
<html>
  <head>
    <title>{{.page_title}}</title>
  </head>
  <body>
    ...structured notes using headings, paragraphs and lists...
  </body>
</html>

Page title: {{.page_title}}

Material:
{{.page_content}}`,

	TaskPageAbstract: `Summarise the following note. Keep the key concepts, definitions and conclusions.
Format the summary as an HTML fragment (headings, paragraphs and lists only, no <html> or <body> tags).

Note:
{{.page_content}}`,

	TaskAppendPage: `You maintain a OneNote page. Merge the new content into the existing note so the result reads as one coherent page.
Keep everything that is still correct in the existing note, place the new material where it belongs and remove duplication.

Return the complete merged page as an HTML document wrapped in <html> and <body> tags and nothing else.

Existing note:
{{.old_note}}

New content:
{{.new_content}}`,

	TaskQuestionGenerate: `Write {{.question_num}} multiple choice review questions about the note below.

Respond with JSON only, inside a ` + "```json" + ` fence, as an array of objects with the fields:
"question" (string), "options" (array of 4 strings), "answer" (the correct option) and "explanation" (string).

Note:
{{.page_content}}`,

	TaskAnswerAnalysis: `A learner answered review questions about the note below. Analyse the answers, point out misunderstandings
and give concrete study suggestions. Format the analysis as an HTML fragment.

Note:
{{.page_content}}

Answers (JSON):
{{.user_answers}}`,

	TaskDialogue: `You are a study assistant answering questions about the user's note. Use the note as your primary source
and say so when the note does not cover the question.

Note:
{{.page_content}}

User: {{.user_print}}`,
}
