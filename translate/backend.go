package translate

import (
	"bytes"

	"github.com/cdvelop/rtftranslate/env"
	"github.com/cdvelop/rtftranslate/errs"
	"github.com/cdvelop/tinystring"
	"github.com/tinywasm/fetch"
	"github.com/tinywasm/json"
)

// systemPrompt instructs the backend to translate clinical-trial prose while
// leaving any brace-wrapped Unicode escape untouched, mirroring this
// pipeline's original chat-completion prompt.
const systemPrompt = `You are a senior clinical trial expert. Translate the ` +
	`Chinese text that follows into English. Reply with nothing but the ` +
	`translation itself. The text may contain a brace-wrapped RTF Unicode ` +
	`escape sequence; leave any such bracketed escape exactly as written.`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}

type chatReply struct {
	Choices []chatChoice `json:"choices"`
}

// HTTPBackend sends each untranslated line to an OpenAI-compatible
// chat-completions endpoint, the Go counterpart of this pipeline's original
// reqwest-based LLM client.
type HTTPBackend struct {
	Endpoint string
	APIKey   string
	Model    string
}

// NewHTTPBackend returns a Backend hitting endpoint with model, authorizing
// every request with apiKey.
func NewHTTPBackend(endpoint, apiKey, model string) *HTTPBackend {
	return &HTTPBackend{Endpoint: endpoint, APIKey: apiKey, Model: model}
}

// Translate sends source as the sole user message of a single-turn chat
// completion and returns the assistant's reply verbatim.
func (b *HTTPBackend) Translate(source string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: b.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: source},
		},
		Temperature: 0.8,
	})
	if err != nil {
		return "", errs.New(errs.BackendFailure, err)
	}

	resp, err := fetch.Post(b.Endpoint, "application/json", bytes.NewReader(body), map[string]string{
		"Authorization": tinystring.Fmt("Bearer %s", b.APIKey),
	})
	if err != nil {
		return "", errs.New(errs.BackendFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return "", errs.New(errs.BackendFailure, tinystring.Fmt("status %d", resp.StatusCode))
	}

	raw, err := env.ReadAll(resp.Body)
	if err != nil {
		return "", errs.New(errs.BackendFailure, err)
	}

	var reply chatReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return "", errs.New(errs.BackendFailure, err)
	}
	if len(reply.Choices) == 0 {
		return "", errs.New(errs.BackendFailure, "backend returned no choices")
	}
	return reply.Choices[0].Message.Content, nil
}
