package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"chat-task-manager/internal/extract"
	"chat-task-manager/pkg/llmprovider"
)

var codeFence = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// Classify never fails: any model error, timeout or unusable reply degrades to Fallback.
func (r *SemanticRouter) Classify(ctx context.Context, message string) ParsedCommand {
	if r.llm == nil {
		r.l.Debugf(ctx, "%s: %s", LogPrefixClassify, ErrMsgNoProviderRules)
		return Fallback(message)
	}

	callCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	resp, err := r.llm.GenerateContent(callCtx, &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: llmprovider.RoleUser, Text: fmt.Sprintf(PromptClassify, message)}},
		Temperature: RouterTemperature,
		MaxTokens:   RouterMaxTokens,
		JSONOutput:  true,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgLLMCallFailed, err)
		return Fallback(message)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return Fallback(message)
	}

	raw, ok := firstJSONObject(resp.Text)
	if !ok {
		r.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgNoJSONObject)
		return Fallback(message)
	}

	var out llmOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgNoJSONObject, err)
		return Fallback(message)
	}

	cmd := normalize(out)
	if cmd.Intent == IntentUnknown && out.Intent != "" && !strings.EqualFold(out.Intent, string(IntentUnknown)) {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixClassify, ErrMsgUnknownIntent, out.Intent)
	}

	r.l.Infof(ctx, "%s: Classified as %s via %s", LogPrefixClassify, cmd.Intent, resp.ProviderName)
	return cmd
}

// normalize fills defaults for anything the model left out or got wrong.
func normalize(out llmOutput) ParsedCommand {
	cmd := ParsedCommand{
		Intent:       Intent(strings.ToUpper(strings.TrimSpace(out.Intent))),
		Title:        strings.TrimSpace(out.TaskDetails.Title),
		Description:  strings.TrimSpace(out.TaskDetails.Description),
		ReferencedID: idString(out.TaskDetails.ID),
		Source:       SourceLLM,
	}
	if !cmd.Intent.Valid() {
		cmd.Intent = IntentUnknown
	}
	if out.SearchQuery != nil {
		cmd.SearchQuery = strings.TrimSpace(*out.SearchQuery)
	}
	if out.TimePeriod != nil {
		if p := extract.Period(strings.ToLower(strings.TrimSpace(*out.TimePeriod))); p.Valid() {
			cmd.TimePeriod = p
		}
	}
	return cmd
}

func idString(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// firstJSONObject returns the first well-formed JSON object in text,
// looking inside a markdown code fence first.
func firstJSONObject(text string) ([]byte, bool) {
	candidates := []string{}
	if m := codeFence.FindStringSubmatch(text); m != nil {
		candidates = append(candidates, m[1])
	}
	candidates = append(candidates, text)

	for _, c := range candidates {
		for i := strings.IndexByte(c, '{'); i >= 0; {
			var raw json.RawMessage
			dec := json.NewDecoder(strings.NewReader(c[i:]))
			if err := dec.Decode(&raw); err == nil && bytes.HasPrefix(raw, []byte("{")) {
				return raw, true
			}
			next := strings.IndexByte(c[i+1:], '{')
			if next < 0 {
				break
			}
			i += next + 1
		}
	}
	return nil, false
}
