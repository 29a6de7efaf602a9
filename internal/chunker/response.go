package chunker

import (
	"bytes"
	"encoding/json"
)

// Kind identifies which shape a provider reply was decoded from.
type Kind int

const (
	// KindPlain is a bare text reply, or a JSON string literal.
	KindPlain Kind = iota
	// KindTextField is an object carrying a top-level "text" string.
	KindTextField
	// KindMessageContent is an object carrying "message.content", or the
	// chat-completions form "choices[0].message.content".
	KindMessageContent
	// KindCandidates is a generative-language reply with
	// "candidates[0].content.parts[0].text".
	KindCandidates
	// KindSerialized is any other JSON value, kept as compact JSON text.
	KindSerialized
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindTextField:
		return "text_field"
	case KindMessageContent:
		return "message_content"
	case KindCandidates:
		return "candidates"
	case KindSerialized:
		return "serialized"
	default:
		return "unknown"
	}
}

// Response is a provider reply reduced to the text that should be chunked.
type Response struct {
	Kind Kind
	Text string
}

// DecodeResponse resolves a raw provider payload into its textual content.
// The shapes are tried in the order plain, text field, message content,
// candidates, and finally the serialized JSON itself.
func DecodeResponse(payload []byte) Response {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return Response{Kind: KindPlain, Text: string(payload)}
	}

	var value any
	if err := json.Unmarshal(trimmed, &value); err != nil {
		return Response{Kind: KindPlain, Text: string(payload)}
	}

	switch v := value.(type) {
	case string:
		return Response{Kind: KindPlain, Text: v}
	case map[string]any:
		if text, ok := nonEmptyString(v["text"]); ok {
			return Response{Kind: KindTextField, Text: text}
		}
		if text, ok := messageContent(v["message"]); ok {
			return Response{Kind: KindMessageContent, Text: text}
		}
		if choice, ok := firstObject(v["choices"]); ok {
			if text, ok := messageContent(choice["message"]); ok {
				return Response{Kind: KindMessageContent, Text: text}
			}
		}
		if text, ok := candidateText(v["candidates"]); ok {
			return Response{Kind: KindCandidates, Text: text}
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return Response{Kind: KindSerialized, Text: string(trimmed)}
	}
	return Response{Kind: KindSerialized, Text: compact.String()}
}

func messageContent(v any) (string, bool) {
	msg, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	return nonEmptyString(msg["content"])
}

func candidateText(v any) (string, bool) {
	candidate, ok := firstObject(v)
	if !ok {
		return "", false
	}
	content, ok := candidate["content"].(map[string]any)
	if !ok {
		return "", false
	}
	part, ok := firstObject(content["parts"])
	if !ok {
		return "", false
	}
	return nonEmptyString(part["text"])
}

func firstObject(v any) (map[string]any, bool) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	obj, ok := list[0].(map[string]any)
	return obj, ok
}

func nonEmptyString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
