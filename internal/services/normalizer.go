package services

import (
	"bytes"
	"encoding/json"
	"log"

	"arxiv-monitor-backend/internal/models"
)

// ParseManagerResponse extracts the digest from the opaque response envelope
// of an agent invocation. The envelope's nesting shape is not guaranteed, so
// two candidate fields are tried in order:
//
//  1. response.result: JSON text to be parsed, or an already-structured
//     value used directly.
//  2. response.message: JSON text to be parsed; if that parse fails there is
//     no further fallback.
//
// The candidate is accepted only if it decodes to a non-null object;
// primitives and arrays at the top level are rejected. Inner field types are
// not validated here beyond best-effort decoding; the returned digest is
// fully defaulted so display code can assume every field is present.
//
// Returns nil for anything unparseable; never panics. Parse failures are
// logged for diagnostics, distinguishing a refusal from a malformed payload.
func ParseManagerResponse(response json.RawMessage) *models.ManagerResponse {
	if !fieldPresent(response) {
		return nil
	}

	var body struct {
		Result  json.RawMessage `json:"result"`
		Message json.RawMessage `json:"message"`
	}
	if err := json.Unmarshal(response, &body); err != nil {
		log.Printf("digest: agent response envelope is not an object: %v", err)
		return nil
	}

	var candidate json.RawMessage
	switch {
	case fieldPresent(body.Result):
		if isJSONString(body.Result) {
			var text string
			if err := json.Unmarshal(body.Result, &text); err != nil {
				log.Printf("digest: failed to read result text: %v", err)
				return nil
			}
			candidate = json.RawMessage(text)
		} else {
			candidate = body.Result
		}
	case fieldPresent(body.Message):
		// message carries JSON as text or nothing usable at all
		if !isJSONString(body.Message) {
			log.Printf("digest: agent message field is not text")
			return nil
		}
		var text string
		if err := json.Unmarshal(body.Message, &text); err != nil {
			log.Printf("digest: failed to read message text: %v", err)
			return nil
		}
		candidate = json.RawMessage(text)
	default:
		return nil
	}

	digest := decodeDigest(candidate)
	if digest == nil {
		log.Printf("digest: agent payload did not contain a digest object")
	}
	return digest
}

// decodeDigest accepts only a JSON object and decodes its known fields
// best-effort: a field of the wrong type falls back to its default instead of
// failing the whole digest.
func decodeDigest(raw json.RawMessage) *models.ManagerResponse {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil
	}

	digest := &models.ManagerResponse{}
	tryUnmarshal(fields["mode"], &digest.Mode)
	tryUnmarshal(fields["topics_searched"], &digest.TopicsSearched)
	tryUnmarshal(fields["total_papers_found"], &digest.TotalPapersFound)
	tryUnmarshal(fields["topics_results"], &digest.TopicsResults)
	tryUnmarshal(fields["email_sent"], &digest.EmailSent)
	tryUnmarshal(fields["email_status"], &digest.EmailStatus)
	tryUnmarshal(fields["digest_date"], &digest.DigestDate)
	digest.Normalize()
	return digest
}

func tryUnmarshal(raw json.RawMessage, dst interface{}) {
	if len(raw) == 0 {
		return
	}
	json.Unmarshal(raw, dst)
}

// fieldPresent reports whether a raw field carries a usable value. JSON
// null, false, 0 and the empty string are treated as absent so the next
// candidate gets a chance.
func fieldPresent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch {
	case bytes.Equal(trimmed, []byte("null")),
		bytes.Equal(trimmed, []byte("false")),
		bytes.Equal(trimmed, []byte("0")),
		bytes.Equal(trimmed, []byte(`""`)):
		return false
	}
	return true
}

func isJSONString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}
