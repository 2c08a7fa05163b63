// Package parser converts opaque topic payloads into decoded documents,
// classifies them against the known event kinds, and validates their
// shape. Each stage succeeds or fails independently: a payload that fails
// decoding still produces a substrate record, and a classified document
// that fails validation still records its kind.
package parser

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Result is the outcome of the three-stage pipeline.
//
// Decoded is nil when the payload is not a JSON object. Kind is empty when
// decoding failed, "unknown" for valid JSON that fits no discriminator
// (including non-object documents), and otherwise the type tag (preserved
// verbatim even when unrecognized). Event is non-nil only when the
// document validated against a known schema.
type Result struct {
	Decoded map[string]any
	Kind    string
	Event   Event
}

// Parse runs decode, classify and validate on one payload.
func Parse(payload []byte) Result {
	decoded, ok := decode(payload)
	if !ok {
		return Result{}
	}
	if decoded == nil {
		// Valid JSON but not an object: nothing to classify or project.
		return Result{Kind: KindUnknown}
	}

	kind := classify(decoded)
	res := Result{Decoded: decoded, Kind: kind}
	res.Event = validate(kind, decoded)
	return res
}

// decode parses the payload as UTF-8 JSON. A scalar or array document
// decodes successfully but yields a nil map: it carries no recognizable
// event, yet is still distinct from undecodable bytes.
func decode(payload []byte) (map[string]any, bool) {
	if len(payload) == 0 || !utf8.Valid(payload) {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}

	m, _ := doc.(map[string]any)
	return m, true
}

// classify produces the kind tag. A mapping with a string `type` field
// classifies as that literal; otherwise the COMMS shape {from, text,
// timestamp} is recognized structurally; everything else is unknown.
func classify(doc map[string]any) string {
	if t, ok := stringField(doc, "type"); ok {
		return t
	}
	_, hasFrom := stringField(doc, "from")
	_, hasText := stringField(doc, "text")
	_, hasTimestamp := doc["timestamp"]
	if hasFrom && hasText && hasTimestamp {
		return KindComms
	}
	return KindUnknown
}

// validate dispatches on the kind tag. Kinds outside the closed set have
// no schema and yield nil.
func validate(kind string, doc map[string]any) Event {
	switch kind {
	case KindAgentInit, KindAgentCreated:
		return validateAgentInit(kind, doc)
	case KindAction:
		return validateAction(doc)
	case KindTransaction:
		return validateTransaction(doc)
	case KindRentalInitiated:
		return validateRentalInitiated(doc)
	case KindRentalCompleted:
		return validateRentalCompleted(doc)
	case KindComms:
		return validateComms(doc)
	default:
		return nil
	}
}

func validateAgentInit(kind string, doc map[string]any) Event {
	agentID, ok1 := stringField(doc, "agent_id")
	agentName, ok2 := stringField(doc, "agent_name")
	platform, ok3 := stringField(doc, "platform")
	ts, ok4 := intField(doc, "timestamp")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}

	ev := AgentInit{
		Kind:      kind,
		AgentID:   agentID,
		AgentName: agentName,
		Platform:  platform,
		Timestamp: ts,
	}
	ev.Version, _ = stringField(doc, "version")
	ev.OperatingAccount, _ = stringField(doc, "operating_account")
	ev.Metadata, _ = mapField(doc, "metadata")
	return ev
}

func validateAction(doc map[string]any) Event {
	agentID, ok1 := stringField(doc, "agent_id")
	sessionKey, ok2 := stringField(doc, "session_key")
	action, ok3 := mapField(doc, "action")
	ts, ok4 := intField(doc, "timestamp")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}
	if _, ok := stringField(action, "tool"); !ok {
		return nil
	}

	return Action{
		AgentID:      agentID,
		SessionKey:   sessionKey,
		Action:       action,
		Reasoning:    optionalString(doc, "reasoning"),
		PreviousHash: optionalString(doc, "previous_hash"),
		Timestamp:    ts,
	}
}

func validateTransaction(doc map[string]any) Event {
	agentID, ok1 := stringField(doc, "agent_id")
	txType, ok2 := stringField(doc, "transaction_type")
	txID, ok3 := stringField(doc, "transaction_id")
	details, ok4 := stringField(doc, "details")
	ts, ok5 := intField(doc, "timestamp")
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 {
		return nil
	}

	return Transaction{
		AgentID:         agentID,
		TransactionType: txType,
		TransactionID:   txID,
		Details:         details,
		Reasoning:       optionalString(doc, "reasoning"),
		PreviousHash:    optionalString(doc, "previous_hash"),
		Timestamp:       ts,
	}
}

func validateRentalInitiated(doc map[string]any) Event {
	agentID, ok1 := stringField(doc, "agent_id")
	rentalID, ok2 := stringField(doc, "rental_id")
	renter, ok3 := stringField(doc, "renter")
	escrow, ok4 := stringField(doc, "escrow_account")
	stake, ok5 := floatField(doc, "stake_usd")
	buffer, ok6 := floatField(doc, "buffer_usd")
	ts, ok7 := intField(doc, "timestamp")
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || !ok7 {
		return nil
	}

	return RentalInitiated{
		AgentID:       agentID,
		RentalID:      rentalID,
		Renter:        renter,
		EscrowAccount: escrow,
		StakeUSD:      stake,
		BufferUSD:     buffer,
		Timestamp:     ts,
	}
}

func validateRentalCompleted(doc map[string]any) Event {
	rentalID, ok1 := stringField(doc, "rental_id")
	total, ok2 := floatField(doc, "total_cost_usd")
	settlementDoc, ok3 := mapField(doc, "settlement")
	ts, ok4 := intField(doc, "timestamp")
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return nil
	}

	settlement := make(map[string]float64, 4)
	for _, key := range []string{"owner", "creator", "network", "treasury"} {
		v, ok := floatField(settlementDoc, key)
		if !ok {
			return nil
		}
		settlement[key] = v
	}

	return RentalCompleted{
		RentalID:     rentalID,
		TotalCostUSD: total,
		Settlement:   settlement,
		Timestamp:    ts,
	}
}

func validateComms(doc map[string]any) Event {
	from, ok1 := stringField(doc, "from")
	ts, ok2 := stringField(doc, "timestamp")
	text, ok3 := stringField(doc, "text")
	if !ok1 || !ok2 || !ok3 {
		return nil
	}

	ev := Comms{
		From:      from,
		Timestamp: ts,
		Text:      text,
		To:        optionalString(doc, "to"),
	}
	ev.Metadata, _ = mapField(doc, "metadata")
	return ev
}

// --- field helpers (documents are decoded with json.Number) ---

func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// optionalString distinguishes absent/null from present: both yield nil.
func optionalString(m map[string]any, key string) *string {
	if s, ok := stringField(m, key); ok {
		return &s
	}
	return nil
}

func intField(m map[string]any, key string) (int64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

func floatField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := n.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

func mapField(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	sub, ok := v.(map[string]any)
	return sub, ok
}
