package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DecodeFailures(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"empty payload", nil},
		{"invalid utf8", []byte{0xff, 0xfe, 0xfd}},
		{"not json", []byte("hello world")},
		{"truncated json", []byte(`{"type":`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Parse(tt.payload)
			assert.Nil(t, res.Decoded)
			assert.Empty(t, res.Kind)
			assert.Nil(t, res.Event)
		})
	}
}

func TestParse_NonMappingDocuments(t *testing.T) {
	// Valid JSON that is not an object classifies as unknown, unlike
	// undecodable bytes which leave the kind empty.
	for _, payload := range []string{`[1,2,3]`, `"just a string"`, `42`, `null`} {
		res := Parse([]byte(payload))
		assert.Nil(t, res.Decoded, payload)
		assert.Equal(t, KindUnknown, res.Kind, payload)
		assert.Nil(t, res.Event, payload)
	}
}

func TestParse_ClassifyUnknown(t *testing.T) {
	res := Parse([]byte(`{"foo":"bar"}`))
	require.NotNil(t, res.Decoded)
	assert.Equal(t, KindUnknown, res.Kind)
	assert.Nil(t, res.Event)
}

func TestParse_UnrecognizedTypePreservedVerbatim(t *testing.T) {
	res := Parse([]byte(`{"type":"SOMETHING_NEW","payload":1}`))
	assert.Equal(t, "SOMETHING_NEW", res.Kind)
	assert.Nil(t, res.Event)
}

func TestParse_AgentInit(t *testing.T) {
	payload := []byte(`{
		"type": "AGENT_INIT",
		"agent_id": "a1",
		"agent_name": "Atlas",
		"platform": "hedera",
		"version": "1.2.0",
		"operating_account": "0.0.77",
		"timestamp": 1700000000,
		"metadata": {"region": "eu"}
	}`)

	res := Parse(payload)
	assert.Equal(t, KindAgentInit, res.Kind)

	ev, ok := res.Event.(AgentInit)
	require.True(t, ok)
	assert.Equal(t, KindAgentInit, ev.EventKind())
	assert.Equal(t, "a1", ev.AgentID)
	assert.Equal(t, "Atlas", ev.AgentName)
	assert.Equal(t, "hedera", ev.Platform)
	assert.Equal(t, "1.2.0", ev.Version)
	assert.Equal(t, "0.0.77", ev.OperatingAccount)
	assert.Equal(t, int64(1700000000), ev.Timestamp)
	assert.Equal(t, "eu", ev.Metadata["region"])
}

func TestParse_AgentCreatedSharesSchema(t *testing.T) {
	res := Parse([]byte(`{"type":"AGENT_CREATED","agent_id":"a2","agent_name":"B","platform":"x","timestamp":1}`))
	ev, ok := res.Event.(AgentInit)
	require.True(t, ok)
	assert.Equal(t, KindAgentCreated, ev.EventKind())
}

func TestParse_AgentInit_MissingRequiredField(t *testing.T) {
	// No platform
	res := Parse([]byte(`{"type":"AGENT_INIT","agent_id":"a1","agent_name":"Atlas","timestamp":1}`))
	assert.Equal(t, KindAgentInit, res.Kind)
	assert.Nil(t, res.Event)
}

func TestParse_Action(t *testing.T) {
	payload := []byte(`{
		"type": "ACTION",
		"agent_id": "a1",
		"session_key": "s-9",
		"action": {"tool": "search", "parameters": {"q": "price"}, "result": "ok"},
		"reasoning": "needed a quote",
		"previous_hash": "abc123",
		"timestamp": 1700000001
	}`)

	res := Parse(payload)
	ev, ok := res.Event.(Action)
	require.True(t, ok)
	assert.Equal(t, "a1", ev.AgentID)
	assert.Equal(t, "s-9", ev.SessionKey)
	assert.Equal(t, "search", ev.Action["tool"])
	require.NotNil(t, ev.Reasoning)
	assert.Equal(t, "needed a quote", *ev.Reasoning)
	require.NotNil(t, ev.PreviousHash)
	assert.Equal(t, "abc123", *ev.PreviousHash)
}

func TestParse_Action_MissingTool(t *testing.T) {
	res := Parse([]byte(`{"type":"ACTION","agent_id":"a1","session_key":"s","action":{},"timestamp":1}`))
	assert.Equal(t, KindAction, res.Kind)
	assert.Nil(t, res.Event)
}

func TestParse_Transaction_NullReasoning(t *testing.T) {
	payload := []byte(`{
		"type": "TRANSACTION",
		"agent_id": "a1",
		"transaction_type": "transfer",
		"transaction_id": "tx-1",
		"details": "moved 5 hbar",
		"reasoning": null,
		"timestamp": 1700000002
	}`)

	res := Parse(payload)
	ev, ok := res.Event.(Transaction)
	require.True(t, ok)
	assert.Equal(t, "transfer", ev.TransactionType)
	assert.Equal(t, "tx-1", ev.TransactionID)
	assert.Equal(t, "moved 5 hbar", ev.Details)
	assert.Nil(t, ev.Reasoning)
	assert.Nil(t, ev.PreviousHash)
}

func TestParse_RentalInitiated(t *testing.T) {
	payload := []byte(`{
		"type": "RENTAL_INITIATED",
		"agent_id": "a1",
		"rental_id": "r1",
		"renter": "0.0.500",
		"escrow_account": "0.0.501",
		"stake_usd": 10.00,
		"buffer_usd": 5.00,
		"timestamp": 1700000003
	}`)

	res := Parse(payload)
	ev, ok := res.Event.(RentalInitiated)
	require.True(t, ok)
	assert.Equal(t, "r1", ev.RentalID)
	assert.InDelta(t, 10.00, ev.StakeUSD, 1e-9)
	assert.InDelta(t, 5.00, ev.BufferUSD, 1e-9)
}

func TestParse_RentalCompleted(t *testing.T) {
	payload := []byte(`{
		"type": "RENTAL_COMPLETED",
		"rental_id": "r1",
		"total_cost_usd": 7.50,
		"settlement": {"owner": 6.90, "creator": 0.375, "network": 0.15, "treasury": 0.075},
		"timestamp": 1700000004
	}`)

	res := Parse(payload)
	ev, ok := res.Event.(RentalCompleted)
	require.True(t, ok)
	assert.InDelta(t, 7.50, ev.TotalCostUSD, 1e-9)
	assert.InDelta(t, 6.90, ev.Settlement["owner"], 1e-9)
	assert.InDelta(t, 0.075, ev.Settlement["treasury"], 1e-9)
}

func TestParse_RentalCompleted_IncompleteSettlement(t *testing.T) {
	res := Parse([]byte(`{"type":"RENTAL_COMPLETED","rental_id":"r1","total_cost_usd":7.5,"settlement":{"owner":6.9},"timestamp":1}`))
	assert.Equal(t, KindRentalCompleted, res.Kind)
	assert.Nil(t, res.Event)
}

func TestParse_Comms_StructuralClassification(t *testing.T) {
	payload := []byte(`{
		"from": "a1",
		"to": "a2",
		"text": "ready to trade",
		"timestamp": "2023-11-14T22:13:20Z",
		"metadata": {"thread": "t-1"}
	}`)

	res := Parse(payload)
	assert.Equal(t, KindComms, res.Kind)

	ev, ok := res.Event.(Comms)
	require.True(t, ok)
	assert.Equal(t, "a1", ev.From)
	require.NotNil(t, ev.To)
	assert.Equal(t, "a2", *ev.To)
	assert.Equal(t, "ready to trade", ev.Text)
	assert.Equal(t, "2023-11-14T22:13:20Z", ev.Timestamp)
}

func TestParse_Comms_MissingToIsValid(t *testing.T) {
	res := Parse([]byte(`{"from":"a1","text":"hi","timestamp":"2023-11-14T22:13:20Z"}`))
	ev, ok := res.Event.(Comms)
	require.True(t, ok)
	assert.Nil(t, ev.To)
}

func TestParse_Comms_NumericTimestampFailsValidation(t *testing.T) {
	// Structural fallback accepts any timestamp, but the COMMS schema
	// requires a string one.
	res := Parse([]byte(`{"from":"a1","text":"hi","timestamp":1700000000}`))
	assert.Equal(t, KindComms, res.Kind)
	assert.Nil(t, res.Event)
}

func TestParse_TimestampMustBeIntegral(t *testing.T) {
	res := Parse([]byte(`{"type":"AGENT_INIT","agent_id":"a1","agent_name":"A","platform":"p","timestamp":17.5}`))
	assert.Equal(t, KindAgentInit, res.Kind)
	assert.Nil(t, res.Event)
}

func TestParse_TypeFieldNotAString(t *testing.T) {
	res := Parse([]byte(`{"type":7}`))
	assert.Equal(t, KindUnknown, res.Kind)
	assert.Nil(t, res.Event)
}
