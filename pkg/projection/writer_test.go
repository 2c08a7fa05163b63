package projection

import (
	"context"
	"testing"

	"github.com/agentmesh/hcs-indexer/ent"
	"github.com/agentmesh/hcs-indexer/ent/agentcomm"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
	"github.com/agentmesh/hcs-indexer/ent/rental"
	testdb "github.com/agentmesh/hcs-indexer/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "0.0.1001"

func applyJSON(t *testing.T, w *Writer, ts string, seq int64, doc string) {
	t.Helper()
	rec := FromBytes(testTopic, ts, seq, []byte(doc))
	require.NoError(t, w.Apply(context.Background(), rec))
}

func TestWriter_ColdBackfill(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	applyJSON(t, w, "1700000000.000000001", 1,
		`{"type":"AGENT_INIT","agent_id":"atlas","agent_name":"Atlas","platform":"hedera","timestamp":1700000000}`)
	applyJSON(t, w, "1700000000.000000002", 2,
		`{"type":"ACTION","agent_id":"atlas","session_key":"s1","action":{"tool":"search"},"timestamp":1700000001}`)

	// Substrate rows recorded for both messages.
	count, err := client.HCSMessage.Query().
		Where(hcsmessage.TopicID(testTopic)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// Agent upserted, event appended.
	ag, err := client.Agent.Get(ctx, "atlas")
	require.NoError(t, err)
	assert.Equal(t, "Atlas", ag.AgentName)

	events, err := client.AgentEvent.Query().
		Where(agentevent.AgentID("atlas")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, agentevent.EventTypeACTION, events[0].EventType)
	assert.Equal(t, "search", events[0].Action["tool"])

	// Cursor points at the latest applied message.
	cursor, err := client.SyncCursor.Get(ctx, testTopic)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cursor.LastSequenceNumber)
	assert.Equal(t, "1700000000.000000002", cursor.LastTimestamp)
}

func TestWriter_UndecodablePayloadStillAdvancesCursor(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	rec := FromBytes(testTopic, "1700000000.000000005", 5, []byte{0xff, 0xfe, 0x00})
	require.NoError(t, w.Apply(ctx, rec))

	msg, err := client.HCSMessage.Query().
		Where(hcsmessage.TopicID(testTopic), hcsmessage.SequenceNumber(5)).
		Only(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, msg.MessageBase64)
	assert.Nil(t, msg.DecodedJSON)
	assert.Nil(t, msg.MessageType)

	cursor, err := client.SyncCursor.Get(ctx, testTopic)
	require.NoError(t, err)
	assert.Equal(t, int64(5), cursor.LastSequenceNumber)
}

func TestWriter_NonObjectPayloadClassifiedUnknown(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	applyJSON(t, w, "1700000000.000000006", 6, `[1,2,3]`)

	msg, err := client.HCSMessage.Query().
		Where(hcsmessage.TopicID(testTopic), hcsmessage.SequenceNumber(6)).
		Only(ctx)
	require.NoError(t, err)
	assert.Nil(t, msg.DecodedJSON)
	require.NotNil(t, msg.MessageType)
	assert.Equal(t, "unknown", *msg.MessageType)

	cursor, err := client.SyncCursor.Get(ctx, testTopic)
	require.NoError(t, err)
	assert.Equal(t, int64(6), cursor.LastSequenceNumber)
}

func TestWriter_InvalidBase64FromREST(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	rec := FromBase64(testTopic, "1700000000.000000007", 7, "0.0.99", "!!not-base64!!")
	require.NoError(t, w.Apply(ctx, rec))

	msg, err := client.HCSMessage.Query().
		Where(hcsmessage.TopicID(testTopic), hcsmessage.SequenceNumber(7)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "!!not-base64!!", msg.MessageBase64)
	require.NotNil(t, msg.PayerAccountID)
	assert.Equal(t, "0.0.99", *msg.PayerAccountID)
	assert.Nil(t, msg.MessageType)
}

func TestWriter_DuplicateDeliveryIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	doc := `{"type":"ACTION","agent_id":"atlas","session_key":"s1","action":{"tool":"echo"},"timestamp":1700000001}`
	applyJSON(t, w, "1700000000.000000001", 1,
		`{"type":"AGENT_INIT","agent_id":"atlas","agent_name":"Atlas","platform":"hedera","timestamp":1700000000}`)
	applyJSON(t, w, "1700000000.000000002", 2, doc)

	// Redelivery of both messages (stream/backfill overlap) changes nothing.
	applyJSON(t, w, "1700000000.000000001", 1,
		`{"type":"AGENT_INIT","agent_id":"atlas","agent_name":"Atlas","platform":"hedera","timestamp":1700000000}`)
	applyJSON(t, w, "1700000000.000000002", 2, doc)

	msgCount, err := client.HCSMessage.Query().Where(hcsmessage.TopicID(testTopic)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, msgCount)

	eventCount, err := client.AgentEvent.Query().Where(agentevent.AgentID("atlas")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, eventCount)

	cursor, err := client.SyncCursor.Get(ctx, testTopic)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cursor.LastSequenceNumber)
}

func TestWriter_RentalLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	applyJSON(t, w, "1700000000.000000001", 1,
		`{"type":"RENTAL_INITIATED","agent_id":"atlas","rental_id":"r1","renter":"0.0.500","escrow_account":"0.0.501","stake_usd":10.00,"buffer_usd":5.00,"timestamp":1700000000}`)

	r, err := client.Rental.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, rental.StatusInitiated, r.Status)
	require.NotNil(t, r.StakeUsd)
	assert.InDelta(t, 10.00, *r.StakeUsd, 1e-9)
	assert.Nil(t, r.TotalCostUsd)

	applyJSON(t, w, "1700000000.000000002", 2,
		`{"type":"RENTAL_COMPLETED","rental_id":"r1","total_cost_usd":7.50,"settlement":{"owner":6.90,"creator":0.375,"network":0.15,"treasury":0.075},"timestamp":1700000004}`)

	r, err = client.Rental.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, rental.StatusCompleted, r.Status)
	require.NotNil(t, r.TotalCostUsd)
	assert.InDelta(t, 7.50, *r.TotalCostUsd, 1e-9)
	require.NotNil(t, r.CompletedAt)
	assert.Equal(t, int64(1700000004), *r.CompletedAt)
	assert.InDelta(t, 0.075, r.Settlement["treasury"].(float64), 1e-9)
}

func TestWriter_OrphanRentalCompletionIsNoOp(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	applyJSON(t, w, "1700000000.000000001", 1,
		`{"type":"RENTAL_COMPLETED","rental_id":"ghost","total_cost_usd":1.00,"settlement":{"owner":0.9,"creator":0.05,"network":0.03,"treasury":0.02},"timestamp":1700000004}`)

	count, err := client.Rental.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// The substrate record and cursor still advance past the orphan.
	cursor, err := client.SyncCursor.Get(ctx, testTopic)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cursor.LastSequenceNumber)
}

func TestWriter_ActionFromUnknownAgentCreatesNothing(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	applyJSON(t, w, "1700000000.000000001", 1,
		`{"type":"ACTION","agent_id":"stranger","session_key":"s1","action":{"tool":"noop"},"timestamp":1700000001}`)

	_, err := client.Agent.Get(ctx, "stranger")
	assert.True(t, ent.IsNotFound(err))

	// The event row itself is still appended.
	count, err := client.AgentEvent.Query().Where(agentevent.AgentID("stranger")).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWriter_CommsWithoutRecipient(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	applyJSON(t, w, "1700000000.000000001", 1,
		`{"from":"atlas","text":"anyone trading?","timestamp":"2023-11-14T22:13:20Z"}`)

	comm, err := client.AgentComm.Query().
		Where(agentcomm.TopicID(testTopic)).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "atlas", comm.FromAgent)
	assert.Nil(t, comm.ToAgent)
	assert.Equal(t, "anyone trading?", comm.Text)
	assert.Equal(t, "2023-11-14T22:13:20Z", comm.Timestamp)
}

func TestWriter_AgentReinitUpdatesProfile(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	applyJSON(t, w, "1700000000.000000001", 1,
		`{"type":"AGENT_INIT","agent_id":"atlas","agent_name":"Atlas","platform":"hedera","version":"1.0.0","timestamp":1700000000}`)
	applyJSON(t, w, "1700000000.000000002", 2,
		`{"type":"AGENT_INIT","agent_id":"atlas","agent_name":"Atlas v2","platform":"hedera","version":"2.0.0","timestamp":1700000010}`)

	ag, err := client.Agent.Get(ctx, "atlas")
	require.NoError(t, err)
	assert.Equal(t, "Atlas v2", ag.AgentName)
	require.NotNil(t, ag.Version)
	assert.Equal(t, "2.0.0", *ag.Version)

	count, err := client.Agent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestWriter_UnrecognizedTypeStoredButNotProjected(t *testing.T) {
	client := testdb.NewTestClient(t)
	w := NewWriter(client.Client)
	ctx := context.Background()

	applyJSON(t, w, "1700000000.000000001", 1, `{"type":"FUTURE_EVENT","data":42}`)

	msg, err := client.HCSMessage.Query().
		Where(hcsmessage.TopicID(testTopic), hcsmessage.SequenceNumber(1)).
		Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, msg.MessageType)
	assert.Equal(t, "FUTURE_EVENT", *msg.MessageType)

	events, err := client.AgentEvent.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, events)
}
