// Package projection applies parsed topic messages to durable state. Each
// message is one atomic unit: the substrate record insert, the entity
// projection and the cursor advance either all commit or all roll back,
// so the cursor can never run ahead of the audit trail.
package projection

import (
	"context"
	stdsql "database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/agentmesh/hcs-indexer/ent"
	"github.com/agentmesh/hcs-indexer/ent/agent"
	"github.com/agentmesh/hcs-indexer/ent/agentevent"
	"github.com/agentmesh/hcs-indexer/ent/hcsmessage"
	"github.com/agentmesh/hcs-indexer/ent/rental"
	"github.com/agentmesh/hcs-indexer/pkg/parser"
)

// Record is a received message before interpretation. Payload carries the
// decoded payload bytes when available; MessageBase64 always carries the
// wire form exactly as received.
type Record struct {
	TopicID            string
	ConsensusTimestamp string
	SequenceNumber     int64
	PayerAccountID     string
	MessageBase64      string
	Payload            []byte
}

// FromBytes builds a Record from raw payload bytes (push-stream delivery).
func FromBytes(topicID, consensusTimestamp string, sequenceNumber int64, payload []byte) Record {
	return Record{
		TopicID:            topicID,
		ConsensusTimestamp: consensusTimestamp,
		SequenceNumber:     sequenceNumber,
		MessageBase64:      base64.StdEncoding.EncodeToString(payload),
		Payload:            payload,
	}
}

// FromBase64 builds a Record from a base64 wire payload (REST delivery).
// An undecodable payload keeps its wire form and yields no payload bytes;
// the parser then classifies it as undecoded.
func FromBase64(topicID, consensusTimestamp string, sequenceNumber int64, payer, messageBase64 string) Record {
	rec := Record{
		TopicID:            topicID,
		ConsensusTimestamp: consensusTimestamp,
		SequenceNumber:     sequenceNumber,
		PayerAccountID:     payer,
		MessageBase64:      messageBase64,
	}
	if payload, err := base64.StdEncoding.DecodeString(messageBase64); err == nil {
		rec.Payload = payload
	}
	return rec
}

// Writer materializes records into Postgres.
type Writer struct {
	client *ent.Client
}

// NewWriter creates a projection writer on the given ent client.
func NewWriter(client *ent.Client) *Writer {
	return &Writer{client: client}
}

// LastTimestamp returns the consensus timestamp of the last applied message
// for a topic, or "" when the topic has never been materialized.
func (w *Writer) LastTimestamp(ctx context.Context, topicID string) (string, error) {
	cursor, err := w.client.SyncCursor.Get(ctx, topicID)
	if ent.IsNotFound(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read cursor for topic %s: %w", topicID, err)
	}
	return cursor.LastTimestamp, nil
}

// Apply parses and applies one record in a single transaction. Records at
// or below the topic cursor are duplicates and are skipped entirely —
// the cursor is the sole dedup authority for the append-only tables.
func (w *Writer) Apply(ctx context.Context, rec Record) error {
	res := parser.Parse(rec.Payload)

	tx, err := w.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	cursor, err := tx.SyncCursor.Get(ctx, rec.TopicID)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to read cursor for topic %s: %w", rec.TopicID, err)
	}
	if cursor != nil && rec.SequenceNumber <= cursor.LastSequenceNumber {
		slog.Debug("Skipping already-materialized message",
			"topic_id", rec.TopicID,
			"sequence_number", rec.SequenceNumber,
			"cursor", cursor.LastSequenceNumber)
		return tx.Commit()
	}

	if err := insertSubstrateRecord(ctx, tx, rec, res); err != nil {
		return err
	}

	if res.Event != nil {
		if err := project(ctx, tx, rec, res); err != nil {
			return err
		}
	}

	if err := advanceCursor(ctx, tx, cursor, rec); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit message %s/%d: %w", rec.TopicID, rec.SequenceNumber, err)
	}
	return nil
}

// insertSubstrateRecord writes the raw audit row. The unique constraint on
// (topic_id, sequence_number) backstops the cursor check against races.
func insertSubstrateRecord(ctx context.Context, tx *ent.Tx, rec Record, res parser.Result) error {
	builder := tx.HCSMessage.Create().
		SetTopicID(rec.TopicID).
		SetConsensusTimestamp(rec.ConsensusTimestamp).
		SetSequenceNumber(rec.SequenceNumber).
		SetMessageBase64(rec.MessageBase64)

	if rec.PayerAccountID != "" {
		builder.SetPayerAccountID(rec.PayerAccountID)
	}
	if res.Decoded != nil {
		builder.SetDecodedJSON(res.Decoded)
	}
	if res.Kind != "" {
		builder.SetMessageType(res.Kind)
	}

	err := builder.
		OnConflictColumns(hcsmessage.FieldTopicID, hcsmessage.FieldSequenceNumber).
		DoNothing().
		Exec(ctx)
	// DO NOTHING yields no row for Postgres RETURNING on conflict; that is
	// a duplicate, not a failure.
	if err != nil && !errors.Is(err, stdsql.ErrNoRows) {
		return fmt.Errorf("failed to insert substrate record %s/%d: %w", rec.TopicID, rec.SequenceNumber, err)
	}
	return nil
}

// project dispatches a validated event to its entity projector.
func project(ctx context.Context, tx *ent.Tx, rec Record, res parser.Result) error {
	switch ev := res.Event.(type) {
	case parser.AgentInit:
		return projectAgentInit(ctx, tx, ev)
	case parser.Action:
		return projectAction(ctx, tx, rec, ev, res.Decoded)
	case parser.Transaction:
		return projectTransaction(ctx, tx, rec, ev, res.Decoded)
	case parser.RentalInitiated:
		return projectRentalInitiated(ctx, tx, ev)
	case parser.RentalCompleted:
		return projectRentalCompleted(ctx, tx, ev)
	case parser.Comms:
		return projectComms(ctx, tx, rec, ev)
	default:
		// Classified-only kinds carry no projection.
		return nil
	}
}

func projectAgentInit(ctx context.Context, tx *ent.Tx, ev parser.AgentInit) error {
	now := time.Now()

	builder := tx.Agent.Create().
		SetID(ev.AgentID).
		SetAgentName(ev.AgentName).
		SetPlatform(ev.Platform).
		SetFirstSeenAt(now).
		SetLastSeenAt(now)
	if ev.Version != "" {
		builder.SetVersion(ev.Version)
	}
	if ev.OperatingAccount != "" {
		builder.SetOperatingAccount(ev.OperatingAccount)
	}
	if ev.Metadata != nil {
		builder.SetMetadata(ev.Metadata)
	}

	err := builder.
		OnConflict(sql.ConflictColumns(agent.FieldID)).
		Update(func(u *ent.AgentUpsert) {
			u.SetAgentName(ev.AgentName)
			u.SetPlatform(ev.Platform)
			u.SetLastSeenAt(now)
			if ev.Version != "" {
				u.SetVersion(ev.Version)
			}
			if ev.OperatingAccount != "" {
				u.SetOperatingAccount(ev.OperatingAccount)
			}
			if ev.Metadata != nil {
				u.SetMetadata(ev.Metadata)
			}
		}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert agent %s: %w", ev.AgentID, err)
	}
	return nil
}

func projectAction(ctx context.Context, tx *ent.Tx, rec Record, ev parser.Action, raw map[string]any) error {
	builder := tx.AgentEvent.Create().
		SetAgentID(ev.AgentID).
		SetEventType(agentevent.EventType(parser.KindAction)).
		SetSessionKey(ev.SessionKey).
		SetAction(ev.Action).
		SetTimestamp(ev.Timestamp).
		SetConsensusTimestamp(rec.ConsensusTimestamp).
		SetRawData(raw)
	if ev.Reasoning != nil {
		builder.SetReasoning(*ev.Reasoning)
	}
	if ev.PreviousHash != nil {
		builder.SetPreviousHash(*ev.PreviousHash)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append action event for agent %s: %w", ev.AgentID, err)
	}
	return touchAgent(ctx, tx, ev.AgentID)
}

func projectTransaction(ctx context.Context, tx *ent.Tx, rec Record, ev parser.Transaction, raw map[string]any) error {
	builder := tx.AgentEvent.Create().
		SetAgentID(ev.AgentID).
		SetEventType(agentevent.EventType(parser.KindTransaction)).
		SetTransactionID(ev.TransactionID).
		SetTransactionType(ev.TransactionType).
		SetDetails(ev.Details).
		SetTimestamp(ev.Timestamp).
		SetConsensusTimestamp(rec.ConsensusTimestamp).
		SetRawData(raw)
	if ev.Reasoning != nil {
		builder.SetReasoning(*ev.Reasoning)
	}
	if ev.PreviousHash != nil {
		builder.SetPreviousHash(*ev.PreviousHash)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append transaction event for agent %s: %w", ev.AgentID, err)
	}
	return touchAgent(ctx, tx, ev.AgentID)
}

// touchAgent advances last_seen_at for an agent if it exists. Activity
// from agents that never initialized creates nothing.
func touchAgent(ctx context.Context, tx *ent.Tx, agentID string) error {
	err := tx.Agent.UpdateOneID(agentID).
		SetLastSeenAt(time.Now()).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to touch agent %s: %w", agentID, err)
	}
	return nil
}

func projectRentalInitiated(ctx context.Context, tx *ent.Tx, ev parser.RentalInitiated) error {
	err := tx.Rental.Create().
		SetID(ev.RentalID).
		SetAgentID(ev.AgentID).
		SetRenter(ev.Renter).
		SetEscrowAccount(ev.EscrowAccount).
		SetStakeUsd(ev.StakeUSD).
		SetBufferUsd(ev.BufferUSD).
		SetStatus(rental.StatusInitiated).
		SetInitiatedAt(ev.Timestamp).
		OnConflictColumns(rental.FieldID).
		DoNothing().
		Exec(ctx)
	if err != nil && !errors.Is(err, stdsql.ErrNoRows) {
		return fmt.Errorf("failed to insert rental %s: %w", ev.RentalID, err)
	}
	return nil
}

func projectRentalCompleted(ctx context.Context, tx *ent.Tx, ev parser.RentalCompleted) error {
	settlement := make(map[string]any, len(ev.Settlement))
	for k, v := range ev.Settlement {
		settlement[k] = v
	}

	err := tx.Rental.UpdateOneID(ev.RentalID).
		SetStatus(rental.StatusCompleted).
		SetTotalCostUsd(ev.TotalCostUSD).
		SetSettlement(settlement).
		SetCompletedAt(ev.Timestamp).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if ent.IsNotFound(err) {
		// The initiation may arrive in a later backfill window; the cursor
		// still advances.
		slog.Debug("Rental completion without matching initiation", "rental_id", ev.RentalID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to complete rental %s: %w", ev.RentalID, err)
	}
	return nil
}

func projectComms(ctx context.Context, tx *ent.Tx, rec Record, ev parser.Comms) error {
	builder := tx.AgentComm.Create().
		SetTopicID(rec.TopicID).
		SetFromAgent(ev.From).
		SetText(ev.Text).
		SetTimestamp(ev.Timestamp).
		SetConsensusTimestamp(rec.ConsensusTimestamp)
	if ev.To != nil {
		builder.SetToAgent(*ev.To)
	}
	if ev.Metadata != nil {
		builder.SetMetadata(ev.Metadata)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append comms from %s: %w", ev.From, err)
	}
	return nil
}

// advanceCursor moves the topic cursor to the applied record. At most one
// supervisor runs per topic, so read-then-write inside the transaction is
// race-free.
func advanceCursor(ctx context.Context, tx *ent.Tx, cursor *ent.SyncCursor, rec Record) error {
	if cursor == nil {
		err := tx.SyncCursor.Create().
			SetID(rec.TopicID).
			SetLastTimestamp(rec.ConsensusTimestamp).
			SetLastSequenceNumber(rec.SequenceNumber).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create cursor for topic %s: %w", rec.TopicID, err)
		}
		return nil
	}

	err := tx.SyncCursor.UpdateOne(cursor).
		SetLastTimestamp(rec.ConsensusTimestamp).
		SetLastSequenceNumber(rec.SequenceNumber).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to advance cursor for topic %s: %w", rec.TopicID, err)
	}
	return nil
}
