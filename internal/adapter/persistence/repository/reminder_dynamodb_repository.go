package repository

import (
	"context"
	"errors"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultRemindersTableName = "reminders"
	remindersInvoiceIDIndex   = "invoice_id-index"
	remindersStatusIndex      = "status-index"
)

type reminderItem struct {
	ID                string `dynamodbav:"id"`
	InvoiceID         string `dynamodbav:"invoice_id"`
	Type              string `dynamodbav:"type"`
	OffsetDays        *int   `dynamodbav:"offset_days,omitempty"`
	Status            string `dynamodbav:"status"`
	Attempts          int    `dynamodbav:"attempts"`
	NextAttemptAt     string `dynamodbav:"next_attempt_at"`
	LastAttemptAt     string `dynamodbav:"last_attempt_at,omitempty"`
	SentAt            string `dynamodbav:"sent_at,omitempty"`
	FailedAt          string `dynamodbav:"failed_at,omitempty"`
	CancelledAt       string `dynamodbav:"cancelled_at,omitempty"`
	MessageID         string `dynamodbav:"message_id,omitempty"`
	Error             string `dynamodbav:"error,omitempty"`
	RescheduledReason string `dynamodbav:"rescheduled_reason,omitempty"`
	Manual            bool   `dynamodbav:"manual,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// ReminderDynamoRepository persists the reminder ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
//   - GSI: status-index (PK: status, SK: next_attempt_at) — due scans query
//     this index with a range condition instead of scanning the table.

type ReminderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReminderLedger = (*ReminderDynamoRepository)(nil)

func NewReminderDynamoRepository(ddb *dynamodb.Client) *ReminderDynamoRepository {
	return &ReminderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REMINDERS_TABLE", defaultRemindersTableName),
	}
}

func (r *ReminderDynamoRepository) Append(ctx context.Context, draft entities.ReminderDraft) (entities.Reminder, error) {
	now := time.Now().UTC()
	rem := entities.Reminder{
		ID:            uuid.NewString(),
		InvoiceID:     draft.InvoiceID,
		Type:          draft.Type,
		OffsetDays:    draft.OffsetDays,
		Status:        draft.Status,
		Attempts:      draft.Attempts,
		NextAttemptAt: draft.NextAttemptAt,
		Manual:        draft.Manual,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	av, err := attributevalue.MarshalMap(toReminderItem(rem))
	if err != nil {
		return entities.Reminder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Reminder{}, err
	}
	return rem, nil
}

func (r *ReminderDynamoRepository) List(ctx context.Context) ([]entities.Reminder, error) {
	var out []entities.Reminder
	var startKey map[string]types.AttributeValue
	for {
		page, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		items, err := unmarshalReminders(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
		if len(page.LastEvaluatedKey) == 0 {
			return out, nil
		}
		startKey = page.LastEvaluatedKey
	}
}

func (r *ReminderDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Reminder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(remindersInvoiceIDIndex),
		KeyConditionExpression: aws.String("invoice_id = :iid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":iid": &types.AttributeValueMemberS{Value: invoiceID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalReminders(out.Items)
}

func (r *ReminderDynamoRepository) ListDue(ctx context.Context, now time.Time) ([]entities.Reminder, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(remindersStatusIndex),
		KeyConditionExpression: aws.String("#status = :status AND #next_attempt_at <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status":          "status",
			"#next_attempt_at": "next_attempt_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(entities.ReminderStatusScheduled)},
			":now":    &types.AttributeValueMemberS{Value: now.UTC().Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalReminders(out.Items)
}

func (r *ReminderDynamoRepository) UpdateByID(ctx context.Context, id string, update interfaces.ReminderUpdate) (entities.Reminder, error) {
	expr := "SET #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
	}
	names := map[string]string{
		"#updated_at": "updated_at",
		"#id":         "id",
	}

	set := func(attr string, v types.AttributeValue) {
		placeholder := ":" + attr
		nameKey := "#" + attr
		expr += ", " + nameKey + " = " + placeholder
		values[placeholder] = v
		names[nameKey] = attr
	}
	if update.Status != nil {
		set("status", &types.AttributeValueMemberS{Value: string(*update.Status)})
	}
	if update.Attempts != nil {
		set("attempts", &types.AttributeValueMemberN{Value: intToString(*update.Attempts)})
	}
	if update.NextAttemptAt != nil {
		set("next_attempt_at", &types.AttributeValueMemberS{Value: update.NextAttemptAt.UTC().Format(time.RFC3339Nano)})
	}
	if update.LastAttemptAt != nil {
		set("last_attempt_at", &types.AttributeValueMemberS{Value: update.LastAttemptAt.UTC().Format(time.RFC3339Nano)})
	}
	if update.SentAt != nil {
		set("sent_at", &types.AttributeValueMemberS{Value: update.SentAt.UTC().Format(time.RFC3339Nano)})
	}
	if update.FailedAt != nil {
		set("failed_at", &types.AttributeValueMemberS{Value: update.FailedAt.UTC().Format(time.RFC3339Nano)})
	}
	if update.CancelledAt != nil {
		set("cancelled_at", &types.AttributeValueMemberS{Value: update.CancelledAt.UTC().Format(time.RFC3339Nano)})
	}
	if update.MessageID != nil {
		set("message_id", &types.AttributeValueMemberS{Value: *update.MessageID})
	}
	if update.Error != nil {
		set("error", &types.AttributeValueMemberS{Value: *update.Error})
	}
	if update.RescheduledReason != nil {
		set("rescheduled_reason", &types.AttributeValueMemberS{Value: *update.RescheduledReason})
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Reminder{}, nil
		}
		return entities.Reminder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Reminder{}, nil
	}
	var it reminderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Reminder{}, err
	}
	return fromReminderItem(it), nil
}

func unmarshalReminders(raw []map[string]types.AttributeValue) ([]entities.Reminder, error) {
	items := make([]entities.Reminder, 0, len(raw))
	for _, m := range raw {
		var it reminderItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		items = append(items, fromReminderItem(it))
	}
	return items, nil
}

func toReminderItem(r entities.Reminder) reminderItem {
	return reminderItem{
		ID:                r.ID,
		InvoiceID:         r.InvoiceID,
		Type:              string(r.Type),
		OffsetDays:        r.OffsetDays,
		Status:            string(r.Status),
		Attempts:          r.Attempts,
		NextAttemptAt:     r.NextAttemptAt.UTC().Format(time.RFC3339Nano),
		LastAttemptAt:     timePtrToString(r.LastAttemptAt),
		SentAt:            timePtrToString(r.SentAt),
		FailedAt:          timePtrToString(r.FailedAt),
		CancelledAt:       timePtrToString(r.CancelledAt),
		MessageID:         r.MessageID,
		Error:             r.Error,
		RescheduledReason: r.RescheduledReason,
		Manual:            r.Manual,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromReminderItem(it reminderItem) entities.Reminder {
	nextAttemptAt, _ := time.Parse(time.RFC3339Nano, it.NextAttemptAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Reminder{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		Type:              entities.ReminderType(it.Type),
		OffsetDays:        it.OffsetDays,
		Status:            entities.ReminderStatus(it.Status),
		Attempts:          it.Attempts,
		NextAttemptAt:     nextAttemptAt,
		LastAttemptAt:     stringToTimePtr(it.LastAttemptAt),
		SentAt:            stringToTimePtr(it.SentAt),
		FailedAt:          stringToTimePtr(it.FailedAt),
		CancelledAt:       stringToTimePtr(it.CancelledAt),
		MessageID:         it.MessageID,
		Error:             it.Error,
		RescheduledReason: it.RescheduledReason,
		Manual:            it.Manual,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
