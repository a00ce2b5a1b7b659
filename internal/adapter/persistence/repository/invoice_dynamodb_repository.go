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
)

const (
	defaultInvoicesTableName = "invoices"
	invoicesStatusIndex      = "status-index"
)

type invoiceHistoryItem struct {
	ID         string `dynamodbav:"id"`
	Type       string `dynamodbav:"type"`
	OffsetDays *int   `dynamodbav:"offset_days,omitempty"`
	SentAt     string `dynamodbav:"sent_at"`
	MessageID  string `dynamodbav:"message_id,omitempty"`
}

type invoiceItem struct {
	ID              string               `dynamodbav:"id"`
	ClientID        string               `dynamodbav:"client_id"`
	ClientEmail     string               `dynamodbav:"client_email"`
	Total           float64              `dynamodbav:"total"`
	DueDate         string               `dynamodbav:"due_date,omitempty"`
	Status          string               `dynamodbav:"status"`
	ReminderHistory []invoiceHistoryItem `dynamodbav:"reminder_history,omitempty"`
	CreatedAt       string               `dynamodbav:"created_at"`
	UpdatedAt       string               `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository reads the invoice table owned by the invoicing
// service. Writes are restricted to status and reminder_history.

type InvoiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb *dynamodb.Client) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListUnpaid(ctx context.Context) ([]entities.Invoice, error) {
	unpaid := []entities.InvoiceStatus{
		entities.InvoiceStatusDraft,
		entities.InvoiceStatusSent,
		entities.InvoiceStatusPartial,
		entities.InvoiceStatusOverdue,
	}
	var out []entities.Invoice
	for _, status := range unpaid {
		page, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(invoicesStatusIndex),
			KeyConditionExpression: aws.String("#status = :status"),
			ExpressionAttributeNames: map[string]string{
				"#status": "status",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":status": &types.AttributeValueMemberS{Value: string(status)},
			},
		})
		if err != nil {
			return nil, err
		}
		for _, m := range page.Items {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(m, &it); err != nil {
				return nil, err
			}
			out = append(out, fromInvoiceItem(it))
		}
	}
	return out, nil
}

func (r *InvoiceDynamoRepository) UpdateStatusByID(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) AppendReminderHistory(ctx context.Context, id string, entry entities.ReminderHistoryEntry) (entities.Invoice, error) {
	entryAV, err := attributevalue.MarshalMap(invoiceHistoryItem{
		ID:         entry.ID,
		Type:       string(entry.Type),
		OffsetDays: entry.OffsetDays,
		SentAt:     entry.SentAt.UTC().Format(time.RFC3339Nano),
		MessageID:  entry.MessageID,
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #rh = list_append(if_not_exists(#rh, :empty), :entry), #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#rh":         "reminder_history",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":entry":      &types.AttributeValueMemberL{Value: []types.AttributeValue{&types.AttributeValueMemberM{Value: entryAV}}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	inv := entities.Invoice{
		ID:          it.ID,
		ClientID:    it.ClientID,
		ClientEmail: it.ClientEmail,
		Total:       it.Total,
		DueDate:     stringToTimePtr(it.DueDate),
		Status:      entities.InvoiceStatus(it.Status),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	for _, h := range it.ReminderHistory {
		sentAt, _ := time.Parse(time.RFC3339Nano, h.SentAt)
		inv.ReminderHistory = append(inv.ReminderHistory, entities.ReminderHistoryEntry{
			ID:         h.ID,
			Type:       entities.ReminderType(h.Type),
			OffsetDays: h.OffsetDays,
			SentAt:     sentAt,
			MessageID:  h.MessageID,
		})
	}
	return inv
}
