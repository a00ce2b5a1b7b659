package repository

import (
	"context"
	"time"

	"invoicer/internal/domain/entities"
	"invoicer/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "reminder_settings"
	policyItemID             = "reminder_policy"
)

type policyItem struct {
	ID                     string `dynamodbav:"id"`
	Enabled                bool   `dynamodbav:"enabled"`
	BeforeDueOffsets       []int  `dynamodbav:"before_due_offsets"`
	AfterDueOffsets        []int  `dynamodbav:"after_due_offsets"`
	MaxRemindersPerInvoice int    `dynamodbav:"max_reminders_per_invoice"`
	BusinessHoursEnabled   bool   `dynamodbav:"business_hours_enabled"`
	BusinessHoursStart     int    `dynamodbav:"business_hours_start"`
	BusinessHoursEnd       int    `dynamodbav:"business_hours_end"`
	UpdatedAt              string `dynamodbav:"updated_at"`
}

// PolicyDynamoRepository stores the reminder policy as a single settings item.

type PolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyStore = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REMINDER_SETTINGS_TABLE", defaultSettingsTableName),
	}
}

func (r *PolicyDynamoRepository) Get(ctx context.Context) (entities.ReminderPolicy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: policyItemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ReminderPolicy{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultReminderPolicy(), nil
	}
	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ReminderPolicy{}, err
	}
	return entities.ReminderPolicy{
		Enabled:                it.Enabled,
		BeforeDueOffsets:       it.BeforeDueOffsets,
		AfterDueOffsets:        it.AfterDueOffsets,
		MaxRemindersPerInvoice: it.MaxRemindersPerInvoice,
		BusinessHours: entities.BusinessHours{
			Enabled:     it.BusinessHoursEnabled,
			StartMinute: it.BusinessHoursStart,
			EndMinute:   it.BusinessHoursEnd,
		},
	}, nil
}

func (r *PolicyDynamoRepository) Set(ctx context.Context, policy entities.ReminderPolicy) (entities.ReminderPolicy, error) {
	av, err := attributevalue.MarshalMap(policyItem{
		ID:                     policyItemID,
		Enabled:                policy.Enabled,
		BeforeDueOffsets:       policy.BeforeDueOffsets,
		AfterDueOffsets:        policy.AfterDueOffsets,
		MaxRemindersPerInvoice: policy.MaxRemindersPerInvoice,
		BusinessHoursEnabled:   policy.BusinessHours.Enabled,
		BusinessHoursStart:     policy.BusinessHours.StartMinute,
		BusinessHoursEnd:       policy.BusinessHours.EndMinute,
		UpdatedAt:              time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.ReminderPolicy{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ReminderPolicy{}, err
	}
	return policy, nil
}
