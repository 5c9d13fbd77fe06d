package repository

import (
	"context"
	"strconv"
	"time"

	"solarvizyon/internal/domain/entities"
	"solarvizyon/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultLeadsTableName = "leads"

type leadItem struct {
	ID                    string `dynamodbav:"id"`
	Name                  string `dynamodbav:"name"`
	Phone                 string `dynamodbav:"phone"`
	Email                 string `dynamodbav:"email,omitempty"`
	Company               string `dynamodbav:"company,omitempty"`
	LocationID            string `dynamodbav:"location_id"`
	SystemMode            string `dynamodbav:"system_mode"`
	MonthlyConsumptionKWh string `dynamodbav:"monthly_consumption_kwh"`
	Notes                 string `dynamodbav:"notes,omitempty"`
	CreatedAt             string `dynamodbav:"created_at"`
}

// LeadDynamoRepository persists Lead records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The store is append-only: one conditional put per submission, no updates.

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	it := toLeadItem(lead)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return lead, nil
}

func toLeadItem(l entities.Lead) leadItem {
	return leadItem{
		ID:                    l.ID,
		Name:                  l.Name,
		Phone:                 l.Phone,
		Email:                 l.Email,
		Company:               l.Company,
		LocationID:            l.LocationID,
		SystemMode:            string(l.SystemMode),
		MonthlyConsumptionKWh: floatToString(l.MonthlyConsumptionKWh),
		Notes:                 l.Notes,
		CreatedAt:             l.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
