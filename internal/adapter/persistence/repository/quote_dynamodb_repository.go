package repository

import (
	"context"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const DefaultQuotesTableName = "quotes"

type quoteItem struct {
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Email        string `dynamodbav:"email,omitempty"`
	Phone        string `dynamodbav:"phone"`
	Service      string `dynamodbav:"service"`
	TimelineDays int    `dynamodbav:"timeline_days"`
	Budget       int64  `dynamodbav:"budget"`
	Message      string `dynamodbav:"message,omitempty"`
	Status       string `dynamodbav:"status"`
	BasePrice    int64  `dynamodbav:"base_price"`
	Surcharge    int64  `dynamodbav:"surcharge"`
	Total        int64  `dynamodbav:"total"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// QuoteDynamoRepository persists quote leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client, tableName string) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: valueOrDefault(tableName, DefaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.QuoteLead) (entities.QuoteLead, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.QuoteLead{}, err
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
		return entities.QuoteLead{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.QuoteLead, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	leads := make([]entities.QuoteLead, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it quoteItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			leads = append(leads, fromQuoteItem(it))
		}
	}
	return leads, nil
}

func toQuoteItem(q entities.QuoteLead) quoteItem {
	return quoteItem{
		ID:           q.ID,
		Name:         q.Name,
		Email:        q.Email,
		Phone:        q.Phone,
		Service:      string(q.Service),
		TimelineDays: q.TimelineDays,
		Budget:       q.Budget,
		Message:      q.Message,
		Status:       string(q.Status),
		BasePrice:    q.Estimate.BasePrice,
		Surcharge:    q.Estimate.Surcharge,
		Total:        q.Estimate.Total,
		CreatedAt:    formatTime(q.CreatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.QuoteLead {
	service := entities.ServiceType(it.Service)
	return entities.QuoteLead{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		Phone:        it.Phone,
		Service:      service,
		TimelineDays: it.TimelineDays,
		Budget:       it.Budget,
		Message:      it.Message,
		Status:       entities.QuoteLeadStatus(it.Status),
		Estimate: entities.Quote{
			Service:      service,
			TimelineDays: it.TimelineDays,
			BasePrice:    it.BasePrice,
			Surcharge:    it.Surcharge,
			Total:        it.Total,
		},
		CreatedAt: parseTime(it.CreatedAt),
	}
}
