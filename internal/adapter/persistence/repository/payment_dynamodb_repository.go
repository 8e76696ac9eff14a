package repository

import (
	"context"

	"github.com/hepsystems/hepeco/internal/domain/entities"
	"github.com/hepsystems/hepeco/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultPaymentsTableName = "payments"
	PaymentsPhoneIndex       = "phone-index"
)

type paymentItem struct {
	Reference      string   `dynamodbav:"reference"`
	Amount         int64    `dynamodbav:"amount"`
	Phone          string   `dynamodbav:"phone"`
	Method         string   `dynamodbav:"method"`
	Status         string   `dynamodbav:"status"`
	SessionID      string   `dynamodbav:"session_id"`
	CreatedAt      string   `dynamodbav:"created_at"`
	ExpiresAt      string   `dynamodbav:"expires_at"`
	VerifiedAt     string   `dynamodbav:"verified_at,omitempty"`
	FraudReasons   []string `dynamodbav:"fraud_reasons,omitempty"`
	TransactionID  string   `dynamodbav:"transaction_id,omitempty"`
	VerifyAttempts int      `dynamodbav:"verify_attempts"`
}

// PaymentDynamoRepository persists payments in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)
//   - GSI: phone-index (PK: phone)
type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: valueOrDefault(tableName, DefaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Get(ctx context.Context, reference string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) Put(ctx context.Context, p entities.Payment) error {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *PaymentDynamoRepository) ListByPhone(ctx context.Context, phone string) ([]entities.Payment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(PaymentsPhoneIndex),
		KeyConditionExpression: aws.String("phone = :phone"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":phone": &types.AttributeValueMemberS{Value: phone},
		},
	})

	items := make([]entities.Payment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodePaymentItems(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	items := make([]entities.Payment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodePaymentItems(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func decodePaymentItems(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	out := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		out = append(out, fromPaymentItem(it))
	}
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		Reference:      p.Reference,
		Amount:         p.Amount,
		Phone:          p.Phone,
		Method:         string(p.Method),
		Status:         string(p.Status),
		SessionID:      p.SessionID,
		CreatedAt:      formatTime(p.CreatedAt),
		ExpiresAt:      formatTime(p.ExpiresAt),
		FraudReasons:   p.FraudReasons,
		TransactionID:  p.TransactionID,
		VerifyAttempts: p.VerifyAttempts,
	}
	if p.VerifiedAt != nil {
		it.VerifiedAt = formatTime(*p.VerifiedAt)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		Reference:      it.Reference,
		Amount:         it.Amount,
		Phone:          it.Phone,
		Method:         entities.PaymentMethod(it.Method),
		Status:         entities.PaymentStatus(it.Status),
		SessionID:      it.SessionID,
		CreatedAt:      parseTime(it.CreatedAt),
		ExpiresAt:      parseTime(it.ExpiresAt),
		VerifiedAt:     parseTimePtr(it.VerifiedAt),
		FraudReasons:   it.FraudReasons,
		TransactionID:  it.TransactionID,
		VerifyAttempts: it.VerifyAttempts,
	}
}
