package repository

import (
	"context"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultCheckoutsTableName = "checkouts"
	checkoutsCostItemIDIndex  = "cost_item_id-index"
)

// CheckoutDynamoRepository persists Checkout records in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: cost_item_id-index (PK: cost_item_id)

type CheckoutDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICheckoutRepository = (*CheckoutDynamoRepository)(nil)

func NewCheckoutDynamoRepository(ddb *dynamodb.Client, tableName string) *CheckoutDynamoRepository {
	if tableName == "" {
		tableName = DefaultCheckoutsTableName
	}
	return &CheckoutDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *CheckoutDynamoRepository) Create(ctx context.Context, c entities.Checkout) (entities.Checkout, error) {
	av, err := attributevalue.MarshalMap(document.FromCheckout(c))
	if err != nil {
		return entities.Checkout{}, err
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
		return entities.Checkout{}, err
	}
	return c, nil
}

func (r *CheckoutDynamoRepository) ListByCostItemID(ctx context.Context, costItemID string) ([]entities.Checkout, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(checkoutsCostItemIDIndex),
		KeyConditionExpression: aws.String("cost_item_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: costItemID},
		},
	})
	if err != nil {
		return nil, err
	}

	checkouts := make([]entities.Checkout, 0, len(out.Items))
	for _, raw := range out.Items {
		var doc document.CheckoutDocument
		if err := attributevalue.UnmarshalMap(raw, &doc); err != nil {
			return nil, err
		}
		c, err := doc.ToCheckout()
		if err != nil {
			return nil, err
		}
		checkouts = append(checkouts, c)
	}
	return checkouts, nil
}
