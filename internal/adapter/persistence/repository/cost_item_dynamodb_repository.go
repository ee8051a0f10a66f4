package repository

import (
	"context"
	"errors"
	"fmt"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultCostItemsTableName = "cost_items"
	ownerIDIndex              = "owner_id-index"
)

// CostItemDynamoRepository persists CostItem documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//
// Writes replace the whole document; the payments list is stored inline.

type CostItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostItemRepository = (*CostItemDynamoRepository)(nil)

func NewCostItemDynamoRepository(ddb *dynamodb.Client, tableName string) *CostItemDynamoRepository {
	if tableName == "" {
		tableName = DefaultCostItemsTableName
	}
	return &CostItemDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *CostItemDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.CostItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})

	items := make([]entities.CostItem, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			item, err := unmarshalCostItem(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *CostItemDynamoRepository) GetByID(ctx context.Context, ownerID, id string) (entities.CostItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CostItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CostItem{}, nil
	}

	item, err := unmarshalCostItem(out.Item)
	if err != nil {
		return entities.CostItem{}, err
	}
	if item.OwnerID != ownerID {
		return entities.CostItem{}, nil
	}
	return item, nil
}

func (r *CostItemDynamoRepository) Upsert(ctx context.Context, item entities.CostItem) (entities.CostItem, error) {
	av, err := attributevalue.MarshalMap(document.FromCostItem(item))
	if err != nil {
		return entities.CostItem{}, err
	}

	// Another owner's document with the same id is never overwritten.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #owner_id = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: item.OwnerID},
		},
	})
	if err != nil {
		return entities.CostItem{}, ownerConflict(err, item.ID)
	}
	return item, nil
}

// ownerConflict reports a failed owner condition on a put as ErrForeignDocument.
func ownerConflict(err error, id string) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return fmt.Errorf("%w: id=%s", document.ErrForeignDocument, id)
	}
	return err
}

func (r *CostItemDynamoRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #owner_id = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func unmarshalCostItem(raw map[string]types.AttributeValue) (entities.CostItem, error) {
	var doc document.CostItemDocument
	if err := attributevalue.UnmarshalMap(raw, &doc); err != nil {
		return entities.CostItem{}, err
	}
	return doc.ToCostItem()
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}
