package repository

import (
	"context"
	"errors"
	"time"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"
	"wedding_admin/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultVenuesTableName = "venues"

// VenueDynamoRepository persists Venue documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)

type VenueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVenueRepository = (*VenueDynamoRepository)(nil)

func NewVenueDynamoRepository(ddb *dynamodb.Client, tableName string) *VenueDynamoRepository {
	if tableName == "" {
		tableName = DefaultVenuesTableName
	}
	return &VenueDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *VenueDynamoRepository) GetByID(ctx context.Context, ownerID, id string) (entities.Venue, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Venue{}, err
	}
	if len(out.Item) == 0 {
		return entities.Venue{}, nil
	}

	v, err := unmarshalVenue(out.Item)
	if err != nil {
		return entities.Venue{}, err
	}
	if v.OwnerID != ownerID {
		return entities.Venue{}, nil
	}
	return v, nil
}

func (r *VenueDynamoRepository) GetChosen(ctx context.Context, ownerID string) (entities.Venue, error) {
	venues, err := r.listByOwner(ctx, ownerID)
	if err != nil {
		return entities.Venue{}, err
	}
	for _, v := range venues {
		if v.Chosen {
			return v, nil
		}
	}
	return entities.Venue{}, nil
}

func (r *VenueDynamoRepository) Upsert(ctx context.Context, v entities.Venue) (entities.Venue, error) {
	av, err := attributevalue.MarshalMap(document.FromVenue(v))
	if err != nil {
		return entities.Venue{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #owner_id = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#id":       "id",
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: v.OwnerID},
		},
	})
	if err != nil {
		return entities.Venue{}, ownerConflict(err, v.ID)
	}
	return v, nil
}

// SetChosen marks id as the owner's chosen venue and clears the flag on every other
// venue of the owner in a single transaction. A zero Venue is returned when id does
// not belong to the owner.
func (r *VenueDynamoRepository) SetChosen(ctx context.Context, ownerID, id string) (entities.Venue, error) {
	venues, err := r.listByOwner(ctx, ownerID)
	if err != nil {
		return entities.Venue{}, err
	}

	var target entities.Venue
	for _, v := range venues {
		if v.ID == id {
			target = v
		}
	}
	if target.ID == "" {
		return entities.Venue{}, nil
	}

	now := time.Now().UTC()
	nowStr := now.Format(time.RFC3339Nano)
	names := map[string]string{
		"#chosen":     "chosen",
		"#updated_at": "updated_at",
		"#owner_id":   "owner_id",
	}

	tx := []types.TransactWriteItem{{
		Update: &types.Update{
			TableName:                aws.String(r.tableName),
			Key:                      idKey(id),
			ConditionExpression:      aws.String("#owner_id = :owner"),
			UpdateExpression:         aws.String("SET #chosen = :chosen, #updated_at = :updated_at"),
			ExpressionAttributeNames: names,
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":chosen":     &types.AttributeValueMemberBOOL{Value: true},
				":updated_at": &types.AttributeValueMemberS{Value: nowStr},
				":owner":      &types.AttributeValueMemberS{Value: ownerID},
			},
		},
	}}
	for _, v := range venues {
		if v.ID == id || !v.Chosen {
			continue
		}
		tx = append(tx, types.TransactWriteItem{
			Update: &types.Update{
				TableName:                aws.String(r.tableName),
				Key:                      idKey(v.ID),
				ConditionExpression:      aws.String("#owner_id = :owner"),
				UpdateExpression:         aws.String("SET #chosen = :chosen, #updated_at = :updated_at"),
				ExpressionAttributeNames: names,
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":chosen":     &types.AttributeValueMemberBOOL{Value: false},
					":updated_at": &types.AttributeValueMemberS{Value: nowStr},
					":owner":      &types.AttributeValueMemberS{Value: ownerID},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: tx})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			return entities.Venue{}, nil
		}
		return entities.Venue{}, err
	}

	target.Chosen = true
	target.UpdatedAt = now
	return target, nil
}

func (r *VenueDynamoRepository) listByOwner(ctx context.Context, ownerID string) ([]entities.Venue, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	})

	venues := make([]entities.Venue, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			v, err := unmarshalVenue(raw)
			if err != nil {
				return nil, err
			}
			venues = append(venues, v)
		}
	}
	return venues, nil
}

func unmarshalVenue(raw map[string]types.AttributeValue) (entities.Venue, error) {
	var doc document.VenueDocument
	if err := attributevalue.UnmarshalMap(raw, &doc); err != nil {
		return entities.Venue{}, err
	}
	return doc.ToVenue()
}
