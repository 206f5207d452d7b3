package services

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Record is the stored representation of one document.
type Record = map[string]types.AttributeValue

// RecordStore is the storage capability handed to every service at
// construction. Each entity kind maps to its own keyed table; identifiers are
// store-generated opaque strings. Filters are field/value equality maps.
type RecordStore interface {
	// Insert stores a new document and returns its generated identifier.
	Insert(ctx context.Context, kind string, item interface{}) (string, error)
	// FindOne returns the first document matching the filter, or (nil, nil)
	// when none exists.
	FindOne(ctx context.Context, kind string, filter map[string]string) (Record, error)
	// FindMany returns documents matching the filter in insertion order,
	// capped at limit when limit > 0.
	FindMany(ctx context.Context, kind string, filter map[string]string, limit int) ([]Record, error)
	// UpdateFields partially updates one document by identifier.
	UpdateFields(ctx context.Context, kind string, id string, fields map[string]string) error
	// Ping checks store connectivity.
	Ping(ctx context.Context) error
}

// DynamoRecordStore implements RecordStore on DynamoDB, one table per kind,
// every table keyed by the generated "id" attribute.
type DynamoRecordStore struct {
	Dynamo *DynamoService
	Logger *zap.SugaredLogger
}

func (rs *DynamoRecordStore) Insert(ctx context.Context, kind string, item interface{}) (string, error) {
	record, err := attributevalue.MarshalMap(item)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s record: %w", kind, err)
	}

	id := uuid.NewString()
	record["id"] = &types.AttributeValueMemberS{Value: id}

	if err := rs.Dynamo.PutItem(ctx, kind, record); err != nil {
		rs.Logger.Errorw("insert failed", "kind", kind, "error", err)
		return "", err
	}
	return id, nil
}

func (rs *DynamoRecordStore) FindOne(ctx context.Context, kind string, filter map[string]string) (Record, error) {
	if id, ok := filter["id"]; ok && len(filter) == 1 {
		key := map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		}
		return rs.Dynamo.GetItem(ctx, kind, key)
	}

	items, err := rs.Dynamo.ScanItems(ctx, kind, filter)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func (rs *DynamoRecordStore) FindMany(ctx context.Context, kind string, filter map[string]string, limit int) ([]Record, error) {
	items, err := rs.Dynamo.ScanItems(ctx, kind, filter)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (rs *DynamoRecordStore) UpdateFields(ctx context.Context, kind string, id string, fields map[string]string) error {
	key := map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
	if err := rs.Dynamo.UpdateItem(ctx, kind, key, fields); err != nil {
		rs.Logger.Errorw("update failed", "kind", kind, "id", id, "error", err)
		return err
	}
	return nil
}

func (rs *DynamoRecordStore) Ping(ctx context.Context) error {
	_, err := rs.Dynamo.ListTableNames(ctx)
	return err
}
