package services

import (
	"context"
	"fmt"
	"sync"

	"divebuddy_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MemoryStore is an in-memory RecordStore used by tests and by local runs
// without AWS access (STORE=memory). Records round-trip through the same
// attributevalue marshalling as the DynamoDB store, and each table keeps its
// insertion order.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string][]Record)}
}

func (ms *MemoryStore) Insert(ctx context.Context, kind string, item interface{}) (string, error) {
	record, err := attributevalue.MarshalMap(item)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s record: %w", kind, err)
	}

	id := uuid.NewString()
	record["id"] = &types.AttributeValueMemberS{Value: id}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.tables[kind] = append(ms.tables[kind], record)
	return id, nil
}

func (ms *MemoryStore) FindOne(ctx context.Context, kind string, filter map[string]string) (Record, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	for _, record := range ms.tables[kind] {
		if recordMatches(record, filter) {
			return copyRecord(record), nil
		}
	}
	return nil, nil
}

func (ms *MemoryStore) FindMany(ctx context.Context, kind string, filter map[string]string, limit int) ([]Record, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	var results []Record
	for _, record := range ms.tables[kind] {
		if recordMatches(record, filter) {
			results = append(results, copyRecord(record))
			if limit > 0 && len(results) == limit {
				break
			}
		}
	}
	return results, nil
}

func (ms *MemoryStore) UpdateFields(ctx context.Context, kind string, id string, fields map[string]string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	for _, record := range ms.tables[kind] {
		if utils.ExtractString(record, "id") == id {
			for field, value := range fields {
				record[field] = &types.AttributeValueMemberS{Value: value}
			}
			return nil
		}
	}
	return fmt.Errorf("no %s record with id '%s'", kind, id)
}

func (ms *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func recordMatches(record Record, filter map[string]string) bool {
	for field, want := range filter {
		if utils.ExtractString(record, field) != want {
			return false
		}
	}
	return true
}

func copyRecord(record Record) Record {
	out := make(Record, len(record))
	for k, v := range record {
		out[k] = v
	}
	return out
}
