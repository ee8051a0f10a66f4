package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wedding_admin/internal/adapter/persistence/document"
	"wedding_admin/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// newTestDynamoClient points a DynamoDB client at a handler that answers every call.
func newTestDynamoClient(t *testing.T, h http.HandlerFunc) *dynamodb.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return dynamodb.New(dynamodb.Options{
		Region:           "us-east-1",
		BaseEndpoint:     aws.String(srv.URL),
		Credentials:      credentials.NewStaticCredentialsProvider("test", "test", ""),
		RetryMaxAttempts: 1,
	})
}

func conditionalCheckFailed(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.0")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write([]byte(`{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`))
}

func TestCostItemDynamoRepository_UpsertForeignOwner(t *testing.T) {
	repo := NewCostItemDynamoRepository(newTestDynamoClient(t, conditionalCheckFailed), "")

	item := entities.CostItem{ID: "a", OwnerID: "owner-2", Description: "Buffet", Category: entities.CategoryBuffet, Payments: []entities.PaymentEntry{}}
	_, err := repo.Upsert(context.Background(), item)
	if !errors.Is(err, document.ErrForeignDocument) || !errors.Is(err, entities.ErrForeignOwner) {
		t.Fatalf("expected ErrForeignDocument, got %v", err)
	}
}

func TestVenueDynamoRepository_UpsertForeignOwner(t *testing.T) {
	repo := NewVenueDynamoRepository(newTestDynamoClient(t, conditionalCheckFailed), "")

	_, err := repo.Upsert(context.Background(), entities.Venue{ID: "v1", OwnerID: "owner-2", Name: "Sitio"})
	if !errors.Is(err, document.ErrForeignDocument) {
		t.Fatalf("expected ErrForeignDocument, got %v", err)
	}
}

func TestOwnerConflict(t *testing.T) {
	err := ownerConflict(&types.ConditionalCheckFailedException{Message: aws.String("failed")}, "a")
	if !errors.Is(err, document.ErrForeignDocument) {
		t.Fatalf("expected ErrForeignDocument, got %v", err)
	}

	other := errors.New("throttled")
	if got := ownerConflict(other, "a"); got != other {
		t.Fatalf("expected error passed through, got %v", got)
	}
}
