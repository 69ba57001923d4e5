package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/validate"
	pkgconfig "github.com/cloud-wave-best-zizon/catalog-service/pkg/config"
)

var (
	// ErrItemExists is returned by Create when the key is already present.
	ErrItemExists = errors.New("item already exists")
	// ErrItemNotFound is returned by Get, Update and Delete when the key is absent.
	ErrItemNotFound = errors.New("item does not exist")
)

// BackendError wraps any store failure that is not a business outcome
// (throttling, permissions, malformed request). Callers surface it as 500 and
// must never confuse it with ErrItemExists/ErrItemNotFound.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *BackendError) Unwrap() error { return e.Err }

// DynamoDBAPI is the slice of the DynamoDB client the store touches. Tests
// inject a fake; production passes *dynamodb.Client.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, in *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Key addresses one record: partition key, or partition plus sort key.
type Key map[string]string

// Store mediates all access to one table. Create, Update and Delete are single
// atomic conditional writes (attribute_not_exists / attribute_exists on the
// partition key), so two concurrent creates of the same key cannot both
// succeed; there is no separate exists-then-act round trip on the write path.
type Store struct {
	client       DynamoDBAPI
	tableName    string
	partitionKey string
}

func NewDynamoDBClient(cfg *pkgconfig.Config) (*dynamodb.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

func NewStore(client DynamoDBAPI, tableName, partitionKey string) *Store {
	return &Store{
		client:       client,
		tableName:    tableName,
		partitionKey: partitionKey,
	}
}

func (s *Store) keyAttrs(key Key) map[string]types.AttributeValue {
	attrs := make(map[string]types.AttributeValue, len(key))
	for name, value := range key {
		attrs[name] = &types.AttributeValueMemberS{Value: value}
	}
	return attrs
}

// Exists does a point lookup. It is a read-side guard only; the write paths
// rely on condition expressions, not on this.
func (s *Store) Exists(ctx context.Context, key Key) (bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.keyAttrs(key),
	})
	if err != nil {
		return false, &BackendError{Op: "failed to get item", Err: err}
	}
	return out.Item != nil, nil
}

// Create writes the full record, conditioned on the key being absent.
func (s *Store) Create(ctx context.Context, record any) error {
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return &BackendError{Op: "failed to marshal item", Err: err}
	}

	cond := expression.AttributeNotExists(expression.Name(s.partitionKey))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return &BackendError{Op: "failed to build condition", Err: err}
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(s.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemExists
		}
		return &BackendError{Op: "failed to put item", Err: err}
	}
	return nil
}

// Get fetches one record into out. An absent key is ErrItemNotFound, which
// callers treat as a normal outcome rather than a failure.
func (s *Store) Get(ctx context.Context, key Key, out any) error {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.keyAttrs(key),
	})
	if err != nil {
		return &BackendError{Op: "failed to get item", Err: err}
	}
	if result.Item == nil {
		return ErrItemNotFound
	}
	if err := attributevalue.UnmarshalMap(result.Item, out); err != nil {
		return &BackendError{Op: "failed to unmarshal item", Err: err}
	}
	return nil
}

// GetAll scans the table and unmarshals the first page into out (a pointer to
// a slice). Pagination is intentionally not followed.
func (s *Store) GetAll(ctx context.Context, out any) error {
	result, err := s.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.tableName),
	})
	if err != nil {
		return &BackendError{Op: "failed to scan table", Err: err}
	}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, out); err != nil {
		return &BackendError{Op: "failed to unmarshal items", Err: err}
	}
	return nil
}

// QueryByPartition returns every record under one partition key value, with no
// sort-key filter.
func (s *Store) QueryByPartition(ctx context.Context, value string, out any) error {
	keyCond := expression.Key(s.partitionKey).Equal(expression.Value(value))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return &BackendError{Op: "failed to build key condition", Err: err}
	}

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		return &BackendError{Op: "failed to query items", Err: err}
	}
	if err := attributevalue.UnmarshalListOfMaps(result.Items, out); err != nil {
		return &BackendError{Op: "failed to unmarshal items", Err: err}
	}
	return nil
}

// Update applies the field set to an existing record and unmarshals the full
// updated record into out. The write is conditioned on the key being present;
// a missing record is ErrItemNotFound and nothing is written.
func (s *Store) Update(ctx context.Context, key Key, set []validate.Field, out any) error {
	if len(set) == 0 {
		return &BackendError{Op: "update", Err: errors.New("empty field set")}
	}

	update := expression.Set(
		expression.Name(set[0].Name),
		expression.Value(set[0].Value),
	)
	for _, f := range set[1:] {
		update = update.Set(expression.Name(f.Name), expression.Value(f.Value))
	}
	cond := expression.AttributeExists(expression.Name(s.partitionKey))

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(cond).
		Build()
	if err != nil {
		return &BackendError{Op: "failed to build update expression", Err: err}
	}

	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       s.keyAttrs(key),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemNotFound
		}
		return &BackendError{Op: "failed to update item", Err: err}
	}
	if out != nil {
		if err := attributevalue.UnmarshalMap(result.Attributes, out); err != nil {
			return &BackendError{Op: "failed to unmarshal item", Err: err}
		}
	}
	return nil
}

// Delete removes the record, conditioned on the key being present.
func (s *Store) Delete(ctx context.Context, key Key) error {
	cond := expression.AttributeExists(expression.Name(s.partitionKey))
	expr, err := expression.NewBuilder().WithCondition(cond).Build()
	if err != nil {
		return &BackendError{Op: "failed to build condition", Err: err}
	}

	_, err = s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       s.keyAttrs(key),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return ErrItemNotFound
		}
		return &BackendError{Op: "failed to delete item", Err: err}
	}
	return nil
}
