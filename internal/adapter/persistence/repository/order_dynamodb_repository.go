package repository

import (
	"context"
	"sort"
	"strconv"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const ordersCustomerIndex = "customer_id-index"

// OrderDynamoRepository persists the order aggregate as a single item.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: customer_id-index (PK: customer_id)
//
// Updates are conditional on the stored version so concurrent writers
// cannot silently overwrite each other.
type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *OrderDynamoRepository {
	return &OrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "order_id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, interfaces.ErrAlreadyExists
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, orderID string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) Update(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error) {
	av, err := attributevalue.MarshalMap(toOrderItem(o))
	if err != nil {
		return entities.Order{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id) AND #version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#id":      "order_id",
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Order{}, interfaces.ErrVersionConflict
		}
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) List(ctx context.Context) ([]entities.Order, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return decodeOrders(items)
}

func (r *OrderDynamoRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.Order, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, ordersCustomerIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	return decodeOrders(items)
}

func (r *OrderDynamoRepository) Delete(ctx context.Context, orderID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"order_id": &types.AttributeValueMemberS{Value: orderID},
		},
	})
	return err
}

func decodeOrders(items []map[string]types.AttributeValue) ([]entities.Order, error) {
	var its []orderItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(its))
	for _, it := range its {
		out = append(out, fromOrderItem(it))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ArchivedOrderDynamoRepository stores soft-deleted orders.
//
// Table requirements:
//   - PK: order_id (string)
//   - GSI: customer_id-index (PK: customer_id)
type ArchivedOrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IArchivedOrderRepository = (*ArchivedOrderDynamoRepository)(nil)

func NewArchivedOrderDynamoRepository(ddb *dynamodb.Client, tableName string) *ArchivedOrderDynamoRepository {
	return &ArchivedOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ArchivedOrderDynamoRepository) Create(ctx context.Context, o entities.ArchivedOrder) (entities.ArchivedOrder, error) {
	it := toOrderItem(o.Order)
	it.DeletedAt = formatTime(o.DeletedAt)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ArchivedOrder{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return entities.ArchivedOrder{}, err
	}
	return o, nil
}

func (r *ArchivedOrderDynamoRepository) ListByCustomer(ctx context.Context, customerID string) ([]entities.ArchivedOrder, error) {
	items, err := queryIndex(ctx, r.ddb, r.tableName, ordersCustomerIndex, "customer_id", customerID)
	if err != nil {
		return nil, err
	}
	var its []orderItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.ArchivedOrder, 0, len(its))
	for _, it := range its {
		out = append(out, entities.ArchivedOrder{Order: fromOrderItem(it), DeletedAt: parseTime(it.DeletedAt)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeletedAt.After(out[j].DeletedAt) })
	return out, nil
}

// OrderSequenceDynamo issues per-year order numbers from an atomic counter.
//
// Table requirements:
//   - PK: name (string), one item per year ("order#2025")
type OrderSequenceDynamo struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderIDSequence = (*OrderSequenceDynamo)(nil)

func NewOrderSequenceDynamo(ddb *dynamodb.Client, tableName string) *OrderSequenceDynamo {
	return &OrderSequenceDynamo{ddb: ddb, tableName: tableName}
}

func (s *OrderSequenceDynamo) Next(ctx context.Context, year int) (int64, error) {
	out, err := s.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: "order#" + strconv.Itoa(year)},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	var counter struct {
		Seq int64 `dynamodbav:"seq"`
	}
	if err := attributevalue.UnmarshalMap(out.Attributes, &counter); err != nil {
		return 0, err
	}
	return counter.Seq, nil
}
