package repository

import (
	"context"

	"service_inventory/internal/domain/entities"
	"service_inventory/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type subProcessDefinitionItem struct {
	Key         string            `dynamodbav:"key"`
	Name        map[string]string `dynamodbav:"name"`
	Description map[string]string `dynamodbav:"description,omitempty"`
}

type processTemplateItem struct {
	ID                  string                     `dynamodbav:"id"`
	Key                 string                     `dynamodbav:"key"`
	Order               int                        `dynamodbav:"order"`
	ProcessName         map[string]string          `dynamodbav:"process_name"`
	Description         map[string]string          `dynamodbav:"description,omitempty"`
	DefaultSubProcesses []subProcessDefinitionItem `dynamodbav:"default_sub_processes"`
	CreatedAt           string                     `dynamodbav:"created_at"`
	UpdatedAt           string                     `dynamodbav:"updated_at"`
}

// ProcessTemplateDynamoRepository persists process templates.
//
// Table requirements:
//   - PK: id (string)
//
// The catalog is small, so listing is a scan.
type ProcessTemplateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProcessTemplateRepository = (*ProcessTemplateDynamoRepository)(nil)

func NewProcessTemplateDynamoRepository(ddb *dynamodb.Client, tableName string) *ProcessTemplateDynamoRepository {
	return &ProcessTemplateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProcessTemplateDynamoRepository) Create(ctx context.Context, t entities.ProcessTemplate) (entities.ProcessTemplate, error) {
	av, err := attributevalue.MarshalMap(toProcessTemplateItem(t))
	if err != nil {
		return entities.ProcessTemplate{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.ProcessTemplate{}, interfaces.ErrAlreadyExists
		}
		return entities.ProcessTemplate{}, err
	}
	return t, nil
}

func (r *ProcessTemplateDynamoRepository) GetByID(ctx context.Context, id string) (entities.ProcessTemplate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ProcessTemplate{}, err
	}
	if len(out.Item) == 0 {
		return entities.ProcessTemplate{}, nil
	}
	var it processTemplateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ProcessTemplate{}, err
	}
	return fromProcessTemplateItem(it), nil
}

func (r *ProcessTemplateDynamoRepository) List(ctx context.Context) ([]entities.ProcessTemplate, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	var its []processTemplateItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.ProcessTemplate, 0, len(its))
	for _, it := range its {
		out = append(out, fromProcessTemplateItem(it))
	}
	entities.SortTemplates(out)
	return out, nil
}

func (r *ProcessTemplateDynamoRepository) Update(ctx context.Context, t entities.ProcessTemplate) (entities.ProcessTemplate, error) {
	it := toProcessTemplateItem(t)
	values, err := attributevalue.MarshalMap(map[string]any{
		":key":        it.Key,
		":order":      it.Order,
		":name":       it.ProcessName,
		":desc":       it.Description,
		":subs":       it.DefaultSubProcesses,
		":updated_at": it.UpdatedAt,
	})
	if err != nil {
		return entities.ProcessTemplate{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: t.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #key = :key, #order = :order, #name = :name, #desc = :desc, #subs = :subs, #updated_at = :updated_at"),
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#key":        "key",
			"#order":      "order",
			"#name":       "process_name",
			"#desc":       "description",
			"#subs":       "default_sub_processes",
			"#updated_at": "updated_at",
		}, map[string]string{"#id": "id"}),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ProcessTemplate{}, nil
		}
		return entities.ProcessTemplate{}, err
	}
	var updated processTemplateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &updated); err != nil {
		return entities.ProcessTemplate{}, err
	}
	return fromProcessTemplateItem(updated), nil
}

func (r *ProcessTemplateDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

// ReplaceAll deletes every stored template and writes ts. It is not atomic;
// it is only used by the seed command.
func (r *ProcessTemplateDynamoRepository) ReplaceAll(ctx context.Context, ts []entities.ProcessTemplate) error {
	existing, err := scanAll(ctx, r.ddb, r.tableName)
	if err != nil {
		return err
	}

	reqs := make([]types.WriteRequest, 0, len(existing)+len(ts))
	for _, item := range existing {
		reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{
			Key: map[string]types.AttributeValue{"id": item["id"]},
		}})
	}
	if err := batchWrite(ctx, r.ddb, r.tableName, reqs); err != nil {
		return err
	}

	reqs = reqs[:0]
	for _, t := range ts {
		av, err := attributevalue.MarshalMap(toProcessTemplateItem(t))
		if err != nil {
			return err
		}
		reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
	}
	return batchWrite(ctx, r.ddb, r.tableName, reqs)
}

func toProcessTemplateItem(t entities.ProcessTemplate) processTemplateItem {
	it := processTemplateItem{
		ID:                  t.ID,
		Key:                 t.Key,
		Order:               t.Order,
		ProcessName:         t.ProcessName,
		Description:         t.Description,
		DefaultSubProcesses: make([]subProcessDefinitionItem, 0, len(t.DefaultSubProcesses)),
		CreatedAt:           formatTime(t.CreatedAt),
		UpdatedAt:           formatTime(t.UpdatedAt),
	}
	for _, d := range t.DefaultSubProcesses {
		it.DefaultSubProcesses = append(it.DefaultSubProcesses, subProcessDefinitionItem{
			Key:         d.Key,
			Name:        d.Name,
			Description: d.Description,
		})
	}
	return it
}

func fromProcessTemplateItem(it processTemplateItem) entities.ProcessTemplate {
	t := entities.ProcessTemplate{
		ID:                  it.ID,
		Key:                 it.Key,
		Order:               it.Order,
		ProcessName:         it.ProcessName,
		Description:         it.Description,
		DefaultSubProcesses: make([]entities.SubProcessDefinition, 0, len(it.DefaultSubProcesses)),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
	for _, d := range it.DefaultSubProcesses {
		t.DefaultSubProcesses = append(t.DefaultSubProcesses, entities.SubProcessDefinition{
			Key:         d.Key,
			Name:        d.Name,
			Description: d.Description,
		})
	}
	return t
}
