package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hauliday/config"
	"hauliday/infras/dynamodb"
	"hauliday/infras/otel"
	"hauliday/internal/domains/reservation/model"
	"hauliday/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	awsDynamo "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrTable       = "dynamodb.table"
	otelAttrIndex       = "dynamodb.index"
	otelAttrEquipmentID = "reservation.equipment_id"
	otelAttrItemCount   = "dynamodb.item_count"
	otelAttrSkipped     = "dynamodb.skipped_count"
)

type Reservation interface {
	// FindActiveByEquipment returns every non-cancelled reservation for the equipment.
	FindActiveByEquipment(ctx context.Context, equipmentID string) ([]model.Reservation, error)
	// Sample reads up to limit records for connectivity checks.
	Sample(ctx context.Context, limit int32) ([]model.Reservation, error)
}

type repositoryImpl struct {
	db    dynamodb.API
	table string
	index string
	otel  otel.Otel
}

func New(db dynamodb.API, cfg *config.Config, otel otel.Otel) Reservation {
	return &repositoryImpl{
		db:    db,
		table: cfg.DynamoDB.TableName,
		index: cfg.DynamoDB.EquipmentIndex,
		otel:  otel,
	}
}

func (r *repositoryImpl) FindActiveByEquipment(ctx context.Context, equipmentID string) (res []model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".FindActiveByEquipment")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttributes(map[string]any{
		otelAttrTable:       r.table,
		otelAttrIndex:       r.index,
		otelAttrEquipmentID: equipmentID,
	})

	notCancelled := expression.Name(model.FieldStatus).NotEqual(expression.Value(model.StatusCancelled))

	var items []map[string]types.AttributeValue

	if r.index != constant.Empty {
		items, err = r.query(ctx, equipmentID, notCancelled)
	} else {
		items, err = r.scan(ctx, equipmentID, notCancelled)
	}

	if err != nil {
		return nil, err
	}

	res, skipped := decode(items)

	scope.SetAttributes(map[string]any{
		otelAttrItemCount: len(res),
		otelAttrSkipped:   skipped,
	})

	return res, nil
}

func (r *repositoryImpl) Sample(ctx context.Context, limit int32) (res []model.Reservation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Sample")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(otelAttrTable, r.table)

	out, err := r.db.Scan(ctx, &awsDynamo.ScanInput{
		TableName: aws.String(r.table),
		Limit:     aws.Int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", r.table, err)
	}

	res, _ = decode(out.Items)

	return res, nil
}

func (r *repositoryImpl) scan(ctx context.Context, equipmentID string, notCancelled expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	filter := expression.Name(model.FieldEquipmentID).Equal(expression.Value(equipmentID)).And(notCancelled)

	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scan expression: %w", err)
	}

	paginator := awsDynamo.NewScanPaginator(r.db, &awsDynamo.ScanInput{
		TableName:                 aws.String(r.table),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	var items []map[string]types.AttributeValue

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", r.table, err)
		}

		items = append(items, page.Items...)
	}

	return items, nil
}

func (r *repositoryImpl) query(ctx context.Context, equipmentID string, notCancelled expression.ConditionBuilder) ([]map[string]types.AttributeValue, error) {
	keyCond := expression.Key(model.FieldEquipmentID).Equal(expression.Value(equipmentID))

	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).WithFilter(notCancelled).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build query expression: %w", err)
	}

	paginator := awsDynamo.NewQueryPaginator(r.db, &awsDynamo.QueryInput{
		TableName:                 aws.String(r.table),
		IndexName:                 aws.String(r.index),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	var items []map[string]types.AttributeValue

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s on %s: %w", r.table, r.index, err)
		}

		items = append(items, page.Items...)
	}

	return items, nil
}

// decode unmarshals items one at a time so a single malformed record is skipped.
func decode(items []map[string]types.AttributeValue) ([]model.Reservation, int) {
	res := make([]model.Reservation, 0, len(items))
	skipped := 0

	for _, item := range items {
		var rec model.Reservation

		if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
			log.Warn().Err(err).Msg("skipping malformed reservation record")

			skipped++

			continue
		}

		res = append(res, rec)
	}

	return res, skipped
}
