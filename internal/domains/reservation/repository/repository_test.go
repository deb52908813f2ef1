package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsDynamo "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hauliday/config"
	"hauliday/infras/otel/mocks"
	"hauliday/internal/domains/reservation/repository"
)

type fakeDynamo struct {
	scanInputs  []*awsDynamo.ScanInput
	queryInputs []*awsDynamo.QueryInput
	pages       [][]map[string]types.AttributeValue
	err         error
}

func (f *fakeDynamo) next(n int) ([]map[string]types.AttributeValue, map[string]types.AttributeValue) {
	if n >= len(f.pages) {
		return nil, nil
	}

	var lastKey map[string]types.AttributeValue
	if n < len(f.pages)-1 {
		lastKey = map[string]types.AttributeValue{"reservation_id": &types.AttributeValueMemberS{Value: "cursor"}}
	}

	return f.pages[n], lastKey
}

func (f *fakeDynamo) Scan(_ context.Context, params *awsDynamo.ScanInput, _ ...func(*awsDynamo.Options)) (*awsDynamo.ScanOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	items, lastKey := f.next(len(f.scanInputs))
	f.scanInputs = append(f.scanInputs, params)

	return &awsDynamo.ScanOutput{Items: items, LastEvaluatedKey: lastKey}, nil
}

func (f *fakeDynamo) Query(_ context.Context, params *awsDynamo.QueryInput, _ ...func(*awsDynamo.Options)) (*awsDynamo.QueryOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	items, lastKey := f.next(len(f.queryInputs))
	f.queryInputs = append(f.queryInputs, params)

	return &awsDynamo.QueryOutput{Items: items, LastEvaluatedKey: lastKey}, nil
}

func item(id, equipmentID, start, end, status string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"reservation_id": &types.AttributeValueMemberS{Value: id},
		"equipment_id":   &types.AttributeValueMemberS{Value: equipmentID},
		"start_date":     &types.AttributeValueMemberS{Value: start},
		"end_date":       &types.AttributeValueMemberS{Value: end},
		"status":         &types.AttributeValueMemberS{Value: status},
	}
}

func newConfig(index string) *config.Config {
	cfg := &config.Config{}
	cfg.DynamoDB.TableName = "hauliday_reservations"
	cfg.DynamoDB.EquipmentIndex = index

	return cfg
}

func TestFindActiveByEquipment_ScanPaginates(t *testing.T) {
	db := &fakeDynamo{
		pages: [][]map[string]types.AttributeValue{
			{item("r1", "cotton-candy", "2025-08-29", "2025-08-31", "active")},
			{item("r2", "cotton-candy", "2025-09-05", "2025-09-05", "active")},
		},
	}

	repo := repository.New(db, newConfig(""), mocks.NewOtel())

	res, err := repo.FindActiveByEquipment(context.Background(), "cotton-candy")

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "r1", res[0].ReservationID)
	assert.Equal(t, "r2", res[1].ReservationID)

	require.Len(t, db.scanInputs, 2)
	input := db.scanInputs[0]
	assert.Equal(t, "hauliday_reservations", aws.ToString(input.TableName))
	assert.NotEmpty(t, aws.ToString(input.FilterExpression))
	assert.Contains(t, input.ExpressionAttributeNames, "#0")
	assert.Len(t, input.ExpressionAttributeValues, 2)
	assert.Empty(t, db.queryInputs)
}

func TestFindActiveByEquipment_QueriesIndex(t *testing.T) {
	db := &fakeDynamo{
		pages: [][]map[string]types.AttributeValue{
			{item("r1", "cargo-carrier", "2025-08-29", "2025-08-31", "active")},
		},
	}

	repo := repository.New(db, newConfig("equipment_id-index"), mocks.NewOtel())

	res, err := repo.FindActiveByEquipment(context.Background(), "cargo-carrier")

	require.NoError(t, err)
	assert.Len(t, res, 1)
	require.Len(t, db.queryInputs, 1)
	assert.Equal(t, "equipment_id-index", aws.ToString(db.queryInputs[0].IndexName))
	assert.NotEmpty(t, aws.ToString(db.queryInputs[0].KeyConditionExpression))
	assert.NotEmpty(t, aws.ToString(db.queryInputs[0].FilterExpression))
	assert.Empty(t, db.scanInputs)
}

func TestFindActiveByEquipment_SkipsMalformedItems(t *testing.T) {
	malformed := item("r2", "cotton-candy", "2025-09-01", "2025-09-02", "active")
	malformed["start_date"] = &types.AttributeValueMemberM{Value: map[string]types.AttributeValue{}}

	db := &fakeDynamo{
		pages: [][]map[string]types.AttributeValue{
			{item("r1", "cotton-candy", "2025-08-29", "2025-08-31", "active"), malformed},
		},
	}

	repo := repository.New(db, newConfig(""), mocks.NewOtel())

	res, err := repo.FindActiveByEquipment(context.Background(), "cotton-candy")

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "r1", res[0].ReservationID)
}

func TestFindActiveByEquipment_Error(t *testing.T) {
	repo := repository.New(&fakeDynamo{err: errors.New("throttled")}, newConfig(""), mocks.NewOtel())

	_, err := repo.FindActiveByEquipment(context.Background(), "cotton-candy")

	assert.Error(t, err)
}

func TestSample(t *testing.T) {
	db := &fakeDynamo{
		pages: [][]map[string]types.AttributeValue{
			{item("r1", "cotton-candy", "2025-08-29", "2025-08-31", "active")},
		},
	}

	repo := repository.New(db, newConfig(""), mocks.NewOtel())

	res, err := repo.Sample(context.Background(), 5)

	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, int32(5), aws.ToInt32(db.scanInputs[0].Limit))
}
