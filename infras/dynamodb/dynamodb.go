package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsDynamo "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"
)

// API is the subset of the DynamoDB client the repositories use. It satisfies the SDK's
// scan and query paginator client interfaces.
type API interface {
	Scan(ctx context.Context, params *awsDynamo.ScanInput, optFns ...func(*awsDynamo.Options)) (*awsDynamo.ScanOutput, error)
	Query(ctx context.Context, params *awsDynamo.QueryInput, optFns ...func(*awsDynamo.Options)) (*awsDynamo.QueryOutput, error)
}

func New(awsCfg aws.Config) API {
	log.Debug().Str("region", awsCfg.Region).Msg("DynamoDB client created")

	return awsDynamo.NewFromConfig(awsCfg)
}
