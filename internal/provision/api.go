package provision

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/connect"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lexmodelsv2"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
)

// LexModelsAPI is the subset of the Lex V2 models client used to manage bot aliases.
type LexModelsAPI interface {
	ListBotAliases(ctx context.Context, params *lexmodelsv2.ListBotAliasesInput, optFns ...func(*lexmodelsv2.Options)) (*lexmodelsv2.ListBotAliasesOutput, error)
	CreateBotAlias(ctx context.Context, params *lexmodelsv2.CreateBotAliasInput, optFns ...func(*lexmodelsv2.Options)) (*lexmodelsv2.CreateBotAliasOutput, error)
	UpdateBotAlias(ctx context.Context, params *lexmodelsv2.UpdateBotAliasInput, optFns ...func(*lexmodelsv2.Options)) (*lexmodelsv2.UpdateBotAliasOutput, error)
	DescribeBotAlias(ctx context.Context, params *lexmodelsv2.DescribeBotAliasInput, optFns ...func(*lexmodelsv2.Options)) (*lexmodelsv2.DescribeBotAliasOutput, error)
}

type LexRuntimeAPI interface {
	RecognizeText(ctx context.Context, params *lexruntimev2.RecognizeTextInput, optFns ...func(*lexruntimev2.Options)) (*lexruntimev2.RecognizeTextOutput, error)
}

type LambdaAPI interface {
	Invoke(ctx context.Context, params *lambda.InvokeInput, optFns ...func(*lambda.Options)) (*lambda.InvokeOutput, error)
}

type ConnectAPI interface {
	ListBots(ctx context.Context, params *connect.ListBotsInput, optFns ...func(*connect.Options)) (*connect.ListBotsOutput, error)
}
