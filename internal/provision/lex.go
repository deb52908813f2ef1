package provision

import (
	"context"
	"errors"
	"fmt"
	"hauliday/shared/constant"
	"hauliday/shared/failure"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lexmodelsv2"
	"github.com/aws/aws-sdk-go-v2/service/lexmodelsv2/types"
	"github.com/rs/zerolog/log"
)

const (
	draftBotVersion          = "DRAFT"
	codeHookInterfaceVersion = "1.0"
)

var ErrCodeHookMismatch = errors.New("alias code hook does not point at the expected lambda")

type AliasParams struct {
	BotID     string
	AliasName string
	LambdaARN string
	LocaleID  string
}

type AliasResult struct {
	AliasID string
	Status  string
	Created bool
}

// EnsureLexAlias points the named alias at the draft bot with the Lambda code hook, creating
// the alias when it does not exist, and then reads it back to confirm the hook.
func EnsureLexAlias(ctx context.Context, client LexModelsAPI, params AliasParams) (AliasResult, error) {
	if params.BotID == constant.Empty || params.LambdaARN == constant.Empty {
		return AliasResult{}, fmt.Errorf("bot id and lambda arn are required: %w", failure.MissingConfigError)
	}

	log.Info().
		Str("bot_id", params.BotID).
		Str("alias_name", params.AliasName).
		Str("lambda_arn", params.LambdaARN).
		Msg("configuring lex bot alias")

	aliasID, err := findAlias(ctx, client, params.BotID, params.AliasName)
	if err != nil {
		return AliasResult{}, err
	}

	settings := map[string]types.BotAliasLocaleSettings{
		params.LocaleID: {
			Enabled: aws.Bool(true),
			CodeHookSpecification: &types.CodeHookSpecification{
				LambdaCodeHook: &types.LambdaCodeHook{
					LambdaARN:                aws.String(params.LambdaARN),
					CodeHookInterfaceVersion: aws.String(codeHookInterfaceVersion),
				},
			},
		},
	}

	var res AliasResult

	if aliasID != constant.Empty {
		log.Info().Str("alias_id", aliasID).Msg("updating existing alias")

		out, err := client.UpdateBotAlias(ctx, &lexmodelsv2.UpdateBotAliasInput{
			BotId:                  aws.String(params.BotID),
			BotAliasId:             aws.String(aliasID),
			BotAliasName:           aws.String(params.AliasName),
			BotVersion:             aws.String(draftBotVersion),
			BotAliasLocaleSettings: settings,
		})
		if err != nil {
			return AliasResult{}, fmt.Errorf("failed to update bot alias: %w", err)
		}

		res = AliasResult{AliasID: aws.ToString(out.BotAliasId), Status: string(out.BotAliasStatus)}
	} else {
		log.Info().Msg("creating new alias")

		out, err := client.CreateBotAlias(ctx, &lexmodelsv2.CreateBotAliasInput{
			BotId:                  aws.String(params.BotID),
			BotAliasName:           aws.String(params.AliasName),
			BotVersion:             aws.String(draftBotVersion),
			BotAliasLocaleSettings: settings,
		})
		if err != nil {
			return AliasResult{}, fmt.Errorf("failed to create bot alias: %w", err)
		}

		res = AliasResult{AliasID: aws.ToString(out.BotAliasId), Status: string(out.BotAliasStatus), Created: true}
	}

	if err := verifyAlias(ctx, client, params, res.AliasID); err != nil {
		return res, err
	}

	return res, nil
}

func findAlias(ctx context.Context, client LexModelsAPI, botID, aliasName string) (string, error) {
	paginator := lexmodelsv2.NewListBotAliasesPaginator(client, &lexmodelsv2.ListBotAliasesInput{
		BotId: aws.String(botID),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return constant.Empty, fmt.Errorf("failed to list bot aliases: %w", err)
		}

		for _, alias := range page.BotAliasSummaries {
			if aws.ToString(alias.BotAliasName) == aliasName {
				return aws.ToString(alias.BotAliasId), nil
			}
		}
	}

	return constant.Empty, nil
}

func verifyAlias(ctx context.Context, client LexModelsAPI, params AliasParams, aliasID string) error {
	out, err := client.DescribeBotAlias(ctx, &lexmodelsv2.DescribeBotAliasInput{
		BotId:      aws.String(params.BotID),
		BotAliasId: aws.String(aliasID),
	})
	if err != nil {
		return fmt.Errorf("failed to describe bot alias: %w", err)
	}

	locale, ok := out.BotAliasLocaleSettings[params.LocaleID]
	if !ok {
		return fmt.Errorf("%w: no %s locale settings", ErrCodeHookMismatch, params.LocaleID)
	}

	if locale.CodeHookSpecification == nil || locale.CodeHookSpecification.LambdaCodeHook == nil {
		return fmt.Errorf("%w: no code hook specification", ErrCodeHookMismatch)
	}

	if got := aws.ToString(locale.CodeHookSpecification.LambdaCodeHook.LambdaARN); got != params.LambdaARN {
		return fmt.Errorf("%w: got %s", ErrCodeHookMismatch, got)
	}

	log.Info().Str("alias_id", aliasID).Msg("lambda code hook configured correctly")

	return nil
}
