package provision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hauliday/internal/domains/reservation/repository"
	"hauliday/shared/constant"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/connect"
	connectTypes "github.com/aws/aws-sdk-go-v2/service/connect/types"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/google/uuid"
)

// Status is the outcome of one smoke check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	default:
		return "fail"
	}
}

const (
	minIntentConfidence = 0.7
	sampleLimit         = 5
)

var errNoMessages = errors.New("no messages in response")

type Result struct {
	Suite  string
	Name   string
	Status Status
	Detail string
}

type Report struct {
	Results []Result
}

func (r *Report) add(suite, name string, status Status, detail string) {
	r.Results = append(r.Results, Result{Suite: suite, Name: name, Status: status, Detail: detail})
}

// Count returns how many results have the status.
func (r Report) Count(status Status) int {
	n := 0

	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}

	return n
}

func (r Report) Failed() bool {
	return r.Count(StatusFail) > 0
}

// LambdaCase is an event sent to the function and the words one of which the reply should contain.
type LambdaCase struct {
	Name     string
	Payload  map[string]any
	Keywords []string
}

func lexPayload(transcript, intent string) map[string]any {
	return map[string]any{
		"inputTranscript": transcript,
		"sessionState": map[string]any{
			"intent":            map[string]any{"name": intent, "slots": map[string]any{}},
			"sessionAttributes": map[string]any{},
		},
	}
}

// LambdaCases are the canonical invocations checked against a deployed function.
func LambdaCases(intent string) []LambdaCase {
	return []LambdaCase{
		{
			Name:     "Equipment Catalog Query",
			Payload:  lexPayload("What equipment do you have available?", intent),
			Keywords: []string{"cotton candy", "cargo carrier", "$40", "$30"},
		},
		{
			Name:     "Pricing Query",
			Payload:  lexPayload("How much does the cotton candy machine cost?", intent),
			Keywords: []string{"$40", "cotton candy"},
		},
		{
			Name:     "Availability Check",
			Payload:  lexPayload("Is the cotton candy machine available August 30th?", intent),
			Keywords: []string{"cotton candy", "august", "available"},
		},
		{
			Name:     "Invalid Query Handling",
			Payload:  lexPayload("Tell me about your company history", intent),
			Keywords: []string{"equipment rental", "help"},
		},
		{
			Name:     "Malformed Event",
			Payload:  map[string]any{"malformed": "event"},
			Keywords: []string{"didn't catch", "repeat"},
		},
	}
}

// LexUtterances should all be recognized as the rental intent.
var LexUtterances = []string{
	"What equipment do you have?",
	"How much does the cotton candy machine cost?",
	"Is the cargo carrier available?",
	"I want to rent something",
	"Show me your prices",
}

type SmokeClients struct {
	Lambda       LambdaAPI
	LexRuntime   LexRuntimeAPI
	Connect      ConnectAPI
	Reservations repository.Reservation
}

type SmokeParams struct {
	FunctionName string
	BotID        string
	AliasID      string
	LocaleID     string
	InstanceID   string
	IntentName   string
}

type SmokeTest struct {
	clients   SmokeClients
	params    SmokeParams
	sessionID func() string
}

func NewSmokeTest(clients SmokeClients, params SmokeParams) *SmokeTest {
	return &SmokeTest{
		clients:   clients,
		params:    params,
		sessionID: uuid.NewString,
	}
}

// Run executes every suite. Failures are recorded in the report, never returned.
func (s *SmokeTest) Run(ctx context.Context) Report {
	var report Report

	s.checkLambda(ctx, &report)
	s.checkLex(ctx, &report)
	s.checkTable(ctx, &report)
	s.checkConnect(ctx, &report)
	s.checkEndToEnd(ctx, &report)

	return report
}

func (s *SmokeTest) checkLambda(ctx context.Context, report *Report) {
	const suite = "Lambda"

	for _, tc := range LambdaCases(s.params.IntentName) {
		reply, err := s.invoke(ctx, tc.Payload)
		if err != nil {
			report.add(suite, tc.Name, StatusFail, err.Error())

			continue
		}

		found := matchedKeywords(reply, tc.Keywords)
		if len(found) == 0 {
			report.add(suite, tc.Name, StatusWarn, fmt.Sprintf("none of %v in %q", tc.Keywords, truncate(reply)))

			continue
		}

		report.add(suite, tc.Name, StatusPass, fmt.Sprintf("found %v", found))
	}
}

func (s *SmokeTest) checkLex(ctx context.Context, report *Report) {
	const suite = "Lex"

	for _, utterance := range LexUtterances {
		intent, confidence, err := s.recognize(ctx, s.sessionID(), utterance)
		if err != nil {
			report.add(suite, utterance, StatusFail, err.Error())

			continue
		}

		detail := fmt.Sprintf("%s (%.2f)", intent, confidence)

		if intent == s.params.IntentName && confidence > minIntentConfidence {
			report.add(suite, utterance, StatusPass, detail)
		} else {
			report.add(suite, utterance, StatusWarn, detail)
		}
	}
}

func (s *SmokeTest) checkTable(ctx context.Context, report *Report) {
	const suite, name = "DynamoDB", "Reservation table"

	items, err := s.clients.Reservations.Sample(ctx, sampleLimit)
	if err != nil {
		report.add(suite, name, StatusFail, err.Error())

		return
	}

	detail := fmt.Sprintf("%d reservation records", len(items))
	if len(items) > 0 {
		detail += fmt.Sprintf(", sample %s from %s", items[0].EquipmentID, items[0].StartDate)
	}

	report.add(suite, name, StatusPass, detail)
}

func (s *SmokeTest) checkConnect(ctx context.Context, report *Report) {
	const suite, name = "Connect", "Lex association"

	suffix := fmt.Sprintf(":bot-alias/%s/%s", s.params.BotID, s.params.AliasID)

	input := &connect.ListBotsInput{
		InstanceId: aws.String(s.params.InstanceID),
		LexVersion: connectTypes.LexVersionV2,
	}

	for {
		out, err := s.clients.Connect.ListBots(ctx, input)
		if err != nil {
			report.add(suite, name, StatusFail, err.Error())

			return
		}

		for _, bot := range out.LexBots {
			if bot.LexV2Bot != nil && strings.HasSuffix(aws.ToString(bot.LexV2Bot.AliasArn), suffix) {
				report.add(suite, name, StatusPass, aws.ToString(bot.LexV2Bot.AliasArn))

				return
			}
		}

		if aws.ToString(out.NextToken) == constant.Empty {
			break
		}

		input.NextToken = out.NextToken
	}

	report.add(suite, name, StatusWarn, "bot alias is not associated with the instance")
}

func (s *SmokeTest) checkEndToEnd(ctx context.Context, report *Report) {
	const suite, name = "End-to-end", "Inquiry then pricing"

	intent, _, err := s.recognize(ctx, s.sessionID(), "What equipment do you have?")
	if err != nil {
		report.add(suite, name, StatusFail, err.Error())

		return
	}

	if intent != s.params.IntentName {
		report.add(suite, name, StatusFail, fmt.Sprintf("recognized as %q", intent))

		return
	}

	reply, err := s.invoke(ctx, lexPayload("How much does the cotton candy machine cost?", s.params.IntentName))
	if err != nil {
		report.add(suite, name, StatusFail, err.Error())

		return
	}

	if !strings.Contains(reply, "$40") {
		report.add(suite, name, StatusFail, fmt.Sprintf("pricing missing from %q", truncate(reply)))

		return
	}

	report.add(suite, name, StatusPass, "pricing returned")
}

// invoke calls the function and returns the first message content.
func (s *SmokeTest) invoke(ctx context.Context, payload map[string]any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to encode payload: %w", err)
	}

	out, err := s.clients.Lambda.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(s.params.FunctionName),
		Payload:      data,
	})
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to invoke function: %w", err)
	}

	if out.StatusCode != http.StatusOK {
		return constant.Empty, fmt.Errorf("invocation returned status %d", out.StatusCode)
	}

	if out.FunctionError != nil {
		return constant.Empty, fmt.Errorf("function error: %s", aws.ToString(out.FunctionError))
	}

	var res struct {
		Messages []struct {
			Content string `json:"content"`
		} `json:"messages"`
	}

	if err := json.Unmarshal(out.Payload, &res); err != nil {
		return constant.Empty, fmt.Errorf("failed to decode function response: %w", err)
	}

	if len(res.Messages) == 0 {
		return constant.Empty, errNoMessages
	}

	return res.Messages[0].Content, nil
}

func (s *SmokeTest) recognize(ctx context.Context, sessionID, text string) (string, float64, error) {
	out, err := s.clients.LexRuntime.RecognizeText(ctx, &lexruntimev2.RecognizeTextInput{
		BotId:      aws.String(s.params.BotID),
		BotAliasId: aws.String(s.params.AliasID),
		LocaleId:   aws.String(s.params.LocaleID),
		SessionId:  aws.String(sessionID),
		Text:       aws.String(text),
	})
	if err != nil {
		return constant.Empty, 0, fmt.Errorf("failed to recognize text: %w", err)
	}

	var intent string
	if out.SessionState != nil && out.SessionState.Intent != nil {
		intent = aws.ToString(out.SessionState.Intent.Name)
	}

	var confidence float64
	if len(out.Interpretations) > 0 && out.Interpretations[0].NluConfidence != nil {
		confidence = out.Interpretations[0].NluConfidence.Score
	}

	return intent, confidence, nil
}

func matchedKeywords(text string, keywords []string) []string {
	lower := strings.ToLower(text)

	var found []string

	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			found = append(found, keyword)
		}
	}

	return found
}

func truncate(text string) string {
	const limit = 100

	if len(text) <= limit {
		return text
	}

	return text[:limit] + "..."
}
