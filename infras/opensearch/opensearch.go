package opensearch

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hauliday/config"
	"hauliday/infras/otel"
	"hauliday/shared/constant"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ServiceName is the SigV4 signing name for OpenSearch Serverless collections.
const ServiceName = "aoss"

const (
	otelAttrIndex  = "opensearch.index"
	otelAttrStatus = "opensearch.status"

	requestTimeout = 60 * time.Second
)

type OpenSearch interface {
	IndexExists(ctx context.Context, index string) (bool, error)
	DeleteIndex(ctx context.Context, index string) error
	CreateIndex(ctx context.Context, index string, body any) (json.RawMessage, error)
}

type opensearchImpl struct {
	endpoint    string
	region      string
	credentials aws.CredentialsProvider
	signer      *v4.Signer
	httpClient  *http.Client
	otel        otel.Otel
}

// New builds a client for the collection endpoint. The scheme defaults to https when omitted.
func New(endpoint string, cfg *config.Config, awsCfg aws.Config, otel otel.Otel) OpenSearch {
	return NewWithHTTPClient(endpoint, cfg.AWS.Region, awsCfg.Credentials, &http.Client{Timeout: requestTimeout}, otel)
}

func NewWithHTTPClient(endpoint, region string, credentials aws.CredentialsProvider, httpClient *http.Client, otel otel.Otel) OpenSearch {
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return &opensearchImpl{
		endpoint:    strings.TrimRight(endpoint, "/"),
		region:      region,
		credentials: credentials,
		signer:      v4.NewSigner(),
		httpClient:  httpClient,
		otel:        otel,
	}
}

func (o *opensearchImpl) IndexExists(ctx context.Context, index string) (exists bool, err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelOpenSearchScopeName, constant.OtelOpenSearchScopeName+".IndexExists")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(otelAttrIndex, index)

	status, _, err := o.do(ctx, http.MethodHead, "/"+index, nil)
	if err != nil {
		return false, err
	}

	scope.SetAttribute(otelAttrStatus, status)

	switch status {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, errors.Errorf("unexpected status %d checking index %s", status, index)
	}
}

func (o *opensearchImpl) DeleteIndex(ctx context.Context, index string) (err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelOpenSearchScopeName, constant.OtelOpenSearchScopeName+".DeleteIndex")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(otelAttrIndex, index)

	status, body, err := o.do(ctx, http.MethodDelete, "/"+index, nil)
	if err != nil {
		return err
	}

	if status >= http.StatusMultipleChoices {
		return errors.Errorf("failed to delete index %s: status %d: %s", index, status, body)
	}

	return nil
}

func (o *opensearchImpl) CreateIndex(ctx context.Context, index string, body any) (res json.RawMessage, err error) {
	ctx, scope := o.otel.NewScope(ctx, constant.OtelOpenSearchScopeName, constant.OtelOpenSearchScopeName+".CreateIndex")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(otelAttrIndex, index)

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode index body: %w", err)
	}

	status, respBody, err := o.do(ctx, http.MethodPut, "/"+index, payload)
	if err != nil {
		return nil, err
	}

	if status >= http.StatusMultipleChoices {
		return nil, errors.Errorf("failed to create index %s: status %d: %s", index, status, respBody)
	}

	return json.RawMessage(respBody), nil
}

func (o *opensearchImpl) do(ctx context.Context, method, path string, payload []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, o.endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	if payload != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	hash := sha256.Sum256(payload)
	payloadHash := hex.EncodeToString(hash[:])

	// Serverless collections require the content hash header on every signed request.
	req.Header.Set(constant.RequestHeaderAmzContentSHA, payloadHash)

	creds, err := o.credentials.Retrieve(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to retrieve AWS credentials: %w", err)
	}

	if err = o.signer.SignHTTP(ctx, creds, req, payloadHash, ServiceName, o.region, time.Now()); err != nil {
		return 0, nil, fmt.Errorf("failed to sign request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to call opensearch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read opensearch response: %w", err)
	}

	log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("opensearch request")

	return resp.StatusCode, body, nil
}
