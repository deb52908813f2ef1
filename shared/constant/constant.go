package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeySessionID contextKey = "session_id"
)

const (
	DateFormat     = time.DateOnly
	DateTimeFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelBedrockScopeName    = "bedrock"
	OtelAnthropicScopeName  = "anthropic"
	OtelS3ScopeName         = "s3"
	OtelOpenSearchScopeName = "opensearch"
)

const (
	RequestHeaderContentType   = "Content-Type"
	RequestHeaderRequestID     = "X-Request-ID"
	RequestHeaderAmzContentSHA = "X-Amz-Content-Sha256"
)

const (
	ContentTypeJSON     = "application/json"
	ContentTypeMarkdown = "text/markdown"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	SessionAttrConversationHistory = "conversation_history"
	SessionAttrFailureCount        = "failure_count"
)

const (
	Empty = ""
)
