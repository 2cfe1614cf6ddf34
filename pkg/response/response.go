package response

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"walletguard/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey = "request_id"

// DependencyRetryAfter is advertised on 503s caused by an open breaker.
const DependencyRetryAfter = 30 * time.Second

type SuccessResponse struct {
	Data      any    `json:"data"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

type ErrorResponse struct {
	ErrorCode string         `json:"error_code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"request_id"`
	Timestamp string         `json:"timestamp"`
}

// WebhookAck is the bare body returned to payment providers. They only
// look at the status code; the fields are for operators replaying events.
type WebhookAck struct {
	OK               bool   `json:"ok"`
	AlreadyProcessed bool   `json:"alreadyProcessed,omitempty"`
	Outcome          string `json:"outcome,omitempty"`
}

func OK(c *gin.Context, data any) {
	success(c, http.StatusOK, data)
}

func Created(c *gin.Context, data any) {
	success(c, http.StatusCreated, data)
}

func Ack(c *gin.Context, alreadyProcessed bool, outcome string) {
	c.JSON(http.StatusOK, WebhookAck{OK: true, AlreadyProcessed: alreadyProcessed, Outcome: outcome})
}

// Error renders err. AppErrors keep their code, status and details; any
// other error is reported as an opaque SYS_000 so internals never leak.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		appErr = apperror.New("SYS_000", "Internal server error", http.StatusInternalServerError)
	}
	if appErr.Code == "DEP_001" {
		c.Header("Retry-After", strconv.Itoa(int(DependencyRetryAfter.Seconds())))
	}

	reqID, ts := stamp(c)
	c.JSON(appErr.HTTPStatus, ErrorResponse{
		ErrorCode: appErr.Code,
		Message:   appErr.Message,
		Details:   appErr.Details,
		RequestID: reqID,
		Timestamp: ts,
	})
}

func success(c *gin.Context, status int, data any) {
	reqID, ts := stamp(c)
	c.JSON(status, SuccessResponse{Data: data, RequestID: reqID, Timestamp: ts})
}

// stamp returns the request ID set by the RequestID middleware, or a fresh
// one for handlers mounted without it, and the current UTC timestamp.
func stamp(c *gin.Context) (string, string) {
	id := c.GetString(RequestIDKey)
	if id == "" {
		id = uuid.NewString()
	}
	return id, time.Now().UTC().Format(time.RFC3339)
}
