package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"yayayum/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := observability.Tracer
	observability.Tracer = tp.Tracer("test")
	t.Cleanup(func() {
		observability.Tracer = prev
		_ = tp.Shutdown(t.Context())
	})
	return sr
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		out[kv.Key] = kv.Value
	}
	return out
}

func TestTracingMiddleware(t *testing.T) {
	sr := recordSpans(t)

	app := fiber.New()
	app.Use(TracingMiddleware())
	app.Get("/ratings/dish/:dishId", func(c *fiber.Ctx) error { return c.JSON([]any{}) })
	app.Get("/dishes/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/users", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusInternalServerError) })

	for _, target := range []string{"/ratings/dish/7", "/dishes/42", "/users"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))
		_ = resp.Body.Close()
	}

	spans := sr.Ended()
	require.Len(t, spans, 3)

	byDish := spanAttrs(spans[0])
	assert.Equal(t, "GET /ratings/dish/:dishId", spans[0].Name())
	assert.Equal(t, "ratings", byDish["menu.resource"].AsString())
	assert.Equal(t, "7", byDish["menu.dish_id"].AsString())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	dish := spanAttrs(spans[1])
	assert.Equal(t, "GET /dishes/:id", spans[1].Name())
	assert.Equal(t, "dishes", dish["menu.resource"].AsString())
	assert.Equal(t, "42", dish["menu.entity_id"].AsString())
	assert.True(t, dish["menu.rejected"].AsBool())
	assert.EqualValues(t, http.StatusNotFound, dish["http.status_code"].AsInt64())

	users := spanAttrs(spans[2])
	assert.Equal(t, "users", users["menu.resource"].AsString())
	_, hasID := users["menu.entity_id"]
	assert.False(t, hasID)
	assert.Equal(t, codes.Error, spans[2].Status().Code)
}

func TestMenuResource(t *testing.T) {
	assert.Equal(t, "ratings", menuResource("/ratings/user/:userId"))
	assert.Equal(t, "users", menuResource("/users"))
	assert.Equal(t, "", menuResource("/health/ready"))
	assert.Equal(t, "", menuResource("/"))
}
