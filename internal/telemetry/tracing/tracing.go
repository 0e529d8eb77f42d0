package tracing

import (
	"os"
	"strings"

	"github.com/honeycombio/honeycomb-opentelemetry-go"
	"github.com/honeycombio/otel-config-go/otelconfig"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var GlobalTracer = otel.Tracer("ihealth-backend")

// EndSpanWithErrCheck marks the span as failed when err is set, then ends it.
// Meant to be deferred with a named error return.
func EndSpanWithErrCheck(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
	span.End()
}

// Enabled reports whether tracing was switched on via HONEYCOMB_ENABLED.
func Enabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("HONEYCOMB_ENABLED")))
	return v == "true" || v == "1"
}

// HoneycombSetup configures the OTel SDK to export to Honeycomb.
// The API key and service name are read from the standard OTEL_ and HONEYCOMB_ env vars.
// The returned func flushes and shuts down the exporter.
func HoneycombSetup() (func(), error) {
	bsp := honeycomb.NewBaggageSpanProcessor()
	otelShutdown, err := otelconfig.ConfigureOpenTelemetry(
		otelconfig.WithSpanProcessor(bsp),
	)
	if err != nil {
		return nil, err
	}
	log.Debugln("honeycomb tracing configured")
	return otelShutdown, nil
}
