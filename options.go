package crucible

import (
	"log/slog"

	"github.com/katalvlaran/crucible/profile"
	"github.com/katalvlaran/crucible/telemetry"
)

// Options configures Solve and Evaluate.
//
// Profiles   – run limits to evaluate, in order. Default profile.Defaults().
// Logger     – structured logger; nil disables logging.
// Metrics    – metrics sink. Default telemetry.NoopMetrics{}.
// Spans      – tracing. Default telemetry.NoopSpanManager{}.
// ReturnPath – attach the reconstructed path to every found Answer.
// RunID      – identifier for logs and spans. Default: a fresh UUID.
type Options struct {
	Profiles   []profile.Profile
	Logger     *slog.Logger
	Metrics    telemetry.MetricsRecorder
	Spans      telemetry.SpanManager
	ReturnPath bool
	RunID      string
}

// Option represents a functional option for configuring an evaluation.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options, with RunID unset.
func DefaultOptions() Options {
	return Options{
		Profiles: profile.Defaults(),
		Metrics:  telemetry.NoopMetrics{},
		Spans:    telemetry.NoopSpanManager{},
	}
}

// WithProfiles replaces the profiles to evaluate.
func WithProfiles(ps ...profile.Profile) Option {
	return func(o *Options) {
		o.Profiles = ps
	}
}

// WithLogger enables structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m telemetry.MetricsRecorder) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// WithSpanManager sets the span manager.
func WithSpanManager(sm telemetry.SpanManager) Option {
	return func(o *Options) {
		if sm != nil {
			o.Spans = sm
		}
	}
}

// WithReturnPath attaches reconstructed paths to the answers.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithRunID fixes the evaluation's run identifier.
func WithRunID(id string) Option {
	return func(o *Options) {
		o.RunID = id
	}
}
