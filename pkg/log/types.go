package log

// ZapConfig configures the zap backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
}

// Context keys read by the logger and attached as fields when present.
type ctxKey string

const (
	// JobIDKey carries the dispatcher job id.
	JobIDKey ctxKey = "job_id"
	// DeliveryIDKey carries the webhook delivery id.
	DeliveryIDKey ctxKey = "delivery_id"
)

const (
	ModeProduction = "production"
	EncodingJSON   = "json"
)
