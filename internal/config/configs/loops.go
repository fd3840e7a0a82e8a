package configs

import "time"

// Loops configures the two recurring control loops of the dispatch pipeline
// and the bounds they operate under.
type Loops struct {
	// SchedulerInterval is the tick cadence of the delivery scheduler that
	// promotes due campaigns and materializes pending deliveries.
	SchedulerInterval time.Duration `env:"SCHEDULER_INTERVAL" envDefault:"60s"`
	// ProcessorInterval is the tick cadence of the delivery processor that
	// claims and dispatches pending deliveries.
	ProcessorInterval time.Duration `env:"PROCESSOR_INTERVAL" envDefault:"15s"`
	// ClaimBatchSize caps how many deliveries one processor tick claims.
	ClaimBatchSize int `env:"CLAIM_BATCH_SIZE" envDefault:"100"`
	// ClaimLease is how long a claimed delivery stays owned before a crash
	// leaves it reclaimable by a later tick.
	ClaimLease time.Duration `env:"CLAIM_LEASE" envDefault:"5m"`
	// SendTimeout bounds every channel adapter call.
	SendTimeout time.Duration `env:"SEND_TIMEOUT" envDefault:"10s"`
	// PreviewSampleSize caps the audience sample returned by dry-run
	// segmentation.
	PreviewSampleSize int `env:"PREVIEW_SAMPLE_SIZE" envDefault:"20"`
}
