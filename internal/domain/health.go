package domain

import "time"

// Region is the deployment region reported by the liveness endpoint.
// Set at link time, e.g. -ldflags "-X github.com/notifyhub/regionhealth/internal/domain.Region=eu-west-1".
var Region = "ap-northeast-1"

// Status is the reported service state. Only healthy is ever produced.
type Status string

const StatusHealthy Status = "healthy"

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// HealthStatus is the liveness document, built once per request and
// serialized immediately.
type HealthStatus struct {
	Status    Status `json:"status"`
	Timestamp string `json:"timestamp"`
	Region    string `json:"region"`
}

func NewHealthStatus(now time.Time, region string) HealthStatus {
	return HealthStatus{
		Status:    StatusHealthy,
		Timestamp: FormatTimestamp(now),
		Region:    region,
	}
}

// FormatTimestamp renders t in UTC. Sub-millisecond digits are dropped.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
