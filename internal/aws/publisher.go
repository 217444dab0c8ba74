package aws

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/smithy-go"

	"github.com/imrishuroy/go-pos-terminal/internal/orders"
)

// Metric names published per completed order.
const (
	MetricOrdersCompleted = "OrdersCompleted"
	MetricOrderTotal      = "OrderTotal"
	MetricItemsSold       = "ItemsSold"
)

// MetricsPublisher wraps a CloudWatch client and a namespace.
type MetricsPublisher struct {
	CloudWatch CloudWatchAPI
	Namespace  string
}

// NewMetricsPublisher returns a MetricsPublisher bound to a namespace.
func NewMetricsPublisher(cw CloudWatchAPI, namespace string) *MetricsPublisher {
	return &MetricsPublisher{
		CloudWatch: cw,
		Namespace:  namespace,
	}
}

// OrderCompleted publishes count, total and item metrics for one order.
func (p *MetricsPublisher) OrderCompleted(ctx context.Context, o orders.Order) error {
	ts := o.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	total, _ := o.Total.Float64()

	input := &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(p.Namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String(MetricOrdersCompleted),
				Timestamp:  sdkaws.Time(ts),
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(1),
			},
			{
				MetricName: sdkaws.String(MetricOrderTotal),
				Timestamp:  sdkaws.Time(ts),
				Unit:       cwtypes.StandardUnitNone,
				Value:      sdkaws.Float64(total),
			},
			{
				MetricName: sdkaws.String(MetricItemsSold),
				Timestamp:  sdkaws.Time(ts),
				Unit:       cwtypes.StandardUnitCount,
				Value:      sdkaws.Float64(float64(o.ItemCount())),
			},
		},
	}

	if _, err := p.CloudWatch.PutMetricData(ctx, input); err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) {
			return fmt.Errorf("put metric data (%s): %w", ae.ErrorCode(), err)
		}
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}
