//go:build integration

package kafka_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"salescredit/internal/platform/kafka"
	"salescredit/pkg/testutil/containers"
)

func TestProducerPublish(t *testing.T) {
	broker := containers.NewRedpandaContainer(t).Broker
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	const topic = "salescredit.audit.test"

	// NewProducer must create the topic on a fresh cluster.
	producer, err := kafka.NewProducer(ctx, []string{broker}, topic)
	require.NoError(t, err)
	defer producer.Close()

	require.NoError(t, producer.Publish(ctx, "actor-7", []byte(`{"action":"issue_credit"}`)))
	require.NoError(t, producer.Publish(ctx, "actor-7", []byte(`{"action":"revoke_credit"}`)))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	var records []*kgo.Record
	for len(records) < 2 {
		fetches := consumer.PollFetches(ctx)
		require.NoError(t, fetches.Err())
		records = append(records, fetches.Records()...)
	}

	assert.Equal(t, "actor-7", string(records[0].Key))
	assert.JSONEq(t, `{"action":"issue_credit"}`, string(records[0].Value))
	assert.JSONEq(t, `{"action":"revoke_credit"}`, string(records[1].Value))
}
