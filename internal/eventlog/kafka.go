package eventlog

import (
	"context"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"github.com/ratto/EDaemonCore/internal/skilltest"
	"github.com/ratto/EDaemonCore/pkg/platform/sentinel"
)

// KafkaSink publishes domain events to a Kafka topic. Records are keyed by
// test ID so all events of one invocation land on the same partition and
// keep their calculation order.
//
// Production is synchronous: LogEvent returns only after the broker acks,
// matching the engine's record-before-advance rule.
type KafkaSink struct {
	client *kgo.Client
	topic  string
}

// NewKafkaSink connects to the brokers and ensures the topic exists.
func NewKafkaSink(ctx context.Context, brokers []string, topic string) (*KafkaSink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka client: %w", err)
	}

	admin := kadm.NewClient(client)
	resp, err := admin.CreateTopics(ctx, 1, 1, nil, topic)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("ensure topic %q: %w", topic, err)
	}
	if topicResp, ok := resp[topic]; ok && topicResp.Err != nil && !errors.Is(topicResp.Err, kerr.TopicAlreadyExists) {
		client.Close()
		return nil, fmt.Errorf("ensure topic %q: %w", topic, topicResp.Err)
	}

	return &KafkaSink{client: client, topic: topic}, nil
}

func (s *KafkaSink) LogEvent(ctx context.Context, event skilltest.Event) error {
	envelope, err := Encode(event)
	if err != nil {
		return err
	}
	record := &kgo.Record{
		Topic: s.topic,
		Key:   []byte(event.TestID.String()),
		Value: envelope,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce event: %v: %w", err, sentinel.ErrUnavailable)
	}
	return nil
}

// Close flushes outstanding produces and releases the client.
func (s *KafkaSink) Close() {
	s.client.Close()
}

var _ skilltest.EventSink = (*KafkaSink)(nil)
