package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/adithyatb/fittrack/internal/fitness"
	"github.com/adithyatb/fittrack/internal/telemetry/metrics"
	"github.com/adithyatb/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, topic string, msgs ...kafka.Message) error
}

type Topics struct {
	Workouts     string
	Achievements string
}

// KafkaPublisher publishes the domain events as JSON, keyed by user id so a
// user's events stay ordered within a partition.
type KafkaPublisher struct {
	writer         messageWriter
	topics         Topics
	metricsManager *metrics.Manager
	newID          func() string
	now            func() time.Time
}

func NewKafkaPublisher(writer messageWriter, topics Topics, metricsManager *metrics.Manager) *KafkaPublisher {
	return &KafkaPublisher{
		writer:         writer,
		topics:         topics,
		metricsManager: metricsManager,
		newID:          func() string { return uuid.NewString() },
		now:            time.Now,
	}
}

func (p *KafkaPublisher) WorkoutLogged(ctx context.Context, workout fitness.Workout, estimated bool, streak int) error {
	return p.publish(ctx, p.topics.Workouts, TypeWorkoutLogged, workout.UserID, func(eventID string, now time.Time) any {
		return WorkoutLogged{
			EventID:        eventID,
			UserID:         workout.UserID,
			WorkoutID:      workout.ID,
			Type:           workout.Type,
			Duration:       workout.Duration,
			CaloriesBurned: workout.CaloriesBurned,
			Estimated:      estimated,
			Date:           workout.Date,
			Streak:         streak,
			OccurredAt:     now,
		}
	})
}

func (p *KafkaPublisher) BadgesAwarded(ctx context.Context, userID int, awarded []fitness.Achievement) error {
	if len(awarded) == 0 {
		return nil
	}
	return p.publish(ctx, p.topics.Achievements, TypeBadgesAwarded, userID, func(eventID string, now time.Time) any {
		return BadgesAwarded{
			EventID:      eventID,
			UserID:       userID,
			Achievements: awarded,
			OccurredAt:   now,
		}
	})
}

func (p *KafkaPublisher) StreakReset(ctx context.Context, userID int, lastWorkoutDate time.Time) error {
	return p.publish(ctx, p.topics.Achievements, TypeStreakReset, userID, func(eventID string, now time.Time) any {
		return StreakReset{
			EventID:         eventID,
			UserID:          userID,
			LastWorkoutDate: lastWorkoutDate,
			OccurredAt:      now,
		}
	})
}

func (p *KafkaPublisher) publish(
	ctx context.Context,
	topic, eventType string,
	userID int,
	build func(eventID string, now time.Time) any,
) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "eventbus.publish")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	eventID := p.newID()
	span.SetAttributes(
		attribute.String("event.type", eventType),
		attribute.String("event.id", eventID),
		attribute.String("topic", topic),
	)

	defer func() {
		result := "ok"
		if err != nil {
			result = "failed"
			log.Warnf("publish %s event %s for user %d: %s", eventType, eventID, userID, err)
		}
		if p.metricsManager != nil {
			p.metricsManager.CounterEventsPublished.WithLabelValues(topic, result).Inc()
		}
	}()

	payload, err := json.Marshal(build(eventID, p.now().UTC()))
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", eventType, err)
	}

	return p.writer.WriteMessages(ctx, topic, kafka.Message{
		Key:   []byte(strconv.Itoa(userID)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "event_id", Value: []byte(eventID)},
		},
	})
}

// NopPublisher is used when kafka is disabled.
type NopPublisher struct{}

func (NopPublisher) WorkoutLogged(context.Context, fitness.Workout, bool, int) error {
	return nil
}

func (NopPublisher) BadgesAwarded(context.Context, int, []fitness.Achievement) error {
	return nil
}

func (NopPublisher) StreakReset(context.Context, int, time.Time) error {
	return nil
}
