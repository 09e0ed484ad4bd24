package main

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"

	"go_spellcheck_server/config"
)

// rankWords orders words by weight, highest first, and keeps at most limit.
// Ties are broken alphabetically.
func rankWords(words map[string]float64, limit int) []RankedWord {
	ranked := toRanked(words)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].Word < ranked[j].Word
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func sortedWords(words map[string]float64) []RankedWord {
	ranked := toRanked(words)
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].Word < ranked[j].Word })
	return ranked
}

func toRanked(words map[string]float64) []RankedWord {
	ranked := make([]RankedWord, 0, len(words))
	for word, weight := range words {
		ranked = append(ranked, RankedWord{Word: word, Weight: weight})
	}
	return ranked
}

// newEventWriter returns nil when no brokers are configured or the topic
// cannot be reached.
func newEventWriter(cfg *config.Config) *kafka.Writer {
	if !cfg.KafkaEnabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// creates the topic when the broker allows auto topic creation
	conn, err := kafka.DialLeader(ctx, "tcp", cfg.Kafka.Brokers[0], cfg.Kafka.Topic, 0)
	if err != nil {
		log.Error().Err(err).Str("topic", cfg.Kafka.Topic).Msg("failed to create topic, event publishing disabled")
		return nil
	}
	conn.Close()

	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Brokers...),
		Topic:        cfg.Kafka.Topic,
		RequiredAcks: kafka.RequireAll,
		Async:        true,
		BatchSize:    1,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error().Err(err).Int("messages", len(messages)).Msg("failed to publish events")
			}
		},
	}
}

func sendEvent(w *kafka.Writer, event WordEvent) {
	if w == nil {
		return
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode event")
		return
	}

	err = w.WriteMessages(
		context.Background(),
		kafka.Message{
			Key:   []byte(event.Word),
			Value: value,
		},
	)
	if err != nil {
		log.Error().Err(err).Str("op", event.Op).Str("word", event.Word).Msg("failed to publish event")
	}
}
