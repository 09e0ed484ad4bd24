package main

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/segmentio/kafka-go"

	"go_spellcheck_server/config"
	"go_spellcheck_server/trie"
)

type Spellchecker struct {
	Trie        *trie.Trie
	TrieLock    *sync.RWMutex
	Clients     map[*WSClient]bool
	ClientsLock *sync.RWMutex
	Config      *config.Config
	KafkaWriter *kafka.Writer `json:"-"` // nil when publishing is disabled
}

type WSClient struct {
	Conn      *websocket.Conn
	Checker   *Spellchecker
	WriteLock *sync.Mutex
}

// RankedWord is a word paired with its weight, as returned to clients.
type RankedWord struct {
	Word   string  `json:"word"`
	Weight float64 `json:"weight"`
}

// WordEvent is published to kafka for every mutation of the trie.
type WordEvent struct {
	Op     string  `json:"op"`
	Word   string  `json:"word"`
	Weight float64 `json:"weight,omitempty"`
}

type MessageHeader struct {
	Type string
}

type WordMessage struct {
	Type string
	Word string
}

type SearchMessage struct {
	Type   string
	Prefix string
}

type InsertMessage struct {
	Type   string
	Word   string
	Weight interface{} // number or numeric text
}
