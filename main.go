package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"go_spellcheck_server/config"
	"go_spellcheck_server/dictionary"
	"go_spellcheck_server/trie"
)

var upgrader = websocket.Upgrader{}

func newRouter(s *Spellchecker) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		handleConnections(s, w, r)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]int{"words": s.Len()}); err != nil {
			log.Error().Err(err).Msg("failed to write health response")
		}
	})

	return cors.Default().Handler(mux)
}

func handleConnections(s *Spellchecker, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	defer conn.Close()

	wsClient := &WSClient{Conn: conn, Checker: s, WriteLock: &sync.Mutex{}}
	registerClient(wsClient)
	defer unregisterClient(wsClient)

	wsClient.HandleClient()
}

func (c *WSClient) HandleClient() {
	log.Info().Str("remote", c.Conn.RemoteAddr().String()).Msg("client connected")

	for {
		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			log.Info().Err(err).Str("remote", c.Conn.RemoteAddr().String()).Msg("client disconnected")
			break
		}

		var header MessageHeader
		if err := json.Unmarshal(msg, &header); err != nil {
			c.sendError(err)
			continue
		}

		switch header.Type {
		case "isWord":
			var data WordMessage
			if err := json.Unmarshal(msg, &data); err != nil {
				c.sendError(err)
				continue
			}
			c.isWord(data)
		case "search":
			var data SearchMessage
			if err := json.Unmarshal(msg, &data); err != nil {
				c.sendError(err)
				continue
			}
			c.search(data)
		case "insert":
			var data InsertMessage
			if err := json.Unmarshal(msg, &data); err != nil {
				c.sendError(err)
				continue
			}
			c.insert(data)
		case "remove":
			var data WordMessage
			if err := json.Unmarshal(msg, &data); err != nil {
				c.sendError(err)
				continue
			}
			c.remove(data)
		case "words":
			c.send(map[string]interface{}{
				"type":  "words",
				"words": c.Checker.AllWords(),
			})
		default:
			continue
		}
	}
}

// send serialises writes; broadcasts arrive from other connections' goroutines.
func (c *WSClient) send(v interface{}) error {
	c.WriteLock.Lock()
	defer c.WriteLock.Unlock()

	return c.Conn.WriteJSON(v)
}

func (c *WSClient) sendError(err error) {
	c.send(map[string]string{
		"type":  "error",
		"error": err.Error(),
	})
}

func (c *WSClient) isWord(data WordMessage) {
	c.send(map[string]interface{}{
		"type":    "isWord",
		"word":    dictionary.Normalize(data.Word),
		"correct": c.Checker.IsWord(data.Word),
	})
}

func (c *WSClient) search(data SearchMessage) {
	prefix := dictionary.Normalize(data.Prefix)

	words, err := c.Checker.Search(prefix)
	switch {
	case errors.Is(err, trie.ErrNotFound):
		c.send(map[string]string{
			"type":   "searchMiss",
			"prefix": prefix,
		})
	case err != nil:
		c.sendError(err)
	default:
		c.send(map[string]interface{}{
			"type":   "search",
			"prefix": prefix,
			"words":  words,
		})
	}
}

func (c *WSClient) insert(data InsertMessage) {
	weight, err := dictionary.ParseWeight(data.Weight)
	if err != nil {
		c.sendError(err)
		return
	}

	// the "inserted" reply reaches this client through the broadcast
	if err := c.Checker.Insert(data.Word, weight); err != nil {
		c.sendError(err)
	}
}

func (c *WSClient) remove(data WordMessage) {
	err := c.Checker.Remove(data.Word)
	if errors.Is(err, trie.ErrNotFound) {
		c.send(map[string]string{
			"type": "notFound",
			"word": dictionary.Normalize(data.Word),
		})
	} else if err != nil {
		c.sendError(err)
	}
}

func setupLogging(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func serve(s *Spellchecker) error {
	server := &http.Server{
		Addr:    s.Config.Server.Addr,
		Handler: newRouter(s),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("addr", server.Addr).Msg("server is running")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func main() {
	configPath := flag.String("config", "", "Path to config file")
	serveMode := flag.Bool("serve", false, "Serve the websocket API instead of the interactive menu")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Log.Level)

	checker := NewSpellchecker(cfg)
	if _, err := checker.Reload(cfg.Dictionary.Path); err != nil {
		log.Warn().Err(err).Str("path", cfg.Dictionary.Path).Msg("starting with an empty dictionary")
	}

	checker.KafkaWriter = newEventWriter(cfg)
	if checker.KafkaWriter != nil {
		defer checker.KafkaWriter.Close()
	}

	if !*serveMode {
		NewMenu(checker, os.Stdin, os.Stdout).Run()
		return
	}

	if err := serve(checker); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}
}
