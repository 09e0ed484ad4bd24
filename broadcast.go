package main

import "github.com/rs/zerolog/log"

func registerClient(c *WSClient) {
	c.Checker.ClientsLock.Lock()
	defer c.Checker.ClientsLock.Unlock()

	c.Checker.Clients[c] = true
}

func unregisterClient(c *WSClient) {
	c.Checker.ClientsLock.Lock()
	defer c.Checker.ClientsLock.Unlock()

	delete(c.Checker.Clients, c)
}

func numberOfClients(s *Spellchecker) int {
	s.ClientsLock.RLock()
	defer s.ClientsLock.RUnlock()

	return len(s.Clients)
}

// broadcastEvent sends a mutation to every connected client
func broadcastEvent(msgType string, event WordEvent, s *Spellchecker) {
	s.ClientsLock.RLock()
	defer s.ClientsLock.RUnlock()

	for client := range s.Clients {
		err := client.send(map[string]interface{}{
			"type":   msgType,
			"word":   event.Word,
			"weight": event.Weight,
		})
		if err != nil {
			log.Debug().Err(err).Str("remote", client.Conn.RemoteAddr().String()).Msg("broadcast failed")
		}
	}
}
