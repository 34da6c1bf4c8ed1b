package state

import (
	"encoding/json"
	"log"

	"github.com/VibeCoder01/OneTap-Time/internal/models"
	"github.com/VibeCoder01/OneTap-Time/internal/store"
)

// DataKey is the storage key holding the full persisted document.
const DataKey = "onetap-data"

// Gateway is the persistence boundary for the registry and ledger. It is a
// pure serialize/deserialize layer: it owns no live state and is invoked by
// the facade once at startup (Load) and after every mutation (Save).
type Gateway struct {
	storage *store.Storage
}

func NewGateway(s *store.Storage) *Gateway {
	return &Gateway{storage: s}
}

// Load reads the persisted document. A missing key, unreadable value,
// parse failure, or wrong shape (either collection absent) falls back to
// the default seed: empty log, default categories. Load never fails the
// caller.
func (g *Gateway) Load() models.Document {
	defaults := models.Document{
		Activities: []models.Activity{},
		Categories: models.DefaultCategories(),
	}

	data, ok, err := g.storage.Get(DataKey)
	if err != nil {
		log.Printf("Failed to read stored data, starting fresh: %v", err)
		return defaults
	}
	if !ok {
		return defaults
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		log.Printf("Stored data is corrupted, starting fresh: %v", err)
		return defaults
	}
	if doc.Activities == nil || doc.Categories == nil {
		log.Printf("Stored data has the wrong shape, starting fresh")
		return defaults
	}
	return doc
}

// Save writes the full document under DataKey. Persistence is best-effort:
// failures are logged and swallowed, the in-memory state stays
// authoritative for the session.
func (g *Gateway) Save(doc models.Document) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Printf("Failed to serialize data: %v", err)
		return
	}
	if err := g.storage.Set(DataKey, data); err != nil {
		log.Printf("Failed to save data: %v", err)
	}
}
