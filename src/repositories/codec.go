package repositories

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"manajemen-toko/src/models"
)

// documentVersion is bumped whenever the encoded Store layout changes in a
// way old readers cannot handle.
const documentVersion = 1

var ErrDocumentVersion = errors.New("unsupported store document version")

type storeDocument struct {
	Version int          `msgpack:"v"`
	Store   models.Store `msgpack:"store"`
}

func encodeStore(store *models.Store) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.UseCompactInts(true)
	if err := enc.Encode(&storeDocument{Version: documentVersion, Store: *store}); err != nil {
		return nil, fmt.Errorf("encode store %s: %w", store.ID, err)
	}
	return buf.Bytes(), nil
}

func decodeStore(data []byte) (*models.Store, error) {
	var doc storeDocument
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode store document: %w", err)
	}
	if doc.Version != documentVersion {
		return nil, fmt.Errorf("%w: %d", ErrDocumentVersion, doc.Version)
	}
	normalizeTimes(&doc.Store)
	return &doc.Store, nil
}

// normalizeTimes puts decoded dates back in UTC. msgpack rebuilds them in
// time.Local, which moves a midnight date into the previous day west of UTC.
func normalizeTimes(store *models.Store) {
	for i := range store.Assets {
		store.Assets[i].PurchaseDate = store.Assets[i].PurchaseDate.UTC()
	}
	for i := range store.CashFlow {
		store.CashFlow[i].Date = store.CashFlow[i].Date.UTC()
	}
}
