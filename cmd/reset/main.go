// Command reset wipes every stored collection. The next server start
// reseeds the demonstration dataset.
package main

import (
	"context"
	"log"

	"otbasy/internal/config"
	"otbasy/internal/storage"
)

func main() {
	cfg := config.Load()

	kv, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer kv.Close()

	if err := kv.RemoveMany(context.Background(), storage.AllKeys()); err != nil {
		log.Fatalf("Failed to wipe storage: %v", err)
	}

	log.Printf("Cleared %d slot(s) (type: %s)", len(storage.AllKeys()), cfg.StorageType)
}
