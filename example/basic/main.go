package main

import (
	"log"
	"log/slog"
	"os"
	"slices"

	"github.com/siherrmann/wordarray"
	"github.com/siherrmann/wordarray/core/observer"
	"github.com/siherrmann/wordarray/core/specification"
	"github.com/siherrmann/wordarray/helper"
	"github.com/siherrmann/wordarray/model"
)

func main() {
	logger := helper.NewLogger(os.Stdout, slog.LevelInfo)

	w, err := wordarray.New(wordarray.Options{Logger: logger})
	if err != nil {
		log.Fatalf("Failed to create word arrays: %v", err)
	}

	// A second observer next to the warehouse, printing every event
	w.Repository.AddObserver(observer.NewObserverFunc("printer", func(event model.Event) error {
		logger.Info("Event received", slog.String("kind", string(event.Kind)), slog.String("array", event.Array.String()))
		return nil
	}))

	inputs := [][]string{
		{"apple", "banana", "cat"},
		{"Zebra", "Lion", "Ant", "Tiger"},
		{"a", "b"},
	}
	arrays := make([]*model.WordArray, 0, len(inputs))
	for _, words := range inputs {
		array, err := w.Create(words)
		if err != nil {
			log.Fatalf("Failed to create array: %v", err)
		}
		stats, _ := w.Statistics(array.ID())
		logger.Info("Created array", slog.String("array", array.String()), slog.String("statistics", stats.String()))
		arrays = append(arrays, array)
	}

	w.Repository.Remove(arrays[1])
	_, ok := w.Statistics(arrays[1].ID())
	logger.Info("Removed second array", slog.Bool("statistics_present", ok), slog.Int("arrays", w.Repository.Len()))

	for _, array := range w.Query(specification.ByID(arrays[0].ID())) {
		logger.Info("Found by ID", slog.String("array", array.String()))
	}
	for _, array := range w.Query(specification.ByMaxLength(w.Warehouse, 1)) {
		logger.Info("Found by max length 1", slog.String("array", array.String()))
	}

	all := w.Repository.All()
	slices.SortFunc(all, model.CompareByID)
	logger.Info("Sorted by ID", slog.Any("arrays", all))
	slices.SortFunc(all, model.CompareByLength)
	logger.Info("Sorted by length", slog.Any("arrays", all))
	slices.SortFunc(all, model.CompareByFirstWord)
	logger.Info("Sorted by first word", slog.Any("arrays", all))

	w.Repository.Clear()
	logger.Info("Repository cleared", slog.Int("cached_records", w.Warehouse.Len()))
}
