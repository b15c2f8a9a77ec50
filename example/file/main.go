package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/siherrmann/wordarray"
	"github.com/siherrmann/wordarray/core/reader"
	"github.com/siherrmann/wordarray/helper"
)

func main() {
	config, err := helper.NewConfiguration()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	w, err := wordarray.NewFromConfiguration(config, nil)
	if err != nil {
		log.Fatalf("Failed to create word arrays: %v", err)
	}

	level, _ := config.Level()
	logger := helper.NewLogger(os.Stdout, level)
	reader.NewReader(config.DataFile, logger).LogFileStatistics()

	arrays, err := w.LoadFile(config.DataFile)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", config.DataFile, err)
	}

	for i, array := range arrays {
		stats, _ := w.Statistics(array.ID())
		logger.Info("Loaded array",
			slog.Int("line", i+1),
			slog.Any("words", array.Words()),
			slog.Float64("average_length", stats.AverageLength),
			slog.Int("max_length", stats.MaxLength),
			slog.Int("min_length", stats.MinLength),
			slog.String("shortest", w.Service.ShortestWord(array)),
			slog.String("longest", w.Service.LongestWord(array)),
			slog.Int("longer_than_5", w.Service.CountLongerThan(array, 5)),
		)
	}
}
