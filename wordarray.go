package wordarray

import (
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/siherrmann/wordarray/core/parser"
	"github.com/siherrmann/wordarray/core/reader"
	"github.com/siherrmann/wordarray/core/repository"
	"github.com/siherrmann/wordarray/core/service"
	"github.com/siherrmann/wordarray/core/specification"
	"github.com/siherrmann/wordarray/core/validation"
	"github.com/siherrmann/wordarray/core/warehouse"
	"github.com/siherrmann/wordarray/helper"
	"github.com/siherrmann/wordarray/model"
)

// DefaultMetricsNamespace is used when Options.MetricsNamespace is empty
const DefaultMetricsNamespace = "wordarray"

// Options configures a WordArrays instance
type Options struct {
	// Logger is used by every component. If nil, a pretty logger writing
	// to stdout at LogLevel is created.
	Logger   *slog.Logger
	LogLevel slog.Level
	// Registerer receives the metrics collectors. If nil, a private registry is used.
	Registerer       prometheus.Registerer
	MetricsNamespace string
}

// WordArrays wires a repository to its statistics warehouse
type WordArrays struct {
	Repository *repository.Repository
	Warehouse  *warehouse.Warehouse
	Service    *service.Service
	Metrics    *helper.Metrics
	// Logging
	log *slog.Logger
}

// New creates a repository and a warehouse and registers the warehouse as
// an observer of the repository
func New(opts Options) (*WordArrays, error) {
	logger := opts.Logger
	if logger == nil {
		logger = helper.NewLogger(os.Stdout, opts.LogLevel)
	}

	namespace := opts.MetricsNamespace
	if namespace == "" {
		namespace = DefaultMetricsNamespace
	}
	metrics, err := helper.NewMetrics(namespace, opts.Registerer)
	if err != nil {
		return nil, helper.NewError("create metrics", err)
	}

	repo := repository.NewRepository(logger, metrics)
	wh := warehouse.NewWarehouse(logger, metrics)
	repo.AddObserver(wh)

	return &WordArrays{
		Repository: repo,
		Warehouse:  wh,
		Service:    service.NewService(logger),
		Metrics:    metrics,
		log:        logger,
	}, nil
}

// NewFromConfiguration creates a WordArrays instance from an environment configuration
func NewFromConfiguration(config *helper.Configuration, reg prometheus.Registerer) (*WordArrays, error) {
	level, err := config.Level()
	if err != nil {
		return nil, helper.NewError("parse log level", err)
	}

	return New(Options{
		LogLevel:         level,
		Registerer:       reg,
		MetricsNamespace: config.MetricsNamespace,
	})
}

// Create validates words, builds a new array of the trimmed words and adds
// it to the repository. The error wraps a validation sentinel error.
func (w *WordArrays) Create(words []string) (*model.WordArray, error) {
	err := validation.ValidateArray(words)
	if err != nil {
		w.log.Debug("Rejected word array", slog.Any("error", err))
		return nil, helper.NewError("create array", err)
	}

	trimmed := make([]string, len(words))
	for i, word := range words {
		trimmed[i] = strings.TrimSpace(word)
	}

	array := model.NewWordArray(trimmed)
	w.Repository.Add(array)
	w.log.Info("Created word array", slog.String("array_id", array.ID().String()), slog.Int("words", array.Len()))

	return array, nil
}

// CreateFromLine parses line into words and creates an array from them
func (w *WordArrays) CreateFromLine(line string) (*model.WordArray, error) {
	return w.Create(parser.ParseLine(line))
}

// LoadFile creates an array for every valid line of the file at path.
// Processing stops at the first line that fails to create.
func (w *WordArrays) LoadFile(path string) ([]*model.WordArray, error) {
	lines, err := reader.NewReader(path, w.log).ReadValidLines()
	if err != nil {
		return nil, helper.NewError("load file", err)
	}

	arrays := make([]*model.WordArray, 0, len(lines))
	for i, line := range lines {
		array, err := w.CreateFromLine(line)
		if err != nil {
			return arrays, helper.NewError("load file", err)
		}
		arrays = append(arrays, array)
		w.log.Debug("Created array from line", slog.Int("line", i+1), slog.String("array", array.String()))
	}

	w.log.Info("Loaded file", slog.String("path", path), slog.Int("arrays", len(arrays)))
	return arrays, nil
}

// Statistics returns the cached statistics of the array with id
func (w *WordArrays) Statistics(id uuid.UUID) (model.Statistics, bool) {
	return w.Warehouse.Statistics(id)
}

// Query returns the stored arrays matching spec in insertion order
func (w *WordArrays) Query(spec specification.Specification) []*model.WordArray {
	return w.Repository.Query(spec)
}
