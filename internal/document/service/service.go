package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/docqa/docqa/internal/completion"
	"github.com/docqa/docqa/internal/document"
	"github.com/docqa/docqa/internal/document/repository"
	"github.com/docqa/docqa/internal/exchange"
	"github.com/docqa/docqa/internal/extract"
	"github.com/docqa/docqa/internal/prompt"
	"github.com/docqa/docqa/internal/storage"
	"github.com/docqa/docqa/pkg/logger"
	"github.com/docqa/docqa/pkg/metrics"
	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrProvider     = errors.New("completion provider failed")
)

// Answer is the result of a successful Ask.
type Answer struct {
	Question   string
	Answer     string
	DocumentID string
}

// Service defines the document operations used by the handler layer.
type Service interface {
	Upload(ctx context.Context, filename string, content []byte) (*document.Document, error)
	Ask(ctx context.Context, req document.QuestionRequest) (*Answer, error)
	List(ctx context.Context) ([]document.Summary, error)
}

// Option customises a Service built by New.
type Option func(*docService)

// WithArchive keeps a copy of every raw upload.
func WithArchive(a storage.Archive) Option {
	return func(s *docService) { s.archive = a }
}

// WithRecorder logs every ask exchange.
func WithRecorder(r exchange.Recorder) Option {
	return func(s *docService) { s.recorder = r }
}

// WithModel labels recorded exchanges with the provider model.
func WithModel(model string) Option {
	return func(s *docService) { s.model = model }
}

// New returns a Service over repo that answers questions with completer.
func New(repo *repository.MemoryRepo, completer completion.Completer, opts ...Option) Service {
	s := &docService{repo: repo, completer: completer, recorder: exchange.NopRecorder{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

type docService struct {
	repo      *repository.MemoryRepo
	completer completion.Completer
	archive   storage.Archive
	recorder  exchange.Recorder
	model     string
}

func (s *docService) Upload(ctx context.Context, filename string, content []byte) (*document.Document, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, fmt.Errorf("%w: filename is required", ErrInvalidInput)
	}
	text, fileType, err := extract.Extract(filename, content)
	if err != nil {
		metrics.Uploads.WithLabelValues("unknown", "decode_error").Inc()
		return nil, err
	}
	d := s.repo.Put(filename, text, fileType)
	metrics.Uploads.WithLabelValues(fileType, "ok").Inc()
	metrics.Documents.Set(float64(s.repo.Len()))

	if s.archive != nil {
		if err := s.archive.Save(ctx, filename, content, mimetype.Detect(content).String()); err != nil {
			logger.Warnf("archive upload %q: %v", filename, err)
		}
	}
	logger.Log(logger.LevelInfo, "document stored", logger.Fields{"id": d.ID, "size": d.Size(), "type": fileType})
	return d, nil
}

// Ask never mutates the store. An unknown document id fails before any
// provider call is made.
func (s *docService) Ask(ctx context.Context, req document.QuestionRequest) (*Answer, error) {
	d, err := s.repo.Get(req.DocumentID)
	if err != nil {
		metrics.Asks.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("%w: document %q", ErrNotFound, req.DocumentID)
	}

	p := prompt.Build(d.Content, req.Question)
	ex := exchange.New(req.DocumentID, req.Question)
	ex.Model = s.model

	start := time.Now()
	answer, err := s.completer.Complete(ctx, p)
	ex.Duration = time.Since(start)
	metrics.ProviderLatency.Observe(ex.Duration.Seconds())

	if err != nil {
		metrics.Asks.WithLabelValues("provider_error").Inc()
		ex.Error = err.Error()
		s.record(ctx, ex)
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	metrics.Asks.WithLabelValues("ok").Inc()
	ex.Answer = answer
	s.record(ctx, ex)
	return &Answer{Question: req.Question, Answer: answer, DocumentID: req.DocumentID}, nil
}

func (s *docService) List(ctx context.Context) ([]document.Summary, error) {
	return s.repo.List(), nil
}

func (s *docService) record(ctx context.Context, ex *exchange.Exchange) {
	if err := s.recorder.Record(context.WithoutCancel(ctx), ex); err != nil {
		logger.Warnf("record exchange %s: %v", ex.ID, err)
	}
}
