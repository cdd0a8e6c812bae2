package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	domain "github.com/satyacheck-ai/satyacheck/internal/domain/analysis"
)

// defaultImageInstruction is used when an image arrives without a caption.
const defaultImageInstruction = "Analyze the text and context in this image."

// Clock abstraction so timing is testable
type Clock interface {
	Now() time.Time
}

// Service implements the content-to-verdict pipeline: resolve the request
// variant to analyzable content, invoke the model once, normalize the
// response. Each call is stateless and independent; the Service is safe for
// concurrent use.
type Service struct {
	Model   domain.Model
	Fetcher domain.PageFetcher
	Clock   Clock
}

// Analyze yields exactly one of a report or an error. A failed URL fetch
// surfaces as *analysis.FetchError with the raw cause; every model or parse
// failure surfaces as *analysis.FailedError. No retries.
func (s *Service) Analyze(ctx context.Context, req domain.Request) (*domain.Report, error) {
	start := s.Clock.Now()

	content := req.Body
	var image []byte
	var mime string

	switch req.Kind {
	case domain.KindURL:
		text, err := s.Fetcher.PageText(ctx, req.Body)
		if err != nil {
			return nil, err
		}
		content = text
	case domain.KindImage:
		content = req.Instruction
		if content == "" {
			content = defaultImageInstruction
		}
		image = req.ImageData
		mime = req.ImageMIME
	}

	raw, err := s.Model.Analyze(ctx, content, image, mime)
	if err != nil {
		return nil, domain.NewFailedError(err)
	}

	report, err := domain.Normalize(raw)
	if err != nil {
		return nil, domain.NewParseFailedError(err)
	}

	report.ID = fmt.Sprintf("%s-%s", uuid.New().String(), req.Kind)
	report.Kind = req.Kind
	report.AnalyzedAt = start
	report.DurationMS = s.Clock.Now().Sub(start).Milliseconds()
	return report, nil
}
