package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "github.com/satyacheck-ai/satyacheck/internal/domain/analysis"
)

type fakeModel struct {
	resp string
	err  error

	gotContent string
	gotImage   []byte
	gotMime    string
}

func (m *fakeModel) Analyze(ctx context.Context, content string, image []byte, mime string) (string, error) {
	m.gotContent = content
	m.gotImage = image
	m.gotMime = mime
	return m.resp, m.err
}

type fakeFetcher struct {
	text string
	err  error

	gotURL string
}

func (f *fakeFetcher) PageText(ctx context.Context, url string) (string, error) {
	f.gotURL = url
	return f.text, f.err
}

// stepClock advances a fixed amount per Now() call
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func newService(model *fakeModel, fetcher *fakeFetcher) *Service {
	return &Service{
		Model:   model,
		Fetcher: fetcher,
		Clock:   &stepClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC), step: 250 * time.Millisecond},
	}
}

const scamResponse = `{"credibility_score": 2, "summary": "Scam", "red_flags": [{"flag_type":"Urgency","description":"Pressure to act fast"}], "educational_insight": "Lottery scams demand upfront fees."}`

func TestAnalyzeTextScenario(t *testing.T) {
	model := &fakeModel{resp: scamResponse}
	svc := newService(model, &fakeFetcher{})

	report, err := svc.Analyze(context.Background(), domain.Request{
		Kind: domain.KindText,
		Body: "CONGRATS! You won...",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if report.CredibilityScore != 2 {
		t.Errorf("CredibilityScore = %v, want 2", report.CredibilityScore)
	}
	if len(report.RedFlags) != 1 || report.RedFlags[0].FlagType != "Urgency" {
		t.Errorf("RedFlags = %v", report.RedFlags)
	}
	if report.Kind != domain.KindText {
		t.Errorf("Kind = %q", report.Kind)
	}
	if !strings.HasSuffix(report.ID, "-text") {
		t.Errorf("ID = %q, want -text suffix", report.ID)
	}
	if report.DurationMS != 250 {
		t.Errorf("DurationMS = %d, want 250", report.DurationMS)
	}
	if !strings.Contains(model.gotContent, "CONGRATS! You won...") {
		t.Errorf("model did not receive the submitted text: %q", model.gotContent)
	}
}

func TestAnalyzeURLResolvesPageFirst(t *testing.T) {
	model := &fakeModel{resp: scamResponse}
	fetcher := &fakeFetcher{text: "Fetched paragraph text."}
	svc := newService(model, fetcher)

	report, err := svc.Analyze(context.Background(), domain.Request{
		Kind: domain.KindURL,
		Body: "https://example.com/article",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if fetcher.gotURL != "https://example.com/article" {
		t.Errorf("fetcher URL = %q", fetcher.gotURL)
	}
	if model.gotContent != "Fetched paragraph text." {
		t.Errorf("model content = %q, want fetched text", model.gotContent)
	}
	if report.Kind != domain.KindURL {
		t.Errorf("Kind = %q", report.Kind)
	}
}

func TestAnalyzeURLFetchFailure(t *testing.T) {
	fetchErr := &domain.FetchError{Cause: "connection refused"}
	svc := newService(&fakeModel{resp: scamResponse}, &fakeFetcher{err: fetchErr})

	report, err := svc.Analyze(context.Background(), domain.Request{
		Kind: domain.KindURL,
		Body: "https://example.com/down",
	})
	if report != nil {
		t.Fatalf("report = %v, want nil", report)
	}
	var fe *domain.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FetchError", err)
	}
	if !strings.Contains(fe.Error(), "connection refused") {
		t.Errorf("fetch error lost its cause: %q", fe.Error())
	}
}

func TestAnalyzeImagePassesBytesAndDefaultInstruction(t *testing.T) {
	model := &fakeModel{resp: scamResponse}
	svc := newService(model, &fakeFetcher{})

	img := []byte{0xFF, 0xD8, 0xFF}
	report, err := svc.Analyze(context.Background(), domain.Request{
		Kind:      domain.KindImage,
		ImageData: img,
		ImageMIME: "image/jpeg",
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if model.gotContent != defaultImageInstruction {
		t.Errorf("instruction = %q, want default", model.gotContent)
	}
	if string(model.gotImage) != string(img) || model.gotMime != "image/jpeg" {
		t.Errorf("image not forwarded: %v %q", model.gotImage, model.gotMime)
	}
	if !strings.HasSuffix(report.ID, "-image") {
		t.Errorf("ID = %q", report.ID)
	}
}

func TestAnalyzeModelFailure(t *testing.T) {
	svc := newService(&fakeModel{err: errors.New("401 invalid api key")}, &fakeFetcher{})

	report, err := svc.Analyze(context.Background(), domain.Request{Kind: domain.KindText, Body: "x"})
	if report != nil {
		t.Fatalf("report = %v, want nil", report)
	}
	var fe *domain.FailedError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FailedError", err)
	}
	if !strings.HasPrefix(fe.Message, "AI analysis failed.") {
		t.Errorf("message = %q, want fixed prefix", fe.Message)
	}
	if !strings.Contains(fe.Message, "401 invalid api key") {
		t.Errorf("message lost cause: %q", fe.Message)
	}
}

func TestAnalyzeParseFailure(t *testing.T) {
	svc := newService(&fakeModel{resp: "Sorry, I cannot help with that."}, &fakeFetcher{})

	report, err := svc.Analyze(context.Background(), domain.Request{Kind: domain.KindText, Body: "x"})
	if report != nil {
		t.Fatalf("report = %v, want nil", report)
	}
	var fe *domain.FailedError
	if !errors.As(err, &fe) {
		t.Fatalf("error = %v, want *FailedError", err)
	}
	if !strings.Contains(fe.Message, "not valid JSON") {
		t.Errorf("message = %q", fe.Message)
	}
}

func TestAnalyzeExactlyOneOutcome(t *testing.T) {
	requests := []domain.Request{
		{Kind: domain.KindText, Body: "some text"},
		{Kind: domain.KindURL, Body: "https://example.com"},
		{Kind: domain.KindImage, ImageData: []byte{1}, ImageMIME: "image/png"},
	}
	models := []*fakeModel{
		{resp: scamResponse},
		{err: errors.New("boom")},
		{resp: "not json at all"},
	}

	for _, req := range requests {
		for _, model := range models {
			report, err := newService(model, &fakeFetcher{text: "page"}).Analyze(context.Background(), req)
			if (report == nil) == (err == nil) {
				t.Errorf("kind=%s model=%+v: report=%v err=%v, want exactly one", req.Kind, model, report, err)
			}
		}
	}
}
