package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	tpl "resume-builder/internal/template"

	"github.com/google/uuid"
)

type ResumeRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.ResumeSummary, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Resume, error)
	Save(ctx context.Context, r *domain.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PreviewCache holds rendered preview HTML. Both sides are best-effort; a
// miss or an unavailable backend just means a fresh render.
type PreviewCache interface {
	Get(ctx context.Context, id uuid.UUID) (string, bool)
	Set(ctx context.Context, id uuid.UUID, html string)
	Invalidate(ctx context.Context, id uuid.UUID)
}

type Exporter interface {
	ExportHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type EventSink interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Service wires the editor, registry, persistence, cache, exporter and event
// publisher into the operations the HTTP layer exposes.
type Service struct {
	repo     ResumeRepo
	cache    PreviewCache
	registry *tpl.Registry
	exporter Exporter
	events   EventSink

	mockScorer    Scorer
	keywordScorer Scorer
}

func NewService(repo ResumeRepo, cache PreviewCache, registry *tpl.Registry, exporter Exporter, events EventSink) *Service {
	return &Service{
		repo:          repo,
		cache:         cache,
		registry:      registry,
		exporter:      exporter,
		events:        events,
		mockScorer:    &MockScorer{Delay: 2 * time.Second},
		keywordScorer: &KeywordScorer{},
	}
}

func (s *Service) Registry() *tpl.Registry { return s.registry }

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.ResumeSummary, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, userID uuid.UUID, title, templateID string) (*domain.Resume, error) {
	desc := s.registry.Resolve(templateID)
	if title == "" {
		title = "My Resume"
	}

	now := time.Now()
	r := &domain.Resume{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		ATSScore:  TemplateATSScore(desc),
		Document:  *model.NewDocument(desc.ID),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}

	s.publish(ctx, "resume.created", r)
	return r, nil
}

// Mutate loads a resume, applies fn through an editor and persists the
// result. fn reports whether it changed anything; an untouched document is
// still saved last-write-wins, matching the original's save policy.
func (s *Service) Mutate(ctx context.Context, id uuid.UUID, fn func(e *Editor) bool) (*domain.Resume, bool, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, false, err
	}

	e := NewEditor(&r.Document)
	applied := fn(e)

	if err := s.saveResume(ctx, r); err != nil {
		return nil, false, err
	}
	return r, applied, nil
}

// ReplaceDocument swaps in a whole document, e.g. a client-side autosave.
func (s *Service) ReplaceDocument(ctx context.Context, id uuid.UUID, doc model.Document) (*domain.Resume, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	r.Document = doc
	if err := s.saveResume(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) saveResume(ctx context.Context, r *domain.Resume) error {
	if r.Document.Template == "" {
		r.Document.Template = tpl.DefaultTemplateID
	}
	if err := model.Validate(&r.Document); err != nil {
		return err
	}
	r.ATSScore = TemplateATSScore(s.registry.Resolve(r.Document.Template))
	r.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, r); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, r.ID)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.publish(ctx, "resume.deleted", map[string]any{"id": id.String()})
	return nil
}

// Preview renders the document with its selected template, caching the HTML
// until the next mutation.
func (s *Service) Preview(ctx context.Context, id uuid.UUID) (string, error) {
	if s.cache != nil {
		if html, ok := s.cache.Get(ctx, id); ok {
			return html, nil
		}
	}

	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return "", err
	}
	html, err := s.registry.Render(&r.Document)
	if err != nil {
		return "", err
	}
	if s.cache != nil {
		s.cache.Set(ctx, id, html)
	}
	return html, nil
}

// Export renders the resume and hands the HTML to the PDF exporter, retrying
// transient failures and checking the PDF signature before returning.
func (s *Service) Export(ctx context.Context, id uuid.UUID) ([]byte, error) {
	html, err := s.Preview(ctx, id)
	if err != nil {
		return nil, err
	}

	var pdfBytes []byte
	var renderErr error
	attempts := 3
	for i := 0; i < attempts; i++ {
		pdfBytes, renderErr = s.exporter.ExportHTMLToPDF(ctx, html)
		if renderErr == nil {
			if len(pdfBytes) > 0 && strings.HasPrefix(string(pdfBytes), "%PDF") {
				break
			}
			renderErr = fmt.Errorf("invalid PDF output (len=%d)", len(pdfBytes))
		}
		log.Printf("service: export attempt %d failed: %v", i+1, renderErr)
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	if renderErr != nil {
		return nil, fmt.Errorf("export failed after %d attempts: %w", attempts, renderErr)
	}

	s.publish(ctx, "resume.exported", map[string]any{"id": id.String(), "size": len(pdfBytes)})
	return pdfBytes, nil
}

// TemplateListing is one catalog row, ranked by the metadata heuristic.
type TemplateListing struct {
	tpl.Descriptor
	ATSScore int `json:"atsScore"`
}

func (s *Service) Templates() []TemplateListing {
	out := []TemplateListing{}
	for _, d := range s.registry.List() {
		out = append(out, TemplateListing{Descriptor: d, ATSScore: TemplateATSScore(d)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ATSScore > out[j].ATSScore })
	return out
}

// CheckATS extracts text from an uploaded resume and scores it. With a job
// description present the keyword heuristic runs; without one the canned
// mock stands in, as the original checker did.
func (s *Service) CheckATS(ctx context.Context, mime string, data []byte, jobDescription string) (*ATSReport, error) {
	text, err := ExtractResumeText(mime, data)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(jobDescription) == "" {
		return s.mockScorer.Score(ctx, text, jobDescription)
	}
	return s.keywordScorer.Score(ctx, text, jobDescription)
}

func (s *Service) publish(ctx context.Context, key string, payload any) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, key, payload); err != nil {
		log.Printf("service: failed to publish %s: %v", key, err)
	}
}
