package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-builder/internal/domain"
	tpl "resume-builder/internal/template"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type memRepo struct {
	rows map[uuid.UUID]domain.Resume
}

func newMemRepo() *memRepo { return &memRepo{rows: map[uuid.UUID]domain.Resume{}} }

func (m *memRepo) List(ctx context.Context, userID uuid.UUID) ([]domain.ResumeSummary, error) {
	out := []domain.ResumeSummary{}
	for _, r := range m.rows {
		if r.UserID != userID {
			continue
		}
		out = append(out, domain.ResumeSummary{
			ID: r.ID, UserID: r.UserID, Title: r.Title,
			Template: r.Document.Template, ATSScore: r.ATSScore,
			CreatedAt: r.CreatedAt, UpdatedAt: r.UpdatedAt,
		})
	}
	return out, nil
}

func (m *memRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Resume, error) {
	r, ok := m.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	// round-trip through JSON so callers get an independent copy, like a row scan
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	var cp domain.Resume
	if err := json.Unmarshal(b, &cp); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (m *memRepo) Save(ctx context.Context, r *domain.Resume) error {
	m.rows[r.ID] = *r
	return nil
}

func (m *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.rows, id)
	return nil
}

type stubExporter struct{}

func (stubExporter) ExportHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

func newTestApp(t *testing.T) (*fiber.App, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	svc := usecase.NewService(repo, nil, tpl.NewRegistry(), stubExporter{}, nil)
	app := fiber.New()
	NewHandler(svc).Register(app)
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestResumeLifecycle(t *testing.T) {
	app, _ := newTestApp(t)
	userID := uuid.NewString()

	// create
	resp := doJSON(t, app, "POST", "/resumes", map[string]string{
		"userId": userID, "title": "Backend CV", "templateId": "cosmos",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[domain.Resume](t, resp)
	require.Equal(t, "Backend CV", created.Title)
	require.Equal(t, "cosmos", created.Document.Template)
	id := created.ID.String()

	// personal info
	resp = doJSON(t, app, "PATCH", "/resumes/"+id+"/personal", map[string]string{"fullName": "Jane Doe"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// add experience
	resp = doJSON(t, app, "POST", "/resumes/"+id+"/experience", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	expID := decode[map[string]string](t, resp)["id"]
	require.NotEmpty(t, expID)

	// update it, flipping current on
	resp = doJSON(t, app, "PATCH", "/resumes/"+id+"/experience/"+expID, map[string]any{
		"company": "Acme", "position": "Engineer", "startDate": "Jan 2020", "current": true,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// reload and check the sentinel
	resp = doJSON(t, app, "GET", "/resumes/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	loaded := decode[domain.Resume](t, resp)
	require.Len(t, loaded.Document.Experience, 1)
	require.Equal(t, "Present", loaded.Document.Experience[0].EndDate)

	// list for the user
	resp = doJSON(t, app, "GET", "/resumes?userId="+userID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	summaries := decode[[]domain.ResumeSummary](t, resp)
	require.Len(t, summaries, 1)
	require.Equal(t, "cosmos", summaries[0].Template)

	// delete, then 404
	resp = doJSON(t, app, "DELETE", "/resumes/"+id, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, "GET", "/resumes/"+id, nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateUnknownEntityIsNoOp(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "POST", "/resumes", map[string]string{
		"userId": uuid.NewString(), "title": "T", "templateId": "pulsar",
	})
	created := decode[domain.Resume](t, resp)
	id := created.ID.String()

	resp = doJSON(t, app, "PATCH", "/resumes/"+id+"/skills/no-such-id", map[string]string{"name": "Go"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[map[string]bool](t, resp)
	require.False(t, out["updated"])

	resp = doJSON(t, app, "DELETE", "/resumes/"+id+"/skills/no-such-id", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	removed := decode[map[string]bool](t, resp)
	require.False(t, removed["removed"])
}

func TestUnknownCollectionRejected(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "POST", "/resumes", map[string]string{
		"userId": uuid.NewString(), "title": "T", "templateId": "cosmos",
	})
	created := decode[domain.Resume](t, resp)

	resp = doJSON(t, app, "POST", "/resumes/"+created.ID.String()+"/hobbies", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateWithUnknownTemplateFallsBack(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "POST", "/resumes", map[string]string{
		"userId": uuid.NewString(), "title": "T", "templateId": "no-such-template",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[domain.Resume](t, resp)
	require.Equal(t, tpl.DefaultTemplateID, created.Document.Template)
}

func TestPreviewAndExport(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "POST", "/resumes", map[string]string{
		"userId": uuid.NewString(), "title": "T", "templateId": "cosmos",
	})
	created := decode[domain.Resume](t, resp)
	id := created.ID.String()

	resp = doJSON(t, app, "PATCH", "/resumes/"+id+"/personal", map[string]string{"fullName": "Jane Doe"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/resumes/"+id+"/preview", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Jane Doe")

	resp = doJSON(t, app, "POST", "/resumes/"+id+"/export", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestUpdateOptions(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "POST", "/resumes", map[string]string{
		"userId": uuid.NewString(), "title": "T", "templateId": "cosmos",
	})
	created := decode[domain.Resume](t, resp)
	id := created.ID.String()

	resp = doJSON(t, app, "PUT", "/resumes/"+id+"/options", map[string]any{
		"template": "galaxy", "accentColor": "teal", "monochrome": true,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode[domain.Resume](t, resp)
	require.Equal(t, "galaxy", updated.Document.Template)
	require.Equal(t, "teal", updated.Document.AccentColor)
	require.True(t, updated.Document.Monochrome)
}

func TestCustomSectionItems(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "POST", "/resumes", map[string]string{
		"userId": uuid.NewString(), "title": "T", "templateId": "cosmos",
	})
	created := decode[domain.Resume](t, resp)
	id := created.ID.String()

	resp = doJSON(t, app, "POST", "/resumes/"+id+"/custom-sections", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	secID := decode[map[string]string](t, resp)["id"]

	resp = doJSON(t, app, "POST", "/resumes/"+id+"/custom-sections/"+secID+"/items", nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	itemID := decode[map[string]string](t, resp)["id"]

	resp = doJSON(t, app, "PATCH", "/resumes/"+id+"/custom-sections/"+secID+"/items/"+itemID, map[string]string{"text": "Spanish (fluent)"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/resumes/"+id, nil)
	loaded := decode[domain.Resume](t, resp)
	require.Len(t, loaded.Document.CustomSections, 1)
	require.Equal(t, "Spanish (fluent)", loaded.Document.CustomSections[0].Items[0].Text)
}

func TestListTemplatesRankedByScore(t *testing.T) {
	app, _ := newTestApp(t)
	resp := doJSON(t, app, "GET", "/templates", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	listings := decode[[]usecase.TemplateListing](t, resp)
	require.Len(t, listings, 12)
	for i := 1; i < len(listings); i++ {
		require.GreaterOrEqual(t, listings[i-1].ATSScore, listings[i].ATSScore)
	}
}

func TestCheckATSWithJobDescription(t *testing.T) {
	app, _ := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("Built services with Docker and PostgreSQL"))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("jobDescription", "Docker Kubernetes PostgreSQL"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/ats/check", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	report := decode[usecase.ATSReport](t, resp)
	require.Equal(t, 66, report.Score)
	require.Contains(t, report.MatchedKeywords, "Docker")
	require.Contains(t, report.MissingKeywords, "Kubernetes")
}

func TestCheckATSMissingFile(t *testing.T) {
	app, _ := newTestApp(t)
	req := httptest.NewRequest("POST", "/ats/check", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
