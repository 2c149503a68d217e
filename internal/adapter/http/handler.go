package http

import (
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type Handler struct {
	svc *usecase.Service
}

func NewHandler(svc *usecase.Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/templates", h.ListTemplates)
	app.Post("/ats/check", h.CheckATS)

	app.Get("/resumes", h.ListResumes)
	app.Post("/resumes", h.CreateResume)
	app.Get("/resumes/:id", h.GetResume)
	app.Put("/resumes/:id", h.ReplaceDocument)
	app.Delete("/resumes/:id", h.DeleteResume)

	app.Patch("/resumes/:id/personal", h.UpdatePersonalInfo)
	app.Put("/resumes/:id/options", h.UpdateOptions)
	app.Get("/resumes/:id/preview", h.Preview)
	app.Post("/resumes/:id/export", h.Export)

	app.Post("/resumes/:id/custom-sections/:sectionId/items", h.AddCustomItem)
	app.Patch("/resumes/:id/custom-sections/:sectionId/items/:itemId", h.UpdateCustomItem)
	app.Delete("/resumes/:id/custom-sections/:sectionId/items/:itemId", h.RemoveCustomItem)

	app.Post("/resumes/:id/:collection", h.AddEntity)
	app.Patch("/resumes/:id/:collection/:entryId", h.UpdateEntity)
	app.Delete("/resumes/:id/:collection/:entryId", h.RemoveEntity)
}

func parseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

func fail(c *fiber.Ctx, err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	}
	log.Printf("handler: %s: %v", msg, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": msg})
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}
	summaries, err := h.svc.List(c.Context(), uid)
	if err != nil {
		return fail(c, err, "Failed to load resumes")
	}
	return c.JSON(summaries)
}

type createReq struct {
	UserID     string `json:"userId"`
	Title      string `json:"title"`
	TemplateID string `json:"templateId"`
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req createReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	uid, err := uuid.Parse(req.UserID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid userId"})
	}

	r, err := h.svc.Create(c.Context(), uid, req.Title, req.TemplateID)
	if err != nil {
		return fail(c, err, "Failed to create resume")
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	r, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to load resume")
	}
	return c.JSON(r)
}

func (h *Handler) ReplaceDocument(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var doc model.Document
	if err := c.BodyParser(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	r, err := h.svc.ReplaceDocument(c.Context(), id, doc)
	if err != nil {
		if strings.Contains(err.Error(), "schema validation failed") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return fail(c, err, "Failed to save resume")
	}
	return c.JSON(r)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return fail(c, err, "Failed to delete resume")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) UpdatePersonalInfo(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var patch usecase.PersonalInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	r, _, err := h.svc.Mutate(c.Context(), id, func(e *usecase.Editor) bool {
		e.UpdatePersonalInfo(patch)
		return true
	})
	if err != nil {
		return fail(c, err, "Failed to save resume")
	}
	return c.JSON(r)
}

type optionsReq struct {
	Template    *string `json:"template"`
	AccentColor *string `json:"accentColor"`
	Monochrome  *bool   `json:"monochrome"`
}

func (h *Handler) UpdateOptions(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	var req optionsReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	r, _, err := h.svc.Mutate(c.Context(), id, func(e *usecase.Editor) bool {
		if req.Template != nil {
			e.SetTemplate(*req.Template)
		}
		if req.AccentColor != nil {
			e.SetAccentColor(*req.AccentColor)
		}
		if req.Monochrome != nil {
			e.SetMonochrome(*req.Monochrome)
		}
		return true
	})
	if err != nil {
		return fail(c, err, "Failed to save resume")
	}
	return c.JSON(r)
}

func (h *Handler) AddEntity(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	collection := c.Params("collection")

	var newID string
	_, ok, err := h.svc.Mutate(c.Context(), id, func(e *usecase.Editor) bool {
		switch collection {
		case "education":
			newID = e.AddEducation()
		case "experience":
			newID = e.AddExperience()
		case "projects":
			newID = e.AddProject()
		case "achievements":
			newID = e.AddAchievement()
		case "skills":
			newID = e.AddSkill()
		case "custom-sections":
			newID = e.AddCustomSection()
		default:
			return false
		}
		return true
	})
	if err != nil {
		return fail(c, err, "Failed to save resume")
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown collection"})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": newID})
}

func (h *Handler) UpdateEntity(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	collection := c.Params("collection")
	entryID := c.Params("entryId")

	var badCollection, badPayload bool
	_, updated, err := h.svc.Mutate(c.Context(), id, func(e *usecase.Editor) bool {
		switch collection {
		case "education":
			var p usecase.EducationPatch
			if err := c.BodyParser(&p); err != nil {
				badPayload = true
				return false
			}
			return e.UpdateEducation(entryID, p)
		case "experience":
			var p usecase.ExperiencePatch
			if err := c.BodyParser(&p); err != nil {
				badPayload = true
				return false
			}
			return e.UpdateExperience(entryID, p)
		case "projects":
			var p usecase.ProjectPatch
			if err := c.BodyParser(&p); err != nil {
				badPayload = true
				return false
			}
			return e.UpdateProject(entryID, p)
		case "achievements":
			var p usecase.AchievementPatch
			if err := c.BodyParser(&p); err != nil {
				badPayload = true
				return false
			}
			return e.UpdateAchievement(entryID, p)
		case "skills":
			var p usecase.SkillPatch
			if err := c.BodyParser(&p); err != nil {
				badPayload = true
				return false
			}
			return e.UpdateSkill(entryID, p)
		case "custom-sections":
			var p usecase.CustomSectionPatch
			if err := c.BodyParser(&p); err != nil {
				badPayload = true
				return false
			}
			return e.UpdateCustomSection(entryID, p)
		default:
			badCollection = true
			return false
		}
	})
	if err != nil {
		return fail(c, err, "Failed to save resume")
	}
	if badCollection {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown collection"})
	}
	if badPayload {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	return c.JSON(fiber.Map{"updated": updated})
}

func (h *Handler) RemoveEntity(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	collection := c.Params("collection")
	entryID := c.Params("entryId")

	var badCollection bool
	_, removed, err := h.svc.Mutate(c.Context(), id, func(e *usecase.Editor) bool {
		switch collection {
		case "education":
			return e.RemoveEducation(entryID)
		case "experience":
			return e.RemoveExperience(entryID)
		case "projects":
			return e.RemoveProject(entryID)
		case "achievements":
			return e.RemoveAchievement(entryID)
		case "skills":
			return e.RemoveSkill(entryID)
		case "custom-sections":
			return e.RemoveCustomSection(entryID)
		default:
			badCollection = true
			return false
		}
	})
	if err != nil {
		return fail(c, err, "Failed to save resume")
	}
	if badCollection {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown collection"})
	}
	return c.JSON(fiber.Map{"removed": removed})
}

func (h *Handler) AddCustomItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	sectionID := c.Params("sectionId")

	var newID string
	_, added, err := h.svc.Mutate(c.Context(), id, func(e *usecase.Editor) bool {
		var ok bool
		newID, ok = e.AddCustomItem(sectionID)
		return ok
	})
	if err != nil {
		return fail(c, err, "Failed to save resume")
	}
	if !added {
		return c.JSON(fiber.Map{"added": false})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": newID})
}

func (h *Handler) UpdateCustomItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	sectionID := c.Params("sectionId")
	itemID := c.Params("itemId")

	var patch usecase.CustomItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}

	_, updated, err := h.svc.Mutate(c.Context(), id, func(e *usecase.Editor) bool {
		return e.UpdateCustomItem(sectionID, itemID, patch)
	})
	if err != nil {
		return fail(c, err, "Failed to save resume")
	}
	return c.JSON(fiber.Map{"updated": updated})
}

func (h *Handler) RemoveCustomItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	sectionID := c.Params("sectionId")
	itemID := c.Params("itemId")

	_, removed, err := h.svc.Mutate(c.Context(), id, func(e *usecase.Editor) bool {
		return e.RemoveCustomItem(sectionID, itemID)
	})
	if err != nil {
		return fail(c, err, "Failed to save resume")
	}
	return c.JSON(fiber.Map{"removed": removed})
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	html, err := h.svc.Preview(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to render preview")
	}
	c.Type("html")
	return c.SendString(html)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	pdf, err := h.svc.Export(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to export resume")
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}

func (h *Handler) ListTemplates(c *fiber.Ctx) error {
	return c.JSON(h.svc.Templates())
}

func (h *Handler) CheckATS(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "resume file is required"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fail(c, err, "Failed to read resume file")
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return fail(c, err, "Failed to read resume file")
	}

	mime := fileHeader.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = mimeFromName(fileHeader.Filename)
	}

	report, err := h.svc.CheckATS(c.Context(), mime, data, c.FormValue("jobDescription"))
	if err != nil {
		if strings.Contains(err.Error(), "unsupported file type") {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return fail(c, err, "Failed to analyze resume")
	}
	return c.JSON(report)
}

func mimeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".txt":
		return "text/plain"
	}
	return ""
}
