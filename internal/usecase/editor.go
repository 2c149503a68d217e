package usecase

import (
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// EndDatePresent is the sentinel end date for a role still held. The editor
// keeps it in sync with the Current flag; templates never reconcile the two.
const EndDatePresent = "Present"

// Editor is the sole mutation surface over a document. Every operation is a
// total function: referencing an unknown id is a no-op that reports false,
// never an error.
type Editor struct {
	doc *model.Document
}

func NewEditor(doc *model.Document) *Editor {
	return &Editor{doc: doc}
}

func (e *Editor) Document() *model.Document { return e.doc }

func newID() string { return uuid.NewString() }

// Patch types carry pointer fields so an unset field is distinguishable from
// an explicit empty value; updates merge and never touch unset fields.

type PersonalInfoPatch struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	LinkedIn *string `json:"linkedin"`
	Location *string `json:"location"`
	Summary  *string `json:"summary"`
}

type EducationPatch struct {
	School    *string `json:"school"`
	Degree    *string `json:"degree"`
	Field     *string `json:"field"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	GPA       *string `json:"gpa"`
}

type ExperiencePatch struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	Location    *string `json:"location"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Current     *bool   `json:"current"`
	Description *string `json:"description"`
}

type ProjectPatch struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Technologies *string `json:"technologies"`
	Link         *string `json:"link"`
}

type AchievementPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

type SkillPatch struct {
	Name        *string `json:"name"`
	Proficiency *int    `json:"proficiency"`
}

type CustomSectionPatch struct {
	Title *string `json:"title"`
}

type CustomItemPatch struct {
	Text *string `json:"text"`
}

func (e *Editor) UpdatePersonalInfo(p PersonalInfoPatch) {
	pi := &e.doc.PersonalInfo
	if p.FullName != nil {
		pi.FullName = *p.FullName
	}
	if p.Email != nil {
		pi.Email = *p.Email
	}
	if p.Phone != nil {
		pi.Phone = *p.Phone
	}
	if p.LinkedIn != nil {
		pi.LinkedIn = *p.LinkedIn
	}
	if p.Location != nil {
		pi.Location = *p.Location
	}
	if p.Summary != nil {
		pi.Summary = *p.Summary
	}
}

func (e *Editor) AddEducation() string {
	id := newID()
	e.doc.Education = append(e.doc.Education, model.Education{ID: id})
	return id
}

func (e *Editor) UpdateEducation(id string, p EducationPatch) bool {
	for i := range e.doc.Education {
		if e.doc.Education[i].ID != id {
			continue
		}
		ed := &e.doc.Education[i]
		if p.School != nil {
			ed.School = *p.School
		}
		if p.Degree != nil {
			ed.Degree = *p.Degree
		}
		if p.Field != nil {
			ed.Field = *p.Field
		}
		if p.StartDate != nil {
			ed.StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			ed.EndDate = *p.EndDate
		}
		if p.GPA != nil {
			ed.GPA = *p.GPA
		}
		return true
	}
	return false
}

func (e *Editor) RemoveEducation(id string) bool {
	for i := range e.doc.Education {
		if e.doc.Education[i].ID == id {
			e.doc.Education = append(e.doc.Education[:i], e.doc.Education[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Editor) AddExperience() string {
	id := newID()
	e.doc.Experience = append(e.doc.Experience, model.Experience{ID: id})
	return id
}

func (e *Editor) UpdateExperience(id string, p ExperiencePatch) bool {
	for i := range e.doc.Experience {
		if e.doc.Experience[i].ID != id {
			continue
		}
		ex := &e.doc.Experience[i]
		if p.Company != nil {
			ex.Company = *p.Company
		}
		if p.Position != nil {
			ex.Position = *p.Position
		}
		if p.Location != nil {
			ex.Location = *p.Location
		}
		if p.StartDate != nil {
			ex.StartDate = *p.StartDate
		}
		if p.EndDate != nil {
			ex.EndDate = *p.EndDate
		}
		if p.Description != nil {
			ex.Description = *p.Description
		}
		if p.Current != nil {
			ex.Current = *p.Current
			if ex.Current {
				// an ongoing role has no fixed end date
				ex.EndDate = EndDatePresent
			} else if p.EndDate == nil && ex.EndDate == EndDatePresent {
				ex.EndDate = ""
			}
		}
		return true
	}
	return false
}

func (e *Editor) RemoveExperience(id string) bool {
	for i := range e.doc.Experience {
		if e.doc.Experience[i].ID == id {
			e.doc.Experience = append(e.doc.Experience[:i], e.doc.Experience[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Editor) AddProject() string {
	id := newID()
	e.doc.Projects = append(e.doc.Projects, model.Project{ID: id})
	return id
}

func (e *Editor) UpdateProject(id string, p ProjectPatch) bool {
	for i := range e.doc.Projects {
		if e.doc.Projects[i].ID != id {
			continue
		}
		pr := &e.doc.Projects[i]
		if p.Name != nil {
			pr.Name = *p.Name
		}
		if p.Description != nil {
			pr.Description = *p.Description
		}
		if p.Technologies != nil {
			pr.Technologies = *p.Technologies
		}
		if p.Link != nil {
			pr.Link = *p.Link
		}
		return true
	}
	return false
}

func (e *Editor) RemoveProject(id string) bool {
	for i := range e.doc.Projects {
		if e.doc.Projects[i].ID == id {
			e.doc.Projects = append(e.doc.Projects[:i], e.doc.Projects[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Editor) AddAchievement() string {
	id := newID()
	e.doc.Achievements = append(e.doc.Achievements, model.Achievement{ID: id})
	return id
}

func (e *Editor) UpdateAchievement(id string, p AchievementPatch) bool {
	for i := range e.doc.Achievements {
		if e.doc.Achievements[i].ID != id {
			continue
		}
		a := &e.doc.Achievements[i]
		if p.Title != nil {
			a.Title = *p.Title
		}
		if p.Description != nil {
			a.Description = *p.Description
		}
		if p.Date != nil {
			a.Date = *p.Date
		}
		return true
	}
	return false
}

func (e *Editor) RemoveAchievement(id string) bool {
	for i := range e.doc.Achievements {
		if e.doc.Achievements[i].ID == id {
			e.doc.Achievements = append(e.doc.Achievements[:i], e.doc.Achievements[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Editor) AddSkill() string {
	id := newID()
	e.doc.Skills = append(e.doc.Skills, model.Skill{ID: id, Proficiency: 50})
	return id
}

func (e *Editor) UpdateSkill(id string, p SkillPatch) bool {
	for i := range e.doc.Skills {
		if e.doc.Skills[i].ID != id {
			continue
		}
		s := &e.doc.Skills[i]
		if p.Name != nil {
			s.Name = *p.Name
		}
		if p.Proficiency != nil {
			s.Proficiency = *p.Proficiency
		}
		return true
	}
	return false
}

func (e *Editor) RemoveSkill(id string) bool {
	for i := range e.doc.Skills {
		if e.doc.Skills[i].ID == id {
			e.doc.Skills = append(e.doc.Skills[:i], e.doc.Skills[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Editor) AddCustomSection() string {
	id := newID()
	e.doc.CustomSections = append(e.doc.CustomSections, model.CustomSection{ID: id, Items: []model.CustomItem{}})
	return id
}

func (e *Editor) UpdateCustomSection(id string, p CustomSectionPatch) bool {
	for i := range e.doc.CustomSections {
		if e.doc.CustomSections[i].ID != id {
			continue
		}
		if p.Title != nil {
			e.doc.CustomSections[i].Title = *p.Title
		}
		return true
	}
	return false
}

func (e *Editor) RemoveCustomSection(id string) bool {
	for i := range e.doc.CustomSections {
		if e.doc.CustomSections[i].ID == id {
			e.doc.CustomSections = append(e.doc.CustomSections[:i], e.doc.CustomSections[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Editor) AddCustomItem(sectionID string) (string, bool) {
	for i := range e.doc.CustomSections {
		if e.doc.CustomSections[i].ID == sectionID {
			id := newID()
			e.doc.CustomSections[i].Items = append(e.doc.CustomSections[i].Items, model.CustomItem{ID: id})
			return id, true
		}
	}
	return "", false
}

func (e *Editor) UpdateCustomItem(sectionID, itemID string, p CustomItemPatch) bool {
	for i := range e.doc.CustomSections {
		if e.doc.CustomSections[i].ID != sectionID {
			continue
		}
		items := e.doc.CustomSections[i].Items
		for j := range items {
			if items[j].ID == itemID {
				if p.Text != nil {
					items[j].Text = *p.Text
				}
				return true
			}
		}
		return false
	}
	return false
}

func (e *Editor) RemoveCustomItem(sectionID, itemID string) bool {
	for i := range e.doc.CustomSections {
		if e.doc.CustomSections[i].ID != sectionID {
			continue
		}
		items := e.doc.CustomSections[i].Items
		for j := range items {
			if items[j].ID == itemID {
				e.doc.CustomSections[i].Items = append(items[:j], items[j+1:]...)
				return true
			}
		}
		return false
	}
	return false
}

func (e *Editor) SetTemplate(templateID string) { e.doc.Template = templateID }

func (e *Editor) SetAccentColor(colorID string) { e.doc.AccentColor = colorID }

func (e *Editor) SetMonochrome(on bool) { e.doc.Monochrome = on }
