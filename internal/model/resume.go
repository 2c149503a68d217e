package model

// Go models for the resume document. The document is the single aggregate a
// builder session edits; it is persisted as one JSONB blob and handed whole
// to the template renderer.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin,omitempty"`
	Location string `json:"location,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	GPA       string `json:"gpa,omitempty"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

type Project struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
}

type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date,omitempty"`
}

type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
}

type CustomItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type CustomSection struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Items []CustomItem `json:"items"`
}

type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Projects       []Project       `json:"projects"`
	Achievements   []Achievement   `json:"achievements"`
	Skills         []Skill         `json:"skills"`
	CustomSections []CustomSection `json:"customSections"`
	Template       string          `json:"template"`
	AccentColor    string          `json:"accentColor,omitempty"`
	Monochrome     bool            `json:"monochrome,omitempty"`
}

// NewDocument returns an empty document ready for a builder session.
func NewDocument(templateID string) *Document {
	return &Document{
		Education:      []Education{},
		Experience:     []Experience{},
		Projects:       []Project{},
		Achievements:   []Achievement{},
		Skills:         []Skill{},
		CustomSections: []CustomSection{},
		Template:       templateID,
	}
}
