package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tpl "resume-builder/internal/template"
)

// ATSReport is the compatibility result shown to the user. Neither scorer
// behind it is an authoritative matching engine; both are documented
// placeholders until a real one exists.
type ATSReport struct {
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matchedKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
	Suggestions     []string `json:"suggestions"`
	FormatIssues    []string `json:"formatIssues"`
}

type Scorer interface {
	Score(ctx context.Context, resumeText, jobDescription string) (*ATSReport, error)
}

// MockScorer returns a canned report after a simulated analysis delay,
// regardless of input.
type MockScorer struct {
	Delay time.Duration
}

func (s *MockScorer) Score(ctx context.Context, resumeText, jobDescription string) (*ATSReport, error) {
	if s.Delay > 0 {
		select {
		case <-time.After(s.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return &ATSReport{
		Score:           78,
		MatchedKeywords: []string{"React", "JavaScript", "TypeScript", "Node.js", "REST API", "Git", "Agile"},
		MissingKeywords: []string{"Docker", "Kubernetes", "CI/CD", "AWS", "GraphQL"},
		Suggestions: []string{
			`Add quantifiable achievements (e.g., "Increased performance by 40%")`,
			"Include more industry-specific keywords from the job description",
			"Add a professional summary at the top of your resume",
			"Use action verbs to start bullet points",
			"Include relevant certifications if available",
		},
		FormatIssues: standardFormatIssues(),
	}, nil
}

// KeywordScorer is the deterministic heuristic: extract keywords from the
// job description, count how many appear in the resume text, score the
// overlap. Capped at 100, no weighting, no NLP.
type KeywordScorer struct{}

const maxKeywords = 30

var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"are": true, "our": true, "will": true, "have": true, "this": true,
	"that": true, "your": true, "who": true, "not": true, "all": true,
	"can": true, "from": true, "about": true, "work": true, "team": true,
	"role": true, "job": true, "years": true, "experience": true,
	"skills": true, "ability": true, "strong": true, "plus": true,
	"required": true, "preferred": true, "knowledge": true, "including": true,
}

func (s *KeywordScorer) Score(ctx context.Context, resumeText, jobDescription string) (*ATSReport, error) {
	keywords := extractKeywords(jobDescription)
	if len(keywords) == 0 {
		return &ATSReport{
			Score:        0,
			Suggestions:  []string{"Paste a job description with concrete requirements to get a keyword match score"},
			FormatIssues: standardFormatIssues(),
		}, nil
	}

	resumeLower := strings.ToLower(resumeText)
	matched := []string{}
	missing := []string{}
	for _, kw := range keywords {
		if strings.Contains(resumeLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	score := 100 * len(matched) / len(keywords)
	if score > 100 {
		score = 100
	}

	suggestions := []string{}
	if len(missing) > 0 {
		top := missing
		if len(top) > 5 {
			top = top[:5]
		}
		suggestions = append(suggestions, fmt.Sprintf("Work these keywords into your experience bullets: %s", strings.Join(top, ", ")))
	}
	if score < 60 {
		suggestions = append(suggestions,
			"Mirror the job description's terminology in your summary",
			`Add quantifiable achievements (e.g., "Increased performance by 40%")`,
		)
	}

	return &ATSReport{
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Suggestions:     suggestions,
		FormatIssues:    standardFormatIssues(),
	}, nil
}

// extractKeywords pulls distinct candidate terms from a job description in
// first-seen order, most frequent terms first when over the cap.
func extractKeywords(text string) []string {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#' || r == '.':
			return false
		}
		return true
	})

	type entry struct {
		word  string
		count int
		order int
	}
	seen := map[string]*entry{}
	ordered := []*entry{}
	for _, t := range tokens {
		t = strings.Trim(t, ".")
		if len(t) < 3 {
			continue
		}
		key := strings.ToLower(t)
		if stopwords[key] {
			continue
		}
		if ent, ok := seen[key]; ok {
			ent.count++
			continue
		}
		ent := &entry{word: t, count: 1, order: len(ordered)}
		seen[key] = ent
		ordered = append(ordered, ent)
	}

	if len(ordered) > maxKeywords {
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].count > ordered[j].count })
		ordered = ordered[:maxKeywords]
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })
	}

	out := make([]string, 0, len(ordered))
	for _, ent := range ordered {
		out = append(out, ent.word)
	}
	return out
}

func standardFormatIssues() []string {
	return []string{
		"Consider using a single-column layout for better ATS parsing",
		"Avoid using headers/footers - some ATS systems skip them",
		"Use standard section headings (Experience, Education, Skills)",
	}
}

// TemplateATSScore ranks a catalog entry: base score plus download tier,
// rating tier and an ATS-optimized bonus, capped at 100. Listing-page
// metadata only; unrelated to any resume content.
func TemplateATSScore(d tpl.Descriptor) int {
	score := 60

	switch {
	case d.Downloads >= 15:
		score += 15
	case d.Downloads >= 10:
		score += 12
	case d.Downloads >= 5:
		score += 8
	default:
		score += 4
	}

	switch {
	case d.Rating >= 4.8:
		score += 15
	case d.Rating >= 4.6:
		score += 10
	default:
		score += 5
	}

	if d.ATSOptimized {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}
