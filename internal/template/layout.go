package template

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"

	"resume-builder/internal/model"
)

// layout.go renders any LayoutSpec with one shared set of html/template
// primitives. Rendering is pure: same document in, same HTML out.

var sectionTitles = map[string]string{
	"experience":   "Experience",
	"education":    "Education",
	"projects":     "Projects",
	"skills":       "Skills",
	"achievements": "Achievements",
}

type sectionCtx struct {
	Key    string
	Title  string
	Doc    *model.Document
	Custom *model.CustomSection
}

type renderData struct {
	Doc     *model.Document
	Spec    LayoutSpec
	Accent  Palette
	Contact []string
	Sidebar []sectionCtx
	Main    []sectionCtx
}

func period(start, end string) string {
	switch {
	case start != "" && end != "":
		return start + " — " + end
	case start != "":
		return start
	default:
		return end
	}
}

func pct(p int) string {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return fmt.Sprintf("%d%%", p)
}

var pageTpl = htmltemplate.Must(htmltemplate.New("page").Funcs(htmltemplate.FuncMap{
	"period": period,
	"pct":    pct,
}).Parse(pageHTML))

// Render produces the HTML for a document using its selected template,
// accent color and monochrome flag. Unknown template ids fall back to the
// default descriptor instead of failing.
func (r *Registry) Render(doc *model.Document) (string, error) {
	desc := r.Resolve(doc.Template)
	return r.RenderWith(doc, desc)
}

// RenderWith renders a document with an explicit descriptor, bypassing the
// document's own template selection.
func (r *Registry) RenderWith(doc *model.Document, desc Descriptor) (string, error) {
	data := renderData{
		Doc:     doc,
		Spec:    desc.Layout,
		Accent:  ResolvePalette(doc.AccentColor, doc.Monochrome),
		Contact: contactLine(doc.PersonalInfo),
		Sidebar: buildSections(doc, desc.Layout, desc.Layout.Sidebar, false),
		Main:    buildSections(doc, desc.Layout, desc.Layout.Main, true),
	}

	var buf bytes.Buffer
	if err := pageTpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template %s: %w", desc.ID, err)
	}
	return buf.String(), nil
}

func contactLine(pi model.PersonalInfo) []string {
	out := []string{}
	for _, v := range []string{pi.Email, pi.Phone, pi.Location, pi.LinkedIn} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// buildSections keeps only sections with content so templates never emit an
// empty header. Custom sections ride at the end of the main column.
func buildSections(doc *model.Document, spec LayoutSpec, keys []string, withCustom bool) []sectionCtx {
	out := []sectionCtx{}
	for _, key := range keys {
		if !sectionHasContent(doc, key) {
			continue
		}
		out = append(out, sectionCtx{Key: key, Title: heading(sectionTitles[key], spec), Doc: doc})
	}
	if withCustom {
		for i := range doc.CustomSections {
			cs := &doc.CustomSections[i]
			if len(cs.Items) == 0 {
				continue
			}
			title := cs.Title
			if title == "" {
				title = "Additional"
			}
			out = append(out, sectionCtx{Key: "custom", Title: heading(title, spec), Doc: doc, Custom: cs})
		}
	}
	return out
}

func sectionHasContent(doc *model.Document, key string) bool {
	switch key {
	case "experience":
		return len(doc.Experience) > 0
	case "education":
		return len(doc.Education) > 0
	case "projects":
		return len(doc.Projects) > 0
	case "skills":
		return len(doc.Skills) > 0
	case "achievements":
		return len(doc.Achievements) > 0
	}
	return false
}

func heading(title string, spec LayoutSpec) string {
	if spec.UppercaseHeadings {
		return strings.ToUpper(title)
	}
	return title
}

const pageHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.PersonalInfo.FullName}}</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 11px; color: #1f2933; }
  .page { width: 100%; padding: 28px 32px; }
  .head { margin-bottom: 16px; }
  .head.banner { background: {{.Accent.Primary}}; color: #fff; padding: 18px 20px; }
  .head.plain { text-align: center; }
  .head.underline { border-bottom: 2px solid {{.Accent.Primary}}; padding-bottom: 10px; }
  .head h1 { font-size: 22px; }
  .head.plain h1, .head.underline h1 { color: {{.Accent.Primary}}; }
  .contact { margin-top: 4px; font-size: 10px; }
  .head.banner .contact { color: {{.Accent.Secondary}}; }
  .summary { margin-top: 8px; }
  .columns { display: flex; gap: 20px; }
  .sidebar { width: 32%; border-right: 1px solid {{.Accent.Secondary}}; padding-right: 14px; }
  .main { flex: 1; }
  .sec { margin-bottom: 14px; }
  .sec h2 { font-size: 12px; color: {{.Accent.Primary}}; border-bottom: 1px solid {{.Accent.Secondary}}; padding-bottom: 2px; margin-bottom: 6px; }
  .entry { margin-bottom: 8px; }
  .entry-head { font-weight: 600; }
  .entry-org { color: {{.Accent.Primary}}; margin-left: 6px; }
  .entry-meta { font-size: 9px; color: #52606d; }
  .skill-bar { background: {{.Accent.Secondary}}; height: 4px; border-radius: 2px; margin-top: 2px; }
  .skill-fill { background: {{.Accent.Primary}}; height: 4px; border-radius: 2px; }
  ul { padding-left: 16px; }
</style>
</head>
<body>
<div class="page">
  <header class="head {{.Spec.Header}}">
    <h1>{{.Doc.PersonalInfo.FullName}}</h1>
    {{if .Contact}}<div class="contact">{{range $i, $c := .Contact}}{{if $i}} &middot; {{end}}{{$c}}{{end}}</div>{{end}}
    {{if .Doc.PersonalInfo.Summary}}<p class="summary">{{.Doc.PersonalInfo.Summary}}</p>{{end}}
  </header>
  {{if eq .Spec.Columns 2}}
  <div class="columns">
    <aside class="sidebar">{{range .Sidebar}}{{template "section" .}}{{end}}</aside>
    <main class="main">{{range .Main}}{{template "section" .}}{{end}}</main>
  </div>
  {{else}}
  <main class="main">{{range .Main}}{{template "section" .}}{{end}}</main>
  {{end}}
</div>
</body>
</html>
{{define "section"}}
<section class="sec">
  <h2>{{.Title}}</h2>
  {{if eq .Key "experience"}}
    {{range .Doc.Experience}}
    <div class="entry">
      <div class="entry-head">{{.Position}}{{if .Company}}<span class="entry-org">{{.Company}}</span>{{end}}</div>
      <div class="entry-meta">{{if .Location}}{{.Location}} &middot; {{end}}{{period .StartDate .EndDate}}</div>
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  {{else if eq .Key "education"}}
    {{range .Doc.Education}}
    <div class="entry">
      <div class="entry-head">{{.Degree}}{{if .Field}}, {{.Field}}{{end}}{{if .School}}<span class="entry-org">{{.School}}</span>{{end}}</div>
      <div class="entry-meta">{{period .StartDate .EndDate}}{{if .GPA}} &middot; GPA {{.GPA}}{{end}}</div>
    </div>
    {{end}}
  {{else if eq .Key "projects"}}
    {{range .Doc.Projects}}
    <div class="entry">
      <div class="entry-head">{{.Name}}{{if .Link}}<span class="entry-org">{{.Link}}</span>{{end}}</div>
      {{if .Technologies}}<div class="entry-meta">{{.Technologies}}</div>{{end}}
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  {{else if eq .Key "skills"}}
    {{range .Doc.Skills}}
    <div class="entry">
      <div>{{.Name}}</div>
      <div class="skill-bar"><div class="skill-fill" style="width: {{pct .Proficiency}}"></div></div>
    </div>
    {{end}}
  {{else if eq .Key "achievements"}}
    {{range .Doc.Achievements}}
    <div class="entry">
      <div class="entry-head">{{.Title}}</div>
      {{if .Date}}<div class="entry-meta">{{.Date}}</div>{{end}}
      {{if .Description}}<p>{{.Description}}</p>{{end}}
    </div>
    {{end}}
  {{else if eq .Key "custom"}}
    <ul>
    {{range .Custom.Items}}{{if .Text}}<li>{{.Text}}</li>{{end}}{{end}}
    </ul>
  {{end}}
</section>
{{end}}`
