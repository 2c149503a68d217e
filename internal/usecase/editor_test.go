package usecase

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/require"
)

func newTestEditor() *Editor {
	return NewEditor(model.NewDocument("cosmos"))
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
func intp(i int) *int       { return &i }

func TestAddThenRemoveRestoresCollection(t *testing.T) {
	e := newTestEditor()
	first := e.AddExperience()
	e.UpdateExperience(first, ExperiencePatch{Company: strp("Acme")})

	before := make([]model.Experience, len(e.Document().Experience))
	copy(before, e.Document().Experience)

	added := e.AddExperience()
	if !e.RemoveExperience(added) {
		t.Fatalf("expected removal of %s to succeed", added)
	}

	require.Equal(t, before, e.Document().Experience)
}

func TestUpdateTouchesOnlyNamedFields(t *testing.T) {
	e := newTestEditor()
	a := e.AddExperience()
	b := e.AddExperience()
	e.UpdateExperience(a, ExperiencePatch{Company: strp("Acme"), Position: strp("Engineer")})
	e.UpdateExperience(b, ExperiencePatch{Company: strp("Globex"), Position: strp("Analyst")})

	e.UpdateExperience(a, ExperiencePatch{Position: strp("Senior Engineer")})

	doc := e.Document()
	require.Equal(t, "Acme", doc.Experience[0].Company)
	require.Equal(t, "Senior Engineer", doc.Experience[0].Position)
	require.Equal(t, "Globex", doc.Experience[1].Company)
	require.Equal(t, "Analyst", doc.Experience[1].Position)
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	e := newTestEditor()
	id := e.AddSkill()
	e.UpdateSkill(id, SkillPatch{Name: strp("Go")})

	before := make([]model.Skill, len(e.Document().Skills))
	copy(before, e.Document().Skills)

	if e.UpdateSkill("no-such-id", SkillPatch{Name: strp("Rust")}) {
		t.Fatal("update with unknown id reported success")
	}
	if e.RemoveSkill("no-such-id") {
		t.Fatal("remove with unknown id reported success")
	}

	require.Equal(t, before, e.Document().Skills)
}

func TestCurrentFlagKeepsEndDateConsistent(t *testing.T) {
	e := newTestEditor()
	id := e.AddExperience()

	e.UpdateExperience(id, ExperiencePatch{Current: boolp(true)})
	require.Equal(t, EndDatePresent, e.Document().Experience[0].EndDate)

	// even an explicit end date loses to the current flag
	e.UpdateExperience(id, ExperiencePatch{Current: boolp(true), EndDate: strp("Dec 2022")})
	require.Equal(t, EndDatePresent, e.Document().Experience[0].EndDate)

	// clearing the flag without a date drops the sentinel
	e.UpdateExperience(id, ExperiencePatch{Current: boolp(false)})
	require.Equal(t, "", e.Document().Experience[0].EndDate)

	// clearing the flag with a supplied end date keeps it
	e.UpdateExperience(id, ExperiencePatch{Current: boolp(true)})
	e.UpdateExperience(id, ExperiencePatch{Current: boolp(false), EndDate: strp("Dec 2022")})
	require.Equal(t, "Dec 2022", e.Document().Experience[0].EndDate)
}

func TestRemoveMiddleSkillKeepsOrder(t *testing.T) {
	e := newTestEditor()
	first := e.AddSkill()
	second := e.AddSkill()
	third := e.AddSkill()

	if !e.RemoveSkill(second) {
		t.Fatal("expected removal to succeed")
	}

	skills := e.Document().Skills
	if len(skills) != 2 {
		t.Fatalf("got %d skills, want 2", len(skills))
	}
	require.Equal(t, first, skills[0].ID)
	require.Equal(t, third, skills[1].ID)
}

func TestSkillDefaultsProficiency(t *testing.T) {
	e := newTestEditor()
	e.AddSkill()
	if got := e.Document().Skills[0].Proficiency; got != 50 {
		t.Errorf("got default proficiency %d, want 50", got)
	}
}

func TestAddedIDsAreUnique(t *testing.T) {
	e := newTestEditor()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := e.AddEducation()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestCustomSectionsAndItems(t *testing.T) {
	e := newTestEditor()
	sec := e.AddCustomSection()
	e.UpdateCustomSection(sec, CustomSectionPatch{Title: strp("Languages")})

	itemID, ok := e.AddCustomItem(sec)
	require.True(t, ok)
	require.True(t, e.UpdateCustomItem(sec, itemID, CustomItemPatch{Text: strp("Spanish (fluent)")}))

	doc := e.Document()
	require.Equal(t, "Languages", doc.CustomSections[0].Title)
	require.Equal(t, "Spanish (fluent)", doc.CustomSections[0].Items[0].Text)

	if _, ok := e.AddCustomItem("no-such-section"); ok {
		t.Fatal("adding an item to an unknown section reported success")
	}
	if e.UpdateCustomItem(sec, "no-such-item", CustomItemPatch{Text: strp("x")}) {
		t.Fatal("updating an unknown item reported success")
	}

	require.True(t, e.RemoveCustomItem(sec, itemID))
	require.Empty(t, doc.CustomSections[0].Items)
	require.True(t, e.RemoveCustomSection(sec))
	require.Empty(t, e.Document().CustomSections)
}

func TestUpdatePersonalInfoMerges(t *testing.T) {
	e := newTestEditor()
	e.UpdatePersonalInfo(PersonalInfoPatch{FullName: strp("Jane Doe"), Email: strp("jane@example.com")})
	e.UpdatePersonalInfo(PersonalInfoPatch{Phone: strp("555-0100")})

	pi := e.Document().PersonalInfo
	require.Equal(t, "Jane Doe", pi.FullName)
	require.Equal(t, "jane@example.com", pi.Email)
	require.Equal(t, "555-0100", pi.Phone)
}

func TestPresentationSetters(t *testing.T) {
	e := newTestEditor()
	e.SetTemplate("pulsar")
	e.SetAccentColor("teal")
	e.SetMonochrome(true)

	doc := e.Document()
	require.Equal(t, "pulsar", doc.Template)
	require.Equal(t, "teal", doc.AccentColor)
	require.True(t, doc.Monochrome)
}

func TestSkillProficiencyUpdate(t *testing.T) {
	e := newTestEditor()
	id := e.AddSkill()
	e.UpdateSkill(id, SkillPatch{Proficiency: intp(90)})
	require.Equal(t, 90, e.Document().Skills[0].Proficiency)
}
