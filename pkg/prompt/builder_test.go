package prompt

import (
	"strings"
	"testing"

	"legal-drafting-be/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestBuildStandard(t *testing.T) {
	got := NewDraftBuilder(DraftInput{
		PetitionType: "Bail App",
		Court:        "High Court",
		District:     "Ernakulam",
		Facts:        "accused in custody for 60 days",
	}).Build()

	want := "Draft Bail App for High Court at Ernakulam. Facts: accused in custody for 60 days.\n" +
		noCaseLawGuidance + "\n" + partyInstruction
	assert.Equal(t, want, got)
}

func TestBuildWithJudgments(t *testing.T) {
	got := NewDraftBuilder(DraftInput{
		PetitionType: "Crl.MC",
		Court:        "High Court",
		District:     "Ernakulam",
		Facts:        "quash FIR",
		Judgments: []entity.VerifiedJudgment{
			{Title: "State v. X", Citation: "(2023) 4 SCC 110", Extract: "quashing allowed"},
			{Title: "Y v. Z", Citation: "2021 KHC 55"},
		},
	}).Build()

	assert.Contains(t, got, "Verified judgments:\n1. State v. X, (2023) 4 SCC 110\nExtract: quashing allowed\n2. Y v. Z, 2021 KHC 55\n")
	assert.Contains(t, got, citeOnlyGuidance)
	assert.NotContains(t, got, noCaseLawGuidance)
	assert.True(t, strings.HasSuffix(got, partyInstruction))
}

func TestBuildStyleMirror(t *testing.T) {
	got := NewDraftBuilder(DraftInput{
		PetitionType:   "OP (Divorce)",
		Facts:          "separated since 2020",
		StyleReference: "IN THE FAMILY COURT\nBEFORE THE HON'BLE JUDGE",
	}).Build()

	assert.True(t, strings.HasPrefix(got, "Style DNA:\nIN THE FAMILY COURT\nBEFORE THE HON'BLE JUDGE\n\nDraft OP (Divorce). Facts: separated since 2020."))
	assert.Contains(t, got, partyInstruction)
}

func TestBuildIsDeterministicAndUnescaped(t *testing.T) {
	in := DraftInput{PetitionType: "RSA", Court: "High Court", District: "Ernakulam", Facts: `<b>"quoted"</b> & more`}

	first := NewDraftBuilder(in).Build()
	second := NewDraftBuilder(in).Build()

	assert.Equal(t, first, second)
	assert.Contains(t, first, `<b>"quoted"</b> & more`)
}

func TestBuildEmptyFacts(t *testing.T) {
	got := NewDraftBuilder(DraftInput{PetitionType: "RFA", Court: "High Court", District: "Ernakulam"}).Build()

	assert.Contains(t, got, "Facts: .")
}

func TestResearchKeywords(t *testing.T) {
	got := ResearchKeywords("Bail App", "theft of vehicle", 5)

	assert.Contains(t, got, "List 5 short search phrases")
	assert.Contains(t, got, "for a Bail App")
	assert.Contains(t, got, "Facts: theft of vehicle\n")
}
