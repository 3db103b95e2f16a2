package prompt

import (
	"fmt"
	"strings"

	"legal-drafting-be/internal/entity"
)

const (
	partyInstruction  = "STRICTLY USE PARTY A/B. NO REAL NAMES."
	noCaseLawGuidance = "DO NOT CITE ANY CASE LAW OR INVENT CITATIONS. Argue from the facts and the statute only."
	citeOnlyGuidance  = "Cite ONLY the verified judgments listed above, exactly as given."
)

// DraftInput is everything the drafter needs for one petition.
type DraftInput struct {
	PetitionType   string
	Court          string
	District       string
	Facts          string
	Judgments      []entity.VerifiedJudgment
	StyleReference string
}

// DraftBuilder assembles the drafting instruction. User input is inserted
// as-is.
type DraftBuilder struct {
	in DraftInput
}

func NewDraftBuilder(in DraftInput) *DraftBuilder {
	return &DraftBuilder{in: in}
}

// Build returns the same string for the same input.
func (b *DraftBuilder) Build() string {
	var prompt strings.Builder

	b.writeStyleReference(&prompt)
	b.writeTask(&prompt)
	b.writeJudgments(&prompt)
	b.writeGuidelines(&prompt)

	return prompt.String()
}

func (b *DraftBuilder) writeStyleReference(prompt *strings.Builder) {
	if b.in.StyleReference == "" {
		return
	}
	prompt.WriteString("Style DNA:\n")
	prompt.WriteString(b.in.StyleReference)
	prompt.WriteString("\n\n")
}

func (b *DraftBuilder) writeTask(prompt *strings.Builder) {
	switch {
	case b.in.Court != "" && b.in.District != "":
		fmt.Fprintf(prompt, "Draft %s for %s at %s. ", b.in.PetitionType, b.in.Court, b.in.District)
	case b.in.Court != "":
		fmt.Fprintf(prompt, "Draft %s for %s. ", b.in.PetitionType, b.in.Court)
	default:
		fmt.Fprintf(prompt, "Draft %s. ", b.in.PetitionType)
	}
	fmt.Fprintf(prompt, "Facts: %s.", b.in.Facts)
}

func (b *DraftBuilder) writeJudgments(prompt *strings.Builder) {
	if len(b.in.Judgments) == 0 {
		return
	}
	prompt.WriteString("\n\nVerified judgments:\n")
	for i, j := range b.in.Judgments {
		fmt.Fprintf(prompt, "%d. %s, %s\n", i+1, j.Title, j.Citation)
		if j.Extract != "" {
			fmt.Fprintf(prompt, "Extract: %s\n", j.Extract)
		}
	}
}

func (b *DraftBuilder) writeGuidelines(prompt *strings.Builder) {
	if len(b.in.Judgments) == 0 {
		prompt.WriteString("\n")
		prompt.WriteString(noCaseLawGuidance)
	} else {
		prompt.WriteString(citeOnlyGuidance)
	}
	prompt.WriteString("\n")
	prompt.WriteString(partyInstruction)
}

// ResearchKeywords asks for short precedent search phrases, one per line.
func ResearchKeywords(petitionType, facts string, limit int) string {
	var prompt strings.Builder
	fmt.Fprintf(&prompt, "List %d short search phrases (3 to 8 words each) to find Indian and Kerala precedents for a %s.\n", limit, petitionType)
	fmt.Fprintf(&prompt, "Facts: %s\n", facts)
	prompt.WriteString("Reply with one phrase per line. No numbering, no commentary, no case names.")
	return prompt.String()
}
