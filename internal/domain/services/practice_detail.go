package services

import "github.com/ersonp/movement-core/internal/domain/entities"

// PracticeDetail is one practice with what it involves and what points at it.
type PracticeDetail struct {
	Practice          *entities.Practice `json:"practice"`
	Entities          []EntityRef        `json:"entities"`
	InstructionsTexts []TextSummary      `json:"instructionsTexts"`
	SupportingClaims  []ClaimRef         `json:"supportingClaims"`
	AttachedRules     []RuleRef          `json:"attachedRules"`
	AttachedEvents    []EventRef         `json:"attachedEvents"`
	Media             []MediaRef         `json:"media"`
}

// BuildPracticeDetail resolves a practice's references. An unknown practice
// yields nil.
func BuildPracticeDetail(ds *entities.Dataset, practiceID string) *PracticeDetail {
	practice, ok := BuildIndex(ds.Practices)[practiceID]
	if !ok {
		return nil
	}

	return &PracticeDetail{
		Practice:          &practice,
		Entities:          resolve(practice.InvolvedEntityIDs, BuildIndex(ds.Entities), entityRef),
		InstructionsTexts: resolve(practice.InstructionsTextIDs, BuildIndex(ds.Texts), textSummary),
		SupportingClaims:  resolve(practice.SupportingClaimIDs, BuildIndex(ds.Claims), claimRef),
		AttachedRules:     referencing(ds.Rules, practiceID, func(r entities.Rule) []string { return r.RelatedPracticeIDs }, ruleRef),
		AttachedEvents:    referencing(ds.Events, practiceID, func(e entities.Event) []string { return e.MainPracticeIDs }, eventRef),
		Media:             referencing(ds.Media, practiceID, func(m entities.MediaAsset) []string { return m.LinkedPracticeIDs }, mediaRef),
	}
}
