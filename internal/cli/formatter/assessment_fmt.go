package formatter

import (
	"fmt"
	"strings"

	"github.com/sbelmont/intake/internal/domain"
)

// labels for tier slugs shown to the user.
var tierLabels = map[string]string{
	"no-equipment":    "No equipment",
	"basic-equipment": "Basic equipment",
	"full-gym":        "Full gym",
}

// TierLabel returns the display label for a tier slug.
func TierLabel(slug string) string {
	if l, ok := tierLabels[slug]; ok {
		return l
	}
	return slug
}

// FormatSubmission renders a submission as an aligned field list.
func FormatSubmission(sub domain.Submission) string {
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleDim.Render(fmt.Sprintf("%-15s", label)), value))
	}

	row("Sport", sub.Sport)
	row("Age", fmt.Sprintf("%d", sub.Age))
	row("Experience", sub.ExperienceLevel)
	row("Training days", sub.TrainingDays)

	injuries := "none reported"
	if sub.Injuries != nil {
		injuries = *sub.Injuries
	}
	row("Injuries", injuries)

	if len(sub.Equipment) > 0 {
		row("Equipment", TierLabel(sub.Equipment[0]))
	}
	if len(sub.EquipmentItems) > 0 {
		row("Items", strings.Join(sub.EquipmentItems, ", "))
	}

	return b.String()
}

// FormatRecordLine renders a one-line list entry for a stored assessment.
func FormatRecordLine(rec *domain.Record) string {
	tier := ""
	if len(rec.Submission.Equipment) > 0 {
		tier = TierLabel(rec.Submission.Equipment[0])
	}
	return fmt.Sprintf("%s  %s  %s, %d, %s  %s",
		Dim(rec.CreatedAt.Format("2006-01-02 15:04")),
		Bold(shortID(rec.ID)),
		rec.Submission.Sport,
		rec.Submission.Age,
		rec.Submission.ExperienceLevel,
		Dim(tier),
	)
}

// FormatRecord renders a stored assessment in full.
func FormatRecord(rec *domain.Record) string {
	var b strings.Builder
	b.WriteString(Header("Assessment "+shortID(rec.ID)) + "\n")
	b.WriteString(Dim("Submitted "+rec.CreatedAt.Format("2006-01-02 15:04 MST")) + "\n\n")
	b.WriteString(FormatSubmission(rec.Submission))
	return b.String()
}

// shortID abbreviates a UUID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
