package plan

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders the report followed by the plan. Optional lists
// that are empty are left out entirely, headings included.
func RenderMarkdown(r Result) string {
	var b strings.Builder
	if r.AnalysisReport != nil {
		writeReport(&b, r.AnalysisReport)
	}
	if r.TrainingPlan != nil {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		writePlan(&b, r.TrainingPlan)
	}
	return b.String()
}

func writeReport(b *strings.Builder, a *AnalysisReport) {
	b.WriteString("# Analysis Report\n\n")
	b.WriteString("## Body Composition\n\n")
	fmt.Fprintf(b, "- **Body type:** %s\n", a.BodyType)
	fmt.Fprintf(b, "- **Body fat:** %s\n", a.BodyFatEvaluation)
	fmt.Fprintf(b, "- **Skeletal muscle:** %s\n\n", a.SkeletalMuscleEvaluation)
	b.WriteString("## Balance\n\n")
	fmt.Fprintf(b, "- **Arms (left/right):** %s\n", a.ArmBalance)
	fmt.Fprintf(b, "- **Legs (left/right):** %s\n", a.LegBalance)
	fmt.Fprintf(b, "- **Upper/lower body:** %s\n", a.UpperLowerBalance)
	writeList(b, "Risk Factors", a.RiskFactors)
	writeList(b, "Concerns", a.Concerns)
}

func writePlan(b *strings.Builder, p *TrainingPlan) {
	b.WriteString("# Training Plan\n\n")
	fmt.Fprintf(b, "**Split method:** %s\n\n", p.SplitMethod)
	if p.SplitRationale != "" {
		fmt.Fprintf(b, "%s\n\n", p.SplitRationale)
	}
	b.WriteString("## Weekly Schedule\n")
	for _, day := range p.WeeklySchedule {
		writeDay(b, day)
	}
	writeList(b, "Risk Adjustments", p.Modifications)
	writeList(b, "Priority Points", p.PriorityPoints)
	writeList(b, "Nutrition Tips", p.NutritionTips)
}

func writeDay(b *strings.Builder, day DayPlan) {
	fmt.Fprintf(b, "\n### %s: %s\n\n", day.DayLabel, day.Focus)
	if len(day.Exercises) == 0 {
		b.WriteString("_Rest day_\n")
		return
	}
	b.WriteString("| Area | Exercise | Sets | Reps | Rest | Notes |\n")
	b.WriteString("|------|----------|:----:|:----:|:----:|-------|\n")
	for _, ex := range day.Exercises {
		notes := ex.Notes
		if notes == "" {
			notes = "-"
		}
		fmt.Fprintf(b, "| %s | %s | %d | %s | %ds | %s |\n",
			cell(ex.TargetArea), cell(ex.ExerciseName), ex.Sets, cell(ex.Reps), ex.Rest(), cell(notes))
	}

	// Tables cannot hold lists, so instructions follow the table.
	for _, ex := range day.Exercises {
		if len(ex.Instructions) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n**%s**\n\n", ex.ExerciseName)
		for i, step := range ex.Instructions {
			fmt.Fprintf(b, "%d. %s\n", i+1, step)
		}
	}
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// Title returns a short name for the result, used for export file names.
func Title(r Result) string {
	if r.TrainingPlan != nil && r.TrainingPlan.SplitMethod != "" {
		return "training-plan " + r.TrainingPlan.SplitMethod
	}
	return "training-plan"
}
