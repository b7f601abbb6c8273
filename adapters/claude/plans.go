package claude

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"clx/domain"
	"clx/logging"
	"clx/paths"
)

var planTitleCaser = cases.Title(language.English)

// ListPlans lists plan documents from the plans directory, newest first.
// Content is not read here; use ReadPlanContent for that.
func (r *Reader) ListPlans() ([]domain.Plan, error) {
	plansDir := paths.PlansDir(r.claudeDir)

	files, err := filepath.Glob(filepath.Join(plansDir, "*.md"))
	if err != nil {
		return nil, nil
	}

	var plans []domain.Plan
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}

		stem := strings.TrimSuffix(filepath.Base(file), ".md")
		plans = append(plans, domain.Plan{
			Name:     planTitleCaser.String(strings.ReplaceAll(stem, "-", " ")),
			Path:     file,
			Modified: info.ModTime().UTC(),
			Size:     info.Size(),
		})
	}

	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].Modified.After(plans[j].Modified)
	})

	logging.Logger.Debug("Listed plans", "count", len(plans))
	return plans, nil
}

// ReadPlanContent reads a plan's full Markdown content
func (r *Reader) ReadPlanContent(plan domain.Plan) string {
	data, err := os.ReadFile(plan.Path)
	if err != nil {
		return "(Could not read plan)"
	}
	return string(data)
}
