package application

import (
	"sort"

	"clx/domain"
)

// ReconcileSessions merges directory-discovered session stubs with
// history-derived prompt statistics into one canonical session view.
//
// For each stub with matching prompts (by session id): prompt count is the
// match count, first activity is the earliest prompt timestamp, and last
// activity is the later of the stub's mtime-derived value and the latest
// prompt timestamp, so it never regresses. Stubs with no matching prompts
// keep a zero prompt count and no first activity.
//
// The result spans all projects, ordered by last activity descending; the
// zero time sorts last so unknown-activity sessions sink to the bottom.
func ReconcileSessions(prompts []domain.Prompt, projects []domain.Project) []domain.Session {
	promptsByID := make(map[string][]domain.Prompt)
	for _, p := range prompts {
		promptsByID[p.SessionID] = append(promptsByID[p.SessionID], p)
	}

	var sessions []domain.Session
	for _, project := range projects {
		for _, session := range project.Sessions {
			matched := promptsByID[session.SessionID]
			if len(matched) > 0 {
				session.PromptCount = len(matched)

				first, last := matched[0].Timestamp, matched[0].Timestamp
				for _, p := range matched[1:] {
					if p.Timestamp.Before(first) {
						first = p.Timestamp
					}
					if p.Timestamp.After(last) {
						last = p.Timestamp
					}
				}
				session.FirstActivity = first
				if last.After(session.LastActivity) {
					session.LastActivity = last
				}
			}
			sessions = append(sessions, session)
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].LastActivity.After(sessions[j].LastActivity)
	})
	return sessions
}
