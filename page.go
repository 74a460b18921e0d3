package main

import (
	"time"
)

const (
	// maxVisibleTags is how many tag chips a featured project card shows
	// before collapsing the rest into a "+N" chip.
	maxVisibleTags = 3

	sideRight = "right"
	sideLeft  = "left"
)

// UISettings are the timing values the client script reads from data attributes.
type UISettings struct {
	ScrollThreshold int
	CopyAckMillis   int64
	FormResetMillis int64
}

func newUISettings(cfg UIConfig) UISettings {
	return UISettings{
		ScrollThreshold: cfg.ScrollThreshold,
		CopyAckMillis:   cfg.CopyAckDelay.Milliseconds(),
		FormResetMillis: cfg.FormResetDelay.Milliseconds(),
	}
}

type NavItem struct {
	Label  string
	Target string
}

// TimelineCard places an entry on one side of the vertical track.
type TimelineCard struct {
	TimelineEntry
	Side string
}

// timelineView feeds the shared "timeline" template. Kind becomes each
// card's data-card attribute.
type timelineView struct {
	Kind  string
	Cards []TimelineCard
}

func newTimelineView(kind string, cards []TimelineCard) timelineView {
	return timelineView{Kind: kind, Cards: cards}
}

type TagChips struct {
	Visible  []string
	Overflow int
}

type FeaturedCard struct {
	FeaturedProject
	Chips TagChips
}

// PageData is the template model for the full page and every section fragment.
type PageData struct {
	*Content

	NavItems           []NavItem
	TitleLetters       []string
	ProjectTimeline    []TimelineCard
	ExperienceTimeline []TimelineCard
	FeaturedCards      []FeaturedCard

	UI     UISettings
	Year   int
	Static bool
	Form   ContactFormView

	// Refresh is the meta refresh value for a plain (script-less) form post.
	Refresh string
}

// BuildPage derives the view model from content. The form starts in its empty state.
func BuildPage(content *Content, ui UISettings, now time.Time) *PageData {
	page := &PageData{
		Content:            content,
		NavItems:           navItems(content.Nav),
		TitleLetters:       titleLetters(content.Profile.Name),
		ProjectTimeline:    timelineCards(content.Projects.Timeline),
		ExperienceTimeline: timelineCards(content.Experience.Timeline),
		UI:                 ui,
		Year:               now.Year(),
	}
	for _, p := range content.Projects.Featured {
		page.FeaturedCards = append(page.FeaturedCards, FeaturedCard{
			FeaturedProject: p,
			Chips:           tagChips(p.Tags, maxVisibleTags),
		})
	}
	page.Form = newContactFormView(ContactForm{}, ui)
	return page
}

func navItems(labels []string) []NavItem {
	items := make([]NavItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, NavItem{Label: label, Target: SectionID(label)})
	}
	return items
}

// titleLetters splits s for the per-letter hero reveal. Spaces become
// non-breaking so the inline-block letters keep their gaps.
func titleLetters(s string) []string {
	letters := make([]string, 0, len(s))
	for _, r := range s {
		if r == ' ' {
			letters = append(letters, "\u00a0")
			continue
		}
		letters = append(letters, string(r))
	}
	return letters
}

// timelineCards alternates entries right, left, right, ...
func timelineCards(entries []TimelineEntry) []TimelineCard {
	cards := make([]TimelineCard, 0, len(entries))
	for i, e := range entries {
		side := sideRight
		if i%2 == 1 {
			side = sideLeft
		}
		cards = append(cards, TimelineCard{TimelineEntry: e, Side: side})
	}
	return cards
}

func tagChips(tags []string, limit int) TagChips {
	if len(tags) <= limit {
		return TagChips{Visible: tags}
	}
	return TagChips{Visible: tags[:limit], Overflow: len(tags) - limit}
}
