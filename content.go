package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed content/default.yaml
var defaultContentYAML []byte

var (
	ErrInvalidContent = errors.New("invalid content")
	ErrUnknownSection = errors.New("unknown section")
)

// SectionIDs lists the in-page anchors in render order.
var SectionIDs = []string{"home", "about", "projects", "skills", "experience", "contact"}

// SectionID maps a navigation label to the id of the section it scrolls to.
func SectionID(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

func isSectionID(id string) bool {
	return slices.Contains(SectionIDs, id)
}

// Content is everything the page shows. It is loaded once at startup.
type Content struct {
	Profile    Profile           `yaml:"profile" json:"profile"`
	Nav        []string          `yaml:"nav" json:"nav"`
	Hero       HeroContent       `yaml:"hero" json:"hero"`
	About      AboutContent      `yaml:"about" json:"about"`
	Projects   ProjectsContent   `yaml:"projects" json:"projects"`
	Skills     SkillsContent     `yaml:"skills" json:"skills"`
	Experience ExperienceContent `yaml:"experience" json:"experience"`
	Contact    ContactContent    `yaml:"contact" json:"contact"`
	Footer     FooterContent     `yaml:"footer" json:"footer"`
}

type Profile struct {
	Name         string `yaml:"name" json:"name"`
	Brand        Brand  `yaml:"brand" json:"brand"`
	Greeting     string `yaml:"greeting" json:"greeting"`
	Title        string `yaml:"title" json:"title"`
	Summary      string `yaml:"summary" json:"summary"`
	PortraitPath string `yaml:"portrait_path" json:"portrait_path"`
	Location     string `yaml:"location" json:"location"`
	Email        string `yaml:"email" json:"email"`
}

// Brand is the wordmark, rendered as an accented prefix and a plain rest.
type Brand struct {
	Accent string `yaml:"accent" json:"accent"`
	Rest   string `yaml:"rest" json:"rest"`
}

type SectionHeader struct {
	Heading string `yaml:"heading" json:"heading"`
	Intro   string `yaml:"intro" json:"intro"`
}

type Link struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type HeroContent struct {
	PrimaryAction   Link `yaml:"primary_action" json:"primary_action"`
	SecondaryAction Link `yaml:"secondary_action" json:"secondary_action"`
}

type AboutContent struct {
	SectionHeader `yaml:",inline"`
	Panels        []Panel    `yaml:"panels" json:"panels"`
	Cards         []InfoCard `yaml:"cards" json:"cards"`
}

type Panel struct {
	Title      string   `yaml:"title" json:"title"`
	Paragraphs []string `yaml:"paragraphs" json:"paragraphs"`
}

type InfoCard struct {
	Title       string `yaml:"title" json:"title"`
	Icon        string `yaml:"icon" json:"icon"`
	Description string `yaml:"description" json:"description"`
}

// TimelineEntry is a dated record on a vertical track (a project or an experience).
type TimelineEntry struct {
	Title       string   `yaml:"title" json:"title"`
	Role        string   `yaml:"role" json:"role"`
	Date        string   `yaml:"date" json:"date"`
	Description string   `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
	CodeURL     string   `yaml:"code_url" json:"code_url,omitempty"`
	DemoURL     string   `yaml:"demo_url" json:"demo_url,omitempty"`
}

type FeaturedProject struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	Tags        []string `yaml:"tags" json:"tags"`
}

type ProjectsContent struct {
	SectionHeader   `yaml:",inline"`
	Timeline        []TimelineEntry   `yaml:"timeline" json:"timeline"`
	FeaturedHeading string            `yaml:"featured_heading" json:"featured_heading"`
	Featured        []FeaturedProject `yaml:"featured" json:"featured"`
}

// Skill carries a self-reported proficiency level, 0 to 100.
type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
}

type Technology struct {
	Name    string `yaml:"name" json:"name"`
	IconURL string `yaml:"icon_url" json:"icon_url"`
}

type SkillCategory struct {
	Title  string   `yaml:"title" json:"title"`
	Skills []string `yaml:"skills" json:"skills"`
}

type SkillsContent struct {
	SectionHeader       `yaml:",inline"`
	ProficiencyHeading  string          `yaml:"proficiency_heading" json:"proficiency_heading"`
	Levels              []Skill         `yaml:"levels" json:"levels"`
	TechnologiesHeading string          `yaml:"technologies_heading" json:"technologies_heading"`
	Technologies        []Technology    `yaml:"technologies" json:"technologies"`
	Categories          []SkillCategory `yaml:"categories" json:"categories"`
}

type Achievement struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
}

type ExperienceContent struct {
	SectionHeader       `yaml:",inline"`
	Timeline            []TimelineEntry `yaml:"timeline" json:"timeline"`
	AchievementsHeading string          `yaml:"achievements_heading" json:"achievements_heading"`
	Achievements        []Achievement   `yaml:"achievements" json:"achievements"`
}

// ContactChannel is one item of the contact card. Copy marks items that
// write Value to the clipboard on click.
type ContactChannel struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
	Href  string `yaml:"href" json:"href,omitempty"`
	Icon  string `yaml:"icon" json:"icon"`
	Hint  string `yaml:"hint" json:"hint,omitempty"`
	Copy  bool   `yaml:"copy" json:"copy"`
}

type SocialLink struct {
	Label   string `yaml:"label" json:"label"`
	Href    string `yaml:"href" json:"href"`
	IconURL string `yaml:"icon_url" json:"icon_url,omitempty"`
	Icon    string `yaml:"icon" json:"icon,omitempty"`
}

type ContactContent struct {
	SectionHeader `yaml:",inline"`
	InfoHeading   string           `yaml:"info_heading" json:"info_heading"`
	Channels      []ContactChannel `yaml:"channels" json:"channels"`
	SocialHeading string           `yaml:"social_heading" json:"social_heading"`
	Socials       []SocialLink     `yaml:"socials" json:"socials"`
	FormHeading   string           `yaml:"form_heading" json:"form_heading"`
}

type FooterContent struct {
	Blurb   string       `yaml:"blurb" json:"blurb"`
	Socials []SocialLink `yaml:"socials" json:"socials"`
	Tagline string       `yaml:"tagline" json:"tagline"`
}

// DefaultContent decodes the embedded content file.
func DefaultContent() (*Content, error) {
	return decodeContent(defaultContentYAML, "embedded default")
}

// LoadContent reads content from path, or the embedded default when path is empty.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		return DefaultContent()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}
	return decodeContent(data, path)
}

func decodeContent(data []byte, source string) (*Content, error) {
	var content Content
	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("failed to parse content from %s: %w", source, err)
	}
	if err := content.Validate(); err != nil {
		return nil, err
	}
	return &content, nil
}

// contentChecker accumulates validation failures under dotted field paths.
type contentChecker struct {
	errs []error
}

func (c *contentChecker) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.errs = append(c.errs, fmt.Errorf("%s is required", field))
	}
}

func (c *contentChecker) fail(format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
}

// Validate reports every violation at once, wrapped in ErrInvalidContent.
func (c *Content) Validate() error {
	var chk contentChecker

	chk.required("profile.name", c.Profile.Name)
	chk.required("profile.title", c.Profile.Title)
	chk.required("profile.email", c.Profile.Email)
	chk.required("profile.portrait_path", c.Profile.PortraitPath)

	if len(c.Nav) == 0 {
		chk.fail("nav must list at least one section")
	}
	seen := make(map[string]bool, len(c.Nav))
	for i, label := range c.Nav {
		id := SectionID(label)
		switch {
		case id == "":
			chk.fail("nav[%d] is empty", i)
		case seen[id]:
			chk.fail("nav[%d] %q duplicates another label", i, label)
		case !isSectionID(id):
			chk.fail("nav[%d] %q does not name a section", i, label)
		}
		seen[id] = true
	}

	for i, card := range c.About.Cards {
		chk.required(fmt.Sprintf("about.cards[%d].title", i), card.Title)
	}
	checkTimeline(&chk, "projects.timeline", c.Projects.Timeline)
	for i, p := range c.Projects.Featured {
		chk.required(fmt.Sprintf("projects.featured[%d].title", i), p.Title)
	}
	for i, s := range c.Skills.Levels {
		chk.required(fmt.Sprintf("skills.levels[%d].name", i), s.Name)
		if s.Level < 0 || s.Level > 100 {
			chk.fail("skills.levels[%d] %q level %d is outside 0-100", i, s.Name, s.Level)
		}
	}
	for i, t := range c.Skills.Technologies {
		chk.required(fmt.Sprintf("skills.technologies[%d].name", i), t.Name)
	}
	for i, cat := range c.Skills.Categories {
		chk.required(fmt.Sprintf("skills.categories[%d].title", i), cat.Title)
	}
	checkTimeline(&chk, "experience.timeline", c.Experience.Timeline)
	for i, a := range c.Experience.Achievements {
		chk.required(fmt.Sprintf("experience.achievements[%d].title", i), a.Title)
	}
	for i, ch := range c.Contact.Channels {
		chk.required(fmt.Sprintf("contact.channels[%d].label", i), ch.Label)
		chk.required(fmt.Sprintf("contact.channels[%d].value", i), ch.Value)
	}

	if len(chk.errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(chk.errs...))
	}
	return nil
}

func checkTimeline(chk *contentChecker, prefix string, entries []TimelineEntry) {
	for i, e := range entries {
		chk.required(fmt.Sprintf("%s[%d].title", prefix, i), e.Title)
		chk.required(fmt.Sprintf("%s[%d].date", prefix, i), e.Date)
	}
}

// CopyChannel returns the first channel marked for clipboard copy.
func (c *Content) CopyChannel() (ContactChannel, bool) {
	for _, ch := range c.Contact.Channels {
		if ch.Copy {
			return ch, true
		}
	}
	return ContactChannel{}, false
}
