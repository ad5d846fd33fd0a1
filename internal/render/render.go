package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	. "github.com/amitsingh771/Numerology/internal/models"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorPrimary   = lipgloss.Color("#1e40af")
	colorSecondary = lipgloss.Color("#059669")
	colorGold      = lipgloss.Color("#f59e0b")
	colorText      = lipgloss.Color("#1f2937")
	colorLightText = lipgloss.Color("#6b7280")
	colorWhite     = lipgloss.Color("#ffffff")

	DefaultWidth = 72

	notAvailable = "N/A"

	FallbackFortune = "Your unique number combination reveals special insights into your life path and destiny."
	Disclaimer      = "This report is generated based on traditional numerological principles. Use this guidance as inspiration for your personal growth journey."
)

type styles struct {
	header   lipgloss.Style
	subtitle lipgloss.Style
	name     lipgloss.Style
	muted    lipgloss.Style
	section  lipgloss.Style
	box      lipgloss.Style
	note     lipgloss.Style
	label    lipgloss.Style
	value    lipgloss.Style
	number   lipgloss.Style
	body     lipgloss.Style
	rule     lipgloss.Style
}

// Renderer lays a Report out as styled terminal text. Colour output depends
// on what the destination writer supports.
type Renderer struct {
	width  int
	styles styles
}

type item struct {
	label string
	value string
}

func New(w io.Writer, width int) *Renderer {
	if width <= 0 {
		width = DefaultWidth
	}

	r := lipgloss.NewRenderer(w)
	inner := width - 4

	return &Renderer{
		width: width,
		styles: styles{
			header: r.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				Background(colorPrimary).
				Width(width).
				Align(lipgloss.Center).
				Padding(1, 0, 0, 0),
			subtitle: r.NewStyle().
				Foreground(colorWhite).
				Background(colorPrimary).
				Width(width).
				Align(lipgloss.Center).
				Padding(0, 0, 1, 0),
			name:    r.NewStyle().Bold(true).Foreground(colorText).Width(width).Align(lipgloss.Center),
			muted:   r.NewStyle().Foreground(colorLightText).Width(width).Align(lipgloss.Center),
			section: r.NewStyle().Bold(true).Foreground(colorPrimary).MarginTop(1),
			box: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorSecondary).
				Padding(0, 1).
				Width(inner),
			note: r.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGold).
				Padding(0, 1).
				Width(inner),
			label:  r.NewStyle().Bold(true).Foreground(colorText).Width(22),
			value:  r.NewStyle().Foreground(colorLightText),
			number: r.NewStyle().Bold(true).Foreground(colorWhite).Background(colorPrimary).Padding(0, 2),
			body:   r.NewStyle().Foreground(colorText).Width(width),
			rule:   r.NewStyle().Foreground(colorGold),
		},
	}
}

// Render writes the full report to w.
func (r *Renderer) Render(w io.Writer, report Report) error {
	_, err := io.WriteString(w, r.String(report))
	return err
}

func (r *Renderer) String(report Report) string {
	blocks := []string{
		r.cover(report),
		r.introduction(report),
		r.numbers(report),
		r.predictions(report),
		r.footer(),
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func (r *Renderer) cover(report Report) string {
	parts := []string{
		r.header("NUMEROLOGY REPORT", "Personal Cosmic Blueprint"),
		"",
		r.styles.name.Render(report.FullName),
		r.styles.muted.Render(report.LongDob),
	}

	if report.Driver != nil && report.Conductor != nil {
		numbers := lipgloss.JoinHorizontal(lipgloss.Center,
			"Driver Number ", r.styles.number.Render(strconv.Itoa(*report.Driver)),
			"    ",
			"Conductor Number ", r.styles.number.Render(strconv.Itoa(*report.Conductor)),
		)
		parts = append(parts, "", lipgloss.PlaceHorizontal(r.width, lipgloss.Center, numbers))
	}

	parts = append(parts, "", r.infoBox(r.styles.box, []item{
		{"Registration No", report.RegistrationNo},
		{"Report Date", report.ReportDate},
		{"Mobile", report.Mobile},
		{"Email", report.Email},
	}))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) introduction(report Report) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.header("INTRODUCTION", "Understanding Your Cosmic Numbers"),
		r.section("What is Numerology?"),
		r.paragraph("Numerology is an ancient science that reveals the hidden meanings behind numbers in your life. It serves as your personal guide to understanding your destiny, personality traits, and life path."),
		r.section("Your Personal Reading"),
		r.paragraph(fmt.Sprintf(
			"This comprehensive reading has been specially prepared for %s, based on your birth date of %s. Every calculation and interpretation is unique to your cosmic blueprint.",
			report.FullName, report.LongDob,
		)),
	)
}

func (r *Renderer) numbers(report Report) string {
	profile := report.Profile

	parts := []string{
		r.header("YOUR NUMBERS", "Core Numerological Profile"),
		r.section("Primary Numbers"),
		r.infoBox(r.styles.box, []item{
			{"Driver Number", optionalNumber(report.Driver)},
			{"Conductor Number", optionalNumber(report.Conductor)},
			{"Ruling Planet", profile.RulingPlanet},
			{"Contributing Planet", profile.ContributingPlanet},
		}),
		r.section("Favorable Elements"),
		r.infoBox(r.styles.box, []item{
			{"Lucky Days", joinOrNA(profile.FavourableDays)},
			{"Power Colors", joinOrNA(profile.FavourableColours)},
			{"Avoid Colors", joinOrNA(profile.ColoursToAvoid)},
			{"Lucky Metal", profile.FavourableMetal},
			{"Power Gemstone", profile.FavourableGemstone},
			{"Favorable Direction", profile.Direction},
		}),
	}

	if len(profile.WonderLetters) > 0 {
		parts = append(parts,
			r.section("Wonder Letters"),
			r.paragraph("Your power letters: "+strings.Join(profile.WonderLetters, ", ")),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) predictions(report Report) string {
	parts := []string{
		r.header("PREDICTIONS & GUIDANCE", "Your Cosmic Roadmap"),
		r.section("Personality Profile"),
		r.paragraph(fmt.Sprintf(
			"As someone ruled by %s, you possess natural leadership qualities and a progressive mindset. Your ambitious nature drives you toward success, while your innovative thinking sets you apart from others.",
			report.Profile.RulingPlanet,
		)),
	}

	if report.Driver != nil && report.Conductor != nil {
		description := FallbackFortune
		if report.Fortune != nil && report.Fortune.Description != "" {
			description = report.Fortune.Description
		}

		parts = append(parts,
			r.section(fmt.Sprintf("Combination Fortune (%s)", CombinationKey(*report.Driver, *report.Conductor))),
			r.paragraph(description),
		)

		if report.Fortune != nil && report.Fortune.RolesProfession != "" {
			parts = append(parts,
				r.section("Career & Professional Path"),
				r.paragraph(report.Fortune.RolesProfession),
			)
		}
	}

	if wallpaper := report.Profile.Notes[NoteMobileWallpaper]; wallpaper != "" {
		parts = append(parts,
			r.section("Special Recommendations"),
			r.infoBox(r.styles.note, []item{{"Mobile Wallpaper", wallpaper}}),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) footer() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.rule.Render(strings.Repeat("─", r.width)),
		r.styles.muted.Render(Disclaimer),
	)
}

func (r *Renderer) header(title, subtitle string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.styles.header.Render(title),
		r.styles.subtitle.Render(subtitle),
	)
}

func (r *Renderer) section(title string) string {
	return r.styles.section.Render(title)
}

func (r *Renderer) paragraph(text string) string {
	return r.styles.body.Render(text)
}

func (r *Renderer) infoBox(box lipgloss.Style, items []item) string {
	rows := make([]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			r.styles.label.Render(it.label+":"),
			r.styles.value.Render(it.value),
		))
	}
	return box.Render(strings.Join(rows, "\n"))
}

func optionalNumber(n *int) string {
	if n == nil {
		return notAvailable
	}
	return strconv.Itoa(*n)
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return notAvailable
	}
	return strings.Join(values, ", ")
}
