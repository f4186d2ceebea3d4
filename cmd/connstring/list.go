package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/eduardofuncao/connstring/internal/config"
	"github.com/eduardofuncao/connstring/internal/styles"
)

func (a *App) handleList() {
	searchTerm := ""
	if len(os.Args) > 2 {
		searchTerm = os.Args[2]
	}

	if len(a.config.Profiles) == 0 {
		fmt.Println(styles.Faint.Render("No profiles configured. Use 'connstring init' to create one"))
		return
	}

	profiles := filterProfiles(a.config.Profiles, searchTerm)
	if len(profiles) == 0 {
		fmt.Println(styles.Faint.Render(fmt.Sprintf("No profiles found matching '%s'", searchTerm)))
		return
	}

	nameWidth, engineWidth := columnWidths(profiles)
	for _, p := range profiles {
		marker := styles.Faint.Render("◆")
		if p.Name == a.config.CurrentProfile {
			marker = styles.Success.Render("●")
		}

		name := highlightMatches(p.Name, searchTerm) + padding(p.Name, nameWidth)
		engineName := runewidth.FillRight(p.Engine, engineWidth)

		fmt.Printf("%s %s  %s  %s\n",
			marker,
			styles.Title.Render(name),
			styles.Faint.Render(engineName),
			highlightMatches(describeProfile(p), searchTerm),
		)
	}
}

// filterProfiles returns the profiles whose name, engine, host, database or
// user contain searchTerm, sorted by name.
func filterProfiles(profiles map[string]*config.ProfileYAML, searchTerm string) []*config.ProfileYAML {
	searchLower := strings.ToLower(searchTerm)

	result := make([]*config.ProfileYAML, 0, len(profiles))
	for _, p := range profiles {
		if searchLower == "" || profileMatches(p, searchLower) {
			result = append(result, p)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

func profileMatches(p *config.ProfileYAML, searchLower string) bool {
	for _, field := range []string{p.Name, p.Engine, p.Host, p.Database, p.User} {
		if strings.Contains(strings.ToLower(field), searchLower) {
			return true
		}
	}
	return false
}

// describeProfile renders user@host:port/database, leaving out the parts a
// profile does not set.
func describeProfile(p *config.ProfileYAML) string {
	var b strings.Builder
	if p.User != "" {
		b.WriteString(p.User)
		b.WriteString("@")
	}
	b.WriteString(p.Address())
	if p.Database != "" {
		b.WriteString("/")
		b.WriteString(p.Database)
	}
	return b.String()
}

func columnWidths(profiles []*config.ProfileYAML) (int, int) {
	nameWidth, engineWidth := 0, 0
	for _, p := range profiles {
		nameWidth = max(nameWidth, runewidth.StringWidth(p.Name))
		engineWidth = max(engineWidth, runewidth.StringWidth(p.Engine))
	}
	return nameWidth, engineWidth
}

// padding returns the spaces that bring s up to width display columns.
func padding(s string, width int) string {
	return strings.Repeat(" ", max(0, width-runewidth.StringWidth(s)))
}

func highlightMatches(text, searchTerm string) string {
	if searchTerm == "" {
		return text
	}

	searchLower := strings.ToLower(searchTerm)
	textLower := strings.ToLower(text)
	if len(textLower) != len(text) {
		// case folding changed byte offsets
		return text
	}

	var result strings.Builder
	index := 0
	for {
		pos := strings.Index(textLower[index:], searchLower)
		if pos == -1 {
			result.WriteString(text[index:])
			break
		}

		result.WriteString(text[index : index+pos])
		matchedText := text[index+pos : index+pos+len(searchLower)]
		result.WriteString(styles.SearchMatch.Render(matchedText))

		index += pos + len(searchLower)
	}

	return result.String()
}
